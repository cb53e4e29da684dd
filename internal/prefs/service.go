package prefs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// writeTimeout bounds a single synchronous preference write.
const writeTimeout = 2 * time.Second

// Service reads and writes preferences through a KV.
type Service struct {
	kv  KV
	log *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(kv KV, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{kv: kv, log: log.Named("prefs")}
}

// Load reads the stored preferences once. Any read or decode failure falls
// back to defaults and is logged, never returned.
func (s *Service) Load(ctx context.Context) Preferences {
	raw, err := s.kv.All(ctx)
	if err != nil {
		s.log.Warn("read preferences failed, using defaults", zap.Error(err))
		return Defaults()
	}

	p, problems := Decode(raw)
	for _, perr := range problems {
		s.log.Warn("ignoring malformed preference", zap.Error(perr))
	}
	return p
}

// SaveDarkMode persists the dark-mode flag.
func (s *Service) SaveDarkMode(dark bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.kv.Set(ctx, KeyDarkMode, EncodeDarkMode(dark)); err != nil {
		return fmt.Errorf("persist dark mode: %w", err)
	}
	s.log.Debug("dark mode saved", zap.Bool("dark", dark))
	return nil
}

// SaveBookmarks persists the bookmark list.
func (s *Service) SaveBookmarks(ids []string) error {
	encoded, err := EncodeBookmarks(ids)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.kv.Set(ctx, KeyBookmarks, encoded); err != nil {
		return fmt.Errorf("persist bookmarks: %w", err)
	}
	s.log.Debug("bookmarks saved", zap.Strings("ids", ids))
	return nil
}

// Reset removes both stored preferences so the next Load returns defaults.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyDarkMode, KeyBookmarks); err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}

// Prune removes bookmarks for which known returns false and returns the
// removed ids. Nothing is written when every bookmark is known.
func (s *Service) Prune(ctx context.Context, known func(id string) bool) ([]string, error) {
	p := s.Load(ctx)

	kept := make([]string, 0, len(p.Bookmarks))
	var removed []string
	for _, id := range p.Bookmarks {
		if known(id) {
			kept = append(kept, id)
		} else {
			removed = append(removed, id)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}

	if err := s.SaveBookmarks(kept); err != nil {
		return nil, err
	}
	return removed, nil
}
