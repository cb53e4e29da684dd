package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tutordesk/internal/app"
	"github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/llm"
	"github.com/abhisek/tutordesk/internal/logging"
	"github.com/abhisek/tutordesk/internal/prefs"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
	"github.com/abhisek/tutordesk/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log, flush, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer flush()
	log.Info("starting", zap.String("version", version), zap.String("db", cfg.DBPath), zap.String("config", cfg.File))

	preferences := prefs.NewService(st.PreferenceRepo(), log)
	p := preferences.Load(ctx)

	initial := state.Initial(p.DarkMode, p.Bookmarks)
	if cfg.View != "" {
		initial = initial.Navigate(cfg.View)
	}
	session := state.NewSession(initial, preferences)

	provider, err := newProvider(cmd, st.EventRepo(), log)
	if err != nil {
		log.Warn("llm provider unavailable", zap.Error(err))
		if !errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "LLM provider error:", err)
		}
		fmt.Fprintln(os.Stderr, "AI tutor is offline. Set TUTORDESK_LLM_PROVIDER to enable it.")
	}

	return app.Run(app.Deps{
		Session:    session,
		Auth:       auth.NewService(st.UserRepo(), auth.WithLogger(log)),
		Activities: st.ActivityRepo(),
		Tutor:      tutor.NewService(provider, tutor.DefaultConfig(), log),
		Log:        log,
	})
}

// newProvider returns nil and llm.ErrNotConfigured when no provider is set
// up, leaving the tutor offline.
func newProvider(cmd *cobra.Command, events store.EventRepo, log *zap.Logger) (llm.Provider, error) {
	cfg, ok := llm.ResolveConfig()
	if !ok {
		return nil, llm.ErrNotConfigured
	}
	p, err := llm.NewProvider(cmd.Context(), cfg, events, log)
	if err != nil {
		return nil, err
	}
	return p, nil
}
