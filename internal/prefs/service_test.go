package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct{ memoryKV }

func (f *failingKV) All(context.Context) (map[string]string, error) {
	return nil, errors.New("disk on fire")
}

func (f *failingKV) Set(context.Context, string, string) error {
	return errors.New("read-only")
}

func TestServiceLoadSave(t *testing.T) {
	kv := newMemoryKV(nil)
	svc := NewService(kv, nil)

	require.NoError(t, svc.SaveDarkMode(true))
	require.NoError(t, svc.SaveBookmarks([]string{"math"}))

	v, _ := kv.Value(KeyDarkMode)
	assert.Equal(t, "true", v)
	v, _ = kv.Value(KeyBookmarks)
	assert.Equal(t, `["math"]`, v)

	p := svc.Load(context.Background())
	assert.True(t, p.DarkMode)
	assert.Equal(t, []string{"math"}, p.Bookmarks)
}

func TestServiceLoadFallsBackOnReadError(t *testing.T) {
	svc := NewService(&failingKV{}, nil)
	assert.Equal(t, Defaults(), svc.Load(context.Background()))
}

func TestServiceSaveReturnsWriteError(t *testing.T) {
	svc := NewService(&failingKV{}, nil)
	assert.Error(t, svc.SaveDarkMode(true))
	assert.Error(t, svc.SaveBookmarks([]string{"math"}))
}

func TestServiceReset(t *testing.T) {
	kv := newMemoryKV(map[string]string{KeyDarkMode: "true", KeyBookmarks: `["math"]`})
	svc := NewService(kv, nil)

	require.NoError(t, svc.Reset(context.Background()))
	assert.Equal(t, Defaults(), svc.Load(context.Background()))
}

func TestServicePrune(t *testing.T) {
	kv := newMemoryKV(map[string]string{KeyBookmarks: `["math","astrology","physics"]`})
	svc := NewService(kv, nil)
	known := func(id string) bool { return id != "astrology" }

	removed, err := svc.Prune(context.Background(), known)
	require.NoError(t, err)
	assert.Equal(t, []string{"astrology"}, removed)
	assert.Equal(t, []string{"math", "physics"}, svc.Load(context.Background()).Bookmarks)

	writes := kv.Writes()
	removed, err = svc.Prune(context.Background(), known)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Equal(t, writes, kv.Writes(), "prune without stale ids must not write")
}
