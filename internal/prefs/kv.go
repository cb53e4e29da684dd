package prefs

import "context"

// KV is the durable string-keyed storage behind the preferences.
// store.PreferenceRepo implements it on SQLite.
type KV interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
