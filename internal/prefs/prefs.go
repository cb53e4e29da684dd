// Package prefs decodes, validates and persists the two durable user
// preferences: the dark-mode flag and the list of bookmarked subject ids.
package prefs

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Storage keys. Values are JSON encoded.
const (
	KeyDarkMode  = "darkMode"
	KeyBookmarks = "bookmarkedSubjects"
)

// Preferences is the decoded, validated preference set.
type Preferences struct {
	DarkMode  bool
	Bookmarks []string
}

// Defaults returns the preferences used when nothing valid is stored.
func Defaults() Preferences {
	return Preferences{DarkMode: false, Bookmarks: []string{}}
}

// DecodeError describes a stored value that could not be used.
type DecodeError struct {
	Key string
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("preference %q: %v (raw %q)", e.Key, e.Err, truncate(e.Raw, 40))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode builds Preferences from raw stored values. Absent keys take their
// defaults silently; malformed values take their defaults and are reported in
// the returned slice. Decode never fails.
func Decode(raw map[string]string) (Preferences, []error) {
	p := Defaults()
	var problems []error

	if v, ok := raw[KeyDarkMode]; ok {
		dark, err := DecodeDarkMode(v)
		if err != nil {
			problems = append(problems, &DecodeError{Key: KeyDarkMode, Raw: v, Err: err})
		} else {
			p.DarkMode = dark
		}
	}

	if v, ok := raw[KeyBookmarks]; ok {
		ids, err := DecodeBookmarks(v)
		if err != nil {
			problems = append(problems, &DecodeError{Key: KeyBookmarks, Raw: v, Err: err})
		} else {
			p.Bookmarks = ids
		}
	}

	return p, problems
}

// DecodeDarkMode parses a JSON boolean.
func DecodeDarkMode(raw string) (bool, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}

// DecodeBookmarks parses a JSON array of strings. Empty and duplicate ids are
// dropped; the first occurrence wins.
func DecodeBookmarks(raw string) ([]string, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", v)
	}

	ids := make([]string, 0, len(arr))
	seen := make(map[string]bool, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
		}
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		ids = append(ids, s)
	}
	return ids, nil
}

// EncodeDarkMode returns the stored form of the dark-mode flag.
func EncodeDarkMode(dark bool) string {
	if dark {
		return "true"
	}
	return "false"
}

// EncodeBookmarks returns the stored form of the bookmark list.
func EncodeBookmarks(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
