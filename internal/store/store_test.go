package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"preferences", "users", "activities", "llm_request_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestPreferenceSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all (empty): %v", err)
	}
	if _, ok := all["darkMode"]; ok {
		t.Fatal("expected no value before first write")
	}

	if err := repo.Set(ctx, "darkMode", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "darkMode", "false"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	all, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if v, ok := all["darkMode"]; !ok || v != "false" {
		t.Errorf("darkMode = %q (ok=%v), want \"false\"", v, ok)
	}
}

func TestPreferenceAllAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, "darkMode", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "bookmarkedSubjects", `["math"]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all["bookmarkedSubjects"] != `["math"]` {
		t.Errorf("unexpected preferences: %v", all)
	}

	if err := repo.Delete(ctx, "darkMode", "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if _, ok := all["darkMode"]; ok {
		t.Error("darkMode should have been deleted")
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u := UserRecord{
		ID:           "u1",
		Email:        "alex@example.com",
		Username:     "alex",
		Name:         "Alex Johnson",
		PasswordHash: "hash",
		Level:        8,
		XP:           2340,
		CreatedAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ByEmail(ctx, "alex@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got == nil {
		t.Fatal("expected user")
	}
	if got.Name != "Alex Johnson" || got.Level != 8 || !got.CreatedAt.Equal(u.CreatedAt) {
		t.Errorf("unexpected user: %+v", got)
	}

	missing, err := repo.ByID(ctx, "nope")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}

	err = repo.Create(ctx, UserRecord{ID: "u2", Email: "alex@example.com", CreatedAt: time.Now()})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, UserRecord{ID: "u1", Email: "a@b.c", Name: "A", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.UpdateProfile(ctx, UserRecord{ID: "u1", Name: "Ada", Bio: "hi", Major: "CS"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.ByID(ctx, "u1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.Name != "Ada" || got.Bio != "hi" || got.Major != "CS" || got.Email != "a@b.c" {
		t.Errorf("unexpected user after update: %+v", got)
	}
}

func TestUserSettingsAndPassword(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, UserRecord{ID: "u1", Email: "a@b.c", Name: "A", PasswordHash: "old",
		Notify: NotifySettings{EmailUpdates: true}, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ByID(ctx, "u1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.Language != "en" || !got.Notify.EmailUpdates || got.Notify.StudyReminders {
		t.Errorf("unexpected defaults: %+v", got)
	}

	err = repo.UpdateSettings(ctx, UserRecord{ID: "u1", Language: "fr",
		Notify: NotifySettings{StudyReminders: true, Announcements: true}})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if err := repo.UpdatePasswordHash(ctx, "u1", "new"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	got, err = repo.ByID(ctx, "u1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	want := NotifySettings{StudyReminders: true, Announcements: true}
	if got.Language != "fr" || got.Notify != want || got.PasswordHash != "new" || got.Name != "A" {
		t.Errorf("unexpected user after update: %+v", got)
	}
}

func TestActivityRecordAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActivityRepo()
	ctx := context.Background()

	base := time.Date(2024, 12, 15, 9, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		_, err := repo.Record(ctx, ActivityRecord{
			Kind:        ActivityQuiz,
			SubjectID:   "math",
			Minutes:     10 * (i + 1),
			Score:       80,
			Topics:      []string{"Algebra"},
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent len = %d, want 2", len(recent))
	}
	if recent[0].Minutes != 30 {
		t.Errorf("newest minutes = %d, want 30", recent[0].Minutes)
	}
	if recent[0].ID == "" || recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("expected IDs and descending sequences: %+v", recent)
	}
	if len(recent[0].Topics) != 1 || recent[0].Topics[0] != "Algebra" {
		t.Errorf("topics = %v", recent[0].Topics)
	}

	between, err := repo.Between(ctx, base, base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(between) != 2 {
		t.Errorf("between len = %d, want 2", len(between))
	}
}

func TestLLMEventsAppendAndAggregate(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "tutor-chat", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "tutor-chat", InputTokens: 20, OutputTokens: 10, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "other", Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(list) != 2 || list[0].Purpose != "other" {
		t.Fatalf("unexpected events: %+v", list)
	}

	got, err := repo.GetLLMEvent(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ErrorMessage != "boom" || got.Success {
		t.Errorf("unexpected event: %+v", got)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	var chat *LLMUsageStats
	for i := range byPurpose {
		if byPurpose[i].Purpose == "tutor-chat" {
			chat = &byPurpose[i]
		}
	}
	if chat == nil || chat.Calls != 2 || chat.InputTokens != 30 || chat.AvgLatencyMs != 200 {
		t.Errorf("unexpected tutor-chat usage: %+v", chat)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "m1" || byModel[0].OutputTokens != 15 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}
