package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// UserRecord is a stored local account.
type UserRecord struct {
	ID           string
	Email        string
	Username     string
	Name         string
	PasswordHash string
	Major        string
	Year         string
	Bio          string
	Location     string
	Level        int
	XP           int
	Language     string
	Notify       NotifySettings
	CreatedAt    time.Time
}

// NotifySettings are the per-account notification switches.
type NotifySettings struct {
	EmailUpdates   bool
	StudyReminders bool
	QuizResults    bool
	Announcements  bool
}

// UserRepo manages local accounts.
type UserRepo interface {
	// Create inserts a new user. Returns ErrDuplicate if the email exists.
	Create(ctx context.Context, u UserRecord) error

	// ByEmail returns the user with the given email, or nil if none exists.
	ByEmail(ctx context.Context, email string) (*UserRecord, error)

	// ByID returns the user with the given ID, or nil if none exists.
	ByID(ctx context.Context, id string) (*UserRecord, error)

	// UpdateProfile overwrites the editable profile fields of u.ID.
	UpdateProfile(ctx context.Context, u UserRecord) error

	// UpdateSettings overwrites the language and notification switches of u.ID.
	UpdateSettings(ctx context.Context, u UserRecord) error

	// UpdatePasswordHash replaces the stored password hash of id.
	UpdatePasswordHash(ctx context.Context, id, hash string) error

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]UserRecord, error)
}

// ActivityKind identifies what kind of study activity was recorded.
type ActivityKind string

const (
	ActivityQuiz ActivityKind = "quiz"
	ActivityChat ActivityKind = "chat"
)

// ActivityRecord is one completed study session.
type ActivityRecord struct {
	ID          string
	Sequence    int64
	Kind        ActivityKind
	SubjectID   string
	Minutes     int
	Score       int // -1 when not scored (chat sessions)
	Topics      []string
	CompletedAt time.Time
}

// ActivityRepo records study sessions for analytics.
type ActivityRepo interface {
	// Record stores a new activity and returns it with ID and Sequence set.
	Record(ctx context.Context, a ActivityRecord) (ActivityRecord, error)

	// Recent returns the most recent n activities, newest first.
	Recent(ctx context.Context, n int) ([]ActivityRecord, error)

	// Between returns activities completed in [from, to), oldest first.
	Between(ctx context.Context, from, to time.Time) ([]ActivityRecord, error)

	// All returns every activity, oldest first.
	All(ctx context.Context) ([]ActivityRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
