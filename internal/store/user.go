package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

const usersTable = "users"

var userColumns = []string{
	"id", "email", "username", "name", "password_hash",
	"major", "year", "bio", "location", "level", "xp", "language",
	"notify_email", "notify_reminders", "notify_quiz_results", "notify_announcements",
	"created_at",
}

// userRepo implements UserRepo.
type userRepo struct {
	drv *entsql.Driver
}

func (r *userRepo) Create(ctx context.Context, u UserRecord) error {
	if u.Language == "" {
		u.Language = "en"
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Username, u.Name, u.PasswordHash,
			u.Major, u.Year, u.Bio, u.Location, u.Level, u.XP, u.Language,
			u.Notify.EmailUpdates, u.Notify.StudyReminders, u.Notify.QuizResults, u.Notify.Announcements,
			u.CreatedAt.UnixMilli()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %q: %w", u.Email, ErrDuplicate)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*UserRecord, error) {
	return r.one(ctx, entsql.EQ("email", email))
}

func (r *userRepo) ByID(ctx context.Context, id string) (*UserRecord, error) {
	return r.one(ctx, entsql.EQ("id", id))
}

func (r *userRepo) UpdateProfile(ctx context.Context, u UserRecord) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Update(usersTable).
		Set("name", u.Name).
		Set("major", u.Major).
		Set("year", u.Year).
		Set("bio", u.Bio).
		Set("location", u.Location).
		Where(entsql.EQ("id", u.ID)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("update user %s: %w", u.ID, err)
	}
	return nil
}

func (r *userRepo) UpdateSettings(ctx context.Context, u UserRecord) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Update(usersTable).
		Set("language", u.Language).
		Set("notify_email", u.Notify.EmailUpdates).
		Set("notify_reminders", u.Notify.StudyReminders).
		Set("notify_quiz_results", u.Notify.QuizResults).
		Set("notify_announcements", u.Notify.Announcements).
		Where(entsql.EQ("id", u.ID)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("update settings of user %s: %w", u.ID, err)
	}
	return nil
}

func (r *userRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Update(usersTable).
		Set("password_hash", hash).
		Where(entsql.EQ("id", id)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("update password of user %s: %w", id, err)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]UserRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(userColumns...).
		From(entsql.Table(usersTable)).
		OrderBy("created_at").
		Query()
	return r.query(ctx, query, args)
}

func (r *userRepo) one(ctx context.Context, pred *entsql.Predicate) (*UserRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(userColumns...).
		From(entsql.Table(usersTable)).
		Where(pred).
		Limit(1).
		Query()

	users, err := r.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepo) query(ctx context.Context, query string, args []any) ([]UserRecord, error) {
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []UserRecord
	for rows.Next() {
		var u UserRecord
		var created int64
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash,
			&u.Major, &u.Year, &u.Bio, &u.Location, &u.Level, &u.XP, &u.Language,
			&u.Notify.EmailUpdates, &u.Notify.StudyReminders, &u.Notify.QuizResults, &u.Notify.Announcements,
			&created); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, u)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
