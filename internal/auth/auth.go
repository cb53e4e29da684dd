// Package auth manages local student accounts and the signed-in user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/tutordesk/internal/store"
)

// AdminEmail is the account that gets admin rights.
const AdminEmail = "admin@example.com"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrNotAuthenticated   = errors.New("not signed in")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// Notifications are the account's notification switches.
type Notifications = store.NotifySettings

// Language is an interface language the account can pick.
type Language struct {
	Code string
	Name string
}

// Languages lists the selectable languages; the first is the default.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
}

// LanguageName returns the display name of code, or code itself.
func LanguageName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// User is the signed-in student.
type User struct {
	ID       string
	Name     string
	Email    string
	Username string
	Major    string
	Year     string
	Bio      string
	Location string
	JoinedAt time.Time
	Level    int
	XP       int

	Language      string
	Notifications Notifications
}

// IsAdmin reports whether the user has admin rights.
func (u *User) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.Email, AdminEmail)
}

// Provider exposes the current authentication status.
type Provider interface {
	User() *User
	IsAuthenticated() bool
	Logout()
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Name     string `validate:"notblank,max=80"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ProfileUpdate holds the editable profile fields.
type ProfileUpdate struct {
	Name     string `validate:"notblank,max=80"`
	Major    string `validate:"max=80"`
	Year     string `validate:"max=20"`
	Bio      string `validate:"max=500"`
	Location string `validate:"max=80"`
}

// Settings are the account preferences edited on the profile screen.
type Settings struct {
	Language      string `validate:"oneof=en es fr de"`
	Notifications Notifications
}

// PasswordChange is the change-password form.
type PasswordChange struct {
	Current string `form:"current" validate:"required"`
	New     string `form:"new" validate:"required,min=6,nefield=Current"`
}

// Service implements Provider against the user table.
type Service struct {
	users store.UserRepo
	log   *zap.Logger
	cost  int
	now   func() time.Time

	mu      sync.RWMutex
	current *User
}

// Option configures a Service.
type Option func(*Service)

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service backed by users.
func NewService(users store.UserRepo, opts ...Option) *Service {
	s := &Service{
		users: users,
		log:   zap.NewNop(),
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.Named("auth")
	return s
}

var _ Provider = (*Service)(nil)

// User returns a copy of the signed-in user, or nil.
func (s *Service) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Logout clears the signed-in user.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.log.Info("logout", zap.String("user_id", s.current.ID))
	}
	s.current = nil
}

// Login verifies the credentials and signs the user in.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	rec, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	u := fromRecord(rec)
	s.setCurrent(u)
	s.log.Info("login", zap.String("user_id", u.ID))
	return u, nil
}

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	rec, err := s.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	u := fromRecord(rec)
	s.setCurrent(u)
	return u, nil
}

// Create validates in and stores a new account without signing it in.
func (s *Service) Create(ctx context.Context, in RegisterInput) (*store.UserRecord, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	rec := store.UserRecord{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Username:     usernameFor(in.Email),
		Name:         in.Name,
		PasswordHash: string(hash),
		Level:        1,
		Language:     Languages[0].Code,
		Notify:       Notifications{EmailUpdates: true, StudyReminders: true, QuizResults: true},
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	s.log.Info("account created", zap.String("user_id", rec.ID))
	return &rec, nil
}

// UpdateProfile saves the editable fields of the signed-in user.
func (s *Service) UpdateProfile(ctx context.Context, p ProfileUpdate) (*User, error) {
	cur := s.User()
	if cur == nil {
		return nil, ErrNotAuthenticated
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Major = strings.TrimSpace(p.Major)
	p.Year = strings.TrimSpace(p.Year)
	p.Bio = strings.TrimSpace(p.Bio)
	p.Location = strings.TrimSpace(p.Location)
	if err := check(p); err != nil {
		return nil, err
	}

	rec := store.UserRecord{ID: cur.ID, Name: p.Name, Major: p.Major, Year: p.Year, Bio: p.Bio, Location: p.Location}
	if err := s.users.UpdateProfile(ctx, rec); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	cur.Name, cur.Major, cur.Year = rec.Name, rec.Major, rec.Year
	cur.Bio, cur.Location = rec.Bio, rec.Location
	if !s.replaceCurrent(cur) {
		return nil, ErrNotAuthenticated
	}
	return cur, nil
}

// UpdateSettings saves the language and notification switches of the
// signed-in user.
func (s *Service) UpdateSettings(ctx context.Context, st Settings) (*User, error) {
	cur := s.User()
	if cur == nil {
		return nil, ErrNotAuthenticated
	}
	if err := check(st); err != nil {
		return nil, err
	}

	rec := store.UserRecord{ID: cur.ID, Language: st.Language, Notify: st.Notifications}
	if err := s.users.UpdateSettings(ctx, rec); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	cur.Language, cur.Notifications = st.Language, st.Notifications
	if !s.replaceCurrent(cur) {
		return nil, ErrNotAuthenticated
	}
	return cur, nil
}

// ChangePassword replaces the signed-in user's password after checking the
// current one.
func (s *Service) ChangePassword(ctx context.Context, pc PasswordChange) error {
	cur := s.User()
	if cur == nil {
		return ErrNotAuthenticated
	}
	if err := check(pc); err != nil {
		return err
	}

	rec, err := s.users.ByID(ctx, cur.ID)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if rec == nil {
		return ErrNotAuthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(pc.Current)); err != nil {
		s.log.Info("password change rejected", zap.String("user_id", cur.ID))
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pc.New), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, cur.ID, string(hash)); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	s.log.Info("password changed", zap.String("user_id", cur.ID))
	return nil
}

func (s *Service) setCurrent(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
}

// replaceCurrent swaps in u only while the same user is still signed in.
func (s *Service) replaceCurrent(u *User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != u.ID {
		return false
	}
	s.current = u
	return true
}

func fromRecord(r *store.UserRecord) *User {
	return &User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Username: r.Username,
		Major:    r.Major,
		Year:     r.Year,
		Bio:      r.Bio,
		Location: r.Location,
		JoinedAt: r.CreatedAt,
		Level:    r.Level,
		XP:       r.XP,

		Language:      r.Language,
		Notifications: r.Notify,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func usernameFor(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
