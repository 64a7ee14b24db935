package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"costtrack/internal/adapters/persistence/models"
	"costtrack/internal/config"
	"costtrack/internal/core/throttle"

	"gorm.io/gorm"
)

// fakeOracle accepts one fixed pair and counts how often it is asked.
type fakeOracle struct {
	username string
	password string
	calls    int
}

func (o *fakeOracle) Verify(username, plaintext string) bool {
	o.calls++
	return username == o.username && plaintext == o.password
}

// fakeUserRepo keeps users in a map keyed by username.
type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*models.User, int64, error) {
	var out []*models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

// fakeTokenRepo records created tokens.
type fakeTokenRepo struct {
	created []*models.RefreshToken
	revoked int
}

func (r *fakeTokenRepo) Create(_ context.Context, t *models.RefreshToken) error {
	t.ID = uint(len(r.created) + 1)
	r.created = append(r.created, t)
	return nil
}

func (r *fakeTokenRepo) GetByTokenHash(_ context.Context, hash string) (*models.RefreshToken, error) {
	for _, t := range r.created {
		if t.TokenHash == hash {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTokenRepo) Revoke(_ context.Context, id uint) error {
	now := time.Now()
	for _, t := range r.created {
		if t.ID == id {
			t.RevokedAt = &now
			r.revoked++
		}
	}
	return nil
}

func (r *fakeTokenRepo) RevokeByTokenHash(_ context.Context, hash string) error {
	now := time.Now()
	for _, t := range r.created {
		if t.TokenHash == hash {
			t.RevokedAt = &now
			r.revoked++
		}
	}
	return nil
}

func (r *fakeTokenRepo) RevokeAllByUserID(_ context.Context, _ uint) error { return nil }

func (r *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) { return 0, nil }

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Auth: config.AuthConfig{
			AdminUsername: "admin",
			AdminPassword: "admin123",
			AdminEmail:    "admin@example.com",
		},
	}
}

func newTestAuthService() (*AuthService, *fakeOracle, *fakeUserRepo, *fakeTokenRepo) {
	oracle := &fakeOracle{username: "admin", password: "admin123"}
	users := newFakeUserRepo()
	tokens := &fakeTokenRepo{}
	svc := NewAuthService(users, tokens, oracle, testConfig())
	return svc, oracle, users, tokens
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLoginSuccessProvisionsUserAndIssuesTokens(t *testing.T) {
	svc, _, users, tokens := newTestAuthService()

	resp, state, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"}, throttle.State{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens on success")
	}
	if state.FailureCount != 0 || !state.WindowStart.IsZero() {
		t.Fatalf("state not reset on success: %+v", state)
	}

	user, err := users.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatal("user row not provisioned on first login")
	}
	if user.LastLogin == nil || !user.LastLogin.Equal(now) {
		t.Fatalf("last login not stamped: %v", user.LastLogin)
	}
	if len(tokens.created) != 1 {
		t.Fatalf("expected 1 stored refresh token, got %d", len(tokens.created))
	}
}

func TestLoginFailureIncrementsThrottle(t *testing.T) {
	svc, oracle, _, _ := newTestAuthService()

	_, state, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "wrong"}, throttle.State{}, now)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if state.FailureCount != 1 {
		t.Fatalf("failure count = %d", state.FailureCount)
	}
	if !state.WindowStart.Equal(now) {
		t.Fatalf("window start = %v", state.WindowStart)
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle calls = %d", oracle.calls)
	}
}

func TestLoginLockedSkipsOracle(t *testing.T) {
	svc, oracle, _, _ := newTestAuthService()

	state := throttle.State{FailureCount: throttle.MaxFailures, WindowStart: now}

	_, next, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"}, state, now.Add(time.Minute))
	if !errors.Is(err, ErrLoginLocked) {
		t.Fatalf("expected ErrLoginLocked, got %v", err)
	}
	if oracle.calls != 0 {
		t.Fatal("locked attempt must never reach the oracle")
	}
	if next.FailureCount != throttle.MaxFailures {
		t.Fatalf("rejected attempt mutated the counter: %d", next.FailureCount)
	}
}

func TestLoginLockExpiresAfterWindow(t *testing.T) {
	svc, oracle, _, _ := newTestAuthService()

	state := throttle.State{FailureCount: throttle.MaxFailures, WindowStart: now}

	resp, next, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"}, state, now.Add(throttle.Window))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected auth response after window expiry")
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle calls = %d", oracle.calls)
	}
	if next.FailureCount != 0 {
		t.Fatalf("state not reset: %+v", next)
	}
}

func TestFiveFailedLoginsLockTheSession(t *testing.T) {
	svc, oracle, _, _ := newTestAuthService()

	var state throttle.State
	var err error
	for i := 0; i < throttle.MaxFailures; i++ {
		_, state, err = svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "wrong"}, state, now)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// The sixth attempt is rejected before the credential check.
	before := oracle.calls
	_, _, err = svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"}, state, now.Add(time.Minute))
	if !errors.Is(err, ErrLoginLocked) {
		t.Fatalf("expected ErrLoginLocked, got %v", err)
	}
	if oracle.calls != before {
		t.Fatal("locked attempt reached the oracle")
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, _, tokens := newTestAuthService()

	resp, _, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"}, throttle.State{}, now)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.RefreshToken == resp.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}
	if tokens.revoked != 1 {
		t.Fatalf("old token not revoked, revoked = %d", tokens.revoked)
	}

	// The rotated-out token is rejected on reuse.
	if _, err := svc.RefreshToken(context.Background(), resp.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked on reuse, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _, tokens := newTestAuthService()

	resp, _, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"}, throttle.State{}, now)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if tokens.revoked != 1 {
		t.Fatalf("refresh token not revoked on logout")
	}
}
