package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/internal/users"
	pkgAuth "github.com/tirupurthreads/storefront-backend/pkg/auth"
	"github.com/tirupurthreads/storefront-backend/pkg/auth/session"
	"github.com/tirupurthreads/storefront-backend/pkg/config"
	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
	"github.com/tirupurthreads/storefront-backend/pkg/security"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "unit-test-secret",
	Issuer:            "storefront-test",
	ExpirationMinutes: 15,
}

var testPasswordConfig = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User

	createErr  error
	lastLogins int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
}

func (s *stubUserRepo) add(user *models.User) {
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
}

func (s *stubUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	s.add(user)
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.lastLogins++
	return nil
}

type stubSessionManager struct {
	rotateErr error
	revoked   []string
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	return "refresh-" + accessID, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	next := session.NewAccessID()
	return next, "refresh-" + next, nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func newAuthTestService(t *testing.T, repo *stubUserRepo, sessions *stubSessionManager) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig,
		PasswordConfig: testPasswordConfig,
	})
	require.NoError(t, err)
	return svc
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string) *models.User {
	t.Helper()

	hash, err := security.HashPassword(password, testPasswordConfig)
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Arun",
		LastName:     "Kumar",
		Role:         enums.UserRoleCustomer,
		IsActive:     true,
	}
	repo.add(user)
	return user
}

func TestRegisterIssuesTokens(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "  Arun@Example.COM ",
		Password:  "correct-horse",
		FirstName: "Arun",
		LastName:  "Kumar",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "arun@example.com", resp.User.Email)
	assert.Equal(t, enums.UserRoleCustomer, resp.User.Role)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig, resp.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, enums.UserRoleCustomer, claims.Role)
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})
	user := seedUser(t, repo, "arun@example.com", "correct-horse")

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "arun@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, 1, repo.lastLogins)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})
	seedUser(t, repo, "arun@example.com", "correct-horse")

	_, err := svc.Login(context.Background(), LoginRequest{Email: "arun@example.com", Password: "wrong"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
	assert.Equal(t, "invalid credentials", typed.Message())
}

func TestLoginUnknownEmailMatchesWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
	assert.Equal(t, "invalid credentials", typed.Message())
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})
	user := seedUser(t, repo, "arun@example.com", "correct-horse")
	user.IsActive = false

	_, err := svc.Login(context.Background(), LoginRequest{Email: "arun@example.com", Password: "correct-horse"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestRefreshRotatesSession(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})
	user := seedUser(t, repo, "arun@example.com", "correct-horse")

	login, err := svc.Login(context.Background(), LoginRequest{Email: "arun@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, login.RefreshToken, resp.RefreshToken)
	assert.Equal(t, user.ID.String(), resp.User.ID)
}

func TestRefreshRejectsInvalidRefreshToken(t *testing.T) {
	repo := newStubUserRepo()
	sessions := &stubSessionManager{rotateErr: session.ErrInvalidRefreshToken}
	svc := newAuthTestService(t, repo, sessions)
	seedUser(t, repo, "arun@example.com", "correct-horse")

	login, err := newAuthTestService(t, repo, &stubSessionManager{}).
		Login(context.Background(), LoginRequest{Email: "arun@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: "stolen",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthTestService(t, repo, &stubSessionManager{})

	_, err := svc.Refresh(context.Background(), RefreshRequest{AccessToken: "not-a-jwt", RefreshToken: "x"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := &stubSessionManager{}
	svc := newAuthTestService(t, repo, sessions)

	require.NoError(t, svc.Logout(context.Background(), "session-jti"))
	assert.Equal(t, []string{"session-jti"}, sessions.revoked)

	err := svc.Logout(context.Background(), "  ")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}
