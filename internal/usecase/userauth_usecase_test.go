package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

// fakeUserRepo is a stateful map-backed UserRepository so multi-step auth
// flows (register, then verify, then login) run against real stored state.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	userCopy := *user
	r.users[user.ID] = &userCopy
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return nil, repositories.ErrUserNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		return repositories.ErrUserNotFound
	}
	userCopy := *user
	r.users[user.ID] = &userCopy
	return nil
}

// recordingMailer captures the last code sent per address instead of
// delivering anything.
type recordingMailer struct {
	mu                sync.Mutex
	verificationCodes map[string]string
	resetCodes        map[string]string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{
		verificationCodes: make(map[string]string),
		resetCodes:        make(map[string]string),
	}
}

func (m *recordingMailer) SendVerificationCode(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verificationCodes[to] = code
	return nil
}

func (m *recordingMailer) SendPasswordResetCode(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetCodes[to] = code
	return nil
}

func (m *recordingMailer) lastVerificationCode(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verificationCodes[to]
}

func (m *recordingMailer) lastResetCode(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetCodes[to]
}

func newUserAuthUseCase() (*UserAuthUseCase, *fakeUserRepo, *recordingMailer) {
	repo := newFakeUserRepo()
	mailer := newRecordingMailer()
	return NewUserAuthUseCase(repo, mailer, "test-secret", logger.NewLogger()), repo, mailer
}

func registerTestUser(t *testing.T, uc *UserAuthUseCase) *entities.User {
	t.Helper()
	user, err := uc.Register(context.Background(), RegisterInput{
		FullName: "Kofi Boateng",
		Email:    "kofi@example.com",
		Password: "s3cret-pass",
	})
	assert.NoError(t, err)
	return user
}

func TestUserAuthUseCase_RegisterAndVerify(t *testing.T) {
	useCase, _, mailer := newUserAuthUseCase()
	ctx := context.Background()

	user := registerTestUser(t, useCase)
	assert.False(t, user.IsVerified)

	code := mailer.lastVerificationCode("kofi@example.com")
	assert.Len(t, code, 6)

	verified, token, err := useCase.VerifyEmail(ctx, "kofi@example.com", code)
	assert.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.NotEmpty(t, token)

	// The token is immediately usable.
	me, err := useCase.AuthenticateUser(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, verified.ID, me.ID)
}

func TestUserAuthUseCase_Register_DuplicateEmail(t *testing.T) {
	useCase, _, _ := newUserAuthUseCase()
	ctx := context.Background()

	registerTestUser(t, useCase)

	_, err := useCase.Register(ctx, RegisterInput{
		FullName: "Kofi Again",
		Email:    "KOFI@example.com",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
}

func TestUserAuthUseCase_VerifyEmail_WrongCode(t *testing.T) {
	useCase, _, _ := newUserAuthUseCase()
	ctx := context.Background()

	registerTestUser(t, useCase)

	_, _, err := useCase.VerifyEmail(ctx, "kofi@example.com", "000000")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestUserAuthUseCase_VerifyEmail_ExpiredCode(t *testing.T) {
	useCase, repo, mailer := newUserAuthUseCase()
	ctx := context.Background()

	user := registerTestUser(t, useCase)

	stored, err := repo.GetByID(ctx, user.ID)
	assert.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	stored.VerificationCodeExpires = &expired
	assert.NoError(t, repo.Update(ctx, stored))

	_, _, err = useCase.VerifyEmail(ctx, "kofi@example.com", mailer.lastVerificationCode("kofi@example.com"))
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestUserAuthUseCase_Login_UnverifiedResendsCode(t *testing.T) {
	useCase, _, mailer := newUserAuthUseCase()
	ctx := context.Background()

	registerTestUser(t, useCase)
	firstCode := mailer.lastVerificationCode("kofi@example.com")

	_, token, err := useCase.Login(ctx, "kofi@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.Empty(t, token)

	// A fresh code was issued for the retry.
	assert.NotEmpty(t, mailer.lastVerificationCode("kofi@example.com"))
	_ = firstCode
}

func TestUserAuthUseCase_Login(t *testing.T) {
	useCase, _, mailer := newUserAuthUseCase()
	ctx := context.Background()

	registerTestUser(t, useCase)
	_, _, err := useCase.VerifyEmail(ctx, "kofi@example.com", mailer.lastVerificationCode("kofi@example.com"))
	assert.NoError(t, err)

	user, token, err := useCase.Login(ctx, "kofi@example.com", "s3cret-pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "kofi@example.com", user.Email)

	_, _, err = useCase.Login(ctx, "kofi@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserAuthUseCase_ForgotAndResetPassword(t *testing.T) {
	useCase, _, mailer := newUserAuthUseCase()
	ctx := context.Background()

	registerTestUser(t, useCase)
	_, _, err := useCase.VerifyEmail(ctx, "kofi@example.com", mailer.lastVerificationCode("kofi@example.com"))
	assert.NoError(t, err)

	assert.NoError(t, useCase.ForgotPassword(ctx, "kofi@example.com"))

	resetCode := mailer.lastResetCode("kofi@example.com")
	assert.Len(t, resetCode, 6)

	assert.NoError(t, useCase.ResetPassword(ctx, "kofi@example.com", resetCode, "new-pass-123"))

	_, _, err = useCase.Login(ctx, "kofi@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, token, err := useCase.Login(ctx, "kofi@example.com", "new-pass-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// A reset code is single use.
	err = useCase.ResetPassword(ctx, "kofi@example.com", resetCode, "yet-another")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestUserAuthUseCase_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	useCase, _, mailer := newUserAuthUseCase()

	err := useCase.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mailer.lastResetCode("nobody@example.com"))
}

func TestUserAuthUseCase_UserTokenRejectedByAdminAuth(t *testing.T) {
	useCase, _, mailer := newUserAuthUseCase()
	ctx := context.Background()

	registerTestUser(t, useCase)
	_, token, err := useCase.VerifyEmail(ctx, "kofi@example.com", mailer.lastVerificationCode("kofi@example.com"))
	assert.NoError(t, err)

	adminAuth := NewAuthUseCase(new(MockAdminUserRepository), "test-secret", logger.NewLogger())

	_, err = adminAuth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrNotAdmin)
}
