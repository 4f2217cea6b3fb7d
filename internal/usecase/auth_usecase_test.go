package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) GetByID(ctx context.Context, adminID string) (*entities.AdminUser, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func testAdmin(t *testing.T, password string) *entities.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &entities.AdminUser{
		ID:           "admin1",
		Name:         "Store Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		IsActive:     true,
	}
}

func TestAuthUseCase_LoginAndAuthenticate(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	useCase := NewAuthUseCase(mockRepo, "test-secret", logger.NewLogger())
	ctx := context.Background()

	admin := testAdmin(t, "admin-pass")
	mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(admin, nil)
	mockRepo.On("GetByID", mock.Anything, "admin1").Return(admin, nil)

	loggedIn, token, err := useCase.Login(ctx, "admin@example.com", "admin-pass")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin1", loggedIn.ID)

	authed, err := useCase.Authenticate(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "admin1", authed.ID)

	mockRepo.AssertExpectations(t)
}

func TestAuthUseCase_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	useCase := NewAuthUseCase(mockRepo, "test-secret", logger.NewLogger())

	mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(testAdmin(t, "admin-pass"), nil)

	_, _, err := useCase.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUseCase_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	useCase := NewAuthUseCase(mockRepo, "test-secret", logger.NewLogger())

	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repositories.ErrAdminUserNotFound)

	_, _, err := useCase.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUseCase_Authenticate_GarbageToken(t *testing.T) {
	useCase := NewAuthUseCase(new(MockAdminUserRepository), "test-secret", logger.NewLogger())

	_, err := useCase.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUseCase_Authenticate_WrongSecret(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	admin := testAdmin(t, "admin-pass")
	mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

	issuer := NewAuthUseCase(mockRepo, "secret-a", logger.NewLogger())
	_, token, err := issuer.Login(context.Background(), "admin@example.com", "admin-pass")
	assert.NoError(t, err)

	verifier := NewAuthUseCase(new(MockAdminUserRepository), "secret-b", logger.NewLogger())
	_, err = verifier.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUseCase_Authenticate_DeactivatedAdmin(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	useCase := NewAuthUseCase(mockRepo, "test-secret", logger.NewLogger())
	ctx := context.Background()

	admin := testAdmin(t, "admin-pass")
	mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

	_, token, err := useCase.Login(ctx, "admin@example.com", "admin-pass")
	assert.NoError(t, err)

	deactivated := *admin
	deactivated.IsActive = false
	mockRepo.On("GetByID", mock.Anything, "admin1").Return(&deactivated, nil)

	_, err = useCase.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrNotAdmin)
}
