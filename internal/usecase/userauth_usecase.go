package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

const (
	bcryptCost   = 12
	codeValidity = 10 * time.Minute
)

// Mailer delivers verification and reset codes. Delivery is best-effort:
// a send failure never fails the auth flow that triggered it.
type Mailer interface {
	SendVerificationCode(to, code string) error
	SendPasswordResetCode(to, code string) error
}

type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	Phone       string
	DateOfBirth *time.Time
	Location    string
}

type UserAuthUseCase struct {
	userRepo  repositories.UserRepository
	mailer    Mailer
	jwtSecret string
	logger    *logger.Logger
}

func NewUserAuthUseCase(
	userRepo repositories.UserRepository,
	mailer Mailer,
	jwtSecret string,
	logger *logger.Logger,
) *UserAuthUseCase {
	return &UserAuthUseCase{
		userRepo:  userRepo,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates an unverified account and emails a six-digit code.
func (uc *UserAuthUseCase) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingRegisterFields
	}

	email := strings.ToLower(input.Email)

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, repositories.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expires := now.Add(codeValidity)
	user := &entities.User{
		FullName:                input.FullName,
		Email:                   email,
		PasswordHash:            string(passwordHash),
		Phone:                   input.Phone,
		DateOfBirth:             input.DateOfBirth,
		Location:                input.Location,
		IsVerified:              false,
		VerificationCode:        code,
		VerificationCodeExpires: &expires,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := uc.mailer.SendVerificationCode(user.Email, code); err != nil {
		uc.logger.Warn("Failed to send verification email", "email", user.Email, "error", err)
	}

	uc.logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (uc *UserAuthUseCase) VerifyEmail(ctx context.Context, email, code string) (*entities.User, string, error) {
	if email == "" || code == "" {
		return nil, "", ErrMissingVerifyFields
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", err
	}

	if user.IsVerified {
		return nil, "", ErrAlreadyVerified
	}

	if user.VerificationCode != code ||
		user.VerificationCodeExpires == nil ||
		user.VerificationCodeExpires.Before(time.Now()) {
		return nil, "", ErrInvalidCode
	}

	user.IsVerified = true
	user.VerificationCode = ""
	user.VerificationCodeExpires = nil

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to verify user: %w", err)
	}

	token, err := signToken(uc.jwtSecret, user.ID, RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	uc.logger.Info("User email verified", "user_id", user.ID)
	return user, token, nil
}

func (uc *UserAuthUseCase) ResendCode(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingVerifyFields
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	if err := uc.refreshVerificationCode(ctx, user); err != nil {
		return err
	}

	return nil
}

// Login rejects unverified accounts with ErrNotVerified after issuing a
// fresh verification code, mirroring what a buyer coming back weeks later
// needs.
func (uc *UserAuthUseCase) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsVerified {
		if err := uc.refreshVerificationCode(ctx, user); err != nil {
			uc.logger.Warn("Failed to refresh verification code", "user_id", user.ID, "error", err)
		}
		return user, "", ErrNotVerified
	}

	token, err := signToken(uc.jwtSecret, user.ID, RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// ForgotPassword never reveals whether the account exists.
func (uc *UserAuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingVerifyFields
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	expires := time.Now().Add(codeValidity)
	user.ResetCode = code
	user.ResetCodeExpires = &expires

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := uc.mailer.SendPasswordResetCode(user.Email, code); err != nil {
		uc.logger.Warn("Failed to send password reset email", "email", user.Email, "error", err)
	}

	return nil
}

func (uc *UserAuthUseCase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return ErrMissingVerifyFields
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}

	if user.ResetCode != code ||
		user.ResetCodeExpires == nil ||
		user.ResetCodeExpires.Before(time.Now()) {
		return ErrInvalidCode
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.ResetCode = ""
	user.ResetCodeExpires = nil

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	uc.logger.Info("User password reset", "user_id", user.ID)
	return nil
}

func (uc *UserAuthUseCase) GetMe(ctx context.Context, userID string) (*entities.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// AuthenticateUser resolves a bearer token carrying the user role.
func (uc *UserAuthUseCase) AuthenticateUser(ctx context.Context, tokenString string) (*entities.User, error) {
	claims, err := parseToken(uc.jwtSecret, tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Role != RoleUser {
		return nil, ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return user, nil
}

func (uc *UserAuthUseCase) refreshVerificationCode(ctx context.Context, user *entities.User) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	expires := time.Now().Add(codeValidity)
	user.VerificationCode = code
	user.VerificationCodeExpires = &expires

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := uc.mailer.SendVerificationCode(user.Email, code); err != nil {
		uc.logger.Warn("Failed to send verification email", "email", user.Email, "error", err)
	}

	return nil
}

// generateCode returns a uniformly random six-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

var (
	ErrMissingRegisterFields = errors.New("full name, email and password are required")
	ErrMissingVerifyFields   = errors.New("email and code are required")
	ErrAlreadyVerified       = errors.New("email is already verified")
	ErrInvalidCode           = errors.New("invalid or expired code")
	ErrNotVerified           = errors.New("email not verified")
)
