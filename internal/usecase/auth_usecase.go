package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

const (
	tokenTTL  = 30 * 24 * time.Hour
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func signToken(secret, subjectID, role string) (string, error) {
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type AuthUseCase struct {
	adminRepo repositories.AdminUserRepository
	jwtSecret string
	logger    *logger.Logger
}

func NewAuthUseCase(adminRepo repositories.AdminUserRepository, jwtSecret string, logger *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Login checks admin credentials and issues a bearer token. Lookup and
// compare failures collapse into one error so the response does not reveal
// which part was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entities.AdminUser, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := signToken(uc.jwtSecret, admin.ID, RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	uc.logger.Info("Admin logged in", "admin_id", admin.ID)
	return admin, token, nil
}

// Authenticate resolves a bearer token to an active admin account.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*entities.AdminUser, error) {
	claims, err := parseToken(uc.jwtSecret, tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}

	admin, err := uc.adminRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !admin.IsActive || admin.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}

	return admin, nil
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("not authorized, token failed")
	ErrNotAdmin           = errors.New("not authorized as an admin")
)
