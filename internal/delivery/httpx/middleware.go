package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

type ctxKey int

const (
	ctxKeyAdmin ctxKey = iota
	ctxKeyUser
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAdmin resolves the bearer token to an active admin account and
// stores it on the request context.
func RequireAdmin(auth *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "not authorized, no token")
				return
			}

			admin, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, usecase.ErrNotAdmin) {
					writeError(w, http.StatusForbidden, "forbidden", err.Error())
					return
				}
				writeError(w, http.StatusUnauthorized, "unauthorized", "not authorized, token failed")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser resolves the bearer token to a registered user account.
func RequireUser(auth *usecase.UserAuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "not authorized, no token")
				return
			}

			user, err := auth.AuthenticateUser(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "not authorized, token failed")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func adminFromContext(ctx context.Context) *entities.AdminUser {
	admin, _ := ctx.Value(ctxKeyAdmin).(*entities.AdminUser)
	return admin
}

func userFromContext(ctx context.Context) *entities.User {
	user, _ := ctx.Value(ctxKeyUser).(*entities.User)
	return user
}
