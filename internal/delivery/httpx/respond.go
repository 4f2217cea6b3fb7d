package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

// respondError maps use case and repository errors onto HTTP statuses in one
// place so handlers stay thin. Unknown errors are logged and hidden behind a
// generic 500.
func respondError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomer),
		errors.Is(err, usecase.ErrEmptyItems),
		errors.Is(err, usecase.ErrInvalidItem),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidProductData),
		errors.Is(err, usecase.ErrTooManyImages),
		errors.Is(err, usecase.ErrInvalidBlogData),
		errors.Is(err, usecase.ErrInvalidCommentData),
		errors.Is(err, usecase.ErrInvalidCategoryData),
		errors.Is(err, usecase.ErrMissingRegisterFields),
		errors.Is(err, usecase.ErrMissingVerifyFields),
		errors.Is(err, usecase.ErrMissingReference):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())

	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrInsufficientStock),
		errors.Is(err, usecase.ErrAlreadyVerified),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrPaymentDeclined):
		writeError(w, http.StatusBadRequest, "request_rejected", err.Error())

	case errors.Is(err, repositories.ErrOrderNotFound),
		errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrBlogNotFound),
		errors.Is(err, repositories.ErrCommentNotFound),
		errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, repositories.ErrSlugTaken),
		errors.Is(err, repositories.ErrEmailTaken),
		errors.Is(err, repositories.ErrOrderAlreadyExists):
		writeError(w, http.StatusConflict, "conflict", err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())

	case errors.Is(err, usecase.ErrNotAdmin):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())

	case errors.Is(err, usecase.ErrNotVerified):
		writeError(w, http.StatusForbidden, "email_not_verified", err.Error())

	case errors.Is(err, usecase.ErrPaymentInit),
		errors.Is(err, usecase.ErrPaymentVerify):
		writeError(w, http.StatusBadGateway, "payment_gateway_error", err.Error())

	default:
		log.Error("Unhandled error in HTTP handler", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
