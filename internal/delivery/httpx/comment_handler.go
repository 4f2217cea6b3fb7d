package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

// CommentHandler serves the moderation side of comments. The public read and
// submit endpoints live on BlogHandler.
type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

func (h *CommentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentUseCase.ListAll(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) ListForPost(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentUseCase.ListForPostAdmin(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) ToggleApproval(w http.ResponseWriter, r *http.Request) {
	comment, err := h.commentUseCase.ToggleApproval(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req ReplyCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	adminName := ""
	if admin := adminFromContext(r.Context()); admin != nil {
		adminName = admin.Name
	}

	comment, err := h.commentUseCase.Reply(r.Context(), chi.URLParam(r, "id"), adminName, req.Content)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.commentUseCase.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
