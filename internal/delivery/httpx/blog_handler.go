package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

type BlogHandler struct {
	blogUseCase    *usecase.BlogUseCase
	commentUseCase *usecase.CommentUseCase
	logger         *logger.Logger
}

func NewBlogHandler(
	blogUseCase *usecase.BlogUseCase,
	commentUseCase *usecase.CommentUseCase,
	logger *logger.Logger,
) *BlogHandler {
	return &BlogHandler{
		blogUseCase:    blogUseCase,
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

func (h *BlogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogUseCase.ListPublic(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogUseCase.GetPublicBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// ListComments returns only approved comments for public readers.
func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentUseCase.ListApprovedForPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	comment, err := h.commentUseCase.AddComment(r.Context(), chi.URLParam(r, "id"), req.Name, req.Email, req.Content)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *BlogHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogUseCase.ListAdmin(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogUseCase.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	post, err := h.blogUseCase.CreateBlog(r.Context(), usecase.CreateBlogInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		CoverImageURL: req.CoverImageURL,
		Tags:          req.Tags,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	post, err := h.blogUseCase.UpdateBlog(r.Context(), chi.URLParam(r, "id"), usecase.UpdateBlogInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		CoverImageURL: req.CoverImageURL,
		Tags:          req.Tags,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogUseCase.PublishBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogUseCase.UnpublishBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}
