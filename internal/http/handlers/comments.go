package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
)

type commentResponse struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type commentListResponse struct {
	Items         []commentResponse `json:"items"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

func commentToResponse(c models.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		ArticleID: c.ArticleID.String(),
		UserID:    c.UserID.String(),
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	articleID, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comment, err := h.Service.AddComment(r.Context(), ident, articleID, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentToResponse(*comment))
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	opts, err := listOptions(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, next, err := h.Service.CommentsByArticle(r.Context(), articleID, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := commentListResponse{
		Items:         make([]commentResponse, 0, len(items)),
		NextPageToken: next,
	}
	for _, c := range items {
		out.Items = append(out.Items, commentToResponse(c))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.DeleteComment(r.Context(), ident, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
