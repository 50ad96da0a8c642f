package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

type articleResponse struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Category       string    `json:"category"`
	ImageKey       string    `json:"image_key,omitempty"`
	Status         string    `json:"status"`
	EditorComments string    `json:"editor_comments,omitempty"`
	ReviewedBy     string    `json:"reviewed_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type articleViewResponse struct {
	articleResponse
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	// Реакция текущего пользователя: like, dislike или пусто.
	MyReaction string `json:"my_reaction,omitempty"`
}

func viewerReaction(i *models.Interaction) string {
	switch {
	case i == nil:
		return ""
	case i.Liked:
		return string(models.InteractionLike)
	case i.Disliked:
		return string(models.InteractionDislike)
	default:
		return ""
	}
}

type articleListResponse struct {
	Items         []articleResponse `json:"items"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

func articleToResponse(a models.Article) articleResponse {
	out := articleResponse{
		ID:             a.ID.String(),
		AuthorID:       a.AuthorID.String(),
		Title:          a.Title,
		Content:        a.Content,
		Category:       a.Category,
		ImageKey:       a.ImageKey,
		Status:         string(a.Status),
		EditorComments: a.EditorComments,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.ReviewedBy.Valid {
		out.ReviewedBy = a.ReviewedBy.UUID.String()
	}
	return out
}

func articlesToList(items []models.Article, next string) articleListResponse {
	out := articleListResponse{
		Items:         make([]articleResponse, 0, len(items)),
		NextPageToken: next,
	}
	for _, a := range items {
		out.Items = append(out.Items, articleToResponse(a))
	}
	return out
}

type createArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	// Submit — сразу отправить на рецензию, минуя черновик.
	Submit bool `json:"submit,omitempty"`
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in createArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	article, err := h.Service.CreateArticle(r.Context(), ident, service.CreateArticleInput{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Submit:   in.Submit,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, articleToResponse(*article))
}

func (h *Handlers) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// Анонимному читателю доступны только опубликованные статьи,
	// видимость решает сервисный слой.
	ident, _ := identity(r)

	view, err := h.Service.ArticleByID(r.Context(), ident, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleViewResponse{
		articleResponse: articleToResponse(view.Article),
		Likes:           view.Likes,
		Dislikes:        view.Dislikes,
		MyReaction:      viewerReaction(view.Viewer),
	})
}

type updateArticleRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	id, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	article, err := h.Service.UpdateArticle(r.Context(), ident, id, storage.ArticleUpdate{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleToResponse(*article))
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	id, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteArticle(r.Context(), ident, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SubmitArticle(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	id, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	article, err := h.Service.SubmitArticle(r.Context(), ident, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleToResponse(*article))
}

type reviewArticleRequest struct {
	Approve  bool   `json:"approve"`
	Comments string `json:"comments,omitempty"`
}

func (h *Handlers) ReviewArticle(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	id, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in reviewArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	article, err := h.Service.ReviewArticle(r.Context(), ident, id, in.Approve, in.Comments)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleToResponse(*article))
}

func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	category := r.URL.Query().Get("category")

	items, next, err := h.Service.PublishedArticles(r.Context(), category, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articlesToList(items, next))
}

func (h *Handlers) MyArticles(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	opts, err := listOptions(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var status *models.ArticleStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st, ok := models.ParseArticleStatus(v)
		if !ok {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
		status = &st
	}

	items, next, err := h.Service.MyArticles(r.Context(), ident, status, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articlesToList(items, next))
}

func (h *Handlers) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	opts, err := listOptions(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// Без фильтра модератор видит статьи всех статусов.
	var status *models.ArticleStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st, ok := models.ParseArticleStatus(v)
		if !ok {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
		status = &st
	}

	items, next, err := h.Service.ArticlesForReview(r.Context(), ident, status, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articlesToList(items, next))
}
