package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
)

type newsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content,omitempty"`
	SourceURL   string    `json:"source_url"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type newsListResponse struct {
	Items         []newsResponse `json:"items"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

func newsToResponse(n models.FetchedNews) newsResponse {
	return newsResponse{
		ID:          n.ID.String(),
		Title:       n.Title,
		Summary:     n.Summary,
		Content:     n.Content,
		SourceURL:   n.SourceURL,
		ImageURL:    n.ImageURL,
		Category:    n.Category,
		PublishedAt: n.PublishedAt,
		FetchedAt:   n.FetchedAt,
	}
}

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	category := r.URL.Query().Get("category")

	items, next, err := h.Service.ListNews(r.Context(), category, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := newsListResponse{
		Items:         make([]newsResponse, 0, len(items)),
		NextPageToken: next,
	}
	for _, n := range items {
		out.Items = append(out.Items, newsToResponse(n))
	}

	writeJSON(w, http.StatusOK, out)
}

type fetchNewsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Saved   int64  `json:"saved"`
}

// FetchNews — ручной запуск прохода приёма внешних новостей.
// Сбой источника — не ошибка HTTP: статус отражается в теле ответа.
func (h *Handlers) FetchNews(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	report, err := h.Service.TriggerIngest(r.Context(), ident)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	status := "success"
	if !report.Success {
		status = "error"
	}

	writeJSON(w, http.StatusOK, fetchNewsResponse{
		Status:  status,
		Message: report.Message,
		Saved:   report.Saved,
	})
}

func (h *Handlers) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	news, err := h.Service.News(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newsToResponse(*news))
}
