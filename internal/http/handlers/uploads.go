package handlers

import (
	"net/http"

	"github.com/google/uuid"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/service"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

type presignRequest struct {
	// Kind — назначение объекта: certificate, approval-document,
	// picture, article-image.
	Kind          string `json:"kind"`
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type presignResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

func (h *Handlers) UploadPresign(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.Service.UploadURL(r.Context(), ident, storage.UploadKind(in.Kind), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	})
}

type confirmUploadRequest struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
	// ArticleID обязателен для kind=article-image.
	ArticleID string `json:"article_id,omitempty"`
}

type confirmUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url,omitempty"`
}

func (h *Handlers) UploadConfirm(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in confirmUploadRequest
	if err := decodeStrict(r, &in); err != nil || in.Key == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var articleID uuid.NullUUID
	if in.ArticleID != "" {
		id, err := uuid.Parse(in.ArticleID)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
		articleID = uuid.NullUUID{UUID: id, Valid: true}
	}

	url, err := h.Service.ConfirmUpload(r.Context(), ident, storage.UploadKind(in.Kind), in.Key, articleID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmUploadResponse{Key: in.Key, URL: url})
}
