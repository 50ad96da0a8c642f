package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
)

type interactionRequest struct {
	// Action — "like" либо "dislike"; повторное действие снимает реакцию.
	Action string `json:"action"`
}

type interactionResponse struct {
	Liked    bool  `json:"liked"`
	Disliked bool  `json:"disliked"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

func (h *Handlers) ToggleInteraction(w http.ResponseWriter, r *http.Request) {
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

	var in interactionRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	action, ok := models.ParseInteractionAction(in.Action)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	result, err := h.Service.ToggleInteraction(r.Context(), ident, articleID, action)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, interactionResponse{
		Liked:    result.Interaction.Liked,
		Disliked: result.Interaction.Disliked,
		Likes:    result.Likes,
		Dislikes: result.Dislikes,
	})
}
