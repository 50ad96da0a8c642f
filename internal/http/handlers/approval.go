package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
)

type profileResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`

	Bio               string `json:"bio,omitempty"`
	CategoryExpertise string `json:"category_expertise,omitempty"`
	CertificateKey    string `json:"certificate_key,omitempty"`

	AreasOfOversight           string   `json:"areas_of_oversight,omitempty"`
	ManagementResponsibilities []string `json:"management_responsibilities,omitempty"`

	DocumentKey string `json:"document_key,omitempty"`
	PictureKey  string `json:"picture_key,omitempty"`

	ApprovalStatus  string `json:"approval_status"`
	ApprovalComment string `json:"approval_comment,omitempty"`
	ApprovedBy      string `json:"approved_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func profileToResponse(p models.Profile) profileResponse {
	out := profileResponse{
		UserID:                     p.UserID.String(),
		Role:                       string(p.Role),
		Bio:                        p.Bio,
		CategoryExpertise:          p.CategoryExpertise,
		CertificateKey:             p.CertificateKey,
		AreasOfOversight:           p.AreasOfOversight,
		ManagementResponsibilities: p.ManagementResponsibilities,
		DocumentKey:                p.DocumentKey,
		PictureKey:                 p.PictureKey,
		ApprovalStatus:             string(p.ApprovalStatus),
		ApprovalComment:            p.ApprovalComment,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
	if p.ApprovedBy.Valid {
		out.ApprovedBy = p.ApprovedBy.UUID.String()
	}
	return out
}

type profileListResponse struct {
	Items         []profileResponse `json:"items"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	userID, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	profile, err := h.Service.ProfileByUser(r.Context(), ident, userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(*profile))
}

func (h *Handlers) PendingProfiles(w http.ResponseWriter, r *http.Request) {
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

	items, next, err := h.Service.PendingProfiles(r.Context(), ident, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := profileListResponse{
		Items:         make([]profileResponse, 0, len(items)),
		NextPageToken: next,
	}
	for _, p := range items {
		out.Items = append(out.Items, profileToResponse(p))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) ApproveProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	userID, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	profile, err := h.Service.ApproveProfile(r.Context(), ident, userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(*profile))
}

type rejectRequest struct {
	Comment string `json:"comment"`
}

func (h *Handlers) RejectProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	userID, err := uuidParam(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in rejectRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	profile, err := h.Service.RejectProfile(r.Context(), ident, userID, in.Comment)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(*profile))
}

type roleChangeResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	RequestedRole string     `json:"requested_role"`
	Status        string     `json:"status"`
	AdminComment  string     `json:"admin_comment,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	DecidedBy     string     `json:"decided_by,omitempty"`
}

func roleChangeToResponse(rc models.RoleChangeRequest) roleChangeResponse {
	out := roleChangeResponse{
		ID:            rc.ID.String(),
		UserID:        rc.UserID.String(),
		RequestedRole: string(rc.RequestedRole),
		Status:        string(rc.Status),
		AdminComment:  rc.AdminComment,
		RequestedAt:   rc.RequestedAt,
		DecidedAt:     rc.DecidedAt,
	}
	if rc.DecidedBy.Valid {
		out.DecidedBy = rc.DecidedBy.UUID.String()
	}
	return out
}

type roleChangeListResponse struct {
	Items         []roleChangeResponse `json:"items"`
	NextPageToken string               `json:"next_page_token,omitempty"`
}

type requestRoleChangeRequest struct {
	Role string `json:"role"`
}

func (h *Handlers) RequestRoleChange(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in requestRoleChangeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	role, ok := models.ParseRole(in.Role)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	rc, err := h.Service.RequestRoleChange(r.Context(), ident, role)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, roleChangeToResponse(*rc))
}

func (h *Handlers) PendingRoleChanges(w http.ResponseWriter, r *http.Request) {
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

	items, next, err := h.Service.PendingRoleChanges(r.Context(), ident, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := roleChangeListResponse{
		Items:         make([]roleChangeResponse, 0, len(items)),
		NextPageToken: next,
	}
	for _, rc := range items {
		out.Items = append(out.Items, roleChangeToResponse(rc))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) ApproveRoleChange(w http.ResponseWriter, r *http.Request) {
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

	rc, err := h.Service.ApproveRoleChange(r.Context(), ident, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roleChangeToResponse(*rc))
}

func (h *Handlers) RejectRoleChange(w http.ResponseWriter, r *http.Request) {
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

	var in rejectRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	rc, err := h.Service.RejectRoleChange(r.Context(), ident, id, in.Comment)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roleChangeToResponse(*rc))
}
