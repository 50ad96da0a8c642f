package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
)

// registerRequest — запрос регистрации: общая часть + ролеспецифичные поля.
// Дискриминатор — поле role; password2 — подтверждение пароля (как в форме).
type registerRequest struct {
	Role      string `json:"role"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`

	// Автор.
	Bio               string   `json:"bio,omitempty"`
	CategoryExpertise []string `json:"category_expertise,omitempty"`

	// Редактор.
	AreasOfOversight  string `json:"areas_of_oversight,omitempty"`
	EmailVerification bool   `json:"email_verification,omitempty"`
	UserManagement    bool   `json:"user_management,omitempty"`
	ArticleManagement bool   `json:"article_management,omitempty"`
	Analytics         bool   `json:"analytics,omitempty"`
}

type tokenPairResponse struct {
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

type registerResponse struct {
	UserID         string             `json:"user_id"`
	Role           string             `json:"role"`
	ApprovalStatus string             `json:"approval_status"`
	Tokens         *tokenPairResponse `json:"tokens,omitempty"`
}

func tokensToResponse(t *models.TokenPair) *tokenPairResponse {
	if t == nil {
		return nil
	}
	return &tokenPairResponse{
		AccessToken:     t.AccessToken,
		RefreshToken:    t.RefreshToken,
		AccessExpiresAt: t.AccessExpiresAt,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	creds := service.Credentials{
		Username:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		PasswordConfirm: in.Password2,
	}

	var (
		result *service.RegisterResult
		err    error
	)

	switch models.Role(in.Role) {
	case models.RoleUser, "":
		// Роль по умолчанию — читатель.
		result, err = h.Service.RegisterReader(r.Context(), service.RegisterReaderInput{Credentials: creds})
	case models.RoleAuthor:
		result, err = h.Service.RegisterAuthor(r.Context(), service.RegisterAuthorInput{
			Credentials:       creds,
			Bio:               in.Bio,
			CategoryExpertise: in.CategoryExpertise,
		})
	case models.RoleEditor:
		result, err = h.Service.RegisterEditor(r.Context(), service.RegisterEditorInput{
			Credentials:       creds,
			AreasOfOversight:  in.AreasOfOversight,
			EmailVerification: in.EmailVerification,
			UserManagement:    in.UserManagement,
			ArticleManagement: in.ArticleManagement,
			Analytics:         in.Analytics,
		})
	case models.RoleAdmin:
		result, err = h.Service.RegisterAdmin(r.Context(), service.RegisterAdminInput{Credentials: creds})
	default:
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		UserID:         result.UserID.String(),
		Role:           string(result.Role),
		ApprovalStatus: string(result.ApprovalStatus),
		Tokens:         tokensToResponse(result.Tokens),
	})
}

type loginRequest struct {
	// Identifier — username либо e-mail.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	UserID   string            `json:"user_id"`
	Username string            `json:"username"`
	Role     string            `json:"role"`
	Tokens   tokenPairResponse `json:"tokens"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	tokens, account, err := h.Service.Login(r.Context(), in.Identifier, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		UserID:   account.ID.String(),
		Username: account.Username,
		Role:     string(account.Role),
		Tokens:   *tokensToResponse(tokens),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	tokens, err := h.Service.RefreshToken(r.Context(), in.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokensToResponse(tokens))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.RevokeToken(r.Context(), in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"revoked": true})
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var in verifyEmailRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	token, err := uuid.Parse(in.Token)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.Service.VerifyEmail(r.Context(), token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h *Handlers) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var in emailRequest
	if err := decodeStrict(r, &in); err != nil || in.Email == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.ResendVerification(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

func (h *Handlers) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var in emailRequest
	if err := decodeStrict(r, &in); err != nil || in.Email == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.RequestPasswordReset(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// Единый ответ вне зависимости от существования адреса.
	writeJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

type resetPasswordRequest struct {
	Token     string `json:"token"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	token, err := uuid.Parse(in.Token)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.Service.ResetPassword(r.Context(), token, in.Password, in.Password2); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}

// Me возвращает личность по access-токену (удобно фронту после логина).
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"user_id":  ident.UserID.String(),
		"username": ident.Username,
		"role":     string(ident.Role),
	})
}
