// mailer — отправка писем подтверждения email и сброса пароля.
package mailer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/pkg/redact"
)

// Mailer — контракт исходящих писем.
type Mailer interface {
	// SendVerificationEmail отправляет письмо со ссылкой подтверждения email.
	SendVerificationEmail(ctx context.Context, email string, token uuid.UUID) error
	// SendPasswordResetEmail отправляет письмо со ссылкой сброса пароля.
	SendPasswordResetEmail(ctx context.Context, email string, token uuid.UUID) error
}

// LogMailer пишет ссылки в лог вместо реальной отправки.
// Используется в local/dev окружениях и как заглушка до подключения SMTP.
type LogMailer struct {
	frontendBaseURL string
	fromAddress     string
}

// NewLogMailer создаёт LogMailer с базовым URL фронтенда для сборки ссылок.
func NewLogMailer(frontendBaseURL, fromAddress string) *LogMailer {
	return &LogMailer{
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
		fromAddress:     fromAddress,
	}
}

func (m *LogMailer) SendVerificationEmail(ctx context.Context, email string, token uuid.UUID) error {
	log.From(ctx).Info("verification_email",
		"from", m.fromAddress,
		"to", redact.Email(email),
		"link", m.frontendBaseURL+"/verify-email?token="+token.String(),
	)

	return nil
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, email string, token uuid.UUID) error {
	log.From(ctx).Info("password_reset_email",
		"from", m.fromAddress,
		"to", redact.Email(email),
		"link", m.frontendBaseURL+"/reset-password?token="+token.String(),
	)

	return nil
}

var _ Mailer = (*LogMailer)(nil)
