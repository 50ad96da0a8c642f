package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus — трёхпозиционный статус одобрения профиля/заявки.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus возвращает статус по строковому значению.
func ParseApprovalStatus(s string) (ApprovalStatus, bool) {
	switch ApprovalStatus(s) {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return ApprovalStatus(s), true
	default:
		return "", false
	}
}

// Категории экспертизы автора (как в форме регистрации).
var ExpertiseCategories = []string{
	"News", "Politics", "Sports", "Entertainment",
	"Technology", "Health", "Science", "Business",
}

// CanonicalExpertiseCategory возвращает категорию из ExpertiseCategories
// без учёта регистра. ok=false для категории вне списка.
func CanonicalExpertiseCategory(category string) (string, bool) {
	for _, c := range ExpertiseCategories {
		if strings.EqualFold(c, category) {
			return c, true
		}
	}

	return "", false
}

// Теги управленческих обязанностей редактора.
// Порядок фиксирован: в этом порядке флаги формы сворачиваются в список.
const (
	ResponsibilityEmailVerification = "email_verification"
	ResponsibilityUserManagement    = "user_management"
	ResponsibilityArticleManagement = "article_management"
	ResponsibilityAnalytics         = "analytics"
)

// Profile — профиль учётной записи (ровно один на аккаунт).
//
// Особенности:
//   - ApprovalStatus — постоянное поле схемы: присутствует у всех ролей,
//     для RoleUser сразу approved (профиль обычного читателя не модерируется);
//   - ролеспецифичные поля заполняются по Role, остальные пустые;
//   - DocumentKey/PictureKey — ключи объектов в S3/MinIO, не содержимое.
type Profile struct {
	UserID uuid.UUID
	Role   Role

	// Автор.
	Bio               string
	CategoryExpertise string
	CertificateKey    string

	// Редактор.
	AreasOfOversight           string
	ManagementResponsibilities []string

	// Администратор.
	DocumentKey string

	PictureKey string

	ApprovalStatus  ApprovalStatus
	ApprovalComment string
	ApprovedBy      uuid.NullUUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
