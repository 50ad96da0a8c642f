package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// Profiles выполняет операции над ролевыми профилями и очередью модерации.
//
// Создание учётной записи и профиля — одна транзакция: частично
// зарегистрированных пользователей в БД быть не должно.
type Profiles interface {
	// CreateAccountWithProfile атомарно создаёт учётную запись и её ролевой профиль.
	CreateAccountWithProfile(ctx context.Context, account *models.Account, profile *models.Profile) error
	// ProfileByUserID возвращает профиль по user_id.
	ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// ListPendingProfiles возвращает страницу профилей в статусе pending,
	// старые заявки первыми.
	ListPendingProfiles(ctx context.Context, opts models.ListOptions) ([]models.Profile, string, error)
	// ApproveProfile атомарно переводит профиль в approved и активирует
	// учётную запись. Повторный вызов — no-op с тем же результатом.
	ApproveProfile(ctx context.Context, userID, approvedBy uuid.UUID) (*models.Profile, error)
	// RejectProfile атомарно переводит профиль в rejected с комментарием
	// и деактивирует учётную запись.
	RejectProfile(ctx context.Context, userID, rejectedBy uuid.UUID, comment string) (*models.Profile, error)
	// ConfirmDocumentUpload фиксирует ключ подтверждающего документа в профиле.
	ConfirmDocumentUpload(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error)
	// ConfirmPictureUpload фиксирует ключ изображения профиля.
	ConfirmPictureUpload(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error)
}

// RoleChanges выполняет операции над заявками на смену роли.
type RoleChanges interface {
	// CreateRoleChange создаёт новую заявку на смену роли.
	CreateRoleChange(ctx context.Context, req *models.RoleChangeRequest) error
	// RoleChangeByID возвращает заявку по ID.
	RoleChangeByID(ctx context.Context, id uuid.UUID) (*models.RoleChangeRequest, error)
	// ListPendingRoleChanges возвращает страницу заявок в статусе pending.
	ListPendingRoleChanges(ctx context.Context, opts models.ListOptions) ([]models.RoleChangeRequest, string, error)
	// ApproveRoleChange атомарно одобряет заявку, меняет роль учётной записи
	// и создаёт seed-профиль новой роли в статусе pending.
	// Заявка не в статусе pending — ErrStateConflict.
	ApproveRoleChange(ctx context.Context, id, decidedBy uuid.UUID, seed *models.Profile) (*models.RoleChangeRequest, error)
	// RejectRoleChange отклоняет заявку с комментарием.
	RejectRoleChange(ctx context.Context, id, decidedBy uuid.UUID, comment string) (*models.RoleChangeRequest, error)
}
