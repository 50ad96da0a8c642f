package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleChangeRequest — заявка на смену роли существующего аккаунта.
// Независимая машина статусов, зеркалящая одобрение профиля.
type RoleChangeRequest struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RequestedRole Role
	Status        ApprovalStatus
	AdminComment  string
	RequestedAt   time.Time
	DecidedAt     *time.Time
	DecidedBy     uuid.NullUUID
}
