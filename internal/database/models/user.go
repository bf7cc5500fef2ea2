package models

import "github.com/google/uuid"

// User roles. Checks are exact-match: admin does not implicitly satisfy a
// member-only requirement, nor the other way around.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	Base
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	TenantID     uuid.UUID `gorm:"type:uuid;index;not null" json:"tenant_id"`
	Role         string    `gorm:"default:'member'" json:"role"` // admin, member

	// Relationships
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (User) TableName() string {
	return "users"
}
