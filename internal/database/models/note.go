package models

import "github.com/google/uuid"

type Note struct {
	Base
	Title    string    `gorm:"not null" json:"title"`
	Content  string    `gorm:"not null" json:"content"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenant_id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	// Relationships
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
}

func (Note) TableName() string {
	return "notes"
}
