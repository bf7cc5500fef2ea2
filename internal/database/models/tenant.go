package models

// Subscription plans. Upgrades are one-way: a tenant moves from free to pro
// and is never downgraded by this service.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// FreePlanNoteLimit is the maximum number of live notes a free tenant may hold.
const FreePlanNoteLimit = 3

type Tenant struct {
	Base
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Plan string `gorm:"default:'free'" json:"plan"` // free, pro

	// Relationships
	Users []User `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	Notes []Note `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// IsPro reports whether the tenant is on the unlimited plan.
func (t *Tenant) IsPro() bool {
	return t.Plan == PlanPro
}
