package tenants

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quillhq/quill/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrTenantMismatch means the resolved tenant is not the principal's own.
	// An admin may only upgrade the tenant they belong to.
	ErrTenantMismatch = errors.New("tenant does not match principal")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// Upgrade moves the tenant identified by slug to the pro plan. The caller's
// tenant ID must match the resolved tenant. Upgrading an already-pro tenant
// succeeds without changing anything; plans never move back to free here.
func (s *Service) Upgrade(ctx context.Context, principalTenantID uuid.UUID, slug string) (*models.Tenant, error) {
	tenant, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if tenant.ID != principalTenantID {
		return nil, ErrTenantMismatch
	}

	if tenant.IsPro() {
		return tenant, nil
	}

	if err := s.db.WithContext(ctx).
		Model(tenant).
		Update("plan", models.PlanPro).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}
