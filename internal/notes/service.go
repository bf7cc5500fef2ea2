package notes

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/quillhq/quill/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrNoteNotFound covers both a genuinely missing note and a note owned
	// by another tenant. Callers must not be able to tell the two apart.
	ErrNoteNotFound  = errors.New("note not found")
	ErrQuotaExceeded = errors.New("note quota exceeded for free plan")
	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyContent  = errors.New("content is required")
)

// Service is the tenant-scoped note repository. Every operation takes the
// acting principal's tenant ID and filters on it; there is no way to reach
// another tenant's rows through this type.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns the tenant's notes, most recently updated first.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Service) Get(ctx context.Context, tenantID, noteID uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", noteID, tenantID).
		First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

type CreateInput struct {
	Title   string
	Content string
}

// Create inserts a note for the tenant after checking the plan quota.
// The quota check and the insert are separate statements; two requests racing
// at the free-plan boundary can both pass the check and overshoot the limit
// by one. That window is accepted here rather than closed with locking.
func (s *Service) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateInput) (*models.Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}

	var tenant models.Tenant
	if err := s.db.WithContext(ctx).First(&tenant, tenantID).Error; err != nil {
		return nil, err
	}

	allowed, err := s.CanCreateNote(ctx, &tenant)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrQuotaExceeded
	}

	note := models.Note{
		Title:    input.Title,
		Content:  input.Content,
		TenantID: tenantID,
		UserID:   userID,
	}
	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

type UpdateInput struct {
	Title   *string
	Content *string
}

// Update applies the provided fields to the tenant's note. Absent fields are
// left untouched; present-but-empty fields are rejected.
func (s *Service) Update(ctx context.Context, tenantID, noteID uuid.UUID, input UpdateInput) (*models.Note, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, ErrEmptyContent
	}

	note, err := s.Get(ctx, tenantID, noteID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if len(updates) == 0 {
		return note, nil
	}

	if err := s.db.WithContext(ctx).Model(note).Updates(updates).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Service) Delete(ctx context.Context, tenantID, noteID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", noteID, tenantID).
		Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// CanCreateNote is the quota policy: pro tenants are unlimited, free tenants
// may hold up to models.FreePlanNoteLimit live notes.
func (s *Service) CanCreateNote(ctx context.Context, tenant *models.Tenant) (bool, error) {
	if tenant.IsPro() {
		return true, nil
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("tenant_id = ?", tenant.ID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count < models.FreePlanNoteLimit, nil
}
