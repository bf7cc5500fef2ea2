package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quillhq/quill/internal/auth"
	"github.com/quillhq/quill/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthService(t *testing.T) (*auth.Service, *gorm.DB, *auth.JWTService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.User{}, &models.Note{}))

	jwtService := auth.NewJWTService("test-secret", 7*24*time.Hour)
	return auth.NewService(db, jwtService), db, jwtService
}

func seedTenantAndUser(t *testing.T, db *gorm.DB, email, password, role string) (*models.Tenant, *models.User) {
	t.Helper()

	tenant := &models.Tenant{
		Base: models.Base{ID: uuid.New()},
		Name: "Acme",
		Slug: "acme-" + uuid.New().String()[:8],
		Plan: models.PlanFree,
	}
	require.NoError(t, db.Create(tenant).Error)

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Base:         models.Base{ID: uuid.New()},
		Email:        email,
		PasswordHash: hash,
		Name:         "Acme Admin",
		TenantID:     tenant.ID,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)

	return tenant, user
}

func TestService_Login(t *testing.T) {
	svc, db, jwtService := setupAuthService(t)
	tenant, user := seedTenantAndUser(t, db, "admin@acme.test", "password", models.RoleAdmin)

	t.Run("valid credentials return token embedding the user's tenant", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), auth.LoginInput{
			Email:    "admin@acme.test",
			Password: "password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, claims.TenantID)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginInput{
			Email:    "admin@acme.test",
			Password: "not-the-password",
		})
		assert.Equal(t, auth.ErrInvalidCredentials, err)
	})

	t.Run("unknown email fails identically to wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginInput{
			Email:    "nobody@acme.test",
			Password: "password",
		})
		assert.Equal(t, auth.ErrInvalidCredentials, err)
	})

	t.Run("login preloads the tenant", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), auth.LoginInput{
			Email:    "admin@acme.test",
			Password: "password",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.User.Tenant)
		assert.Equal(t, tenant.Slug, resp.User.Tenant.Slug)
	})
}

func TestService_GetUserByID(t *testing.T) {
	svc, db, _ := setupAuthService(t)
	_, user := seedTenantAndUser(t, db, "member@acme.test", "password", models.RoleMember)

	t.Run("returns existing user", func(t *testing.T) {
		got, err := svc.GetUserByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		require.NotNil(t, got.Tenant)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		_, err := svc.GetUserByID(context.Background(), uuid.New())
		assert.Equal(t, auth.ErrUserNotFound, err)
	})
}
