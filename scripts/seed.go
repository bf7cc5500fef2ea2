//go:build ignore

package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/quillhq/quill/internal/auth"
	"github.com/quillhq/quill/internal/database"
	"github.com/quillhq/quill/internal/database/models"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/util"
	"gorm.io/gorm"
)

// Seeds two tenants for local development: Acme (admin@acme.test and
// member@acme.test) and Globex (admin@globex.test), all with password
// "password". Re-running is a no-op for rows that already exist.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	acme := seedTenant(db, "Acme", "acme")
	seedUser(db, acme, "admin@acme.test", "Acme Admin", models.RoleAdmin)
	seedUser(db, acme, "member@acme.test", "Acme Member", models.RoleMember)

	globex := seedTenant(db, "Globex", "globex")
	seedUser(db, globex, "admin@globex.test", "Globex Admin", models.RoleAdmin)

	fmt.Println("seed complete")
}

func seedTenant(db *gorm.DB, name, slug string) *models.Tenant {
	var tenant models.Tenant
	err := db.Where("slug = ?", slug).First(&tenant).Error
	if err == nil {
		fmt.Printf("tenant %s already exists\n", slug)
		return &tenant
	}

	tenant = models.Tenant{
		Name: name,
		Slug: slug,
		Plan: models.PlanFree,
	}
	if err := db.Create(&tenant).Error; err != nil {
		log.Fatalf("failed to create tenant %s: %v", slug, err)
	}
	fmt.Printf("created tenant %s\n", slug)
	return &tenant
}

func seedUser(db *gorm.DB, tenant *models.Tenant, email, name, role string) {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists\n", email)
		return
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		TenantID:     tenant.ID,
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user %s: %v", email, err)
	}
	fmt.Printf("created user %s (%s)\n", email, role)
}
