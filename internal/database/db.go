package database

import (
	"log"
	"time"

	"geosolar-backoffice/internal/config"
	"geosolar-backoffice/internal/models"
	"geosolar-backoffice/internal/rbac"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database, runs migrations, and seeds the bootstrap
// managing director. With no DB_DSN configured it falls back to an
// in-memory SQLite database so the app can run locally out of the box.
func Connect(cfg config.Config) {
	var err error

	if cfg.DSN == "" {
		log.Println("DB_DSN not set, using in-memory SQLite")
		DB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to open SQLite database:", err)
		}
	} else {
		// Wait for MySQL to be ready (it may still be starting in docker-compose)
		for i := 0; i < 5; i++ {
			DB, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err == nil {
				break
			}
			log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatal("Failed to connect to database after 5 attempts:", err)
		}
	}

	log.Println("✅ Database connected")

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}
	log.Println("✅ Database schema synced")

	if err := SeedAdmin(DB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
}

// Migrate syncs the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.InventoryItem{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Media{},
		&models.Page{},
		&models.ContactMessage{},
		&models.QuoteRequest{},
	)
}

// SeedAdmin creates the bootstrap MANAGING_DIRECTOR when the user table is
// empty, so a fresh install is never locked out. Idempotent.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	director := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(rbac.RoleManagingDirector),
		Active:       true,
	}
	if err := db.Create(&director).Error; err != nil {
		return err
	}
	log.Printf("Seeded managing director account %s", email)
	return nil
}
