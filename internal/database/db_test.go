package database

import (
	"fmt"
	"testing"

	"geosolar-backoffice/internal/models"
	"geosolar-backoffice/internal/rbac"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedProduct creates a category + product pair for tests that need one.
func seedProduct(t *testing.T, db *gorm.DB, sku string, price string) models.Product {
	t.Helper()
	category := models.Category{Name: "Panels-" + sku}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	product := models.Product{
		Name:       "Product " + sku,
		SKU:        sku,
		CategoryID: category.ID,
		Price:      decimal.RequireFromString(price),
		CostPrice:  decimal.RequireFromString(price).Div(decimal.NewFromInt(2)),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("product: %v", err)
	}
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string, role rbac.Role, active bool) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", Role: string(role), Active: active}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("user: %v", err)
	}
	return user
}
