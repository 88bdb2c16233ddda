package database

import (
	"errors"
	"time"

	"geosolar-backoffice/internal/apperrors"
	"geosolar-backoffice/internal/models"

	"gorm.io/gorm"
)

// GetQuantity returns the quantity on hand for a (product, location) pair.
func GetQuantity(db *gorm.DB, productID uint, location string) (int, error) {
	var item models.InventoryItem
	err := db.Where("product_id = ? AND location = ?", productID, location).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.NotFound("inventory item")
	}
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

// UpsertStock replaces quantity/minStockLevel for an existing
// (product, location) row or creates one on first stock entry.
// The product must already exist in the catalog.
func UpsertStock(db *gorm.DB, productID uint, location string, quantity, minStockLevel int) (*models.InventoryItem, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product")
		}
		return nil, err
	}

	var item models.InventoryItem
	err := db.Where("product_id = ? AND location = ?", productID, location).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.InventoryItem{
			ProductID:     productID,
			Location:      location,
			Quantity:      quantity,
			MinStockLevel: minStockLevel,
			LastUpdated:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		item.Quantity = quantity
		item.MinStockLevel = minStockLevel
		item.LastUpdated = time.Now()
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	}

	return &item, nil
}

// DecrementStock reduces stock for a product by the given amount against
// the first inventory row found for it (lowest id, so the pick is stable).
// Returns found=false when the product has no inventory row at all; the
// caller decides whether that is an error. The quantity is NOT floored at
// zero: overselling drives it negative and shows up in the low-stock view.
//
// The decrement is a single conditional UPDATE with a SQL expression, so
// two concurrent sales hitting the same row serialize at the storage layer
// instead of racing a read-modify-write.
func DecrementStock(db *gorm.DB, productID uint, quantity int) (bool, error) {
	var item models.InventoryItem
	err := db.Where("product_id = ?", productID).Order("id").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = db.Model(&models.InventoryItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity - ?", quantity),
			"last_updated": time.Now(),
		}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListInventory returns every stock row with its product, newest first.
func ListInventory(db *gorm.DB) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := db.Preload("Product").Order("last_updated desc").Find(&items).Error
	return items, err
}

// ListLowStock returns rows at or below their minimum stock level,
// worst (lowest quantity) first.
func ListLowStock(db *gorm.DB) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := db.Preload("Product").
		Where("quantity <= min_stock_level").
		Order("quantity asc").
		Find(&items).Error
	return items, err
}
