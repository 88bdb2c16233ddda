package handlers

import (
	"errors"
	"net/http"

	"geosolar-backoffice/internal/apperrors"
	"geosolar-backoffice/internal/cache"
	"geosolar-backoffice/internal/database"
	"geosolar-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type productRequest struct {
	Name       string          `json:"name" binding:"required"`
	SKU        string          `json:"sku" binding:"required"`
	CategoryID uint            `json:"category_id" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	ImageURL   string          `json:"image_url"`
}

// ListProducts serves the catalog, from the redis snapshot when one is
// warm, otherwise from the database (and re-warms the snapshot).
func ListProducts(c *gin.Context) {
	if products, ok := cache.GetProductList(c.Request.Context()); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	var products []models.Product
	if err := database.DB.Preload("Category").Order("name").Find(&products).Error; err != nil {
		respondError(c, err)
		return
	}

	cache.SetProductList(c.Request.Context(), products)
	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.Preload("Category").First(&product, id).Error; err != nil {
		respondError(c, apperrors.NotFound("product"))
		return
	}
	c.JSON(http.StatusOK, product)
}

func CreateProduct(c *gin.Context) {
	var input productRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ve := apperrors.NewValidation()
	if input.Price.LessThanOrEqual(decimal.Zero) {
		ve.Add("price", "price must be positive")
	}
	if input.CostPrice.IsNegative() {
		ve.Add("cost_price", "cost price must not be negative")
	}
	if ve.HasErrors() {
		respondError(c, ve)
		return
	}

	var category models.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		respondError(c, apperrors.NotFound("category"))
		return
	}

	var existing models.Product
	if err := database.DB.Where("sku = ?", input.SKU).First(&existing).Error; err == nil {
		respondError(c, apperrors.Conflict("a product with this SKU already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	product := models.Product{
		Name:       input.Name,
		SKU:        input.SKU,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		CostPrice:  input.CostPrice,
		ImageURL:   input.ImageURL,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		respondError(c, apperrors.NotFound("product"))
		return
	}

	// Partial update: only the fields that were sent change.
	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	delete(updateData, "id")

	if err := database.DB.Model(&product).Updates(updateData).Error; err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	c.JSON(http.StatusOK, product)
}

// DeleteProduct refuses while inventory rows or sale lines still
// reference the product: sales history must stay reconstructible.
func DeleteProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var inventoryCount, saleItemCount int64
	if err := database.DB.Model(&models.InventoryItem{}).Where("product_id = ?", id).Count(&inventoryCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := database.DB.Model(&models.SaleItem{}).Where("product_id = ?", id).Count(&saleItemCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if inventoryCount > 0 || saleItemCount > 0 {
		respondError(c, apperrors.Conflict("product is referenced by inventory or past sales"))
		return
	}

	result := database.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		respondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, apperrors.NotFound("product"))
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
