package handlers

import (
	"net/http"
	"strconv"

	"geosolar-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

type upsertStockRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"min_stock_level"`
}

func ListInventory(c *gin.Context) {
	items, err := database.ListInventory(database.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpsertStock replaces or creates the stock row for (product, location).
func UpsertStock(c *gin.Context) {
	var input upsertStockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := database.UpsertStock(database.DB, input.ProductID, input.Location, input.Quantity, input.MinStockLevel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetQuantity answers "how many of product X at location Y", via
// ?product_id=N&location=L.
func GetQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id query parameter is required"})
		return
	}
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}

	qty, err := database.GetQuantity(database.DB, uint(productID), location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "location": location, "quantity": qty})
}

// ListLowStock returns rows at or below their minimum level, lowest first.
func ListLowStock(c *gin.Context) {
	items, err := database.ListLowStock(database.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
