package handlers

import (
	"net/http"
	"strconv"

	"geosolar-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

// CreateSale runs the whole checkout: validation, totals, and the atomic
// sale-plus-inventory write. The guard has already established that the
// caller may process sales.
func CreateSale(c *gin.Context) {
	var input database.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sale, err := database.CreateSale(database.DB, currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func GetSale(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
		return
	}

	sale, err := database.GetSale(database.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func ListSales(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	sales, total, err := database.ListSales(database.DB, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  sales,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
