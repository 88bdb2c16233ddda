package handlers

import (
	"errors"
	"net/http"

	"geosolar-backoffice/internal/apperrors"
	"geosolar-backoffice/internal/database"
	"geosolar-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Order("name").Find(&categories).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var input categoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var existing models.Category
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		respondError(c, apperrors.Conflict("a category with this name already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	category := models.Category{Name: input.Name}
	if err := database.DB.Create(&category).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		respondError(c, apperrors.NotFound("category"))
		return
	}

	var input categoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	category.Name = input.Name
	if err := database.DB.Save(&category).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory refuses while products still reference the category.
func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var productCount int64
	if err := database.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if productCount > 0 {
		respondError(c, apperrors.Conflict("category still has products assigned to it"))
		return
	}

	result := database.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		respondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, apperrors.NotFound("category"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
