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

type pageRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// GetPublishedPage serves marketing-site content. Unpublished drafts are
// indistinguishable from missing pages to the public.
func GetPublishedPage(c *gin.Context) {
	var page models.Page
	err := database.DB.Where("slug = ? AND published = ?", c.Param("slug"), true).First(&page).Error
	if err != nil {
		respondError(c, apperrors.NotFound("page"))
		return
	}
	c.JSON(http.StatusOK, page)
}

func ListPages(c *gin.Context) {
	var pages []models.Page
	if err := database.DB.Order("slug").Find(&pages).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func CreatePage(c *gin.Context) {
	var input pageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var existing models.Page
	if err := database.DB.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		respondError(c, apperrors.Conflict("a page with this slug already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	page := models.Page{
		Slug:      input.Slug,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
	}
	if err := database.DB.Create(&page).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

func UpdatePage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	var page models.Page
	if err := database.DB.First(&page, id).Error; err != nil {
		respondError(c, apperrors.NotFound("page"))
		return
	}

	var input pageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	page.Slug = input.Slug
	page.Title = input.Title
	page.Body = input.Body
	page.Published = input.Published
	if err := database.DB.Save(&page).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func DeletePage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	result := database.DB.Delete(&models.Page{}, id)
	if result.Error != nil {
		respondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, apperrors.NotFound("page"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}
