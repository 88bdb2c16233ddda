package handlers

import (
	"net/http"

	"geosolar-backoffice/internal/apperrors"
	"geosolar-backoffice/internal/database"
	"geosolar-backoffice/internal/models"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type quoteRequestInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	ProductID *uint  `json:"product_id"`
	Details   string `json:"details" binding:"required"`
}

// SubmitContact takes a public contact-form submission.
func SubmitContact(c *gin.Context) {
	var input contactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	msg := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you, we will be in touch"})
}

// SubmitQuote takes a public quote request, optionally tied to a product.
func SubmitQuote(c *gin.Context) {
	var input quoteRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.ProductID != nil {
		var product models.Product
		if err := database.DB.First(&product, *input.ProductID).Error; err != nil {
			respondError(c, apperrors.NotFound("product"))
			return
		}
	}

	quote := models.QuoteRequest{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		ProductID: input.ProductID,
		Details:   input.Details,
	}
	if err := database.DB.Create(&quote).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Quote request received"})
}

func ListContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := database.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func ListQuoteRequests(c *gin.Context) {
	var quotes []models.QuoteRequest
	if err := database.DB.Preload("Product").Order("created_at desc").Find(&quotes).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}
