package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"geosolar-backoffice/internal/database"
	"geosolar-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadFile stores a multipart file on local disk and records its
// metadata. Filenames get a uuid prefix so uploads never collide and the
// original name never touches the filesystem.
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	media := models.Media{
		FileName:     filename,
		OriginalName: file.Filename,
		ContentType:  file.Header.Get("Content-Type"),
		Size:         file.Size,
		URL:          fmt.Sprintf("%s/uploads/%s", baseURL, filename),
		UploadedBy:   currentUserID(c),
	}
	if err := database.DB.Create(&media).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, media)
}

func ListMedia(c *gin.Context) {
	var media []models.Media
	if err := database.DB.Order("created_at desc").Find(&media).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}
