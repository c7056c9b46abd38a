package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

var allowedAttachmentEntities = map[string]bool{
	"brfq":         true,
	"quote":        true,
	"modification": true,
}

// UploadDocument stores a multipart attachment for a procurement entity.
func UploadDocument(c *gin.Context) {
	entityType := c.PostForm("entity_type")
	entityID := c.PostForm("entity_id")
	if !allowedAttachmentEntities[entityType] || entityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "entity_type and entity_id are required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File is required"})
		return
	}

	const maxSize = 25 * 1024 * 1024
	if file.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File exceeds 25MB limit"})
		return
	}

	userID, _ := c.Get("userID")

	stored := fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(file.Filename)))
	dest := filepath.Join(uploadPath(), stored)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store file"})
		return
	}

	upload := models.FileUpload{
		FileID:       uuid.NewString(),
		OriginalName: file.Filename,
		StoredPath:   dest,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		EntityType:   entityType,
		EntityID:     entityID,
		UploadedBy:   userID.(string),
		UploadedAt:   time.Now(),
	}
	if !upload.IsValidDocumentType() {
		_ = os.Remove(dest)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unsupported file type"})
		return
	}

	if err := config.DB.Create(&upload).Error; err != nil {
		_ = os.Remove(dest)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record upload"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "file": upload})
}

// GetEntityDocuments lists attachments for one entity.
func GetEntityDocuments(c *gin.Context) {
	entityType := c.Param("entityType")
	if !allowedAttachmentEntities[entityType] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown entity type"})
		return
	}

	var files []models.FileUpload
	if err := config.DB.Where("entity_type = ? AND entity_id = ? AND delete_at IS NULL", entityType, c.Param("entityId")).
		Order("uploaded_at DESC").
		Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "files": files})
}

// DownloadDocument streams a stored attachment.
func DownloadDocument(c *gin.Context) {
	var file models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", c.Param("fileId")).
		First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
		return
	}

	if _, err := os.Stat(file.StoredPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File missing from storage"})
		return
	}

	c.FileAttachment(file.StoredPath, file.OriginalName)
}

// DeleteDocument soft-deletes an attachment record.
func DeleteDocument(c *gin.Context) {
	res := config.DB.Model(&models.FileUpload{}).
		Where("file_id = ? AND delete_at IS NULL", c.Param("fileId")).
		Update("delete_at", time.Now())
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete file"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
