package controllers

import (
	"log"
	"net/http"
	"strings"

	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

type base64UploadPayload struct {
	Image     string `json:"image"`
	Extension string `json:"extension"`
}

type UploadController struct {
	images *services.ImageService
}

func NewUploadController(images *services.ImageService) *UploadController {
	return &UploadController{images: images}
}

// Upload handles POST /api/upload. Admin forms send either a multipart
// "file" field or a JSON body with a base64 data URL; both land in the
// images bucket under a timestamp filename.
func (ctrl *UploadController) Upload(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var payload base64UploadPayload
		if err := c.ShouldBindJSON(&payload); err != nil || payload.Image == "" {
			utils.JSONError(c, http.StatusBadRequest, "image is required")
			return
		}

		url, err := ctrl.images.SaveBase64(payload.Image, payload.Extension)
		if err != nil {
			log.Printf("❌ upload failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}

	url, err := ctrl.images.SaveUpload(c, file)
	if err != nil {
		log.Printf("❌ upload failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
