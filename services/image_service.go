package services

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ImageService stores uploaded images under BaseDir/images and hands back
// the public URL path served by the /uploads static route.
type ImageService struct {
	BaseDir string
}

func NewImageService(baseDir string) *ImageService {
	return &ImageService{BaseDir: baseDir}
}

// SaveUpload writes a multipart upload as images/{timestamp}.{ext}.
// The extension comes from the original filename, defaulting to jpg.
func (s *ImageService) SaveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "" {
		ext = "jpg"
	}

	dir := filepath.Join(s.BaseDir, "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.%s", time.Now().UnixMilli(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/uploads/images/" + filename, nil
}

// SaveBase64 stores a data-URL or bare base64 image the same way. Admin
// forms that inline their image previews submit through this path.
func (s *ImageService) SaveBase64(b64, ext string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		ext = "jpg"
	}

	dir := filepath.Join(s.BaseDir, "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.%s", time.Now().UnixMilli(), ext)
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/uploads/images/" + filename, nil
}
