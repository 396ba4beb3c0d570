package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadBaseDir resolves the directory product images are written to. The
// files are served back at /uploads, so the stored URL is the public path.
func uploadBaseDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveProductImages writes each uploaded file under <UPLOAD_DIR>/products and
// returns the public URLs to record on the product.
func saveProductImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	saveDir := filepath.Join(uploadBaseDir(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}

	var urls []string
	for _, file := range files {
		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			return nil, fmt.Errorf("save image %s: %w", file.Filename, err)
		}
		urls = append(urls, fmt.Sprintf("/uploads/products/%s", filename))
	}
	return urls, nil
}
