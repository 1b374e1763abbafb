package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetImage serves a product image from the image directory.
// GET /image?name=<folder>&photo=<file>
func GetImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		photo := c.Query("photo")
		if name == "" || photo == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name and photo are required"})
			return
		}

		baseDir := os.Getenv("IMAGE_DIR")
		if baseDir == "" {
			baseDir = "./images"
		}

		path := filepath.Join(baseDir, filepath.Clean("/"+name), filepath.Clean("/"+photo))
		if !strings.HasPrefix(path, filepath.Clean(baseDir)+string(os.PathSeparator)) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image path"})
			return
		}

		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Image not found!"})
			return
		}

		c.File(path)
	}
}
