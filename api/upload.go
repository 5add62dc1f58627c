package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zerowaste/zerowaste-api/external/blobstore"
)

const maxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// uploadImage stores a donation image and returns its public URL
func (s *Server) uploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize+1<<20)

	header, err := c.FormFile("image")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters.withDetails([]FieldError{
			{Field: "image", Message: "is required"},
		}), err)
		return
	}

	if header.Size > maxImageSize {
		abortWithEncoding(c, http.StatusBadRequest, errorImageTooLarge)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidImage)
		return
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		ext = strings.ToLower(filepath.Ext(header.Filename))
	}
	fileName := uuid.New().String() + ext

	f, err := header.Open()
	if shouldInterupt(err, c) {
		return
	}
	defer f.Close()

	url, err := s.images.Put(c, fileName, contentType, f, header.Size)
	if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusCreated, gin.H{
		"message":  "image uploaded",
		"imageUrl": url,
		"fileName": fileName,
	})
}

func (s *Server) deleteImage(c *gin.Context) {
	err := s.images.Delete(c, c.Param("fileName"))
	if err == blobstore.ErrInvalidKey {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{"message": "image deleted"})
}
