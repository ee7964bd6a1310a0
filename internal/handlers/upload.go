package handlers

import (
	"errors"
	"net/http"

	"clean-backend/internal/upload"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the form boundary and the folder field
// on top of the file itself.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploads *upload.Service
}

func NewUploadHandler(uploads *upload.Service) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload reads the "image" file and optional "folder" field and returns
// {url, originalName, size}. No content row is written.
func (h *UploadHandler) Upload(c *gin.Context) {
	limit := h.uploads.MaxSize() + multipartOverhead
	if c.Request.ContentLength > limit {
		respondError(c, "Image", upload.ErrPayloadTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, "Image", upload.ErrPayloadTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := h.uploads.Upload(c.Request.Context(), upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, c.PostForm("folder"))
	if err != nil {
		respondError(c, "Image", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
