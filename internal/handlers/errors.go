package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"clean-backend/internal/content"
	"clean-backend/internal/store"
	"clean-backend/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps a domain error to its status code. name labels the
// resource in not-found messages.
func respondError(c *gin.Context, name string, err error) {
	var verr *content.ValidationError
	var upstream *upload.UpstreamError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "fields": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": name + " not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": name + " already exists"})
	case errors.Is(err, upload.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, upload.ErrUnsupportedMediaType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.As(err, &upstream):
		log.Error().Err(err).Str("path", c.FullPath()).Msg("upload storage failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON decodes the body into dst, reporting decode failures as field
// errors. It writes the response and returns false on failure.
func bindJSON(c *gin.Context, name string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, name, content.DecodeError(err))
		return false
	}
	return true
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}
