package handlers

import (
	"errors"
	"net/http"

	"github.com/caowens/lifted-api/internal/quotes"
	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// respondError is the single boundary where service errors become HTTP
// statuses. Anything outside the closed taxonomy maps to a generic 500;
// store error text never reaches the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quotes.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, quotes.ErrInvalidScope):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope parameter"})
	case errors.Is(err, quotes.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required for private/all quotes"})
	case errors.Is(err, quotes.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this quote"})
	case errors.Is(err, quotes.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
