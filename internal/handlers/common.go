package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/portal-cosmico/backend/pkg/errors"
)

// respondError maps service errors onto HTTP responses. Structured purchase
// errors keep their crystal breakdown so the client can render it.
func respondError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *apperrors.AppError:
		c.JSON(e.Code, gin.H{"error": e.Message})
	case *apperrors.PurchaseError:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    e.Error(),
			"required": e.Required,
			"current":  e.Current,
			"missing":  e.Missing,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
