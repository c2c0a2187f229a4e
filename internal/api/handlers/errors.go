package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/storefront"
	"storefront/internal/variants"

	"github.com/gin-gonic/gin"
)

// respondError maps service and engine errors onto the JSON error envelope.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	var incomplete *variants.IncompleteSelectionError

	switch {
	case storefront.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   incomplete.Error(),
			"missing": incomplete.Missing,
		})
	case errors.Is(err, variants.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storefront.ErrUnknownOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storefront.ErrOptionUnavailable),
		errors.Is(err, storefront.ErrOutOfStock),
		errors.Is(err, storefront.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
