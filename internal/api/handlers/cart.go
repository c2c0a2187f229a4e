package handlers

import (
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service *storefront.Service
	logger  *logger.Logger
}

func NewCartHandler(svc *storefront.Service, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req storefront.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.AddToCart(c.Request.Context(), c.Param("cartId"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (h *CartHandler) List(c *gin.Context) {
	items, err := h.service.CartItems(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch cart items")
		return
	}

	var subtotal float64
	for i := range items {
		subtotal += items[i].LineTotal()
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     items,
		"subtotal": subtotal,
	})
}
