package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	store   store.Store
	service *storefront.Service
	logger  *logger.Logger
}

func NewProductHandler(st store.Store, svc *storefront.Service, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		store:   st,
		service: svc,
		logger:  logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := store.ProductFilter{
		Search:       c.Query("search"),
		Availability: c.Query("availability"),
		Page:         page,
		Limit:        limit,
	}.Normalize()

	products, total, err := h.store.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"pagination": gin.H{
			"page":  filter.Page,
			"limit": filter.Limit,
			"total": total,
		},
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.service.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, h.logger, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// Variants returns the attribute groups and options a shopper can pick from.
func (h *ProductHandler) Variants(c *gin.Context) {
	view, err := h.service.Catalog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load variants")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

// Quote prices the posted selection.
func (h *ProductHandler) Quote(c *gin.Context) {
	var req storefront.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to quote selection")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quote})
}
