package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
	"github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/catalog/service"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/pricing"
)

type ProductHandler struct {
	catalogService service.CatalogService
	authRequired   gin.HandlerFunc
}

func NewProductHandler(cs service.CatalogService, authRequired gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{catalogService: cs, authRequired: authRequired}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)
		productRoutes.POST("", h.authRequired, h.CreateProduct)
	}
}

// ListProducts serves the shop page: optional search, category and price
// range filters, conjunctive.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), criteria)
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	product, err := h.catalogService.GetProductDetails(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("CreateProduct: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, result, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		logger.Error("CreateProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	if !result.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": result.Violations})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func parseCriteria(c *gin.Context) (pricing.Criteria, error) {
	criteria := pricing.Criteria{
		SearchText: c.Query("search"),
		Categories: c.QueryArray("category"),
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return pricing.Criteria{}, errors.New("min_price must be a decimal number")
		}
		criteria.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return pricing.Criteria{}, errors.New("max_price must be a decimal number")
		}
		criteria.MaxPrice = &max
	}
	return criteria, nil
}
