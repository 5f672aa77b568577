package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshgrocer/storefront-service/internal/cart/domain"
	cartRepo "github.com/freshgrocer/storefront-service/internal/cart/repository"
	"github.com/freshgrocer/storefront-service/internal/cart/service"
	catalogRepo "github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
)

const sessionHeader = "X-Session-ID"

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.PATCH("/items/:product_id", h.ChangeQuantity)
		cartRoutes.DELETE("/items/:product_id", h.RemoveItem)
		cartRoutes.DELETE("", h.ClearCart)
	}
}

// OwnerID resolves who the cart belongs to: the authenticated user when the
// auth middleware ran, else the guest session header. Guests without a
// session get one issued and echoed back.
func OwnerID(c *gin.Context) string {
	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(string); ok && id != "" {
			return id
		}
	}
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(sessionHeader, sessionID)
	return sessionID
}

func (h *CartHandler) GetCart(c *gin.Context) {
	summary, err := h.cartService.GetCart(c.Request.Context(), OwnerID(c))
	if err != nil {
		logger.Error("GetCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req domain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddItem: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	summary, err := h.cartService.AddItem(c.Request.Context(), OwnerID(c), req)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("AddItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req domain.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("ChangeQuantity: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	summary, err := h.cartService.ChangeQuantity(c.Request.Context(), OwnerID(c), c.Param("product_id"), req.Delta)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) || errors.Is(err, service.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("ChangeQuantity: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	summary, err := h.cartService.RemoveItem(c.Request.Context(), OwnerID(c), c.Param("product_id"))
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) || errors.Is(err, service.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("RemoveItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), OwnerID(c)); err != nil {
		logger.Error("ClearCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.Status(http.StatusNoContent)
}
