package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartAPI "github.com/freshgrocer/storefront-service/internal/cart/api"
	catalogRepo "github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/wishlist/domain"
	wishlistRepo "github.com/freshgrocer/storefront-service/internal/wishlist/repository"
	"github.com/freshgrocer/storefront-service/internal/wishlist/service"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(ws service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: ws}
}

func (h *WishlistHandler) RegisterRoutes(router *gin.RouterGroup) {
	wishlistRoutes := router.Group("/wishlist")
	{
		wishlistRoutes.GET("", h.ListItems)
		wishlistRoutes.POST("/items", h.AddItem)
		wishlistRoutes.DELETE("/items/:product_id", h.RemoveItem)
	}
}

func (h *WishlistHandler) ListItems(c *gin.Context) {
	items, err := h.wishlistService.ListItems(c.Request.Context(), cartAPI.OwnerID(c))
	if err != nil {
		logger.Error("ListItems: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wishlist"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req domain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddItem: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	err := h.wishlistService.AddItem(c.Request.Context(), cartAPI.OwnerID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("AddItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to wishlist"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	err := h.wishlistService.RemoveItem(c.Request.Context(), cartAPI.OwnerID(c), c.Param("product_id"))
	if err != nil {
		if errors.Is(err, wishlistRepo.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("RemoveItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.Status(http.StatusNoContent)
}
