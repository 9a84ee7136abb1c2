package handler

import (
	"net/http"

	"mealdash-be/internal/cart"
	"mealdash-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	view, err := h.svc.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type addItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// Omitted quantity means one item.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.svc.AddItem(c.Request.Context(), cart.AddItemParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	productID, ok := uintParam(c, "product_id")
	if !ok {
		return
	}

	err := h.svc.RemoveItem(c.Request.Context(), cart.RemoveItemParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	if err := h.svc.ClearCart(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
