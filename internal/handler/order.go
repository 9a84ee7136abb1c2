package handler

import (
	"net/http"

	"mealdash-be/internal/middleware"
	"mealdash-be/internal/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	CartID          *uint  `json:"cart_id"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	clientID, _ := middleware.CurrentUserID(c)

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	o, err := h.svc.CreateOrder(c.Request.Context(), order.CreateOrderParams{
		ClientID:        clientID,
		DeliveryAddress: req.DeliveryAddress,
		CartID:          req.CartID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	o, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	clientID, _ := middleware.CurrentUserID(c)

	params := order.ListParams{
		ClientID: &clientID,
		Limit:    queryInt32(c, "limit"),
		Page:     queryInt32(c, "page"),
	}
	if s := c.Query("status"); s != "" {
		status := order.Status(s)
		params.Status = &status
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

type assignCourierRequest struct {
	CourierID uint `json:"courier_id" binding:"required"`
}

func (h *OrderHandler) AssignCourier(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req assignCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	o, err := h.svc.AssignCourier(c.Request.Context(), id, req.CourierID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

type advanceStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req advanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	o, err := h.svc.AdvanceStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}
