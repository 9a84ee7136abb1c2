package handler

import (
	"net/http"

	"mealdash-be/internal/courier"
	"mealdash-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CourierHandler struct {
	svc courier.Service
}

func NewCourierHandler(svc courier.Service) *CourierHandler {
	return &CourierHandler{svc: svc}
}

func (h *CourierHandler) List(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	couriers, err := h.svc.ListCouriers(c.Request.Context(), onlyAvailable)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, couriers)
}

func (h *CourierHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	cr, err := h.svc.GetCourier(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cr)
}

// Register enrolls the authenticated user as a courier.
func (h *CourierHandler) Register(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	cr, err := h.svc.RegisterCourier(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cr)
}

type setTypeRequest struct {
	Type courier.Type `json:"type" binding:"required"`
}

func (h *CourierHandler) SetType(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req setTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.SetType(c.Request.Context(), id, req.Type); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourierHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCourier(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
