package handler

import (
	"net/http"

	"mealdash-be/internal/middleware"
	"mealdash-be/internal/review"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

type storeReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) SubmitStoreReview(c *gin.Context) {
	clientID, _ := middleware.CurrentUserID(c)

	storeID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req storeReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rv, err := h.svc.SubmitStoreReview(c.Request.Context(), review.SubmitStoreReviewParams{
		ClientID: clientID,
		StoreID:  storeID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) ListStoreReviews(c *gin.Context) {
	storeID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.svc.ListStoreReviews(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

type courierReviewRequest struct {
	Rating int `json:"rating" binding:"required"`
}

func (h *ReviewHandler) SubmitCourierReview(c *gin.Context) {
	clientID, _ := middleware.CurrentUserID(c)

	courierID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req courierReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rv, err := h.svc.SubmitCourierReview(c.Request.Context(), review.SubmitCourierReviewParams{
		ClientID:  clientID,
		CourierID: courierID,
		Rating:    req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) ListCourierReviews(c *gin.Context) {
	courierID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.svc.ListCourierReviews(c.Request.Context(), courierID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
