package handler

import (
	"net/http"

	"mealdash-be/internal/middleware"
	"mealdash-be/internal/store"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	svc store.Service
}

func NewStoreHandler(svc store.Service) *StoreHandler {
	return &StoreHandler{svc: svc}
}

func (h *StoreHandler) Search(c *gin.Context) {
	params := store.SearchParams{
		CategoryID: queryUint(c, "category_id"),
		Limit:      queryInt32(c, "limit"),
		Page:       queryInt32(c, "page"),
	}
	if name := c.Query("name"); name != "" {
		params.Name = &name
	}

	stores, err := h.svc.SearchStores(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	s, err := h.svc.GetStore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

type storeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Image       *string `json:"image"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
}

func (h *StoreHandler) Create(c *gin.Context) {
	ownerID, _ := middleware.CurrentUserID(c)

	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s, err := h.svc.CreateStore(c.Request.Context(), store.CreateStoreParams{
		Name:        req.Name,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Address:     req.Address,
		OwnerID:     ownerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s, err := h.svc.UpdateStore(c.Request.Context(), store.UpdateStoreParams{
		StoreID:     id,
		Name:        req.Name,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteStore(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StoreHandler) ListContactInfos(c *gin.Context) {
	storeID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	infos, err := h.svc.GetContactInfos(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, infos)
}

type contactInfoRequest struct {
	Value *string `json:"value"`
}

func (h *StoreHandler) AddContactInfo(c *gin.Context) {
	storeID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req contactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	info, err := h.svc.AddContactInfo(c.Request.Context(), storeID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, info)
}

func (h *StoreHandler) UpdateContactInfo(c *gin.Context) {
	infoID, ok := uintParam(c, "info_id")
	if !ok {
		return
	}

	var req contactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	info, err := h.svc.UpdateContactInfo(c.Request.Context(), infoID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *StoreHandler) DeleteContactInfo(c *gin.Context) {
	infoID, ok := uintParam(c, "info_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteContactInfo(c.Request.Context(), infoID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
