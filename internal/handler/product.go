package handler

import (
	"net/http"

	"mealdash-be/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func queryDecimal(c *gin.Context, name string) *decimal.Decimal {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func (h *ProductHandler) Search(c *gin.Context) {
	params := product.SearchParams{
		StoreID:  queryUint(c, "store_id"),
		MinPrice: queryDecimal(c, "min_price"),
		MaxPrice: queryDecimal(c, "max_price"),
		Limit:    queryInt32(c, "limit"),
		Page:     queryInt32(c, "page"),
	}
	if name := c.Query("name"); name != "" {
		params.Name = &name
	}

	products, err := h.svc.SearchProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type productRequest struct {
	Name        string          `json:"name" binding:"required"`
	Image       *string         `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	StoreID     uint            `json:"store_id"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), product.CreateProductParams{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
		StoreID:     req.StoreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.UpdateProduct(c.Request.Context(), product.UpdateProductParams{
		ProductID:   id,
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) ListCombos(c *gin.Context) {
	combos, err := h.svc.GetCombos(c.Request.Context(), queryUint(c, "store_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, combos)
}

func (h *ProductHandler) GetCombo(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	combo, err := h.svc.GetCombo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, combo)
}

func (h *ProductHandler) CreateCombo(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	combo, err := h.svc.CreateCombo(c.Request.Context(), product.CreateComboParams{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
		StoreID:     req.StoreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, combo)
}

func (h *ProductHandler) DeleteCombo(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCombo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
