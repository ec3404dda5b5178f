package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	dispositionapp "github.com/Zxyilyy/cooked/internal/application/disposition"
)

// DispositionHandler handles finished-good disposition and sales records
type DispositionHandler struct {
	BaseHandler
	service *dispositionapp.Service
}

// NewDispositionHandler creates a new DispositionHandler
func NewDispositionHandler(service *dispositionapp.Service) *DispositionHandler {
	return &DispositionHandler{service: service}
}

// SellRequest books a sale of a finished good
type SellRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price"`
}

// DiscardRequest writes off a finished good as loss
type DiscardRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// RegisterRoutes registers disposition routes
func (h *DispositionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	goods := rg.Group("/finished-goods")
	{
		goods.GET("", h.ListGoods)
		goods.POST("/:id/sell", h.Sell)
		goods.POST("/:id/discard", h.Discard)
	}
	sales := rg.Group("/sales")
	{
		sales.GET("/records", h.ListRecords)
		sales.DELETE("/records/:id", h.DeleteRecord)
	}
}

// ListGoods returns the finished goods on hand
func (h *DispositionHandler) ListGoods(c *gin.Context) {
	h.Success(c, h.service.ListGoods(c.Request.Context()))
}

// Sell books a sale of the finished good
func (h *DispositionHandler) Sell(c *gin.Context) {
	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.service.Sell(c.Request.Context(), c.Param("id"), req.Quantity, req.Price)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, record)
}

// Discard writes off part of a finished good
func (h *DispositionHandler) Discard(c *gin.Context) {
	var req DiscardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.service.Discard(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, record)
}

// ListRecords returns all sales records, newest first
func (h *DispositionHandler) ListRecords(c *gin.Context) {
	h.Success(c, h.service.ListRecords(c.Request.Context()))
}

// DeleteRecord removes a sales record
func (h *DispositionHandler) DeleteRecord(c *gin.Context) {
	if err := h.service.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
