package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	inventoryapp "github.com/Zxyilyy/cooked/internal/application/inventory"
)

// InventoryHandler handles raw-material and asset API endpoints
type InventoryHandler struct {
	BaseHandler
	service *inventoryapp.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *inventoryapp.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// ReceiveStockRequest represents a request to book a purchased lot
type ReceiveStockRequest struct {
	Name     string          `json:"name" binding:"required"`
	Type     string          `json:"type" binding:"required,oneof=ingredient packaging tool consumable"`
	Unit     string          `json:"unit" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Count    decimal.Decimal `json:"count" binding:"required"`
	Date     string          `json:"date"`
}

// UpdateStockRequest represents a manual stock correction
type UpdateStockRequest struct {
	CurrentStock decimal.Decimal `json:"currentStock"`
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/batches", h.ListBatches)
		inventory.POST("/batches", h.ReceiveStock)
		inventory.PUT("/batches/:id/stock", h.UpdateStock)
		inventory.DELETE("/batches/:id", h.DeleteBatch)
		inventory.GET("/materials", h.ListMaterials)
		inventory.GET("/financials", h.Financials)
	}
}

// ListBatches returns every batch in collection order
func (h *InventoryHandler) ListBatches(c *gin.Context) {
	h.Success(c, h.service.ListBatches(c.Request.Context()))
}

// ReceiveStock books a purchased lot
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var req ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	batch, err := h.service.ReceiveStock(c.Request.Context(), inventoryapp.ReceiveStockInput{
		Name:     req.Name,
		Type:     req.Type,
		Unit:     req.Unit,
		Quantity: req.Quantity,
		Price:    req.Price,
		Count:    req.Count,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, batch)
}

// UpdateStock overwrites a batch's remaining stock
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	batch, err := h.service.SetStock(c.Request.Context(), c.Param("id"), req.CurrentStock)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, batch)
}

// DeleteBatch removes a batch from the ledger
func (h *InventoryHandler) DeleteBatch(c *gin.Context) {
	if err := h.service.DeleteBatch(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMaterials returns the aggregated material view, optionally filtered
func (h *InventoryHandler) ListMaterials(c *gin.Context) {
	h.Success(c, h.service.Materials(c.Request.Context(), c.Query("search")))
}

// Financials returns the derived capital summary
func (h *InventoryHandler) Financials(c *gin.Context) {
	h.Success(c, h.service.Financials(c.Request.Context()))
}
