package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	productionapp "github.com/Zxyilyy/cooked/internal/application/production"
	reportapp "github.com/Zxyilyy/cooked/internal/application/report"
)

// ProductionHandler handles recipe authoring and production run endpoints
type ProductionHandler struct {
	BaseHandler
	service *productionapp.Service
	reports *reportapp.Service
}

// NewProductionHandler creates a new ProductionHandler
func NewProductionHandler(service *productionapp.Service, reports *reportapp.Service) *ProductionHandler {
	return &ProductionHandler{service: service, reports: reports}
}

// AddRecipeLineRequest names the aggregated material to add
type AddRecipeLineRequest struct {
	Material string `json:"material" binding:"required"`
}

// SetRecipeQuantityRequest updates a line's consumed quantity
type SetRecipeQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ProduceRequest describes the product of a run. A cutCount of zero yields
// one whole unit; a positive cutCount yields that many slices.
type ProduceRequest struct {
	Product  string `json:"product" binding:"required"`
	Size     string `json:"size"`
	CutCount int    `json:"cutCount" binding:"min=0"`
}

// RegisterRoutes registers production routes
func (h *ProductionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	production := rg.Group("/production")
	{
		production.GET("/recipe", h.GetRecipe)
		production.POST("/recipe/lines", h.AddRecipeLine)
		production.PUT("/recipe/lines/:id", h.SetRecipeQuantity)
		production.DELETE("/recipe/lines/:id", h.RemoveRecipeLine)
		production.DELETE("/recipe", h.ClearRecipe)
		production.POST("/runs", h.Produce)
		production.DELETE("/runs/:id", h.Reverse)
		production.GET("/logs", h.LogsByDay)
	}
}

// GetRecipe returns the recipe being authored
func (h *ProductionHandler) GetRecipe(c *gin.Context) {
	h.Success(c, h.service.Recipe(c.Request.Context()))
}

// AddRecipeLine adds a material to the recipe
func (h *ProductionHandler) AddRecipeLine(c *gin.Context) {
	var req AddRecipeLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	recipe, err := h.service.AddRecipeLine(c.Request.Context(), req.Material)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, recipe)
}

// SetRecipeQuantity updates the consumed quantity of a recipe line
func (h *ProductionHandler) SetRecipeQuantity(c *gin.Context) {
	var req SetRecipeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	recipe, err := h.service.SetRecipeQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, recipe)
}

// RemoveRecipeLine deletes a line from the recipe
func (h *ProductionHandler) RemoveRecipeLine(c *gin.Context) {
	recipe, err := h.service.RemoveRecipeLine(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, recipe)
}

// ClearRecipe drops every line of the recipe
func (h *ProductionHandler) ClearRecipe(c *gin.Context) {
	h.service.ClearRecipe(c.Request.Context())
	h.NoContent(c)
}

// Produce executes the current recipe as one production run
func (h *ProductionHandler) Produce(c *gin.Context) {
	var req ProduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Produce(c.Request.Context(), productionapp.ProduceInput{
		Product:  req.Product,
		Size:     req.Size,
		CutCount: req.CutCount,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// Reverse undoes a past production run
func (h *ProductionHandler) Reverse(c *gin.Context) {
	if err := h.service.Reverse(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// LogsByDay returns production log entries grouped by calendar day
func (h *ProductionHandler) LogsByDay(c *gin.Context) {
	h.Success(c, h.reports.ProductionByDay(c.Request.Context()))
}
