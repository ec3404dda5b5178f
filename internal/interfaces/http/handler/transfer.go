package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	transferapp "github.com/Zxyilyy/cooked/internal/application/transfer"
)

// TransferHandler handles full-ledger backup export and import
type TransferHandler struct {
	BaseHandler
	service *transferapp.Service
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(service *transferapp.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// RegisterRoutes registers backup routes
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.Export)
		backup.POST("/import", h.Import)
	}
}

// Export returns the full ledger as a backup document
func (h *TransferHandler) Export(c *gin.Context) {
	h.Success(c, h.service.Export(c.Request.Context()))
}

// Import replaces ledger collections from a backup document. The request
// body is the backup JSON itself.
func (h *TransferHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	if err := h.service.Import(c.Request.Context(), raw); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
