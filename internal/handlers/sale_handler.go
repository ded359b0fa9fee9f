package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/services"
)

// SaleHandler handles sale and invoice requests.
type SaleHandler struct {
	saleService services.SaleServicer
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService services.SaleServicer) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// ListSales handles listing sales and invoices, paginated, most recent first.
func (h *SaleHandler) ListSales(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.saleService.ListSales(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSale handles retrieving a single sale or invoice, returned both as the
// raw transaction and in editable form shape.
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.saleService.GetSale(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction": transaction,
		"form":        h.saleService.ExtractFormValues(transaction),
	})
}

// CreateSale handles the creation of a new sale or invoice from form data.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var form services.SaleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if form.Type != models.TypeSale && form.Type != models.TypeInvoice {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be sale or invoice"))
		return
	}

	transaction := &models.Transaction{}
	savedID, err := h.saleService.Save(transaction, form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": savedID, "transaction": transaction})
}

// UpdateSale handles re-saving an existing sale or invoice from form data.
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form services.SaleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.saleService.GetSale(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	// The stored type wins once the transaction exists.
	if form.Type == "" {
		form.Type = transaction.Type
	}

	savedID, err := h.saleService.Save(transaction, form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": savedID, "transaction": transaction})
}
