package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/services"
)

// PaymentHandler handles payments made against invoices.
type PaymentHandler struct {
	saleService    services.SaleServicer
	paymentService services.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(saleService services.SaleServicer, paymentService services.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{saleService: saleService, paymentService: paymentService}
}

// ListPayments handles listing an invoice's payments along with its
// outstanding balance per currency.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.saleService.GetSale(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settlements, err := h.paymentService.ListSettlements(invoice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": h.paymentService.ExtractFormValues(invoice, settlements),
		"balances": h.paymentService.Balances(invoice, settlements),
	})
}

// SavePayment handles creating or updating a payment against an invoice.
func (h *PaymentHandler) SavePayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form services.PaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.saleService.GetSale(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	savedID, err := h.paymentService.Save(invoice, form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if form.TransactionID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}
