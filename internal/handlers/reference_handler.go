package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/currency"
	"ledgerbook/internal/tax"
)

// ReferenceHandler serves the static reference data forms build their select
// options from: the supported currencies and the built-in tax codes.
type ReferenceHandler struct {
	currencies *currency.Registry
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(currencies *currency.Registry) *ReferenceHandler {
	return &ReferenceHandler{currencies: currencies}
}

type currencyOption struct {
	Code  string `json:"code"`
	Scale int    `json:"scale"`
}

type taxCodeOption struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Rate     string `json:"rate"`
	Variable bool   `json:"variable"`
}

// ListCurrencies handles listing the supported currencies with their
// minor-unit scale, sorted by code.
func (h *ReferenceHandler) ListCurrencies(c *gin.Context) {
	codes := h.currencies.Codes()
	sort.Strings(codes)

	options := make([]currencyOption, 0, len(codes))
	for _, code := range codes {
		info, err := h.currencies.Info(code)
		if err != nil {
			continue
		}
		options = append(options, currencyOption{Code: code, Scale: info.Scale})
	}
	c.JSON(http.StatusOK, gin.H{"currencies": options})
}

// ListTaxCodes handles listing the built-in tax codes in display order.
func (h *ReferenceHandler) ListTaxCodes(c *gin.Context) {
	codes := tax.Codes()
	options := make([]taxCodeOption, 0, len(codes))
	for _, code := range codes {
		info := tax.CodeInfo(code)
		options = append(options, taxCodeOption{
			Code:     code,
			Label:    tax.Label(code),
			Rate:     info.Rate,
			Variable: info.Variable,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tax_codes": options})
}
