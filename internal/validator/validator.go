// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ledgerbook/internal/currency"
	"ledgerbook/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register(currencies *currency.Registry) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency_code", validateCurrencyCode(currencies))
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("account_type", validateAccountType)
		_ = v.RegisterValidation("actor_type", validateActorType)
		_ = v.RegisterValidation("date_only", validateDateOnly)
	}
}

func validateCurrencyCode(currencies *currency.Registry) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return currencies.Has(fl.Field().String())
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "sale", "invoice", "invoice-payment", "purchase", "bill", "bill-payment", "journal":
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asset", "liability", "equity", "revenue", "expense":
		return true
	}
	return false
}

func validateActorType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "customer", "supplier":
		return true
	}
	return false
}

func validateDateOnly(fl validator.FieldLevel) bool {
	return models.IsDateOnly(fl.Field().String())
}
