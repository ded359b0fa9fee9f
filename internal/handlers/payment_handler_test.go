package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
)

// --- mock payment service ---

type mockPaymentService struct {
	listSettlementsFn   func(invoice *models.Transaction) ([]models.Transaction, error)
	extractFormValuesFn func(invoice *models.Transaction, settlements []models.Transaction) []services.PaymentForm
	saveFn              func(invoice *models.Transaction, form services.PaymentForm) (uint, error)
	balancesFn          func(invoice *models.Transaction, settlements []models.Transaction) map[string]int64
}

func (m *mockPaymentService) ListSettlements(invoice *models.Transaction) ([]models.Transaction, error) {
	if m.listSettlementsFn != nil {
		return m.listSettlementsFn(invoice)
	}
	return nil, nil
}

func (m *mockPaymentService) ExtractFormValues(invoice *models.Transaction, settlements []models.Transaction) []services.PaymentForm {
	if m.extractFormValuesFn != nil {
		return m.extractFormValuesFn(invoice, settlements)
	}
	return []services.PaymentForm{{Currency: "USD"}}
}

func (m *mockPaymentService) Save(invoice *models.Transaction, form services.PaymentForm) (uint, error) {
	if m.saveFn != nil {
		return m.saveFn(invoice, form)
	}
	return 1, nil
}

func (m *mockPaymentService) Balances(invoice *models.Transaction, settlements []models.Transaction) map[string]int64 {
	if m.balancesFn != nil {
		return m.balancesFn(invoice, settlements)
	}
	return map[string]int64{}
}

// verify interface compliance
var _ services.PaymentServicer = (*mockPaymentService)(nil)

func setupPaymentRouter(handler *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/invoices/:id/payments", handler.ListPayments)
	r.POST("/invoices/:id/payments", handler.SavePayment)
	return r
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("returns payments and balances", func(t *testing.T) {
		saleSvc := &mockSaleService{
			getSaleFn: func(id uint) (*models.Transaction, error) {
				return &models.Transaction{Base: models.Base{ID: id}, Type: models.TypeInvoice}, nil
			},
		}
		paySvc := &mockPaymentService{
			extractFormValuesFn: func(invoice *models.Transaction, settlements []models.Transaction) []services.PaymentForm {
				return []services.PaymentForm{
					{TransactionID: 3, Amount: "60.00", Currency: "USD"},
					{Currency: "USD"},
				}
			},
			balancesFn: func(invoice *models.Transaction, settlements []models.Transaction) map[string]int64 {
				return map[string]int64{"USD": 4000}
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(saleSvc, paySvc))

		rec := doRequest(r, http.MethodGet, "/invoices/7/payments", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		payments := result["payments"].([]interface{})
		if len(payments) != 2 {
			t.Errorf("expected 2 payment rows, got %d", len(payments))
		}
		balances := result["balances"].(map[string]interface{})
		if balances["USD"].(float64) != 4000 {
			t.Errorf("expected balance 4000, got %v", balances["USD"])
		}
	})

	t.Run("returns 404 for missing invoice", func(t *testing.T) {
		saleSvc := &mockSaleService{
			getSaleFn: func(id uint) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(saleSvc, &mockPaymentService{}))

		rec := doRequest(r, http.MethodGet, "/invoices/99/payments", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPaymentHandler_SavePayment(t *testing.T) {
	t.Run("returns 201 for new payment", func(t *testing.T) {
		paySvc := &mockPaymentService{
			saveFn: func(invoice *models.Transaction, form services.PaymentForm) (uint, error) {
				return 12, nil
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(&mockSaleService{}, paySvc))

		rec := doRequest(r, http.MethodPost, "/invoices/7/payments",
			`{"date":"2024-05-10","amount":"60","currency":"USD"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"].(float64) != 12 {
			t.Errorf("expected id 12, got %v", result["id"])
		}
	})

	t.Run("returns 200 for existing payment", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockSaleService{}, &mockPaymentService{}))

		rec := doRequest(r, http.MethodPost, "/invoices/7/payments",
			`{"transaction_id":3,"date":"2024-05-10","amount":"65","currency":"USD"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 422 on validation failure", func(t *testing.T) {
		paySvc := &mockPaymentService{
			saveFn: func(invoice *models.Transaction, form services.PaymentForm) (uint, error) {
				return 0, apperrors.FieldErrors{"amount": "Invalid amount"}
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(&mockSaleService{}, paySvc))

		rec := doRequest(r, http.MethodPost, "/invoices/7/payments",
			`{"date":"2024-05-10","amount":"abc","currency":"USD"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("rejects unknown currency at binding", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockSaleService{}, &mockPaymentService{}))

		rec := doRequest(r, http.MethodPost, "/invoices/7/payments",
			`{"date":"2024-05-10","amount":"60","currency":"XXX"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects malformed date at binding", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockSaleService{}, &mockPaymentService{}))

		rec := doRequest(r, http.MethodPost, "/invoices/7/payments",
			`{"date":"10 May 2024","amount":"60","currency":"USD"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
