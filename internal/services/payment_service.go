package services

import (
	"ledgerbook/internal/currency"
	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
)

// paymentService handles payments made against invoices.
type paymentService struct {
	store      TransactionStore
	currencies *currency.Registry
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(store TransactionStore, currencies *currency.Registry) PaymentServicer {
	return &paymentService{
		store:      store,
		currencies: currencies,
	}
}

// ListSettlements retrieves the invoice-payment transactions that settle the
// given invoice, oldest first.
func (s *paymentService) ListSettlements(invoice *models.Transaction) ([]models.Transaction, error) {
	settlements, err := s.store.ListSettlements(invoice.ID)
	if err != nil {
		return nil, err
	}
	filtered := settlements[:0]
	for _, p := range settlements {
		if p.Type == models.TypeInvoicePayment {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ExtractFormValues projects existing settlements into payment rows, plus a
// trailing blank row for entering the next payment.
func (s *paymentService) ExtractFormValues(invoice *models.Transaction, settlements []models.Transaction) []PaymentForm {
	var forms []PaymentForm
	for _, p := range settlements {
		for i := range p.Elements {
			e := &p.Elements[i]
			if e.Drcr == models.Credit && e.AccountID == models.ReservedAccountsReceivable {
				forms = append(forms, PaymentForm{
					TransactionID: p.ID,
					Date:          p.Date,
					Description:   p.Description,
					Amount:        s.formatted(e.Amount, e.Currency),
					Currency:      e.Currency,
				})
			}
		}
	}

	blank := PaymentForm{}
	if len(invoice.Elements) > 0 {
		blank.Currency = invoice.Elements[0].Currency
	}
	forms = append(forms, blank)

	return forms
}

// Save creates or updates a single payment against the invoice. A payment is
// a two-element transaction: a cash debit and a receivable credit carrying
// the settlement link back to the invoice.
func (s *paymentService) Save(invoice *models.Transaction, form PaymentForm) (uint, error) {
	amount, err := s.currencies.ParseFormatted(form.Amount, form.Currency)
	if err != nil {
		return 0, apperrors.FieldErrors{"amount": "Invalid amount"}
	}
	if !models.IsDateOnly(form.Date) {
		return 0, apperrors.FieldErrors{"date": "Date is required"}
	}

	var payment *models.Transaction
	if form.TransactionID != 0 {
		payment, err = s.store.Load(form.TransactionID, models.TypeInvoicePayment)
		if err != nil {
			return 0, err
		}
		payment.Description = form.Description
		payment.Date = form.Date
	} else {
		if amount <= 0 {
			return 0, apperrors.FieldErrors{"amount": "No amount specified"}
		}
		payment = &models.Transaction{
			Type:        models.TypeInvoicePayment,
			Date:        form.Date,
			Description: form.Description,
			ActorID:     invoice.ActorID,
		}
	}

	debit := models.Element{
		AccountID: models.ReservedCash,
		Drcr:      models.Debit,
		Amount:    amount,
		Currency:  form.Currency,
	}
	credit := models.Element{
		AccountID: models.ReservedAccountsReceivable,
		Drcr:      models.Credit,
		Amount:    amount,
		Currency:  form.Currency,
		SettleID:  invoice.ID,
	}
	if form.TransactionID != 0 {
		if e := payment.FirstDebitElement(); e != nil {
			debit.ID = e.ID
		}
		if e := payment.FirstCreditElement(); e != nil {
			credit.ID = e.ID
		}
	}

	if err := payment.MergeElements([]models.Element{debit, credit}); err != nil {
		return 0, err
	}
	if err := s.store.Save(payment); err != nil {
		return 0, err
	}
	payment.CondenseElements()

	return payment.ID, nil
}

// Balances nets the invoice and its settlements over the shared receivable
// account, per currency. A positive balance is the unpaid portion; zero
// means fully settled.
func (s *paymentService) Balances(invoice *models.Transaction, settlements []models.Transaction) map[string]int64 {
	var receivable []models.Element
	all := append([]models.Transaction{*invoice}, settlements...)
	for i := range all {
		for _, e := range all[i].Elements {
			if e.AccountID == models.ReservedAccountsReceivable {
				receivable = append(receivable, e)
			}
		}
	}
	return models.GetBalances(receivable)
}

func (s *paymentService) formatted(amount int64, cur string) string {
	text, err := s.currencies.ToFormatted(amount, cur)
	if err != nil {
		return ""
	}
	return text
}
