package services

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"ledgerbook/internal/currency"
	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/tax"
)

// saleService handles sale and invoice business logic.
type saleService struct {
	db         *gorm.DB
	store      TransactionStore
	currencies *currency.Registry
}

// NewSaleService creates a new SaleServicer.
func NewSaleService(db *gorm.DB, store TransactionStore, currencies *currency.Registry) SaleServicer {
	return &saleService{
		db:         db,
		store:      store,
		currencies: currencies,
	}
}

// GetSale retrieves a sale or invoice with its elements.
func (s *saleService) GetSale(id uint) (*models.Transaction, error) {
	return s.store.Load(id, models.TypeSale, models.TypeInvoice)
}

// ListSales retrieves a paginated list of sales and invoices.
func (s *saleService) ListSales(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	return s.store.List([]models.TransactionType{models.TypeSale, models.TypeInvoice}, page)
}

// ExtractFormValues projects a transaction's credit side onto the editable
// form: top-level lines with their tax children nested under them. Tax lines
// whose parent is gone are promoted to top-level rather than dropped.
func (s *saleService) ExtractFormValues(t *models.Transaction) SaleForm {
	form := SaleForm{
		Type:        t.Type,
		ActorID:     t.ActorID,
		Date:        t.Date,
		Description: t.Description,
	}

	var children []*models.Element
	for i := range t.Elements {
		e := &t.Elements[i]
		if e.Drcr != models.Credit {
			continue
		}
		if e.IsTopLevel() {
			form.Elements = append(form.Elements, SaleFormElement{
				ElementID:   e.ID,
				AccountID:   e.AccountID,
				Amount:      s.formatted(e.Amount, e.Currency),
				Currency:    e.Currency,
				UseGross:    e.UseGross,
				GrossAmount: s.formatted(e.GrossAmount, e.Currency),
				Description: e.Description,
			})
		} else {
			children = append(children, e)
		}
	}

	for _, e := range children {
		orphan := true
		for i := range form.Elements {
			p := &form.Elements[i]
			if p.ElementID != 0 && e.ParentID == int64(p.ElementID) {
				p.Taxes = append(p.Taxes, SaleFormTax{
					ElementID: e.ID,
					Code:      e.TaxCode,
					Rate:      tax.Rate(e.TaxCode),
					Amount:    s.formatted(e.Amount, e.Currency),
				})
				orphan = false
				break
			}
		}
		if orphan {
			form.Elements = append(form.Elements, SaleFormElement{
				ElementID:   e.ID,
				AccountID:   e.AccountID,
				Amount:      s.formatted(e.Amount, e.Currency),
				Currency:    e.Currency,
				UseGross:    e.UseGross,
				GrossAmount: s.formatted(e.GrossAmount, e.Currency),
				Description: e.Description,
			})
		}
	}

	return form
}

// Validate checks the form for user-correctable problems. It returns
// FieldErrors keyed by form field path.
func (s *saleService) Validate(form SaleForm) error {
	fieldErrs := apperrors.FieldErrors{}

	if form.ActorID == 0 {
		fieldErrs["actor_id"] = "Customer is required"
		return fieldErrs
	}
	if form.ActorID == models.ActorNewCustomer && strings.TrimSpace(form.ActorTitle) == "" {
		fieldErrs["actor_title"] = "Name is required"
		return fieldErrs
	}
	if !models.IsDateOnly(form.Date) {
		fieldErrs["date"] = "Date is required"
		return fieldErrs
	}
	if len(form.Elements) == 0 {
		fieldErrs["submit"] = "Nothing to save"
		return fieldErrs
	}

	cur := form.Elements[0].Currency
	if !s.currencies.Has(cur) {
		fieldErrs["elements[0].currency"] = "Unknown currency code"
		return fieldErrs
	}

	for i, fe := range form.Elements {
		prefix := "elements[" + strconv.Itoa(i) + "]"
		if _, err := s.currencies.ParseFormatted(fe.Amount, cur); err != nil {
			fieldErrs[prefix+".amount"] = "Invalid amount"
		}
		if _, err := s.currencies.ParseFormatted(fe.GrossAmount, cur); err != nil {
			fieldErrs[prefix+".gross_amount"] = "Invalid amount"
		}
		for j, ft := range fe.Taxes {
			if _, err := s.currencies.ParseFormatted(ft.Amount, cur); err != nil {
				fieldErrs[prefix+".taxes["+strconv.Itoa(j)+"].amount"] = "Invalid amount"
			}
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// Save validates the form and persists it onto the transaction: credit lines
// and their tax children as submitted, then one regenerated balancing debit
// per currency, recycling any persisted debit ids. Every line uses the first
// line's currency. On a new-customer sentinel the customer row is created in
// the same database transaction.
func (s *saleService) Save(t *models.Transaction, form SaleForm) (uint, error) {
	if err := s.Validate(form); err != nil {
		return 0, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		actorID := form.ActorID
		if actorID == models.ActorNewCustomer {
			actor := &models.Actor{
				Title: strings.TrimSpace(form.ActorTitle),
				Type:  models.ActorTypeCustomer,
			}
			if err := tx.Create(actor).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			actorID = actor.ID
		}

		t.Type = form.Type
		t.Date = form.Date
		t.Description = form.Description
		t.ActorID = actorID

		cur := form.Elements[0].Currency
		var desired []models.Element
		for _, fe := range form.Elements {
			amount, err := s.currencies.ParseFormatted(fe.Amount, cur)
			if err != nil {
				return err
			}
			gross, err := s.currencies.ParseFormatted(fe.GrossAmount, cur)
			if err != nil {
				return err
			}
			desired = append(desired, models.Element{
				Base:        models.Base{ID: fe.ElementID},
				AccountID:   fe.AccountID,
				Drcr:        models.Credit,
				Amount:      amount,
				Currency:    cur,
				UseGross:    fe.UseGross,
				GrossAmount: gross,
				Description: fe.Description,
			})

			for _, ft := range fe.Taxes {
				taxAmount, err := s.currencies.ParseFormatted(ft.Amount, cur)
				if err != nil {
					return err
				}
				code := ""
				if ft.Code != "" || rateNonZero(ft.Rate) {
					code = tax.WithRate(ft.Code, ft.Rate)
				}
				desired = append(desired, models.Element{
					Base:      models.Base{ID: ft.ElementID},
					AccountID: models.ReservedTaxPayable,
					Drcr:      models.Credit,
					Amount:    taxAmount,
					Currency:  cur,
					TaxCode:   code,
					ParentID:  models.PendingParent,
				})
			}
		}

		// One balancing debit per currency, recycling persisted debit ids
		// oldest first. Leftover ids are zeroed out, not dropped, so any
		// external references to them stay valid.
		sums := models.GetSums(desired)
		ids := t.DebitElementIDs()
		balancingAccount := models.ReservedCash
		if form.Type == models.TypeInvoice {
			balancingAccount = models.ReservedAccountsReceivable
		}
		for _, c := range models.Currencies(desired) {
			var id uint
			if len(ids) > 0 {
				id, ids = ids[0], ids[1:]
			}
			desired = append(desired, models.Element{
				Base:      models.Base{ID: id},
				AccountID: balancingAccount,
				Drcr:      models.Debit,
				Amount:    sums[c],
				Currency:  c,
			})
		}
		for _, id := range ids {
			desired = append(desired, models.Element{
				Base: models.Base{ID: id},
				Drcr: models.Debit,
			})
		}

		if err := t.MergeElements(desired); err != nil {
			return err
		}
		return s.store.SaveWithDB(tx, t)
	})
	if err != nil {
		return 0, err
	}

	t.CondenseElements()
	return t.ID, nil
}

func (s *saleService) formatted(amount int64, cur string) string {
	text, err := s.currencies.ToFormatted(amount, cur)
	if err != nil {
		return ""
	}
	return text
}

// rateNonZero reports whether text parses to a non-zero rate.
func rateNonZero(text string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	return err == nil && f != 0
}
