package services

import (
	"gorm.io/gorm"

	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// TransactionStore defines the persistence contract for transaction
// aggregates. Save is atomic: the transaction row, its element rows and any
// tombstone deletions land together or not at all.
type TransactionStore interface {
	Load(id uint, types ...models.TransactionType) (*models.Transaction, error)
	Save(t *models.Transaction) error
	SaveWithDB(tx *gorm.DB, t *models.Transaction) error
	Delete(id uint) error
	List(types []models.TransactionType, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	ListSettlements(settleID uint) ([]models.Transaction, error)
}

// SaleFormTax is one tax line attached to a revenue line on a sale form.
// Amounts are formatted strings in the transaction's currency.
type SaleFormTax struct {
	ElementID uint   `json:"element_id,omitempty"`
	Code      string `json:"code"`
	Rate      string `json:"rate"`
	Amount    string `json:"amount"`
}

// SaleFormElement is one revenue line on a sale form, with its tax children.
type SaleFormElement struct {
	ElementID   uint          `json:"element_id,omitempty"`
	AccountID   uint          `json:"account_id"`
	Amount      string        `json:"amount"`
	Currency    string        `json:"currency" binding:"omitempty,currency_code"`
	UseGross    bool          `json:"use_gross"`
	GrossAmount string        `json:"gross_amount"`
	Description string        `json:"description,omitempty"`
	Taxes       []SaleFormTax `json:"taxes,omitempty"`
}

// SaleForm is the editable surface of a sale or invoice. Only the credit
// side appears on it; balancing debits are regenerated on every save.
type SaleForm struct {
	Type        models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	ActorID     uint                   `json:"actor_id"`
	ActorTitle  string                 `json:"actor_title,omitempty"`
	Date        string                 `json:"date" binding:"omitempty,date_only"`
	Description string                 `json:"description,omitempty"`
	Elements    []SaleFormElement      `json:"elements" binding:"omitempty,dive"`
}

// SaleServicer defines the contract for sale and invoice business logic.
type SaleServicer interface {
	GetSale(id uint) (*models.Transaction, error)
	ExtractFormValues(t *models.Transaction) SaleForm
	Validate(form SaleForm) error
	Save(t *models.Transaction, form SaleForm) (uint, error)
	ListSales(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// PaymentForm is a single payment row against an invoice.
type PaymentForm struct {
	TransactionID uint   `json:"transaction_id,omitempty"`
	Date          string `json:"date" binding:"omitempty,date_only"`
	Description   string `json:"description,omitempty"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency" binding:"omitempty,currency_code"`
}

// PaymentServicer defines the contract for invoice payment business logic.
type PaymentServicer interface {
	ListSettlements(invoice *models.Transaction) ([]models.Transaction, error)
	ExtractFormValues(invoice *models.Transaction, settlements []models.Transaction) []PaymentForm
	Save(invoice *models.Transaction, form PaymentForm) (uint, error)
	Balances(invoice *models.Transaction, settlements []models.Transaction) map[string]int64
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(title string, accountType models.AccountType) (*models.Account, error)
	GetAccountByID(id uint) (*models.Account, error)
	ListAccounts(accountType *models.AccountType, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
}

// ActorServicer defines the contract for customer and supplier business logic.
type ActorServicer interface {
	CreateActor(title string, actorType models.ActorType) (*models.Actor, error)
	GetActorByID(id uint) (*models.Actor, error)
	ListActors(actorType *models.ActorType, page pagination.PageRequest) (*pagination.PageResponse[models.Actor], error)
}
