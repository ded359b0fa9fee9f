package models

// DrCr marks which side of the ledger an element sits on. The amount itself
// is always non-negative; the side carries the sign.
type DrCr string

const (
	Debit  DrCr = "dr"
	Credit DrCr = "cr"
)

// PendingParent marks a tax element whose parent id is not known yet: it
// resolves to the top-level element inserted just before it in the same
// merge pass.
const PendingParent int64 = -1

// Element is a single debit or credit entry belonging to a transaction.
// ParentID links a tax line to the revenue line it was computed from
// (0 = top-level). SettleID points at the transaction this entry settles
// (0 = unsettled), eg. a payment element settling an invoice.
type Element struct {
	Base
	TransactionID uint   `gorm:"index" json:"transaction_id"`
	AccountID     uint   `json:"account_id"`
	Drcr          DrCr   `gorm:"not null" json:"drcr"`
	Amount        int64  `gorm:"not null;default:0" json:"amount"`
	Currency      string `json:"currency"`
	UseGross      bool   `gorm:"not null;default:false" json:"use_gross"`
	GrossAmount   int64  `gorm:"not null;default:0" json:"gross_amount"`
	TaxCode       string `json:"tax_code"`
	ParentID      int64  `gorm:"not null;default:0" json:"parent_id"`
	SettleID      uint   `gorm:"not null;default:0" json:"settle_id"`
	Description   string `json:"description"`

	// parentRef is a 1-based index into the owning transaction's merged
	// element list, set when the parent had no id at merge time. Resolved to
	// ParentID once ids exist.
	parentRef int
}

// IsTopLevel reports whether the element is a top-level line rather than an
// attached tax line.
func (e *Element) IsTopLevel() bool {
	return e.ParentID == 0
}
