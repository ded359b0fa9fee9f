package models

// AccountType represents the ledger classification of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Reserved account ids. The balancing and tax logic depends on these being
// stable, so they are fixed by the schema seed rather than auto-assigned.
const (
	ReservedCash               uint = 10
	ReservedAccountsReceivable uint = 11
	ReservedAccountsPayable    uint = 21
	ReservedTaxPayable         uint = 31
	ReservedTaxReceivable      uint = 32
)

// Account represents a ledger account.
type Account struct {
	Base
	Title string      `gorm:"not null" json:"title"`
	Type  AccountType `gorm:"not null" json:"type"`
}

// ReservedAccounts returns the catalog of accounts every ledger starts with.
// Migrations and the test setup seed these with their fixed ids.
func ReservedAccounts() []Account {
	return []Account{
		{Base: Base{ID: ReservedCash}, Title: "Cash", Type: AccountTypeAsset},
		{Base: Base{ID: ReservedAccountsReceivable}, Title: "Accounts Receivable", Type: AccountTypeAsset},
		{Base: Base{ID: ReservedAccountsPayable}, Title: "Accounts Payable", Type: AccountTypeLiability},
		{Base: Base{ID: ReservedTaxPayable}, Title: "Tax Payable", Type: AccountTypeLiability},
		{Base: Base{ID: ReservedTaxReceivable}, Title: "Tax Receivable", Type: AccountTypeAsset},
	}
}
