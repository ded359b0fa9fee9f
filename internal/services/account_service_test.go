package services

import (
	"testing"

	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/testutil"
)

func TestAccountService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)

	t.Run("create_and_get", func(t *testing.T) {
		account, err := svc.CreateAccount("  Office Supplies  ", models.AccountTypeExpense)
		testutil.AssertNoError(t, err)
		if account.Title != "Office Supplies" {
			t.Errorf("expected trimmed title, got %q", account.Title)
		}

		got, err := svc.GetAccountByID(account.ID)
		testutil.AssertNoError(t, err)
		if got.Type != models.AccountTypeExpense {
			t.Errorf("expected expense account, got %q", got.Type)
		}
	})

	t.Run("rejects_blank_title", func(t *testing.T) {
		_, err := svc.CreateAccount("   ", models.AccountTypeRevenue)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := svc.CreateAccount("Misc", models.AccountType("wallet"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetAccountByID(9999)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("list_filters_by_type", func(t *testing.T) {
		expense := testutil.CreateTestExpenseAccount(t, db)
		testutil.CreateTestRevenueAccount(t, db)

		accountType := models.AccountTypeExpense
		page, err := svc.ListAccounts(&accountType, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		found := false
		for _, a := range page.Data {
			if a.Type != models.AccountTypeExpense {
				t.Errorf("expected only expense accounts, got %q", a.Type)
			}
			if a.ID == expense.ID {
				found = true
			}
		}
		if !found {
			t.Error("expected the created expense account in the listing")
		}
	})

	t.Run("list_includes_reserved_accounts", func(t *testing.T) {
		page, err := svc.ListAccounts(nil, pagination.PageRequest{PageSize: 100})
		testutil.AssertNoError(t, err)

		var seenCash bool
		for _, a := range page.Data {
			if a.ID == models.ReservedCash {
				seenCash = true
			}
		}
		if !seenCash {
			t.Error("expected the reserved cash account in the unfiltered listing")
		}
	})
}
