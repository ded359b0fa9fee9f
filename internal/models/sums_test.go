package models

import "testing"

func TestGetSums(t *testing.T) {
	t.Run("single_balancing_entry", func(t *testing.T) {
		// Credit lines totalling 13100 need one balancing debit of 13100.
		elements := []Element{
			{Drcr: Credit, Amount: 1000, Currency: "USD"},
			{Drcr: Credit, Amount: 100, Currency: "USD"},
			{Drcr: Credit, Amount: 10000, Currency: "USD"},
			{Drcr: Credit, Amount: 1000, Currency: "USD"},
			{Drcr: Credit, Amount: 1000, Currency: "USD"},
		}
		sums := GetSums(elements)
		if len(sums) != 1 || sums["USD"] != 13100 {
			t.Errorf("expected {USD: 13100}, got %v", sums)
		}
	})

	t.Run("balanced_currency_is_zero", func(t *testing.T) {
		elements := []Element{
			{Drcr: Credit, Amount: 500, Currency: "EUR"},
			{Drcr: Debit, Amount: 500, Currency: "EUR"},
		}
		sums := GetSums(elements)
		if sum, ok := sums["EUR"]; !ok || sum != 0 {
			t.Errorf("expected a zero entry for EUR, got %v", sums)
		}
	})

	t.Run("per_currency_grouping", func(t *testing.T) {
		elements := []Element{
			{Drcr: Credit, Amount: 1000, Currency: "USD"},
			{Drcr: Credit, Amount: 2000, Currency: "EUR"},
			{Drcr: Debit, Amount: 300, Currency: "EUR"},
		}
		sums := GetSums(elements)
		if sums["USD"] != 1000 || sums["EUR"] != 1700 {
			t.Errorf("unexpected sums: %v", sums)
		}
	})

	t.Run("cleared_currency_ignored", func(t *testing.T) {
		elements := []Element{
			{Drcr: Debit, Amount: 0, Currency: ""},
		}
		if sums := GetSums(elements); len(sums) != 0 {
			t.Errorf("expected no entries, got %v", sums)
		}
	})
}

func TestGetBalances(t *testing.T) {
	// An invoice debits the receivable; each payment credits it. The
	// outstanding balance is what remains.
	receivable := []Element{
		{Drcr: Debit, Amount: 13100, Currency: "USD"},
		{Drcr: Credit, Amount: 3100, Currency: "USD", SettleID: 1},
		{Drcr: Credit, Amount: 5000, Currency: "USD", SettleID: 1},
	}
	balances := GetBalances(receivable)
	if balances["USD"] != 5000 {
		t.Errorf("expected outstanding 5000, got %v", balances)
	}

	// Fully settled still yields an entry.
	receivable = append(receivable, Element{Drcr: Credit, Amount: 5000, Currency: "USD", SettleID: 1})
	balances = GetBalances(receivable)
	if balance, ok := balances["USD"]; !ok || balance != 0 {
		t.Errorf("expected a zero USD entry, got %v", balances)
	}
}

func TestCurrencies(t *testing.T) {
	elements := []Element{
		{Currency: "USD"},
		{Currency: "EUR"},
		{Currency: "USD"},
		{Currency: ""},
		{Currency: "JPY"},
	}
	got := Currencies(elements)
	if len(got) != 3 || got[0] != "USD" || got[1] != "EUR" || got[2] != "JPY" {
		t.Errorf("expected first-seen order, got %v", got)
	}
}
