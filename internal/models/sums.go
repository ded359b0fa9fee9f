package models

// GetSums groups elements by currency and returns, per currency, the credit
// total minus the debit total: the amount a generated balancing debit line
// must carry. Every currency present gets an entry, zero included when that
// currency already balances. Elements with a cleared currency (zeroed-out
// recycled rows) are ignored.
func GetSums(elements []Element) map[string]int64 {
	sums := make(map[string]int64)
	for i := range elements {
		e := &elements[i]
		if e.Currency == "" {
			continue
		}
		if e.Drcr == Credit {
			sums[e.Currency] += e.Amount
		} else {
			sums[e.Currency] -= e.Amount
		}
	}
	return sums
}

// GetBalances nets the supplied elements per currency to yield an
// outstanding balance: debit total minus credit total. For a receivable
// chain (an invoice plus its settlements filtered to the shared receivable
// account) a positive balance is the unpaid portion. Every currency present
// gets an entry, zero included once fully settled.
func GetBalances(elements []Element) map[string]int64 {
	balances := make(map[string]int64)
	for i := range elements {
		e := &elements[i]
		if e.Currency == "" {
			continue
		}
		if e.Drcr == Debit {
			balances[e.Currency] += e.Amount
		} else {
			balances[e.Currency] -= e.Amount
		}
	}
	return balances
}

// Currencies returns the currencies of the supplied elements in first-seen
// order, skipping cleared ones. Balancing generation iterates this instead
// of a map so regenerated element order is deterministic.
func Currencies(elements []Element) []string {
	var order []string
	seen := make(map[string]bool)
	for i := range elements {
		c := elements[i].Currency
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		order = append(order, c)
	}
	return order
}
