package tax

import "ledgerbook/internal/currency"

// Trigger identifies which field edit caused a recomputation.
type Trigger string

const (
	TriggerAmount      Trigger = "amount"
	TriggerGrossAmount Trigger = "grossAmount"
	TriggerCurrency    Trigger = "currency"
	TriggerRates       Trigger = "rates"
)

// State is the display-level state of one line item: formatted amount
// strings plus the tax children's rates and amounts. It mirrors what the
// form shows and is independent of any UI event system.
type State struct {
	Amount      string
	GrossAmount string
	UseGross    bool
	Currency    string
	Rates       []string
	Taxes       []string
}

// Recompute derives the non-driving amounts of a line item after a field
// edit. Editing the net amount makes the line net-driven, editing the gross
// makes it gross-driven; rate and currency edits keep the current driver.
// It is idempotent: recomputing an already-computed state with the same
// trigger leaves it unchanged.
func Recompute(reg *currency.Registry, s State, trigger Trigger) (State, error) {
	switch trigger {
	case TriggerAmount:
		s.UseGross = false
	case TriggerGrossAmount:
		s.UseGross = true
	}

	driving := s.Amount
	if s.UseGross {
		driving = s.GrossAmount
	}
	if driving == "" {
		// Nothing to derive from; clear the computed side.
		if s.UseGross {
			s.Amount = ""
		} else {
			s.GrossAmount = ""
		}
		s.Taxes = make([]string, len(s.Rates))
		return s, nil
	}

	in := Inputs{UseGross: s.UseGross, Rates: s.Rates}
	var err error
	if s.UseGross {
		in.GrossAmount, err = reg.ParseFormatted(s.GrossAmount, s.Currency)
	} else {
		in.Amount, err = reg.ParseFormatted(s.Amount, s.Currency)
	}
	if err != nil {
		return s, err
	}

	out := Calculate(in)

	if s.Amount, err = reg.ToFormatted(out.Amount, s.Currency); err != nil {
		return s, err
	}
	if s.GrossAmount, err = reg.ToFormatted(out.GrossAmount, s.Currency); err != nil {
		return s, err
	}
	s.Taxes = make([]string, len(out.Taxes))
	for i, amount := range out.Taxes {
		if s.Taxes[i], err = reg.ToFormatted(amount, s.Currency); err != nil {
			return s, err
		}
	}
	return s, nil
}
