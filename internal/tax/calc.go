package tax

import (
	"math"
	"strings"
)

// rateScale is the fixed-point scale applied to percentage rates: a rate
// string like "12.5" becomes 125000. Four fractional digits of a percentage
// are kept; anything beyond that is truncated.
const rateScale = 10000

// Inputs drive one line item's tax computation. Amounts are integer minor
// units; Rates are the decimal percentage strings of the line's tax children
// in declaration order.
type Inputs struct {
	Amount      int64
	UseGross    bool
	GrossAmount int64
	Rates       []string
}

// Outputs is the result of Calculate. Taxes holds one amount per input rate,
// in the same order, and the identity Amount + sum(Taxes) == GrossAmount
// holds exactly.
type Outputs struct {
	Amount      int64
	GrossAmount int64
	Taxes       []int64
}

// Calculate computes the net/gross/tax split for a single line item.
//
// Net-driven: each tax is round-half-up(net * rate / 100) and the gross is
// net plus the tax total. Gross-driven: the net is solved from
// net + sum(round(net * rate_i / 100)) = gross in fixed point, the taxes are
// re-derived from that net, and any rounding residual is pushed onto the
// last tax line so the identity holds exactly. Blank or non-numeric rates
// contribute zero tax.
func Calculate(in Inputs) Outputs {
	rates := make([]int64, len(in.Rates))
	var rateSum int64
	for i, r := range in.Rates {
		rates[i] = parseRate(r)
		rateSum += rates[i]
	}

	out := Outputs{Taxes: make([]int64, len(rates))}

	if in.UseGross {
		out.GrossAmount = in.GrossAmount
		out.Amount = divHalfUp(in.GrossAmount*100*rateScale, 100*rateScale+rateSum)
		var taxTotal int64
		for i, r := range rates {
			out.Taxes[i] = divHalfUp(out.Amount*r, 100*rateScale)
			taxTotal += out.Taxes[i]
		}
		if residual := out.GrossAmount - out.Amount - taxTotal; residual != 0 && len(out.Taxes) > 0 {
			out.Taxes[len(out.Taxes)-1] += residual
		}
		return out
	}

	out.Amount = in.Amount
	var taxTotal int64
	for i, r := range rates {
		out.Taxes[i] = divHalfUp(in.Amount*r, 100*rateScale)
		taxTotal += out.Taxes[i]
	}
	out.GrossAmount = in.Amount + taxTotal
	return out
}

// parseRate converts a decimal percentage string into rateScale fixed point.
// Invalid input is treated as rate zero.
func parseRate(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	whole, frac := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		whole, frac = text[:i], text[i+1:]
	}

	// A whole part that would overflow the fixed-point representation is as
	// meaningless as a non-numeric one and gets the same treatment.
	const maxRate = math.MaxInt64 / rateScale / 10
	var rate int64
	for i := 0; i < len(whole); i++ {
		if whole[i] < '0' || whole[i] > '9' {
			return 0
		}
		if rate > maxRate {
			return 0
		}
		rate = rate*10 + int64(whole[i]-'0')
	}
	rate *= rateScale

	pow := int64(rateScale / 10)
	for i := 0; i < len(frac) && pow > 0; i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return 0
		}
		rate += int64(frac[i]-'0') * pow
		pow /= 10
	}
	return rate
}

// divHalfUp divides a by b, rounding half away from zero. Amounts are
// non-negative throughout the engine so half-up and half-away coincide.
func divHalfUp(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	return (2*a + b) / (2 * b)
}
