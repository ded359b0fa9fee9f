// Package currency converts between minor-unit integer amounts and their
// formatted decimal-string representation. Every amount in the ledger is an
// integer in the currency's minor unit (cents for USD-like currencies); this
// package is the only place that knows how many digits that is.
package currency

import (
	"fmt"
	"math"
	"strings"

	apperrors "ledgerbook/internal/errors"
)

// Info describes a single currency.
type Info struct {
	Code  string
	Scale int // number of minor-unit digits after the decimal point
}

// Registry maps currency codes to their minor-unit scale. It is constructed
// explicitly and threaded through the services rather than held in a global.
type Registry struct {
	infos map[string]Info
}

// NewRegistry creates a registry from the given infos.
func NewRegistry(infos []Info) *Registry {
	m := make(map[string]Info, len(infos))
	for _, info := range infos {
		m[info.Code] = info
	}
	return &Registry{infos: m}
}

// DefaultRegistry returns a registry with the ISO 4217 currencies the
// application supports. Most currencies use two minor-unit digits; the
// exceptions are listed explicitly.
func DefaultRegistry() *Registry {
	infos := []Info{}
	for _, code := range []string{
		"AUD", "BRL", "CAD", "CHF", "CNY", "DKK", "EUR", "GBP", "HKD",
		"IDR", "ILS", "INR", "MXN", "MYR", "NOK", "NZD", "PHP", "PLN",
		"RUB", "SEK", "SGD", "THB", "TRY", "TWD", "USD", "ZAR",
	} {
		infos = append(infos, Info{Code: code, Scale: 2})
	}
	for _, code := range []string{"JPY", "KRW", "VND"} {
		infos = append(infos, Info{Code: code, Scale: 0})
	}
	for _, code := range []string{"BHD", "JOD", "KWD", "OMR", "TND"} {
		infos = append(infos, Info{Code: code, Scale: 3})
	}
	return NewRegistry(infos)
}

// Info returns the info for a currency code.
func (r *Registry) Info(code string) (Info, error) {
	info, ok := r.infos[code]
	if !ok {
		return Info{}, apperrors.WithMessage(apperrors.ErrUnknownCurrency, fmt.Sprintf("Unknown currency: %s", code))
	}
	return info, nil
}

// Has reports whether the registry knows the currency code.
func (r *Registry) Has(code string) bool {
	_, ok := r.infos[code]
	return ok
}

// Codes returns all known currency codes. Order is unspecified.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.infos))
	for code := range r.infos {
		codes = append(codes, code)
	}
	return codes
}

// ToFormatted renders an integer minor-unit amount as a decimal string,
// ie. 1000 in USD becomes "10.00". Negative amounts keep their sign.
func (r *Registry) ToFormatted(amount int64, code string) (string, error) {
	info, err := r.Info(code)
	if err != nil {
		return "", err
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if info.Scale == 0 {
		return fmt.Sprintf("%s%d", sign, amount), nil
	}

	pow := pow10(info.Scale)
	return fmt.Sprintf("%s%d.%0*d", sign, amount/pow, info.Scale, amount%pow), nil
}

// ParseFormatted is the inverse of ToFormatted. A blank string parses to 0.
// Fractional digits beyond the currency's scale are rounded half-up to the
// nearest minor unit. Malformed input yields an invalid-amount error.
func (r *Registry) ParseFormatted(text, code string) (int64, error) {
	info, err := r.Info(code)
	if err != nil {
		return 0, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	// Thousands separators are tolerated on input.
	text = strings.ReplaceAll(text, ",", "")

	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}

	whole, frac := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		whole, frac = text[:i], text[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("Invalid amount: %s", text))
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("Invalid amount: %s", text))
	}

	var amount int64
	for i := 0; i < len(whole); i++ {
		d := int64(whole[i] - '0')
		if amount > (math.MaxInt64-d)/10 {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("Invalid amount: %s", text))
		}
		amount = amount*10 + d
	}
	// The scaled amount plus a full fractional carry must still fit in int64.
	pow := pow10(info.Scale)
	if amount > (math.MaxInt64-pow)/pow {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("Invalid amount: %s", text))
	}
	amount *= pow

	if frac != "" {
		var fracVal int64
		digits := len(frac)
		if digits > info.Scale+9 {
			// More precision than we can ever round with; the extra digits
			// cannot affect the result.
			frac = frac[:info.Scale+9]
			digits = len(frac)
		}
		for i := 0; i < digits; i++ {
			fracVal = fracVal*10 + int64(frac[i]-'0')
		}
		if digits <= info.Scale {
			amount += fracVal * pow10(info.Scale-digits)
		} else {
			div := pow10(digits - info.Scale)
			amount += (fracVal + div/2) / div // round half-up
		}
	}

	if neg {
		amount = -amount
	}
	return amount, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
