// Package tax parses tax codes and performs the net/gross/tax arithmetic for
// transaction lines. A tax code is a structured string of the form
// `geography:label:rate`, eg. `AU:GST:10` for a fixed-rate code, `:zero:0`
// for the synthetic zero-rated code, or `::10` for a user-entered rate on the
// generic code.
package tax

import "strings"

// ZeroLabel is the label of the synthetic zero-rated code. It always carries
// rate 0 and its rate is not user-editable.
const ZeroLabel = "zero"

// Info is the decomposition of a tax code.
type Info struct {
	Geography string
	Label     string
	Rate      string
	// Variable reports whether the user can edit the rate. Only the generic
	// code (empty geography and label) is user-rated.
	Variable bool
}

// CodeInfo parses a tax code into its parts. Unrecognised or short codes
// degrade gracefully: missing parts are empty and the code is treated as the
// generic user-rated code.
func CodeInfo(code string) Info {
	parts := strings.SplitN(code, ":", 3)
	info := Info{}
	if len(parts) > 0 {
		info.Geography = parts[0]
	}
	if len(parts) > 1 {
		info.Label = parts[1]
	}
	if len(parts) > 2 {
		info.Rate = parts[2]
	}

	if info.Label == ZeroLabel {
		info.Rate = "0"
		info.Variable = false
		return info
	}
	info.Variable = info.Geography == "" && info.Label == ""
	return info
}

// Rate returns the decimal rate string encoded in a tax code, "0" for the
// zero-rated code and "" for a wholly blank code.
func Rate(code string) string {
	return CodeInfo(code).Rate
}

// WithRate composes a code from an existing code and a user-entered rate.
// For fixed-rate codes the encoded rate wins; for variable codes the typed
// rate is substituted into the rate position.
func WithRate(code, rate string) string {
	info := CodeInfo(code)
	if !info.Variable {
		return strings.Join([]string{info.Geography, info.Label, info.Rate}, ":")
	}
	return strings.Join([]string{info.Geography, info.Label, strings.TrimSpace(rate)}, ":")
}

// Codes returns the built-in tax codes offered to the user, in display order.
// The generic empty code (user-typed rate) is represented by "".
func Codes() []string {
	return []string{
		"",
		":" + ZeroLabel + ":0",
		"AU:GST:10",
		"NZ:GST:15",
		"SG:GST:9",
	}
}

// Label returns a human-readable label for a tax code.
func Label(code string) string {
	info := CodeInfo(code)
	switch {
	case info.Label == ZeroLabel:
		return "Zero-rated"
	case info.Geography == "" && info.Label == "":
		return "Tax"
	case info.Geography == "":
		return info.Label
	default:
		return info.Geography + " " + info.Label
	}
}
