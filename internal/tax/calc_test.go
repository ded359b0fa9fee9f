package tax

import (
	"reflect"
	"testing"

	"ledgerbook/internal/currency"
	"ledgerbook/internal/testutil"
)

func TestCalculateNetDriven(t *testing.T) {
	cases := []struct {
		name     string
		in       Inputs
		expected Outputs
	}{
		{
			"zero_and_ten_percent",
			Inputs{Amount: 1000, Rates: []string{"0", "10"}},
			Outputs{Amount: 1000, GrossAmount: 1100, Taxes: []int64{0, 100}},
		},
		{
			"two_ten_percent_lines",
			Inputs{Amount: 10000, Rates: []string{"10", "10"}},
			Outputs{Amount: 10000, GrossAmount: 12000, Taxes: []int64{1000, 1000}},
		},
		{
			"no_taxes",
			Inputs{Amount: 1000},
			Outputs{Amount: 1000, GrossAmount: 1000, Taxes: []int64{}},
		},
		{
			"blank_rate_is_zero",
			Inputs{Amount: 1000, Rates: []string{""}},
			Outputs{Amount: 1000, GrossAmount: 1000, Taxes: []int64{0}},
		},
		{
			"non_numeric_rate_is_zero",
			Inputs{Amount: 1000, Rates: []string{"abc"}},
			Outputs{Amount: 1000, GrossAmount: 1000, Taxes: []int64{0}},
		},
		{
			"overflowing_rate_is_zero",
			Inputs{Amount: 1000, Rates: []string{"99999999999999999999"}},
			Outputs{Amount: 1000, GrossAmount: 1000, Taxes: []int64{0}},
		},
		{
			"rounds_half_up",
			Inputs{Amount: 105, Rates: []string{"10"}},
			Outputs{Amount: 105, GrossAmount: 116, Taxes: []int64{11}}, // 10.5 rounds to 11
		},
		{
			"fractional_rate",
			Inputs{Amount: 10000, Rates: []string{"12.5"}},
			Outputs{Amount: 10000, GrossAmount: 11250, Taxes: []int64{1250}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.in)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Calculate(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestCalculateGrossDriven(t *testing.T) {
	cases := []struct {
		name     string
		in       Inputs
		expected Outputs
	}{
		{
			"two_ten_percent_lines",
			Inputs{UseGross: true, GrossAmount: 12000, Rates: []string{"10", "10"}},
			Outputs{Amount: 10000, GrossAmount: 12000, Taxes: []int64{1000, 1000}},
		},
		{
			"residual_absorbed_by_last_line",
			Inputs{UseGross: true, GrossAmount: 12001, Rates: []string{"10", "10"}},
			Outputs{Amount: 10001, GrossAmount: 12001, Taxes: []int64{1000, 1000}},
		},
		{
			"no_taxes",
			Inputs{UseGross: true, GrossAmount: 1000},
			Outputs{Amount: 1000, GrossAmount: 1000, Taxes: []int64{}},
		},
		{
			"zero_rate_only",
			Inputs{UseGross: true, GrossAmount: 1100, Rates: []string{"0"}},
			Outputs{Amount: 1100, GrossAmount: 1100, Taxes: []int64{0}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.in)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Calculate(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

// The identity net + sum(taxes) == gross must hold exactly for both drivers
// across awkward amounts and rate mixes.
func TestCalculateIdentity(t *testing.T) {
	rateSets := [][]string{
		{"10"},
		{"0", "10"},
		{"12.5", "7.3"},
		{"3.33", "6.67", "0"},
	}
	amounts := []int64{1, 7, 99, 101, 1000, 9999, 13100, 123457}

	for _, rates := range rateSets {
		for _, amount := range amounts {
			out := Calculate(Inputs{Amount: amount, Rates: rates})
			if sumWithTaxes(out) != out.GrossAmount {
				t.Errorf("net-driven: rates %v amount %d: %+v", rates, amount, out)
			}

			out = Calculate(Inputs{UseGross: true, GrossAmount: amount, Rates: rates})
			if sumWithTaxes(out) != out.GrossAmount {
				t.Errorf("gross-driven: rates %v gross %d: %+v", rates, amount, out)
			}
		}
	}
}

func sumWithTaxes(out Outputs) int64 {
	total := out.Amount
	for _, tax := range out.Taxes {
		total += tax
	}
	return total
}

func TestRecompute(t *testing.T) {
	reg := currency.DefaultRegistry()

	t.Run("amount_edit_drives_net", func(t *testing.T) {
		state := State{Amount: "100", Currency: "USD", UseGross: true, Rates: []string{"10", "10"}}
		got, err := Recompute(reg, state, TriggerAmount)
		testutil.AssertNoError(t, err)
		if got.UseGross {
			t.Error("expected net-driven state")
		}
		if got.GrossAmount != "120.00" || got.Amount != "100.00" {
			t.Errorf("unexpected amounts: %+v", got)
		}
		if !reflect.DeepEqual(got.Taxes, []string{"10.00", "10.00"}) {
			t.Errorf("unexpected taxes: %v", got.Taxes)
		}
	})

	t.Run("gross_edit_drives_gross", func(t *testing.T) {
		state := State{GrossAmount: "120", Currency: "USD", Rates: []string{"10", "10"}}
		got, err := Recompute(reg, state, TriggerGrossAmount)
		testutil.AssertNoError(t, err)
		if !got.UseGross {
			t.Error("expected gross-driven state")
		}
		if got.Amount != "100.00" {
			t.Errorf("expected net 100.00, got %q", got.Amount)
		}
	})

	t.Run("rate_edit_keeps_driver", func(t *testing.T) {
		state := State{Amount: "100.00", GrossAmount: "120.00", Currency: "USD", Rates: []string{"10", "0"}}
		got, err := Recompute(reg, state, TriggerRates)
		testutil.AssertNoError(t, err)
		if got.UseGross {
			t.Error("driver should not change on a rate edit")
		}
		if got.GrossAmount != "110.00" {
			t.Errorf("expected gross 110.00, got %q", got.GrossAmount)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		state := State{Amount: "100", Currency: "USD", Rates: []string{"10"}}
		once, err := Recompute(reg, state, TriggerAmount)
		testutil.AssertNoError(t, err)
		twice, err := Recompute(reg, once, TriggerAmount)
		testutil.AssertNoError(t, err)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("recompute not idempotent: %+v vs %+v", once, twice)
		}
	})

	t.Run("blank_driver_clears_derived_side", func(t *testing.T) {
		state := State{Amount: "", GrossAmount: "120.00", Currency: "USD", Rates: []string{"10"}}
		got, err := Recompute(reg, state, TriggerAmount)
		testutil.AssertNoError(t, err)
		if got.GrossAmount != "" {
			t.Errorf("expected cleared gross, got %q", got.GrossAmount)
		}
	})

	t.Run("malformed_amount", func(t *testing.T) {
		state := State{Amount: "abc", Currency: "USD"}
		_, err := Recompute(reg, state, TriggerAmount)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})
}
