package model

import "testing"

func validParams() BondParams {
	return BondParams{
		FaceValue:        1000,
		AnnualCouponRate: 5,
		MarketPrice:      950,
		YearsToMaturity:  10,
		CouponFrequency:  FrequencySemiAnnual,
	}
}

func TestNewBond_Valid(t *testing.T) {
	if _, err := NewBond(validParams()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewBond_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BondParams)
	}{
		{"zero face value", func(p *BondParams) { p.FaceValue = 0 }},
		{"negative face value", func(p *BondParams) { p.FaceValue = -100 }},
		{"negative coupon rate", func(p *BondParams) { p.AnnualCouponRate = -1 }},
		{"coupon rate over 100", func(p *BondParams) { p.AnnualCouponRate = 101 }},
		{"zero market price", func(p *BondParams) { p.MarketPrice = 0 }},
		{"zero maturity", func(p *BondParams) { p.YearsToMaturity = 0 }},
		{"maturity over 100y", func(p *BondParams) { p.YearsToMaturity = 101 }},
		{"quarterly frequency", func(p *BondParams) { p.CouponFrequency = 4 }},
		{"zero frequency", func(p *BondParams) { p.CouponFrequency = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			if _, err := NewBond(params); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAnnualCoupon(t *testing.T) {
	p := validParams()
	if got := p.AnnualCoupon(); got != 50 {
		t.Errorf("got %.2f, want 50", got)
	}
}

func TestPriceStatusFromDiff(t *testing.T) {
	cases := []struct {
		diff float64
		want PriceStatus
	}{
		{0, PriceStatusPar},
		{0.005, PriceStatusPar},
		{-0.005, PriceStatusPar},
		{0.01, PriceStatusPremium},
		{50, PriceStatusPremium},
		{-0.01, PriceStatusDiscount},
		{-50, PriceStatusDiscount},
	}
	for _, tc := range cases {
		if got := PriceStatusFromDiff(tc.diff); got != tc.want {
			t.Errorf("diff %.3f: got %s, want %s", tc.diff, got, tc.want)
		}
	}
}
