package valuation

import (
	"testing"
	"time"

	"bond-valuation/internal/model"
)

func TestBuildSchedule_SemiAnnual(t *testing.T) {
	p := model.BondParams{
		FaceValue:        1000,
		AnnualCouponRate: 5,
		MarketPrice:      950,
		YearsToMaturity:  10,
		CouponFrequency:  model.FrequencySemiAnnual,
	}
	pm := derivePeriods(p)
	asOf := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	schedule := buildSchedule(p, pm, asOf)

	if len(schedule) != 20 {
		t.Fatalf("got %d entries, want 20", len(schedule))
	}

	for i, entry := range schedule {
		if entry.Period != i+1 {
			t.Errorf("entry %d: period %d, want %d", i, entry.Period, i+1)
		}
		if entry.CouponPayment != 25.00 {
			t.Errorf("entry %d: coupon %.2f, want 25.00", i, entry.CouponPayment)
		}
		wantDate := asOf.AddDate(0, (i+1)*6, 0)
		if !entry.PaymentDate.Equal(wantDate) {
			t.Errorf("entry %d: date %s, want %s", i, entry.PaymentDate, wantDate)
		}
	}

	if got := schedule[0].PaymentDate; !got.Equal(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first payment date: got %s", got)
	}
	if got := schedule[19].CumulativeInterest; got != 500.00 {
		t.Errorf("final cumulative interest: got %.2f, want 500.00", got)
	}
}

func TestBuildSchedule_RemainingPrincipal(t *testing.T) {
	p := model.BondParams{
		FaceValue:        1000,
		AnnualCouponRate: 5,
		MarketPrice:      1000,
		YearsToMaturity:  5,
		CouponFrequency:  model.FrequencyAnnual,
	}
	schedule := buildSchedule(p, derivePeriods(p), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	if len(schedule) != 5 {
		t.Fatalf("got %d entries, want 5", len(schedule))
	}
	for _, entry := range schedule[:len(schedule)-1] {
		if entry.RemainingPrincipal != 1000 {
			t.Errorf("period %d: principal %.2f, want 1000", entry.Period, entry.RemainingPrincipal)
		}
	}
	if last := schedule[len(schedule)-1]; last.RemainingPrincipal != 0 {
		t.Errorf("final period: principal %.2f, want 0", last.RemainingPrincipal)
	}
}

func TestBuildSchedule_RoundsBeforeAccumulating(t *testing.T) {
	// Coupon per period is 0.625, which rounds to 0.63 at generation time.
	// The cumulative column accumulates the rounded coupon, so after two
	// periods it reads 1.26, not round(1.25).
	p := model.BondParams{
		FaceValue:        100,
		AnnualCouponRate: 1.25,
		MarketPrice:      100,
		YearsToMaturity:  2,
		CouponFrequency:  model.FrequencySemiAnnual,
	}
	schedule := buildSchedule(p, derivePeriods(p), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	if got := schedule[0].CouponPayment; got != 0.63 {
		t.Fatalf("coupon: got %.4f, want 0.63", got)
	}
	if got := schedule[1].CumulativeInterest; got != 1.26 {
		t.Errorf("cumulative after 2 periods: got %.4f, want 1.26", got)
	}
}

func TestDerivePeriods(t *testing.T) {
	cases := []struct {
		name       string
		years      float64
		frequency  int
		wantCount  int
		wantCoupon float64
	}{
		{"annual", 5, 1, 5, 50},
		{"semi-annual", 10, 2, 20, 25},
		{"fractional years", 10.25, 2, 21, 25},
		{"zero coupon", 2, 1, 2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate := 5.0
			if tc.wantCoupon == 0 {
				rate = 0
			}
			pm := derivePeriods(model.BondParams{
				FaceValue:        1000,
				AnnualCouponRate: rate,
				MarketPrice:      1000,
				YearsToMaturity:  tc.years,
				CouponFrequency:  tc.frequency,
			})
			if pm.TotalPeriods != tc.wantCount {
				t.Errorf("TotalPeriods: got %d, want %d", pm.TotalPeriods, tc.wantCount)
			}
			if pm.CouponPerPeriod != tc.wantCoupon {
				t.Errorf("CouponPerPeriod: got %.2f, want %.2f", pm.CouponPerPeriod, tc.wantCoupon)
			}
			if pm.MonthsPerPeriod != 12/tc.frequency {
				t.Errorf("MonthsPerPeriod: got %d, want %d", pm.MonthsPerPeriod, 12/tc.frequency)
			}
		})
	}
}
