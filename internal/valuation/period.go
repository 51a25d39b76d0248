package valuation

import (
	"math"

	"bond-valuation/internal/model"
)

// periodModel is the shared discounting basis for the solver and the
// schedule generator. It is derived once per Run and discarded afterwards.
type periodModel struct {
	// TotalPeriods is the integer count of remaining coupon periods.
	TotalPeriods int
	// CouponPerPeriod is the coupon paid each period in currency units.
	CouponPerPeriod float64
	// MonthsPerPeriod is the calendar spacing between payments.
	MonthsPerPeriod int
}

func derivePeriods(p model.BondParams) periodModel {
	freq := float64(p.CouponFrequency)
	return periodModel{
		TotalPeriods:    int(math.Round(p.YearsToMaturity * freq)),
		CouponPerPeriod: p.AnnualCoupon() / freq,
		MonthsPerPeriod: 12 / p.CouponFrequency,
	}
}
