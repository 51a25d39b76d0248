package valuation

import (
	"math"
	"time"

	"bond-valuation/internal/model"
)

// buildSchedule produces the ordered payment timeline relative to asOf.
// No issue date is modeled, so period k pays k coupon intervals from asOf.
//
// Monetary fields are rounded to 2 decimals before the cumulative sum is
// taken, so the running total may differ from an unrounded accumulation by
// up to a cent. That order is load-bearing for output parity with existing
// consumers; do not swap it for accumulate-then-round.
func buildSchedule(p model.BondParams, pm periodModel, asOf time.Time) []CashFlowEntry {
	schedule := make([]CashFlowEntry, 0, pm.TotalPeriods)

	coupon := round2(pm.CouponPerPeriod)
	cum := 0.0

	for period := 1; period <= pm.TotalPeriods; period++ {
		cum = round2(cum + coupon)

		principal := p.FaceValue
		if period == pm.TotalPeriods {
			principal = 0
		}

		schedule = append(schedule, CashFlowEntry{
			Period:             period,
			PaymentDate:        asOf.AddDate(0, period*pm.MonthsPerPeriod, 0),
			CouponPayment:      coupon,
			CumulativeInterest: cum,
			RemainingPrincipal: principal,
		})
	}

	return schedule
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
