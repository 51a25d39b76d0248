package valuation

import (
	"time"

	"bond-valuation/internal/model"
)

// CashFlowEntry is one row of the payment timeline.
// This is the primary artifact for "what gets paid when" on a bond.
type CashFlowEntry struct {
	// Period is 1-based.
	Period int

	PaymentDate time.Time

	// CouponPayment is rounded to 2 decimals at generation time.
	CouponPayment float64
	// CumulativeInterest is the rounded running sum of the rounded coupons.
	CumulativeInterest float64
	// RemainingPrincipal is the face value until the final period, which
	// reports 0 to signal bullet repayment at maturity.
	RemainingPrincipal float64
}

type Result struct {
	// Yields are decimals (0.0585 = 5.85%).
	CurrentYield    float64
	YieldToMaturity float64

	// TotalInterestEarned is straight-line coupon income over the full life.
	TotalInterestEarned float64

	PriceStatus           model.PriceStatus
	PremiumDiscountAmount float64

	Schedule []CashFlowEntry

	// SolverIterations is the Newton-Raphson step count for the YTM solve.
	SolverIterations int
}
