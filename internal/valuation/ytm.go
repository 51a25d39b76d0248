package valuation

import (
	"math"
)

const (
	ytmTolerance = 1e-10
	ytmMaxIter   = 100
	// ytmFloor is the reset value for a guess that steps below zero.
	// Negative per-period rates are outside the model.
	ytmFloor = 0.0001
)

// ytmSolution is the outcome of the Newton-Raphson solve.
type ytmSolution struct {
	// Rate is the annualized yield to maturity as a decimal (0.0585 = 5.85%).
	Rate       float64
	Iterations int
	Converged  bool
}

// solveYTM finds the per-period rate r such that the present value of the
// coupon stream plus the discounted face value equals the market price,
// then annualizes it.
//
// Newton-Raphson with analytic derivative: the price function is smooth and
// strictly decreasing in r over the domain of interest, so the update
// direction is always well-defined and convergence is typically quadratic.
// The solver never fails; on exhaustion it returns the last guess.
func solveYTM(marketPrice, faceValue, currentYield float64, frequency int, pm periodModel) ytmSolution {
	freq := float64(frequency)

	// Initial guess: period-equivalent of the simple yield. YTM and current
	// yield are close unless the bond trades far from par.
	r := currentYield / freq

	for iter := 0; iter < ytmMaxIter; iter++ {
		price, deriv := priceAndDeriv(r, pm.CouponPerPeriod, faceValue, pm.TotalPeriods)
		diff := price - marketPrice

		if math.Abs(diff) < ytmTolerance {
			return ytmSolution{Rate: r * freq, Iterations: iter + 1, Converged: true}
		}

		r = r - diff/deriv
		if r < 0 {
			r = ytmFloor
		}
	}

	return ytmSolution{Rate: r * freq, Iterations: ytmMaxIter, Converged: false}
}

// priceAndDeriv returns (P(r), dP/dr) for the bullet-bond pricing function
//
//	P(r)  = Σ_{t=1..n} C/(1+r)^t + FV/(1+r)^n
//	P'(r) = -Σ_{t=1..n} t·C/(1+r)^(t+1) - n·FV/(1+r)^(n+1)
//
// P'(r) is strictly negative for FV > 0, including the zero-coupon case.
func priceAndDeriv(r, coupon, faceValue float64, n int) (float64, float64) {
	var price, deriv float64
	for t := 1; t <= n; t++ {
		ft := float64(t)
		price += coupon / math.Pow(1.0+r, ft)
		deriv += -ft * coupon / math.Pow(1.0+r, ft+1)
	}
	fn := float64(n)
	price += faceValue / math.Pow(1.0+r, fn)
	deriv += -fn * faceValue / math.Pow(1.0+r, fn+1)
	return price, deriv
}
