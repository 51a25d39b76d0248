package valuation

import (
	"fmt"
	"log"
	"math"
	"time"

	"bond-valuation/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run values a single bond as of the given reference date.
//
// The period model is derived once and shared by the solver and the schedule
// generator; nothing else couples the calculators. The call is stateless and
// safe to invoke concurrently.
func (e *Engine) Run(bond *model.Bond, asOf time.Time) (*Result, error) {
	if bond == nil {
		return nil, fmt.Errorf("bond is nil")
	}
	p := bond.Params

	pm := derivePeriods(p)

	currentYield := p.AnnualCoupon() / p.MarketPrice

	sol := solveYTM(p.MarketPrice, p.FaceValue, currentYield, p.CouponFrequency, pm)
	if !sol.Converged {
		// Best-estimate semantics: the last guess is still returned.
		log.Printf("valuation: YTM solve did not converge within %d iterations (face=%.2f price=%.2f)",
			sol.Iterations, p.FaceValue, p.MarketPrice)
	}

	totalInterest := p.AnnualCoupon() * p.YearsToMaturity

	diff := p.MarketPrice - p.FaceValue
	status := model.PriceStatusFromDiff(diff)
	amount := math.Abs(diff)
	if status == model.PriceStatusPar {
		amount = 0
	}

	return &Result{
		CurrentYield:          currentYield,
		YieldToMaturity:       sol.Rate,
		TotalInterestEarned:   totalInterest,
		PriceStatus:           status,
		PremiumDiscountAmount: amount,
		Schedule:              buildSchedule(p, pm, asOf),
		SolverIterations:      sol.Iterations,
	}, nil
}
