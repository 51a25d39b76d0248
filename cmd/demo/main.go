package main

import (
	"fmt"
	"time"

	"bond-valuation/internal/model"
	"bond-valuation/internal/valuation"
)

// Demo:
// - Instantiate a sample discount bond
// - Run the valuation engine and print every output to show how models fit together
func main() {
	bond, err := model.NewBond(model.BondParams{
		Name:             "demo 10y semi-annual",
		FaceValue:        1000,
		AnnualCouponRate: 5,
		MarketPrice:      950,
		YearsToMaturity:  10,
		CouponFrequency:  model.FrequencySemiAnnual,
	})
	if err != nil {
		panic(err)
	}

	engine := valuation.New()
	res, err := engine.Run(bond, time.Now())
	if err != nil {
		panic(err)
	}

	fmt.Printf("current yield:       %.4f%%\n", res.CurrentYield*100)
	fmt.Printf("yield to maturity:   %.4f%% (%d iterations)\n", res.YieldToMaturity*100, res.SolverIterations)
	fmt.Printf("total interest:      $%.2f\n", res.TotalInterestEarned)
	fmt.Printf("price status:        %s ($%.2f)\n", res.PriceStatus, res.PremiumDiscountAmount)
	fmt.Printf("schedule (%d periods):\n", len(res.Schedule))
	for _, entry := range res.Schedule {
		fmt.Printf("  %3d  %s  coupon=%8.2f  cum=%9.2f  principal=%9.2f\n",
			entry.Period,
			entry.PaymentDate.Format("2006-01-02"),
			entry.CouponPayment,
			entry.CumulativeInterest,
			entry.RemainingPrincipal,
		)
	}
}
