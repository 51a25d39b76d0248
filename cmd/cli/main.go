package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bond-valuation/internal/config"
	"bond-valuation/internal/model"
	"bond-valuation/internal/valuation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "value":
		cmdValue(os.Args[2:])
	case "schedule":
		cmdSchedule(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli value --config examples/config.yaml [--schedule-out results/schedule.csv]")
	fmt.Println("  cli schedule --config examples/config.yaml --out results/schedule.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - value prints current yield, YTM, total interest and premium/discount")
	fmt.Println("  - schedule writes the full coupon timeline as CSV")
}

func cmdValue(args []string) {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("schedule-out", "", "Optional: write payment schedule CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	bond, res := runFromConfig(*cfgPath)

	name := bond.Params.Name
	if name == "" {
		name = "bond"
	}
	fmt.Printf("%s: face=%.2f coupon=%.2f%% price=%.2f maturity=%.2fy freq=%d\n",
		name,
		bond.Params.FaceValue,
		bond.Params.AnnualCouponRate,
		bond.Params.MarketPrice,
		bond.Params.YearsToMaturity,
		bond.Params.CouponFrequency,
	)
	fmt.Printf("Current yield      %.4f%%\n", res.CurrentYield*100)
	fmt.Printf("Yield to maturity  %.4f%% (%d iterations)\n", res.YieldToMaturity*100, res.SolverIterations)
	fmt.Printf("Total interest     $%.2f over %d periods\n", res.TotalInterestEarned, len(res.Schedule))
	if res.PriceStatus == model.PriceStatusPar {
		fmt.Println("Trading at par")
	} else {
		fmt.Printf("Trading at a %s of $%.2f\n", res.PriceStatus, res.PremiumDiscountAmount)
	}

	if *outPath != "" {
		writeSchedule(*outPath, res.Schedule)
	}
}

func cmdSchedule(args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	_, res := runFromConfig(*cfgPath)
	writeSchedule(*outPath, res.Schedule)
}

func runFromConfig(cfgPath string) (*model.Bond, *valuation.Result) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	bond, err := model.NewBond(cfg.Bond.ToModelParams())
	if err != nil {
		panic(err)
	}

	engine := valuation.New()
	res, err := engine.Run(bond, time.Now())
	if err != nil {
		panic(err)
	}
	return bond, res
}

func writeSchedule(path string, schedule []valuation.CashFlowEntry) {
	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := valuation.WriteScheduleCSV(path, schedule); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(schedule), path)
}
