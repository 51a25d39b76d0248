package model

import "math"

// PriceStatus classifies a market quote relative to face value.
// Keep these values stable; they are intended for JSON and CSV output.
type PriceStatus string

const (
	PriceStatusPremium  PriceStatus = "premium"
	PriceStatusDiscount PriceStatus = "discount"
	PriceStatusPar      PriceStatus = "par"
)

// parTolerance absorbs floating-point noise around an exact-par quote.
const parTolerance = 0.01

// PriceStatusFromDiff classifies marketPrice - faceValue.
func PriceStatusFromDiff(diff float64) PriceStatus {
	switch {
	case math.Abs(diff) < parTolerance:
		return PriceStatusPar
	case diff > 0:
		return PriceStatusPremium
	default:
		return PriceStatusDiscount
	}
}
