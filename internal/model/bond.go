package model

import (
	"errors"
)

// Coupon frequencies supported by the valuation engine.
const (
	FrequencyAnnual     = 1
	FrequencySemiAnnual = 2
)

// BondParams defines the terms and market quote of a fixed-coupon bullet bond.
// Units:
// - FaceValue: currency units, repaid at maturity
// - AnnualCouponRate: percent (5.0 = 5%)
// - MarketPrice: currency units
// - YearsToMaturity: years (fractional allowed)
// - CouponFrequency: coupons per year, 1 (annual) or 2 (semi-annual)
type BondParams struct {
	Name             string
	FaceValue        float64
	AnnualCouponRate float64
	MarketPrice      float64
	YearsToMaturity  float64
	CouponFrequency  int
}

// Bond is a validated bond ready for valuation.
type Bond struct {
	Params BondParams
}

func NewBond(params BondParams) (*Bond, error) {
	b := &Bond{Params: params}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bond) Validate() error {
	p := b.Params
	if p.FaceValue <= 0 {
		return errors.New("FaceValue must be > 0")
	}
	if p.AnnualCouponRate < 0 || p.AnnualCouponRate > 100 {
		return errors.New("AnnualCouponRate must be in [0, 100]")
	}
	if p.MarketPrice <= 0 {
		return errors.New("MarketPrice must be > 0")
	}
	if p.YearsToMaturity <= 0 || p.YearsToMaturity > 100 {
		return errors.New("YearsToMaturity must be in (0, 100]")
	}
	if p.CouponFrequency != FrequencyAnnual && p.CouponFrequency != FrequencySemiAnnual {
		return errors.New("CouponFrequency must be 1 (annual) or 2 (semi-annual)")
	}
	return nil
}

// AnnualCoupon is the total coupon paid per year in currency units.
func (p BondParams) AnnualCoupon() float64 {
	return p.FaceValue * p.AnnualCouponRate / 100.0
}
