package models

// ValuationRequest represents the request body for valuing a bond
type ValuationRequest struct {
	Bond    BondConfig       `json:"bond" binding:"required"`
	Options ValuationOptions `json:"options,omitempty"`
}

// BondConfig defines bond terms and the market quote
type BondConfig struct {
	BondFile         string  `json:"bond_file,omitempty"` // preset name under examples/bonds/
	Name             string  `json:"name,omitempty"`
	FaceValue        float64 `json:"face_value"`
	AnnualCouponRate float64 `json:"annual_coupon_rate"`
	MarketPrice      float64 `json:"market_price"`
	YearsToMaturity  float64 `json:"years_to_maturity"`
	CouponFrequency  int     `json:"coupon_frequency"`
}

// ValuationOptions contains optional valuation parameters
type ValuationOptions struct {
	IncludeSchedule bool   `json:"include_schedule,omitempty"` // default: false
	AsOf            string `json:"as_of,omitempty"`            // YYYY-MM-DD, default: today
}

// CompareValuationRequest represents a request to value one bond under
// several variations (e.g. a market-price ladder)
type CompareValuationRequest struct {
	BaseBond   BondConfig           `json:"base_bond" binding:"required"`
	Variations []ValuationVariation `json:"variations" binding:"required"`
}

// ValuationVariation defines a variation to value
type ValuationVariation struct {
	Name string     `json:"name" binding:"required"`
	Bond BondConfig `json:"bond" binding:"required"`
}
