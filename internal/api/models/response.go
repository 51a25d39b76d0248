package models

// ValuationResponse represents the response from a valuation run
type ValuationResponse struct {
	ID       string           `json:"id,omitempty"`
	Status   string           `json:"status"`
	Summary  ValuationSummary `json:"summary"`
	Schedule []ScheduleRow    `json:"schedule,omitempty"`
}

// ValuationSummary contains the assembled valuation results
type ValuationSummary struct {
	CurrentYield          float64 `json:"current_yield"`
	YieldToMaturity       float64 `json:"yield_to_maturity"`
	TotalInterestEarned   float64 `json:"total_interest_earned"`
	PriceStatus           string  `json:"price_status"` // "premium", "discount", "par"
	PremiumDiscountAmount float64 `json:"premium_discount_amount"`
	TotalPeriods          int     `json:"total_periods"`
	SolverIterations      int     `json:"solver_iterations"`
}

// ScheduleRow represents one period in the payment schedule
type ScheduleRow struct {
	Period             int     `json:"period"`
	PaymentDate        string  `json:"payment_date"` // YYYY-MM-DD
	CouponPayment      float64 `json:"coupon_payment"`
	CumulativeInterest float64 `json:"cumulative_interest"`
	RemainingPrincipal float64 `json:"remaining_principal"`
}

// CompareValuationResponse represents the response from a comparison
type CompareValuationResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string           `json:"name"`
	Summary ValuationSummary `json:"summary"`
}

// BondInfo represents information about a bond preset
type BondInfo struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	File  string    `json:"file"`
	Terms BondTerms `json:"terms"`
}

// BondTerms contains headline bond terms
type BondTerms struct {
	FaceValue        float64 `json:"face_value"`
	AnnualCouponRate float64 `json:"annual_coupon_rate"`
	YearsToMaturity  float64 `json:"years_to_maturity"`
	CouponFrequency  int     `json:"coupon_frequency"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
