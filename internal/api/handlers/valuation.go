package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"bond-valuation/internal/api/models"
	"bond-valuation/internal/config"
	"bond-valuation/internal/model"
	"bond-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValuationHandler handles valuation-related requests
type ValuationHandler struct{}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler() *ValuationHandler {
	return &ValuationHandler{}
}

// RunValuation handles POST /api/v1/valuations
func (h *ValuationHandler) RunValuation(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	bond, err := h.buildBond(req.Bond)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_BOND",
				Message: err.Error(),
			},
		})
		return
	}

	asOf, err := parseAsOf(req.Options.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_OPTIONS",
				Message: err.Error(),
			},
		})
		return
	}

	engine := valuation.New()
	result, err := engine.Run(bond, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALUATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, h.buildResponse(result, req.Options.IncludeSchedule))
}

// CompareValuations handles POST /api/v1/valuations/compare
func (h *ValuationHandler) CompareValuations(c *gin.Context) {
	var req models.CompareValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	asOf := time.Now()
	engine := valuation.New()

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeBondConfig(req.BaseBond, variation.Bond)

		bond, err := h.buildBond(merged)
		if err != nil {
			continue // Skip invalid variations
		}

		result, err := engine.Run(bond, asOf)
		if err != nil {
			continue
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareValuationResponse{
		Comparison: comparison,
	})
}

// Helper methods

func (h *ValuationHandler) buildBond(req models.BondConfig) (*model.Bond, error) {
	cfg := config.BondConfig{
		Name:             req.Name,
		FaceValue:        req.FaceValue,
		AnnualCouponRate: req.AnnualCouponRate,
		MarketPrice:      req.MarketPrice,
		YearsToMaturity:  req.YearsToMaturity,
		CouponFrequency:  req.CouponFrequency,
	}

	// If bond_file is set, load it and merge request overrides onto it.
	// bond_file should be just the preset name (e.g. "10y_treasury");
	// files are always looked up in the bonds directory.
	if req.BondFile != "" {
		bondPath := filepath.Join(bondDir(), req.BondFile+".yaml")
		loaded, err := config.LoadUnchecked(bondPath)
		if err == nil {
			cfg = config.MergeBond(loaded.Bond, cfg)
		} else {
			log.Printf("ValuationHandler: Failed to load bond file %s: %v", bondPath, err)
		}
	}

	if cfg.CouponFrequency == 0 {
		cfg.CouponFrequency = model.FrequencyAnnual
	}

	return model.NewBond(cfg.ToModelParams())
}

func bondDir() string {
	dir := os.Getenv("BOND_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "bonds")
		} else {
			dir = "./examples/bonds"
		}
	}
	return dir
}

func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("as_of must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

func mergeBondConfig(base, override models.BondConfig) models.BondConfig {
	merged := base
	if override.BondFile != "" {
		merged.BondFile = override.BondFile
	}
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.FaceValue != 0 {
		merged.FaceValue = override.FaceValue
	}
	if override.AnnualCouponRate != 0 {
		merged.AnnualCouponRate = override.AnnualCouponRate
	}
	if override.MarketPrice != 0 {
		merged.MarketPrice = override.MarketPrice
	}
	if override.YearsToMaturity != 0 {
		merged.YearsToMaturity = override.YearsToMaturity
	}
	if override.CouponFrequency != 0 {
		merged.CouponFrequency = override.CouponFrequency
	}
	return merged
}

func (h *ValuationHandler) buildResponse(result *valuation.Result, includeSchedule bool) models.ValuationResponse {
	response := models.ValuationResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Summary: buildSummary(result),
	}

	if includeSchedule {
		response.Schedule = convertSchedule(result.Schedule)
	}

	return response
}

func buildSummary(result *valuation.Result) models.ValuationSummary {
	return models.ValuationSummary{
		CurrentYield:          result.CurrentYield,
		YieldToMaturity:       result.YieldToMaturity,
		TotalInterestEarned:   result.TotalInterestEarned,
		PriceStatus:           string(result.PriceStatus),
		PremiumDiscountAmount: result.PremiumDiscountAmount,
		TotalPeriods:          len(result.Schedule),
		SolverIterations:      result.SolverIterations,
	}
}

func convertSchedule(schedule []valuation.CashFlowEntry) []models.ScheduleRow {
	rows := make([]models.ScheduleRow, len(schedule))
	for i, entry := range schedule {
		rows[i] = models.ScheduleRow{
			Period:             entry.Period,
			PaymentDate:        entry.PaymentDate.Format("2006-01-02"),
			CouponPayment:      entry.CouponPayment,
			CumulativeInterest: entry.CumulativeInterest,
			RemainingPrincipal: entry.RemainingPrincipal,
		}
	}
	return rows
}
