package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bond-valuation/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load bond terms from a separate YAML (e.g. examples/bonds/*.yaml).
	// If both BondFile and Bond are provided, Bond overrides BondFile.
	BondFile string     `yaml:"bond_file"`
	Bond     BondConfig `yaml:"bond"`
}

type BondConfig struct {
	Name             string  `yaml:"name"`
	FaceValue        float64 `yaml:"face_value"`
	AnnualCouponRate float64 `yaml:"annual_coupon_rate"`
	MarketPrice      float64 `yaml:"market_price"`
	YearsToMaturity  float64 `yaml:"years_to_maturity"`
	CouponFrequency  int     `yaml:"coupon_frequency"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If coupon_frequency is not provided, default to annual.
	// This keeps preset files concise for plain annual-pay bonds.
	if c.Bond.CouponFrequency == 0 {
		c.Bond.CouponFrequency = model.FrequencyAnnual
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If bond_file is set, load it and merge in any explicit overrides from c.Bond.
	if c.BondFile != "" {
		bondPath := c.BondFile
		if !filepath.IsAbs(bondPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), bondPath)
			if _, err := os.Stat(cand); err == nil {
				bondPath = cand
			}
		}
		loaded, err := loadBondFile(bondPath)
		if err != nil {
			return nil, err
		}
		c.Bond = MergeBond(loaded, c.Bond)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate bond terms by constructing a model.Bond.
	_, err := model.NewBond(c.Bond.ToModelParams())
	if err != nil {
		return fmt.Errorf("bond config invalid: %w", err)
	}
	return nil
}

func (b BondConfig) ToModelParams() model.BondParams {
	return model.BondParams{
		Name:             b.Name,
		FaceValue:        b.FaceValue,
		AnnualCouponRate: b.AnnualCouponRate,
		MarketPrice:      b.MarketPrice,
		YearsToMaturity:  b.YearsToMaturity,
		CouponFrequency:  b.CouponFrequency,
	}
}

type bondFileWrapper struct {
	Bond BondConfig `yaml:"bond"`
}

func loadBondFile(path string) (BondConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BondConfig{}, err
	}
	var w bondFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BondConfig{}, err
	}
	return w.Bond, nil
}

// MergeBond overlays non-zero fields from override onto base.
// This is used when loading a bond preset and then applying overrides from
// the config file or an API request.
func MergeBond(base, override BondConfig) BondConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.FaceValue != 0 {
		out.FaceValue = override.FaceValue
	}
	if override.AnnualCouponRate != 0 {
		out.AnnualCouponRate = override.AnnualCouponRate
	}
	if override.MarketPrice != 0 {
		out.MarketPrice = override.MarketPrice
	}
	if override.YearsToMaturity != 0 {
		out.YearsToMaturity = override.YearsToMaturity
	}
	if override.CouponFrequency != 0 {
		out.CouponFrequency = override.CouponFrequency
	}
	return out
}
