package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"bond-valuation/internal/api/models"
	"bond-valuation/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// BondHandler handles bond preset requests
type BondHandler struct {
	bondDir string
}

// NewBondHandler creates a new bond preset handler
func NewBondHandler() *BondHandler {
	dir := bondDir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &BondHandler{bondDir: dir}
}

// ListBonds handles GET /api/v1/bonds
func (h *BondHandler) ListBonds(c *gin.Context) {
	bonds := []models.BondInfo{}

	entries, err := os.ReadDir(h.bondDir)
	if err != nil {
		log.Printf("BondHandler: Failed to read bond directory %s: %v", h.bondDir, err)
		c.JSON(http.StatusOK, gin.H{"bonds": bonds})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.bondDir, entry.Name())
		info, err := h.loadBondInfo(path, entry.Name())
		if err != nil {
			log.Printf("BondHandler: Failed to load bond file %s: %v", path, err)
			continue // Skip invalid files
		}

		bonds = append(bonds, *info)
	}

	c.JSON(http.StatusOK, gin.H{"bonds": bonds})
}

func (h *BondHandler) loadBondInfo(path, filename string) (*models.BondInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Bond config.BondConfig `yaml:"bond"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	// The filename without extension is the preset ID (e.g. "10y_treasury").
	id := strings.TrimSuffix(filename, ".yaml")

	name := wrapper.Bond.Name
	if name == "" {
		name = id
	}

	return &models.BondInfo{
		ID:   id,
		Name: name,
		File: path,
		Terms: models.BondTerms{
			FaceValue:        wrapper.Bond.FaceValue,
			AnnualCouponRate: wrapper.Bond.AnnualCouponRate,
			YearsToMaturity:  wrapper.Bond.YearsToMaturity,
			CouponFrequency:  wrapper.Bond.CouponFrequency,
		},
	}, nil
}
