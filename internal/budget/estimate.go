// Package budget sizes a solar installation from monthly energy consumption.
//
// The sizing rule is fixed: 20 panels per 1300 kWh/month, rounded up, at
// 9725.68 per panel. Money is computed in integer cents so the result does
// not depend on float rounding.
package budget

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/solarplan/internal/common"
)

const (
	// ReferenceConsumptionKwh is the monthly consumption covered by
	// PanelsPerReference panels.
	ReferenceConsumptionKwh = 1300
	PanelsPerReference      = 20

	// PanelPriceCents is the installed price of one panel, 9725.68.
	PanelPriceCents int64 = 972568

	// MaxConsumptionKwh is the largest accepted consumption. It keeps the
	// panel count inside an INTEGER column and the cost below 1e12.
	MaxConsumptionKwh = 1e9
)

// Estimate is an immutable sizing result.
type Estimate struct {
	ConsumptionKwh float64
	PanelsNeeded   int
	TotalCostCents int64
	CreatedAt      time.Time
}

var errTooLarge = fmt.Errorf("%w: consumption must not exceed %.0f kWh", common.ErrorValidation, float64(MaxConsumptionKwh))

// now is a seam for tests.
var now = time.Now

// NewEstimate sizes an installation for kwh per month. kwh must be finite,
// greater than zero and at most MaxConsumptionKwh.
func NewEstimate(kwh float64) (Estimate, error) {
	if math.IsNaN(kwh) || math.IsInf(kwh, 0) || kwh <= 0 {
		return Estimate{}, fmt.Errorf("%w: consumption must be a number greater than zero", common.ErrorValidation)
	}
	if kwh > MaxConsumptionKwh {
		return Estimate{}, errTooLarge
	}

	panels := PanelsFor(kwh)

	return Estimate{
		ConsumptionKwh: kwh,
		PanelsNeeded:   panels,
		TotalCostCents: int64(panels) * PanelPriceCents,
		CreatedAt:      now(),
	}, nil
}

// PanelsFor returns ceil(kwh / 1300 * 20). The multiplication happens first
// so whole-kWh inputs divide exactly.
func PanelsFor(kwh float64) int {
	return int(math.Ceil(kwh * PanelsPerReference / ReferenceConsumptionKwh))
}

// ParseConsumption reads a user-typed consumption value. A comma is
// accepted as the decimal separator.
func ParseConsumption(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: consumption is required", common.ErrorValidation)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: consumption %q is not a number", common.ErrorValidation, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: consumption must be greater than zero", common.ErrorValidation)
	}
	if v > MaxConsumptionKwh {
		return 0, errTooLarge
	}

	return v, nil
}

// EstimateFromInput combines ParseConsumption and NewEstimate.
func EstimateFromInput(s string) (Estimate, error) {
	kwh, err := ParseConsumption(s)
	if err != nil {
		return Estimate{}, err
	}
	return NewEstimate(kwh)
}

// TotalCost is the cost as a float rounded to two decimals.
func (e Estimate) TotalCost() float64 {
	return float64(e.TotalCostCents) / 100
}

func (e Estimate) FormattedConsumption() string {
	return strconv.FormatFloat(e.ConsumptionKwh, 'f', 2, 64)
}

func (e Estimate) FormattedCost() string {
	return fmt.Sprintf("%d.%02d", e.TotalCostCents/100, e.TotalCostCents%100)
}
