package budget

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixClock(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })
	return fixed
}

func TestNewEstimate_ReferenceConsumption(t *testing.T) {
	at := fixClock(t)

	e, err := NewEstimate(1300)
	require.NoError(t, err)

	assert.Equal(t, 20, e.PanelsNeeded)
	assert.Equal(t, int64(19451360), e.TotalCostCents)
	assert.InDelta(t, 194513.60, e.TotalCost(), 1e-9)
	assert.Equal(t, "194513.60", e.FormattedCost())
	assert.Equal(t, "1300.00", e.FormattedConsumption())
	assert.Equal(t, at, e.CreatedAt)
}

func TestNewEstimate_RoundsPanelsUp(t *testing.T) {
	tests := []struct {
		kwh    float64
		panels int
		cost   string
	}{
		{kwh: 1, panels: 1, cost: "9725.68"},
		{kwh: 65, panels: 1, cost: "9725.68"},
		{kwh: 65.01, panels: 2, cost: "19451.36"},
		{kwh: 130, panels: 2, cost: "19451.36"},
		{kwh: 650, panels: 10, cost: "97256.80"},
		{kwh: 1301, panels: 21, cost: "204239.28"},
		{kwh: 2600, panels: 40, cost: "389027.20"},
	}

	for _, tt := range tests {
		e, err := NewEstimate(tt.kwh)
		require.NoError(t, err)
		assert.Equal(t, tt.panels, e.PanelsNeeded, "kwh=%v", tt.kwh)
		assert.Equal(t, tt.cost, e.FormattedCost(), "kwh=%v", tt.kwh)
	}
}

func TestNewEstimate_IsDeterministic(t *testing.T) {
	for _, kwh := range []float64{0.5, 42, 999.99, 1300, 12345.678} {
		a, err := NewEstimate(kwh)
		require.NoError(t, err)
		b, err := NewEstimate(kwh)
		require.NoError(t, err)
		assert.Equal(t, a.PanelsNeeded, b.PanelsNeeded)
		assert.Equal(t, a.TotalCostCents, b.TotalCostCents)
	}
}

func TestNewEstimate_RejectsNonPositive(t *testing.T) {
	for _, kwh := range []float64{0, -1, -1300} {
		_, err := NewEstimate(kwh)
		assert.ErrorIs(t, err, common.ErrorValidation, "kwh=%v", kwh)
	}
}

func TestNewEstimate_UpperBound(t *testing.T) {
	tests := []struct {
		name    string
		kwh     float64
		panels  int
		cost    string
		wantErr bool
	}{
		{name: "at limit", kwh: MaxConsumptionKwh, panels: 15384616, cost: "149625852138.88"},
		{name: "just above", kwh: MaxConsumptionKwh + 1, wantErr: true},
		{name: "huge", kwh: 1e15, wantErr: true},
		{name: "max float", kwh: 1e300, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEstimate(tt.kwh)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorValidation)
				assert.Equal(t, Estimate{}, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.panels, e.PanelsNeeded)
			assert.Equal(t, tt.cost, e.FormattedCost())
			assert.Positive(t, e.TotalCostCents)
		})
	}
}

func TestParseConsumption_UpperBound(t *testing.T) {
	v, err := ParseConsumption("1000000000")
	require.NoError(t, err)
	assert.Equal(t, float64(MaxConsumptionKwh), v)

	_, err = ParseConsumption("1e10")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = EstimateFromInput("1000000000,5")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestParseConsumption(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "1300", want: 1300},
		{in: " 250.5 ", want: 250.5},
		{in: "250,5", want: 250.5},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-10", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConsumption(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrorValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimateFromInput(t *testing.T) {
	e, err := EstimateFromInput("1300")
	require.NoError(t, err)
	assert.Equal(t, 20, e.PanelsNeeded)

	_, err = EstimateFromInput("lots")
	assert.ErrorIs(t, err, common.ErrorValidation)
}
