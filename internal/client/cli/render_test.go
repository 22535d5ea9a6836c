package cli

import (
	"testing"

	"github.com/dmitrijs2005/solarplan/internal/budget"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEstimate(t *testing.T, in string) budget.Estimate {
	t.Helper()
	e, err := budget.EstimateFromInput(in)
	require.NoError(t, err)
	return e
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 194.513,60", formatMoney(194513.6))
	assert.Equal(t, "R$ 0,00", formatMoney(0))
	assert.Equal(t, "R$ 9.725,68", formatMoney(9725.68))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "R$ 15.000,00", formatCost("15000.00"))
	assert.Equal(t, "n/a", formatCost("n/a"))
}

func TestRenderer_StatusWithoutColor(t *testing.T) {
	r := renderer{noColor: true}
	assert.Equal(t, "Começar [green]", r.status(models.StatusStart))
	assert.Equal(t, "Em andamento [yellow]", r.status(models.StatusInProgress))
	assert.Equal(t, "Finalizado [red]", r.status(models.StatusFinished))
	assert.Equal(t, "Outro [gray]", r.status("Outro"))
}

func TestRenderer_StatusWithColorKeepsText(t *testing.T) {
	r := renderer{}
	for _, s := range append(models.KnownStatuses, "Outro") {
		assert.Contains(t, r.status(s), string(s))
	}
}

func TestRenderer_ProjectsAlignsColumns(t *testing.T) {
	r := renderer{noColor: true}
	out := r.projects([]*models.Project{
		{Name: "A", Cost: "1", Status: models.StatusStart},
		{Name: "Área grande", Cost: "1000000", Status: models.StatusFinished},
	})
	assert.Contains(t, out, "  1  A            R$ 1,00")
	assert.Contains(t, out, "  2  Área grande  R$ 1.000.000,00")
}

func TestRenderer_Estimate(t *testing.T) {
	r := renderer{noColor: true}
	assert.Equal(t, "1.300,00 kWh/month -> 20 panels, R$ 194.513,60", r.estimate(mustEstimate(t, "1300")))
}
