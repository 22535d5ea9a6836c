package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/solarplan/internal/budget"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/dustin/go-humanize"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

type renderer struct {
	noColor bool
}

// status paints s with its category color. Without colors the category
// name is spelled out instead.
func (r renderer) status(s models.Status) string {
	c := models.CategoryOf(s)
	if r.noColor {
		return fmt.Sprintf("%s [%s]", s, c)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Color())).
		Bold(true).
		Render("● " + string(s))
}

func (r renderer) header(s string) string {
	if r.noColor {
		return s
	}
	return headerStyle.Render(s)
}

func (r renderer) muted(s string) string {
	if r.noColor {
		return s
	}
	return mutedStyle.Render(s)
}

// formatMoney renders v in Brazilian notation, e.g. "R$ 194.513,60".
func formatMoney(v float64) string {
	return "R$ " + humanize.FormatFloat("#.###,##", v)
}

// formatCost renders a decimal string from the server. Unparseable
// values are shown as received.
func formatCost(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return formatMoney(v)
}

func formatKwh(v float64) string {
	return humanize.FormatFloat("#.###,##", v) + " kWh"
}

// pad right-pads s to width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func (r renderer) projects(items []*models.Project) string {
	if len(items) == 0 {
		return r.muted("No projects yet. Use 'add' to create one.")
	}

	nameW, costW := len("Project"), len("Cost")
	costs := make([]string, len(items))
	for i, p := range items {
		costs[i] = formatCost(p.Cost)
		nameW = max(nameW, utf8.RuneCountInString(p.Name))
		costW = max(costW, utf8.RuneCountInString(costs[i]))
	}

	var b strings.Builder
	b.WriteString(r.header(fmt.Sprintf("  #  %s  %s  %s", pad("Project", nameW), pad("Cost", costW), "Status")))
	b.WriteString("\n")
	for i, p := range items {
		fmt.Fprintf(&b, "%3d  %s  %s  %s\n", i+1, pad(p.Name, nameW), pad(costs[i], costW), r.status(p.Status))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r renderer) estimate(e budget.Estimate) string {
	return fmt.Sprintf("%s/month -> %d panels, %s",
		formatKwh(e.ConsumptionKwh), e.PanelsNeeded, formatMoney(e.TotalCost()))
}

func (r renderer) history(items []budget.Estimate) string {
	if len(items) == 0 {
		return r.muted("No estimates in this session.")
	}
	var b strings.Builder
	for i, e := range items {
		fmt.Fprintf(&b, "%3d  %s  %s\n", i+1, r.muted(e.CreatedAt.Format("15:04:05")), r.estimate(e))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r renderer) saved(items []*models.SavedEstimate) string {
	if len(items) == 0 {
		return r.muted("No saved estimates.")
	}
	var b strings.Builder
	for i, e := range items {
		kwh := e.ConsumptionKwh
		if v, err := strconv.ParseFloat(kwh, 64); err == nil {
			kwh = formatKwh(v)
		}
		fmt.Fprintf(&b, "%3d  %s  %s/month -> %d panels, %s\n",
			i+1, r.muted(e.CreatedAt.Local().Format("2006-01-02 15:04")), kwh, e.Panels, formatCost(e.Cost))
	}
	return strings.TrimRight(b.String(), "\n")
}
