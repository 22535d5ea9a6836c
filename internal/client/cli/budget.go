package cli

import (
	"context"

	"github.com/dmitrijs2005/solarplan/internal/budget"
)

// Estimate sizes an installation locally and records it in the session
// history. Invalid input is reported and not recorded.
func (a *App) Estimate(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Monthly consumption (kWh)", a.out)
	if err != nil {
		return err
	}

	e, err := budget.EstimateFromInput(answer)
	if err != nil {
		a.showError(err)
		return err
	}

	a.history.Add(e)
	a.println(a.render.estimate(e))
	return nil
}

func (a *App) History(ctx context.Context) error {
	a.println(a.render.history(a.history.Items()))
	return nil
}

// Save stores the most recent estimate on the server.
func (a *App) Save(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	e, ok := a.history.Latest()
	if !ok {
		a.println("Nothing to save. Run 'estimate' first.")
		return nil
	}

	saved, err := a.api.SaveEstimate(ctx, a.identity.ID, e.ConsumptionKwh)
	if err != nil {
		a.showError(err)
		return err
	}

	a.println("Saved:", saved.Panels, "panels,", formatCost(saved.Cost))
	return nil
}

func (a *App) Saved(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	items, err := a.api.ListEstimates(ctx, a.identity.ID)
	if err != nil {
		a.showError(err)
		return err
	}

	a.println(a.render.saved(items))
	return nil
}
