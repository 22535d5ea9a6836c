package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

var errCancelled = errors.New("cancelled")

func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	items, err := a.api.ListProjects(ctx, a.identity.ID)
	if err != nil {
		a.showError(err)
		return err
	}

	a.println(a.render.projects(items))
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Project name", a.out)
	if err != nil {
		return err
	}
	cost, err := getSimpleText(a.reader, "Cost (R$)", a.out)
	if err != nil {
		return err
	}
	status, err := a.readStatus("")
	if err != nil {
		return err
	}

	p, err := a.api.CreateProject(ctx, models.ProjectInput{
		UserID: a.identity.ID,
		Name:   name,
		Cost:   cost,
		Status: status,
	})
	if err != nil {
		a.showError(err)
		return err
	}

	a.println("Created", p.Name, a.render.status(p.Status))
	return nil
}

// Edit picks a project and rewrites it. An empty answer keeps the current
// value.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	p, err := a.selectProject(ctx)
	if err != nil || p == nil {
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Project name [%s]", p.Name), a.out)
	if err != nil {
		return err
	}
	cost, err := getSimpleText(a.reader, fmt.Sprintf("Cost (R$) [%s]", p.Cost), a.out)
	if err != nil {
		return err
	}
	status, err := a.readStatus(p.Status)
	if err != nil {
		return err
	}

	in := models.ProjectInput{UserID: a.identity.ID, Name: p.Name, Cost: p.Cost, Status: status}
	if name != "" {
		in.Name = name
	}
	if cost != "" {
		in.Cost = cost
	}

	updated, err := a.api.UpdateProject(ctx, p.ID, in)
	if err != nil {
		a.showError(err)
		return err
	}

	a.println("Updated", updated.Name, a.render.status(updated.Status))
	return nil
}

// Delete asks twice: a y/N confirmation, then the project name typed back.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	p, err := a.selectProject(ctx)
	if err != nil || p == nil {
		return err
	}

	if !getConfirmation(a.reader, fmt.Sprintf("Delete project %q?", p.Name), a.out) {
		a.println("Cancelled.")
		return errCancelled
	}
	typed, err := getSimpleText(a.reader, "Type the project name to confirm", a.out)
	if err != nil {
		return err
	}
	if typed != p.Name {
		a.println("Name does not match. Cancelled.")
		return errCancelled
	}

	if err := a.api.DeleteProject(ctx, p.ID, a.identity.ID); err != nil {
		a.showError(err)
		return err
	}

	a.println("Deleted", p.Name)
	return nil
}

// selectProject lists the user's projects and asks for one by number. It
// returns nil without error when there is nothing to choose.
func (a *App) selectProject(ctx context.Context) (*models.Project, error) {
	items, err := a.api.ListProjects(ctx, a.identity.ID)
	if err != nil {
		a.showError(err)
		return nil, err
	}
	a.println(a.render.projects(items))
	if len(items) == 0 {
		return nil, nil
	}

	answer, err := getSimpleText(a.reader, "Project number", a.out)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(items) {
		a.println("No such project:", answer)
		return nil, errCancelled
	}
	return items[n-1], nil
}

// readStatus offers the known statuses by number. Any other text is taken
// as a custom status; an empty answer keeps current when it is set.
func (a *App) readStatus(current models.Status) (models.Status, error) {
	prompt := "Status:"
	for i, s := range models.KnownStatuses {
		prompt += fmt.Sprintf(" (%d) %s", i+1, s)
	}
	if current != "" {
		prompt += fmt.Sprintf(" [%s]", current)
	}

	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(models.KnownStatuses) {
		return models.KnownStatuses[n-1], nil
	}
	return models.Status(answer), nil
}
