package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/solarplan/internal/budget"
	"github.com/dmitrijs2005/solarplan/internal/client/client"
	"github.com/dmitrijs2005/solarplan/internal/client/config"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

// getSimpleText, getPassword and getConfirmation point to the interactive
// input helpers and can be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

type App struct {
	config   *config.Config
	api      client.Client
	identity *models.Identity
	history  *budget.History
	render   renderer
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, api, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		api:     api,
		history: budget.NewHistory(c.HistoryLimit),
		render:  renderer{noColor: c.NoColor},
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to solarplan (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) getStatus() string {
	if a.identity == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.identity.Email)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// showError prints err the way users should see it: the server's message
// for API errors, a fixed text when the server is unreachable.
func (a *App) showError(err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		a.println("Error:", apiErr.Message)
	case errors.Is(err, client.ErrUnavailable):
		a.println("Error:", client.ErrUnavailable.Error())
	default:
		a.println("Error:", err.Error())
	}
}

// requireLogin prints a hint and reports false when nobody is logged in.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	a.println("Please login first.")
	return false
}
