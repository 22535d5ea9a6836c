package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) List(context.Context) error     { return f.record("list") }
func (f *fakeExec) Add(context.Context) error      { return f.record("add") }
func (f *fakeExec) Edit(context.Context) error     { return f.record("edit") }
func (f *fakeExec) Delete(context.Context) error   { return f.record("delete") }
func (f *fakeExec) Estimate(context.Context) error { return f.record("estimate") }
func (f *fakeExec) History(context.Context) error  { return f.record("history") }
func (f *fakeExec) Save(context.Context) error     { return f.record("save") }
func (f *fakeExec) Saved(context.Context) error    { return f.record("saved") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"register",
		"login",
		"help",
		"l",
		"list",
		"add",
		"edit",
		"",
		"delete",
		"estimate",
		"history",
		"save",
		"saved",
		"logout",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	want := []string{"register", "login", "list", "list", "add", "edit", "delete", "estimate", "history", "save", "saved", "logout"}
	assert.Equal(t, want, exec.calls, "commands after exit must not run")

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Available commands: register, login, estimate, history, exit")
	assert.Contains(t, out, "Available commands: (l)ist, add, edit, delete")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
	assert.Contains(t, out, "solar status> ")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("quit-not\nhistory"))

	assert.Equal(t, []string{"history"}, exec.calls)
}
