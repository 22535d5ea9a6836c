package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Estimate(ctx context.Context) error
	History(ctx context.Context) error
	Save(ctx context.Context) error
	Saved(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to
// a. It returns on EOF or on "exit"/"quit".
//
//	Always:
//	  help, estimate, history, exit | quit
//	Not logged in:
//	  register, login
//	Logged in:
//	  (l)ist, add, edit, delete, save, saved, logout
//
// Errors returned by commands are ignored here; commands report their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("solar %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, edit, delete, estimate, history, save, saved, logout, exit")
			} else {
				printlnFn("Available commands: register, login, estimate, history, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "estimate":
			_ = a.Estimate(ctx)

		case "history":
			_ = a.History(ctx)

		case "save":
			_ = a.Save(ctx)

		case "saved":
			_ = a.Saved(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
