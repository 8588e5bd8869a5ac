package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isSignedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Events(ctx context.Context) error
	Show(ctx context.Context, eventID int64) error
	Create(ctx context.Context) error
	Update(ctx context.Context, eventID int64) error
	Delete(ctx context.Context, eventID int64) error
}

// runREPL starts the root read–eval–print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands taking an event id expect it as the second token. Any errors
// returned by command handlers are ignored here; handlers report their own
// errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "hubbub %s > ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		id, idOK := int64(0), false
		if len(args) > 0 {
			if parsed, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				id, idOK = parsed, true
			}
		}

		switch cmd {
		case "help":
			if a.isSignedIn(ctx) {
				fmt.Fprintln(out, "Available commands: events, show <id>, create, update <id>, delete <id>, profile, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: events, show <id>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "e", "events":
			_ = a.Events(ctx)

		case "show":
			if !idOK {
				fmt.Fprintln(out, "Usage: show <event-id>")
				continue
			}
			_ = a.Show(ctx, id)

		case "create":
			_ = a.Create(ctx)

		case "update":
			if !idOK {
				fmt.Fprintln(out, "Usage: update <event-id>")
				continue
			}
			_ = a.Update(ctx, id)

		case "delete":
			if !idOK {
				fmt.Fprintln(out, "Usage: delete <event-id>")
				continue
			}
			_ = a.Delete(ctx, id)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
