package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. *App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Preferences(ctx context.Context) error
	ListUsers(ctx context.Context) error
	SessionStatus(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches to the App. Handlers
// report their own errors; the loop only cares about I/O and exiting.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("vn %s> ", statusFn())
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: prefs, users, session, logout, exit")
			} else {
				printlnFn("Available commands: register, login, users, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "prefs":
			_ = a.Preferences(ctx)

		case "users":
			_ = a.ListUsers(ctx)

		case "session":
			_ = a.SessionStatus(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// Root starts the interactive console on stdin.
func (a *App) Root(ctx context.Context) {
	log.Println("visual-news vault console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
