package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResendPasswordReset(ctx context.Context) error
	VerifyOTP(ctx context.Context) error
	ResendOTP(ctx context.Context) error
	Announcements(ctx context.Context) error
	Complaints(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, register, forgot, resend, verify, announcements, exit"
	helpSignedIn  = "Available commands: announcements, complaints, whoami, verify, resendotp, logout, exit"
)

// Commands that only make sense in one session state. Anything not listed
// here is available in both.
var (
	signedOutOnly = map[string]bool{"login": true, "register": true, "forgot": true, "resend": true}
	signedInOnly  = map[string]bool{
		"complaints": true, "c": true, "whoami": true, "resendotp": true, "logout": true,
	}
)

// runREPL reads one command per line from reader and dispatches it. Errors
// from handlers are not printed here; handlers report their own failures
// through the notifier. The loop ends on EOF, "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("brgy %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if a.isLoggedIn() && signedOutOnly[cmd] {
			printlnFn("Sign out first to use:", cmd)
			continue
		}
		if !a.isLoggedIn() && signedInOnly[cmd] {
			printlnFn("Sign in first to use:", cmd)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "resend":
			_ = a.ResendPasswordReset(ctx)

		case "verify":
			_ = a.VerifyOTP(ctx)

		case "resendotp":
			_ = a.ResendOTP(ctx)

		case "announcements", "a":
			_ = a.Announcements(ctx)

		case "complaints", "c":
			_ = a.Complaints(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

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
