package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL dispatches to. Each handler gets
// the whole tokenized line, command name included, and reports problems to
// the user itself.
type execIface interface {
	CreatePatient(ctx context.Context, tokens []string) error
	CreateCaregiver(ctx context.Context, tokens []string) error
	LoginPatient(ctx context.Context, tokens []string) error
	LoginCaregiver(ctx context.Context, tokens []string) error
	SearchCaregiverSchedule(ctx context.Context, tokens []string) error
	Reserve(ctx context.Context, tokens []string) error
	UploadAvailability(ctx context.Context, tokens []string) error
	Cancel(ctx context.Context, tokens []string) error
	AddDoses(ctx context.Context, tokens []string) error
	ShowAppointments(ctx context.Context, tokens []string) error
	Logout(ctx context.Context, tokens []string) error
}

// runREPL reads commands line by line and dispatches them to a. Every
// command runs under its own deadline of timeout (none when timeout <= 0).
// The loop ends on "quit" or "exit", at end of input, or when ctx is done.
//
// Reading is synchronous: while a handler runs nothing else reads input, so
// a handler may prompt for and consume the next line itself.
func runREPL(ctx context.Context, a execIface, timeout time.Duration, scanner *bufio.Scanner) {
	handlers := map[string]func(context.Context, []string) error{
		"create_patient":            a.CreatePatient,
		"create_caregiver":          a.CreateCaregiver,
		"login_patient":             a.LoginPatient,
		"login_caregiver":           a.LoginCaregiver,
		"search_caregiver_schedule": a.SearchCaregiverSchedule,
		"reserve":                   a.Reserve,
		"upload_availability":       a.UploadAvailability,
		"cancel":                    a.Cancel,
		"add_doses":                 a.AddDoses,
		"show_appointments":         a.ShowAppointments,
		"logout":                    a.Logout,
	}

	for {
		if ctx.Err() != nil {
			printlnFn()
			return
		}

		printFn("> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			printlnFn()
			return
		}

		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			printlnFn(msgPleaseTryAgain)
			continue
		}

		switch cmd := tokens[0]; cmd {
		case "help":
			for _, l := range helpLines {
				printlnFn(l)
			}

		case "quit", "exit":
			printlnFn(msgBye)
			return

		default:
			h, found := handlers[cmd]
			if !found {
				printlnFn(msgInvalidOperation)
				continue
			}
			runCommand(ctx, timeout, h, tokens)
		}
	}
}

func runCommand(ctx context.Context, timeout time.Duration, h func(context.Context, []string) error, tokens []string) {
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	_ = h(ctx, tokens)
}
