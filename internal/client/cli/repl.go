package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Courses(ctx context.Context, args []string) error
	Course(ctx context.Context, args []string) error
	Module(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Enroll(ctx context.Context, args []string) error
	Complete(ctx context.Context, args []string) error
	Quiz(ctx context.Context, args []string) error
	MyCourses(ctx context.Context) error
	Chat(ctx context.Context) error
	History(ctx context.Context) error
	Score(ctx context.Context) error
	Recalc(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, status, exit"
	helpUser  = "Available commands: dashboard, courses [category=..] [difficulty=..] [stage=..] [search], " +
		"course <id>, module <id>, next, prev, enroll <id>, complete <module-id>, quiz <module-id>, " +
		"mycourses, chat, history, score, recalc, profile, editprofile, status, logout, exit"
)

// guestCommands run without a signed-in user.
var guestCommands = map[string]bool{
	"help": true, "register": true, "login": true, "status": true, "exit": true, "quit": true,
}

// runREPL reads commands from reader until EOF, "exit" or "quit". The first
// word is the command, the rest are its arguments. Handlers report their own
// failures, so returned errors are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sme %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !guestCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first (type 'login' or 'register').")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "status":
			_ = a.Status(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)
		case "courses":
			_ = a.Courses(ctx, args)
		case "course":
			_ = a.Course(ctx, args)
		case "module":
			_ = a.Module(ctx, args)
		case "next":
			_ = a.Next(ctx)
		case "prev":
			_ = a.Prev(ctx)
		case "enroll":
			_ = a.Enroll(ctx, args)
		case "complete":
			_ = a.Complete(ctx, args)
		case "quiz":
			_ = a.Quiz(ctx, args)
		case "mycourses":
			_ = a.MyCourses(ctx)

		case "chat":
			_ = a.Chat(ctx)
		case "history":
			_ = a.History(ctx)
		case "score":
			_ = a.Score(ctx)
		case "recalc":
			_ = a.Recalc(ctx)

		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
