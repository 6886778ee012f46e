// Package cli is the interactive terminal client.
//
// App wires the session and the page services into a REPL. Each screen of
// the platform is a command: dashboard, courses, course, chat, score and
// profile. Commands other than help, register, login and exit need a
// signed-in user.
//
// The REPL is started with App.Run, which blocks until the user exits or
// input ends.
package cli
