package cli

import (
	"context"
	"fmt"
	"strings"
)

// Run starts the interactive loop. It restores the session from stored
// credentials first, then reads commands until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to InternHub CLI (type 'help' for commands)")

	a.auth.Initialize(ctx)

	for {
		fmt.Fprintf(a.out, "ih %s> ", a.statusLine())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			a.navigate(ctx, cmd, args)
		}
	}
}

func (a *App) printHelp() {
	s := a.auth.Session()

	fmt.Fprintln(a.out, "Browse:   internships, show <id>, search")
	if s.Claims == nil {
		fmt.Fprintln(a.out, "Account:  login, register, exit")
		return
	}

	fmt.Fprintln(a.out, "Account:  dashboard, profile, editprofile, logout, exit")
	if s.Profile == nil {
		return
	}
	switch s.Profile.Role {
	case "student":
		fmt.Fprintln(a.out, "Student:  apply <id>, applications")
	case "company":
		fmt.Fprintln(a.out, "Company:  post, edit <id>, close <id>, remove <id>, applicants <id>, status <id> <status>")
	}
}
