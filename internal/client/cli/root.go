package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.sessions.User(); u != nil {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}

// Root runs the interactive command loop. It exits on scanner EOF or when
// the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to FreshKeep CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "fk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		a.dispatch(ctx, cmd, args)
		if cmd == "exit" || cmd == "quit" {
			return
		}
	}
}

// dispatch executes one command. Handler errors are reported to the user
// here; handlers themselves only print domain output.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	var err error

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(a.out, "Available commands: (l)ist, expiring [days], add, consume <id>, waste <id>, stats, recipes, shop, notifications, whoami, logout, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: register, login, exit")
		}

	case "register":
		err = a.register(ctx)
	case "login":
		err = a.login(ctx)
	case "logout":
		a.logout(ctx)
	case "whoami":
		a.whoami(ctx)

	case "l", "list":
		err = a.list(ctx)
	case "expiring":
		days := 3
		if len(args) > 0 {
			if days, err = strconv.Atoi(args[0]); err != nil {
				fmt.Fprintln(a.out, "Usage: expiring [days]")
				return
			}
		}
		err = a.expiring(ctx, days)
	case "add":
		err = a.addItem(ctx)
	case "consume":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: consume <id>")
			return
		}
		err = a.consume(ctx, args[0])
	case "waste":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: waste <id>")
			return
		}
		err = a.waste(ctx, args[0])
	case "stats":
		err = a.stats(ctx)

	case "recipes":
		err = a.recipes(ctx)
	case "shop":
		err = a.shop(ctx, args)
	case "notifications":
		err = a.notifications(ctx)

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}

	if err != nil {
		// A terminal auth failure downgrades the session; everything else
		// is just shown to the user.
		a.sessions.Observe(ctx, err)
		fmt.Fprintln(a.out, "Error:", err)
	}
}
