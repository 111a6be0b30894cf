package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for the prompt. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowMenu(ctx context.Context) error
	Buy(ctx context.Context, name string) error
	ShowCart(ctx context.Context) error
	RemoveItem(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error
	Contact(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	ShowPromo(ctx context.Context) error
	ShowStats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Aroma CLI.
//
// It reads a line from r, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help             show available commands
//	login | l        log in (l only while logged out)
//	logout           log out
//	menu             show the menu
//	buy <name>       add a menu item to the cart
//	cart | k         show the cart
//	remove <id>      remove a cart line
//	clear            empty the cart
//	contact          fill in the contact form
//	theme            toggle light/dark
//	promo            show the current promo
//	stats            show the visit log summary
//	exit | quit      leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("aroma %s > ", statusFn()))
		line, err := r.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: menu, buy <name>, (k) cart, remove <id>, clear, contact, theme, promo, stats, logout, exit")
			} else {
				printlnFn("Available commands: (l) login, menu, buy <name>, (k) cart, remove <id>, clear, contact, theme, promo, stats, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "l":
			if !a.isLoggedIn() {
				_ = a.Login(ctx)
			}

		case "logout":
			_ = a.Logout(ctx)

		case "menu":
			_ = a.ShowMenu(ctx)

		case "buy":
			if arg == "" {
				printlnFn("Usage: buy <name>")
				continue
			}
			_ = a.Buy(ctx, arg)

		case "cart", "k":
			_ = a.ShowCart(ctx)

		case "remove":
			if arg == "" {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveItem(ctx, arg)

		case "clear":
			_ = a.ClearCart(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "promo":
			_ = a.ShowPromo(ctx)

		case "stats":
			_ = a.ShowStats(ctx)

		case "exit", "quit":
			printlnFn("La revedere!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
