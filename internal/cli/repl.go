package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	SessionInfo(ctx context.Context) error
	Forgot(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Products(ctx context.Context) error
	Search(ctx context.Context, query string) error
	AddToCart(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Track(ctx context.Context, number string) error
	Reorder(ctx context.Context, number string) error
	AddReview(ctx context.Context, productID string) error
	ShowReviews(ctx context.Context, productID string) error
}

// runREPL starts a simple read–eval–print loop for the storefront terminal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Handler errors are printed as-is: the sentinel error texts double as the
// user-facing messages ("invalid email or password", "order not found").
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn(err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("easeshop %s> ", statusFn()))
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

		switch cmd {
		case "help":
			printlnFn("Shop: products, search <text>, add <id> [qty], cart, reviews <id>")
			if a.isLoggedIn(ctx) {
				printlnFn("Account: whoami, update, session, checkout, orders, track <number>, reorder <number>, review <id>, logout, exit")
			} else {
				printlnFn("Account: register, login, forgot, resetpw, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.Whoami(ctx))

		case "update":
			report(a.UpdateProfile(ctx))

		case "session":
			report(a.SessionInfo(ctx))

		case "forgot":
			report(a.Forgot(ctx))

		case "resetpw":
			report(a.ResetPassword(ctx))

		case "products":
			report(a.Products(ctx))

		case "search":
			report(a.Search(ctx, strings.Join(args, " ")))

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product id> [quantity]")
				continue
			}
			report(a.AddToCart(ctx, args))

		case "cart":
			report(a.ShowCart(ctx))

		case "checkout":
			report(a.Checkout(ctx))

		case "orders":
			report(a.Orders(ctx))

		case "track":
			if len(args) == 0 {
				printlnFn("Usage: track <order number>")
				continue
			}
			report(a.Track(ctx, args[0]))

		case "reorder":
			if len(args) == 0 {
				printlnFn("Usage: reorder <order number>")
				continue
			}
			report(a.Reorder(ctx, args[0]))

		case "review":
			if len(args) == 0 {
				printlnFn("Usage: review <product id>")
				continue
			}
			report(a.AddReview(ctx, args[0]))

		case "reviews":
			if len(args) == 0 {
				printlnFn("Usage: reviews <product id>")
				continue
			}
			report(a.ShowReviews(ctx, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
