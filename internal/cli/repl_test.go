package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn(ctx context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.calls = append(f.calls, "update")
	return nil
}
func (f *fakeExec) SessionInfo(ctx context.Context) error {
	f.calls = append(f.calls, "session")
	return nil
}
func (f *fakeExec) Forgot(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) ResetPassword(ctx context.Context) error {
	f.calls = append(f.calls, "resetpw")
	return nil
}
func (f *fakeExec) Products(ctx context.Context) error {
	f.calls = append(f.calls, "products")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.arg = query
	return nil
}
func (f *fakeExec) AddToCart(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "add")
	f.arg = strings.Join(args, " ")
	return nil
}
func (f *fakeExec) ShowCart(ctx context.Context) error {
	f.calls = append(f.calls, "cart")
	return nil
}
func (f *fakeExec) Checkout(ctx context.Context) error {
	f.calls = append(f.calls, "checkout")
	return nil
}
func (f *fakeExec) Orders(ctx context.Context) error {
	f.calls = append(f.calls, "orders")
	return nil
}
func (f *fakeExec) Track(ctx context.Context, number string) error {
	f.calls = append(f.calls, "track")
	f.arg = number
	return nil
}
func (f *fakeExec) Reorder(ctx context.Context, number string) error {
	f.calls = append(f.calls, "reorder")
	f.arg = number
	return nil
}
func (f *fakeExec) AddReview(ctx context.Context, productID string) error {
	f.calls = append(f.calls, "review")
	f.arg = productID
	return nil
}
func (f *fakeExec) ShowReviews(ctx context.Context, productID string) error {
	f.calls = append(f.calls, "reviews")
	f.arg = productID
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"products",
		"add 3 2",
		"cart",
		"checkout",
		"orders",
		"track EASE-2026-0042",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "products", "add", "cart", "checkout", "orders", "track"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "EASE-2026-0042" {
		t.Fatalf("track arg not passed: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("add\ntrack\nreorder\nreview\nreviews\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_SearchJoinsQuery(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("search running shoes\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if exec.arg != "running shoes" {
		t.Fatalf("search query mismatch: %q", exec.arg)
	}
}
