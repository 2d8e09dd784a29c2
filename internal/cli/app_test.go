package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeshop/easeshop/internal/cart"
	"github.com/easeshop/easeshop/internal/catalog"
	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/config"
	"github.com/easeshop/easeshop/internal/orders"
	"github.com/easeshop/easeshop/internal/reset"
	"github.com/easeshop/easeshop/internal/reviews"
	"github.com/easeshop/easeshop/internal/session"
	"github.com/easeshop/easeshop/internal/storage"
	"github.com/easeshop/easeshop/internal/users"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := storage.NewMemoryStore()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	cat, err := catalog.Load()
	require.NoError(t, err)

	return &App{
		config:  cfg,
		users:   users.NewDirectory(store),
		session: session.NewManager(store, []byte(cfg.SecretKey), cfg.SessionTTL),
		reset:   reset.NewFlow(store, cfg.ResetTokenTTL),
		ledger: orders.NewLedger(store, orders.Pricing{
			TaxAmount:             cfg.TaxAmount,
			ShippingFee:           cfg.ShippingFee,
			FreeShippingThreshold: cfg.FreeShippingThreshold,
		}),
		reviews: reviews.NewBook(store),
		cart:    cart.New(store),
		catalog: cat,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// stubInputs replaces the interactive input seams. Text prompts are answered
// from the queue in order (past the end, ""); every password prompt gets a
// fresh copy of password, since handlers wipe the slice they receive.
func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// loginTestUser seeds an account and a live session, bypassing the prompts.
func loginTestUser(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	user, err := app.users.Register(ctx, users.Registration{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Password:  []byte("correct horse"),
		Address:   "12 Lake Rd",
		City:      "Pune",
		Province:  "MH",
	})
	require.NoError(t, err)
	require.NoError(t, app.session.Establish(ctx, *user))
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"Asha", "Rao", "asha@example.com", "555-0101", "12 Lake Rd", "Pune", "MH"}, []byte("pw12345"))
	require.NoError(t, app.Register(ctx))
	assert.False(t, app.isLoggedIn(ctx), "register must not log in")

	stubInputs(t, []string{"asha@example.com"}, []byte("pw12345"))
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn(ctx))

	current, err := app.session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", current.Email)
	assert.Empty(t, current.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)
	require.NoError(t, app.session.Logout(ctx))

	stubInputs(t, []string{"asha@example.com"}, []byte("wrong"))
	err := app.Login(ctx)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, app.isLoggedIn(ctx))
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	app := newTestApp(t)
	assert.ErrorIs(t, app.Whoami(context.Background()), common.ErrNotAuthenticated)
}

func TestUpdateProfile_NotLoggedIn(t *testing.T) {
	app := newTestApp(t)
	assert.ErrorIs(t, app.UpdateProfile(context.Background()), common.ErrNotAuthenticated)
}

func TestUpdateProfile_RefreshesSession(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)

	// only the city changes, everything else keeps its value
	stubInputs(t, []string{"", "", "", "", "Mumbai", ""}, nil)
	require.NoError(t, app.UpdateProfile(ctx))

	current, err := app.session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", current.City)
	assert.Equal(t, "Asha", current.FirstName)
	assert.Equal(t, "12 Lake Rd", current.Address)
}

func TestCheckoutFlow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)

	require.NoError(t, app.AddToCart(ctx, []string{"1", "2"}))

	stubInputs(t, []string{"", "", "", "card", "leave at door"}, nil)
	require.NoError(t, app.Checkout(ctx))

	current, err := app.session.Current(ctx)
	require.NoError(t, err)
	list, err := app.ledger.ListForUser(ctx, current.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	order := list[0]
	assert.Equal(t, 900, order.Subtotal) // product 1 is 450
	assert.Equal(t, 50, order.Tax)
	assert.Equal(t, 100, order.Shipping)
	assert.Equal(t, 1050, order.Total)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, "Pune", order.ShippingAddress.City)
	assert.Equal(t, "AeroStride Running Shoes", order.Items[0].Name)

	items, err := app.cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "checkout must clear the cart")
}

func TestCheckout_EmptyCart(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)

	assert.ErrorIs(t, app.Checkout(ctx), common.ErrEmptyCart)
}

func TestCheckout_NotLoggedIn(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.AddToCart(ctx, []string{"1", "1"}))
	assert.ErrorIs(t, app.Checkout(ctx), common.ErrNotAuthenticated)
}

func TestReorder_MergesIntoCart(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)

	require.NoError(t, app.AddToCart(ctx, []string{"1", "2"}))
	stubInputs(t, nil, nil)
	require.NoError(t, app.Checkout(ctx))

	current, err := app.session.Current(ctx)
	require.NoError(t, err)
	list, err := app.ledger.ListForUser(ctx, current.ID)
	require.NoError(t, err)

	require.NoError(t, app.Reorder(ctx, list[0].Number))

	items, err := app.cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestResetPasswordFlow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)
	require.NoError(t, app.session.Logout(ctx))

	token, err := app.reset.Request(ctx, "asha@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	stubInputs(t, []string{token}, []byte("brand new pw"))
	require.NoError(t, app.ResetPassword(ctx))

	_, err = app.users.Authenticate(ctx, "asha@example.com", []byte("correct horse"))
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = app.users.Authenticate(ctx, "asha@example.com", []byte("brand new pw"))
	assert.NoError(t, err)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	app := newTestApp(t)
	err := app.AddToCart(context.Background(), []string{"999"})
	assert.ErrorIs(t, err, common.ErrProductNotFound)
}

func TestAddReview_EndToEnd(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	loginTestUser(t, app)

	app.reader = bufio.NewReader(strings.NewReader("great shoes\n\n"))
	stubInputs(t, []string{"5", "Love them"}, nil)
	require.NoError(t, app.AddReview(ctx, "1"))

	list, err := app.reviews.ListForProduct(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Asha Rao", list[0].Name)
	assert.Equal(t, 5, list[0].Rating)
	assert.Equal(t, "Love them", list[0].Title)
	assert.Equal(t, "great shoes", list[0].Content)
}
