// Package cli implements the interactive storefront terminal: a REPL over
// the catalog, cart, user directory, session, password reset flow, order
// ledger, and review book, all backed by one local store.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/easeshop/easeshop/internal/cart"
	"github.com/easeshop/easeshop/internal/catalog"
	"github.com/easeshop/easeshop/internal/config"
	"github.com/easeshop/easeshop/internal/filex"
	"github.com/easeshop/easeshop/internal/logging"
	"github.com/easeshop/easeshop/internal/orders"
	"github.com/easeshop/easeshop/internal/reset"
	"github.com/easeshop/easeshop/internal/reviews"
	"github.com/easeshop/easeshop/internal/session"
	"github.com/easeshop/easeshop/internal/storage"
	"github.com/easeshop/easeshop/internal/users"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	users   *users.Directory
	session *session.Manager
	reset   *reset.Flow
	ledger  *orders.Ledger
	reviews *reviews.Book
	cart    *cart.Cart
	catalog *catalog.Catalog
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dsn := c.StorePath
	if dsn != ":memory:" && !filepath.IsAbs(dsn) {
		dir, err := filex.EnsureSubdDir("data")
		if err != nil {
			return nil, err
		}
		dsn = filepath.Join(dir, dsn)
	}

	store, db, err := storage.Open(ctx, dsn)
	if err != nil {
		logger.Error(ctx, "error opening store", "error", err)
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	app := &App{
		config:  c,
		logger:  logger,
		db:      db,
		users:   users.NewDirectory(store),
		session: session.NewManager(store, []byte(c.SecretKey), c.SessionTTL),
		reset:   reset.NewFlow(store, c.ResetTokenTTL),
		ledger: orders.NewLedger(store, orders.Pricing{
			TaxAmount:             c.TaxAmount,
			ShippingFee:           c.ShippingFee,
			FreeShippingThreshold: c.FreeShippingThreshold,
		}),
		reviews: reviews.NewBook(store),
		cart:    cart.New(store),
		catalog: cat,
		reader:  bufio.NewReader(os.Stdin),
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}
