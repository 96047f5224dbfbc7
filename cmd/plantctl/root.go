package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	cartinfra "github.com/dwikikusuma/plantshop/internal/cart/infra"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/plantshop/internal/catalog/app"
	"github.com/dwikikusuma/plantshop/internal/catalog/infra/static"
	checkoutapp "github.com/dwikikusuma/plantshop/internal/checkout/app"
	"github.com/dwikikusuma/plantshop/pkg/logger"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	driver   string
	db       string
	session  string
	currency string
	logLevel string
}

// app is everything a subcommand needs. The store is opened only by
// commands that touch a cart.
type app struct {
	flags    *globalFlags
	log      *slog.Logger
	store    cartinfra.Store
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
}

func (a *app) open() error {
	if a.store != nil {
		return nil
	}
	store, err := cartinfra.OpenStore(a.flags.driver, a.flags.db, a.flags.currency)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = store
	a.cart = cartapp.NewService(store, adapter.NewCatalogServiceReader(a.catalog))
	return nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
		a.store = nil
	}
}

// withSession opens the store and the --session cart for fn and closes the
// store afterwards, whether or not fn succeeds.
func (a *app) withSession(fn func(cmd *cobra.Command, sess *cartapp.Session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(); err != nil {
			return err
		}
		defer a.close()

		sess, err := a.cart.Open(cmd.Context(), a.flags.session)
		if err != nil {
			return err
		}
		return fn(cmd, sess, args)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	a := &app{flags: flags}

	rootCmd := &cobra.Command{
		Use:   "plantctl",
		Short: "Browse the plant catalog and manage a cart from the terminal",
		Long: `plantctl works on the same cart records as the storefront.

Carts are keyed by --session; use the storefront's session id to inspect
a browser cart, or any name for a terminal-only cart.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = newLogger(cmd.ErrOrStderr(), flags.logLevel)
			a.catalog = catalogapp.NewService(static.NewProductRepo(flags.currency))
			a.checkout = checkoutapp.NewService(a.log)
			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.driver, "driver", "bolt", "cart store driver: bolt, sqlite or memory")
	pf.StringVar(&flags.db, "db", "plantshop.db", "path to the cart store file")
	pf.StringVar(&flags.session, "session", "cli", "session id whose cart to use")
	pf.StringVar(&flags.currency, "currency", "USD", "catalog currency")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(newCatalogCmd(a), newCartCmd(a), newCheckoutCmd(a))
	return rootCmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return logger.NewWithWriter(w, logger.Options{Service: "plantctl", Env: "cli", Level: level})
}
