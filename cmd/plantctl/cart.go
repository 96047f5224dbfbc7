package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	"github.com/dwikikusuma/plantshop/internal/storefront/view"
	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the cart",
		Long: `Show or change the cart of --session.

Available subcommands:
  show  - Print line items and totals
  add   - Add a product by id
  inc   - Increase a line item's quantity
  dec   - Decrease a line item's quantity, removing it at zero
  rm    - Remove a line item
  clear - Remove every line item`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print line items and totals",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, sess *cartapp.Session, args []string) error {
			return printCart(cmd.OutOrStdout(), sess, a.flags.currency)
		}),
	}

	byID := func(use, short string, op func(cmd *cobra.Command, sess *cartapp.Session, id int) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: a.withSession(func(cmd *cobra.Command, sess *cartapp.Session, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("id must be a number: %q", args[0])
				}
				if err := op(cmd, sess, id); err != nil {
					return err
				}
				return printCart(cmd.OutOrStdout(), sess, a.flags.currency)
			}),
		}
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every line item",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, sess *cartapp.Session, args []string) error {
			if err := a.cart.Clear(cmd.Context(), sess); err != nil {
				return err
			}
			return printCart(cmd.OutOrStdout(), sess, a.flags.currency)
		}),
	}

	cartCmd.AddCommand(
		showCmd,
		byID("add", "Add a product by id", func(cmd *cobra.Command, sess *cartapp.Session, id int) error {
			return a.cart.AddToCart(cmd.Context(), sess, id)
		}),
		byID("inc", "Increase a line item's quantity", func(cmd *cobra.Command, sess *cartapp.Session, id int) error {
			return a.cart.IncreaseQuantity(cmd.Context(), sess, id)
		}),
		byID("dec", "Decrease a line item's quantity", func(cmd *cobra.Command, sess *cartapp.Session, id int) error {
			return a.cart.DecreaseQuantity(cmd.Context(), sess, id)
		}),
		byID("rm", "Remove a line item", func(cmd *cobra.Command, sess *cartapp.Session, id int) error {
			return a.cart.RemoveFromCart(cmd.Context(), sess, id)
		}),
		clearCmd,
	)
	return cartCmd
}

func printCart(w io.Writer, sess *cartapp.Session, currency string) error {
	page := view.Cart(sess.Cart, currency, "")
	if page.Empty {
		_, err := fmt.Fprintln(w, page.EmptyState.Message)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY")
	for _, it := range page.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", it.ID, it.Name, it.Price, it.Quantity)
	}
	fmt.Fprintf(tw, "\tTotal items: %d\tTotal: %s\t\n", page.Summary.TotalItems, page.Summary.TotalCost)
	return tw.Flush()
}
