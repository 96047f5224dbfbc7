package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dwikikusuma/plantshop/internal/storefront/view"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the plants for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.catalog.ListProducts(cmd.Context(), category)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
			for _, p := range products {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, view.FormatMoney(p.Price.Currency, p.Price.Amount))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list indoor, succulent or flowering plants")
	return cmd
}
