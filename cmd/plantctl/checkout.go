package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	checkoutdomain "github.com/dwikikusuma/plantshop/internal/checkout/domain"
	"github.com/spf13/cobra"
)

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout [method]",
		Short: "Run the checkout flow with a payment method",
		Long: `Run the checkout flow. Without a method the selection alert is shown.

Methods: upi-gpay, upi-phonepe, upi-paytm, upi-other,
         card-visa, card-mastercard, card-amex, paypal

upi-other asks for a UPI ID on stdin; an empty line cancels.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []checkoutdomain.PaymentOption
			if len(args) == 1 {
				options = []checkoutdomain.PaymentOption{{Value: args[0], Checked: true}}
			}

			dialog := &terminalDialog{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout()}
			state := a.checkout.Checkout(cmd.Context(), dialog, options)
			a.log.Debug("checkout finished", "state", state.String())
			return nil
		},
	}
}

// terminalDialog prints alerts and reads prompt answers line by line.
type terminalDialog struct {
	in  *bufio.Reader
	out io.Writer
}

func (d *terminalDialog) Alert(ctx context.Context, message string) {
	fmt.Fprintln(d.out, message)
}

func (d *terminalDialog) Prompt(ctx context.Context, message string) (string, bool) {
	fmt.Fprint(d.out, message+" ")
	line, err := d.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, line != ""
}
