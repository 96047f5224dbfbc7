package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/plantshop/internal/checkout/domain"
)

const (
	MsgSelectPayment = "Please select a payment method"
	MsgPromptUPIID   = "Please enter your UPI ID:"
	comingSoon       = "This feature is coming soon!"
)

// Service is a placeholder checkout: it validates the payment selection
// and tells the shopper which handler would take over. No payment is made.
type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

func (s *Service) Checkout(ctx context.Context, dialog Dialog, options []domain.PaymentOption) domain.State {
	var selected string
	var ok bool
	for _, opt := range options {
		if opt.Checked {
			selected = opt.Value
			ok = true
		}
	}

	if !ok {
		dialog.Alert(ctx, MsgSelectPayment)
		return domain.StateIdle
	}

	if domain.IsUPI(selected) {
		return s.processUPI(ctx, dialog, selected)
	}
	return s.processInternational(ctx, dialog, selected)
}

func (s *Service) processUPI(ctx context.Context, dialog Dialog, method string) domain.State {
	label := domain.Label(method)

	if method == domain.UPIOther {
		upiID, ok := dialog.Prompt(ctx, MsgPromptUPIID)
		upiID = strings.TrimSpace(upiID)
		if !ok || upiID == "" {
			s.log.DebugContext(ctx, "upi prompt cancelled")
			return domain.StateIdle
		}
		dialog.Alert(ctx, fmt.Sprintf("Payment processing with %s: %s\n%s", label, upiID, comingSoon))
		s.log.InfoContext(ctx, "checkout submitted", slog.String("method", method))
		return domain.StateSubmitted
	}

	dialog.Alert(ctx, fmt.Sprintf("Redirecting to %s for payment...\n%s", label, comingSoon))
	s.log.InfoContext(ctx, "checkout submitted", slog.String("method", method))
	return domain.StateSubmitted
}

func (s *Service) processInternational(ctx context.Context, dialog Dialog, method string) domain.State {
	dialog.Alert(ctx, fmt.Sprintf("Processing payment with %s...\n%s", domain.Label(method), comingSoon))
	s.log.InfoContext(ctx, "checkout submitted", slog.String("method", method))
	return domain.StateSubmitted
}
