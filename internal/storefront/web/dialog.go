package web

import (
	"context"
	"strings"
)

// formDialog answers checkout dialogs from a submitted form. Alerts are
// collected and shown as flash messages after the redirect; the prompt
// answer is the form's upi-id field, and a blank field counts as cancel.
type formDialog struct {
	upiID  string
	alerts []string
}

func (d *formDialog) Alert(ctx context.Context, message string) {
	d.alerts = append(d.alerts, message)
}

func (d *formDialog) Prompt(ctx context.Context, message string) (string, bool) {
	id := strings.TrimSpace(d.upiID)
	return id, id != ""
}
