package app

import "context"

// Dialog is how checkout talks to the shopper. Alert shows a message;
// Prompt asks for a line of text and reports false when the shopper
// cancels.
type Dialog interface {
	Alert(ctx context.Context, message string)
	Prompt(ctx context.Context, message string) (string, bool)
}
