package mail

import "context"

// TemplateArgs is the data a mail template renders with.
type TemplateArgs map[string]string

// Sender delivers a templated mail. Callers treat a send as fire-and-forget:
// order creation and account activation never fail because mail did.
type Sender interface {
	Send(ctx context.Context, to, template string, args TemplateArgs) error
}

const (
	TemplateOrderConfirmed = "order_confirmed"
	TemplateWelcome        = "welcome"
)
