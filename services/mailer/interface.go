package mailer

import "context"

// Mailer sends the submission confirmation to the visitor.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, name string) error
}
