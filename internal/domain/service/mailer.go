package service

import "context"

// PaymentConfirmationMail is the data rendered into the payment confirmation email.
type PaymentConfirmationMail struct {
	To               string
	FirstName        string
	PaymentReference int64
}

// Mailer sends transactional emails.
type Mailer interface {
	SendPaymentConfirmation(ctx context.Context, mail PaymentConfirmationMail) error
}
