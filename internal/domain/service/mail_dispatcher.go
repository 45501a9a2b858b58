package service

import "context"

// Kinds of outbound mail.
const (
	MailKindOTP           = "otp"
	MailKindPasswordReset = "password_reset"
	MailKindEmailUpdate   = "email_update"
)

// Mail is a rendered plain-text message.
type Mail struct {
	To      string
	Subject string
	Body    string
	Kind    string
}

// MailDispatcher delivers mail. Callers treat a failure as non-fatal to the
// state they already persisted.
type MailDispatcher interface {
	Send(ctx context.Context, mail *Mail) error
}

// MailSender is the final delivery hop (SMTP in production). The dispatcher
// used by the API may queue instead and let the mail worker call a MailSender.
type MailSender interface {
	Deliver(ctx context.Context, mail *Mail) error
}
