package service

import "context"

// MailEvent is a queued mail job consumed by the mail worker.
type MailEvent struct {
	RequestID string `json:"request_id,omitempty"`
	MessageID string `json:"message_id"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Kind      string `json:"kind"`
}

// EventPublisher hands mail jobs to a message transport.
type EventPublisher interface {
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
