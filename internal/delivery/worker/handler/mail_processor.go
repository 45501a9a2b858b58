package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	"recruit/internal/infra/metrics"
	"recruit/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// retryableError marks a failure the transport should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether err should trigger a redelivery.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// MailProcessor delivers queued mail events through the final sender. Push
// and AMQP transports both feed it.
type MailProcessor struct {
	sender  service.MailSender
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// MailProcessorParams holds dependencies for the MailProcessor
type MailProcessorParams struct {
	fx.In

	Sender  service.MailSender
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewMailProcessor creates a new MailProcessor
func NewMailProcessor(params MailProcessorParams) *MailProcessor {
	return &MailProcessor{
		sender:  params.Sender,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Process validates event and hands it to the sender. A malformed event is
// returned as a permanent error; a sender failure is retryable.
func (p *MailProcessor) Process(ctx context.Context, event *service.MailEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	if err := validateEvent(event); err != nil {
		return err
	}

	err := p.sender.Deliver(ctx, &service.Mail{
		To:      event.To,
		Subject: event.Subject,
		Body:    event.Body,
		Kind:    event.Kind,
	})
	p.metrics.RecordMailDelivery(event.Kind, err)
	if err != nil {
		return newRetryableError(err)
	}

	logger.InfoContext(ctx, "[Worker] Mail delivered",
		slog.String("message_id", event.MessageID),
		slog.String("kind", event.Kind),
		slog.String("to", util.MaskEmail(event.To)),
	)

	return nil
}

func validateEvent(event *service.MailEvent) error {
	if _, err := mail.ParseAddress(event.To); err != nil {
		return errors.Wrap(err, "invalid recipient")
	}
	if strings.TrimSpace(event.Subject) == "" {
		return errors.New("missing subject")
	}
	if event.Body == "" {
		return errors.New("missing body")
	}

	return nil
}

// ScopedContext attaches a request ID and a logger carrying it to ctx. The ID
// comes from the first non-empty candidate, then the context, then a new UUID.
func ScopedContext(ctx context.Context, logger *slog.Logger, candidates ...string) (context.Context, *slog.Logger) {
	requestID := ""
	for _, candidate := range candidates {
		if candidate != "" {
			requestID = candidate

			break
		}
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return deliverycontext.WithRequestScope(ctx, logger, requestID)
}

