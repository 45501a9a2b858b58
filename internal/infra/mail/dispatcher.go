package mail

import (
	"context"
	"log/slog"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	"recruit/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DispatcherParams holds the dependencies for NewMailDispatcher.
type DispatcherParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Sender    service.MailSender
	Publisher service.EventPublisher
}

// NewMailDispatcher sends through the queue when mail.transport is "queue"
// and directly through the sender otherwise. The queue transport needs a
// pubsub provider; without one every message would be dropped.
func NewMailDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	if params.Config.Mail != nil && params.Config.Mail.Transport == config.MailTransportQueue {
		if params.Config.PubSub == nil || params.Config.PubSub.Provider == "" {
			return nil, errors.New("pubsub.provider is required for queue mail transport")
		}

		return NewQueueDispatcher(params.Publisher, params.Logger), nil
	}

	return NewDirectDispatcher(params.Sender, params.Logger), nil
}

type directDispatcher struct {
	sender service.MailSender
	logger *slog.Logger
}

// NewDirectDispatcher delivers synchronously through sender.
func NewDirectDispatcher(sender service.MailSender, logger *slog.Logger) service.MailDispatcher {
	return &directDispatcher{sender: sender, logger: logger}
}

func (d *directDispatcher) Send(ctx context.Context, mail *service.Mail) error {
	if err := d.sender.Deliver(ctx, mail); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, d.logger).WarnContext(ctx, "Mail delivery failed",
			slog.String("to", util.MaskEmail(mail.To)),
			slog.String("kind", mail.Kind),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

type queueDispatcher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewQueueDispatcher hands mail to the mail worker through publisher.
func NewQueueDispatcher(publisher service.EventPublisher, logger *slog.Logger) service.MailDispatcher {
	return &queueDispatcher{publisher: publisher, logger: logger}
}

func (d *queueDispatcher) Send(ctx context.Context, mail *service.Mail) error {
	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MessageID: uuid.NewString(),
		To:        mail.To,
		Subject:   mail.Subject,
		Body:      mail.Body,
		Kind:      mail.Kind,
	}

	if err := d.publisher.PublishMailEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, d.logger).WarnContext(ctx, "Mail enqueue failed",
			slog.String("to", util.MaskEmail(mail.To)),
			slog.String("kind", mail.Kind),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to enqueue mail")
	}

	return nil
}
