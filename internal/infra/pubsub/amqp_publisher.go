package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"recruit/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher sends mail events to a durable RabbitMQ queue over one
// long-lived connection. A dropped connection is redialed on the next publish.
type amqpPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials url and declares queue.
func NewAMQPPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &amqpPublisher{url: url, queue: queue, logger: logger}

	if _, err := p.channel(); err != nil {
		return nil, err
	}

	return p, nil
}

// DeclareMailQueue declares the durable mail queue on ch. The publisher and the
// worker consumer share it so either side can start first.
func DeclareMailQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)

	return errors.Wrapf(err, "failed to declare queue %s", queue)
}

// channel returns the open channel, redialing if the previous one closed.
// Caller must not hold p.mu.
func (p *amqpPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open amqp channel")
	}

	if err := DeclareMailQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, err
	}

	p.conn = conn
	p.ch = ch

	return ch, nil
}

func (p *amqpPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.MessageID,
			Timestamp:    time.Now().UTC(),
			Headers:      headers,
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to publish mail event")
	}

	p.logger.InfoContext(ctx, "[AMQP] Mail event published",
		slog.String("queue", p.queue),
		slog.String("message_id", event.MessageID),
		slog.String("kind", event.Kind),
	)

	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Wrapf(errs[0], "failed to close amqp publisher")
	}

	return nil
}
