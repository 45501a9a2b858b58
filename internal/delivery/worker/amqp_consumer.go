package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"recruit/config"
	"recruit/internal/delivery"
	"recruit/internal/delivery/worker/handler"
	"recruit/internal/domain/constants"
	"recruit/internal/domain/lifecycle"
	"recruit/internal/domain/service"
	"recruit/internal/infra/pubsub"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerPrefetch  = 8
	reconnectInterval = 5 * time.Second
)

// mailProcessor is the part of handler.MailProcessor the consumer drives.
type mailProcessor interface {
	Process(ctx context.Context, event *service.MailEvent) error
}

// amqpConsumer reads mail events from the RabbitMQ queue. It redials after a
// lost connection until stopped.
type amqpConsumer struct {
	url       string
	queue     string
	enabled   bool
	processor mailProcessor
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ConsumerParams holds dependencies for the AMQP consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.MailProcessor
}

// NewAMQPConsumer creates the queue consumer. It only runs when
// pubsub.provider is "amqp"; otherwise Serve returns immediately.
func NewAMQPConsumer(params ConsumerParams) (delivery.Delivery, error) {
	consumer := newAMQPConsumer(params.Cfg.PubSub, params.Processor, params.Logger)
	if consumer.enabled && consumer.url == "" {
		return nil, errors.New("amqp URL is required for amqp provider")
	}

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func newAMQPConsumer(cfg *config.PubSubConfig, processor mailProcessor, logger *slog.Logger) *amqpConsumer {
	ctx, cancel := context.WithCancel(context.Background())
	consumer := &amqpConsumer{
		processor: processor,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		queue:     constants.DefaultAMQPQueue,
	}

	if cfg != nil && cfg.Provider == constants.PubSubProviderAMQP {
		consumer.enabled = true
		consumer.url = cfg.AMQPURL
		if cfg.AMQPQueue != "" {
			consumer.queue = cfg.AMQPQueue
		}
	}

	return consumer
}

// Serve consumes until stop is called.
func (c *amqpConsumer) Serve(ctx context.Context) error {
	if !c.enabled {
		c.logger.Info("AMQP consumer disabled, pubsub provider is not amqp")

		return nil
	}

	c.wg.Add(1)
	defer c.wg.Done()

	c.logger.Info("Starting AMQP consumer", slog.String("queue", c.queue))

	for {
		if err := c.consume(); err != nil {
			c.logger.Error("AMQP consumer stopped, reconnecting",
				slog.String("queue", c.queue),
				slog.Duration("retry_in", reconnectInterval),
				slog.Any("error", err),
			)
		}

		select {
		case <-c.ctx.Done():
			return nil
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectInterval):
		}
	}
}

// consume runs one connection until it closes or the consumer is stopped.
func (c *amqpConsumer) consume() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial amqp broker")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open amqp channel")
	}
	defer ch.Close()

	if err := pubsub.DeclareMailQueue(ch, c.queue); err != nil {
		return err
	}
	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return errors.Wrap(err, "failed to set prefetch")
	}

	deliveries, err := ch.Consume(
		c.queue,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", c.queue)
	}

	for {
		select {
		case <-c.ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handleDelivery(c.ctx, d)
		}
	}
}

// handleDelivery acks delivered and malformed messages. A retryable failure
// is requeued once; a second failure drops the message.
func (c *amqpConsumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var event service.MailEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.ErrorContext(ctx, "[Worker] Failed to parse mail event",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)
		c.settle(ctx, d.Ack(false))

		return
	}

	headerRequestID, _ := d.Headers["request_id"].(string)
	ctx, reqLogger := handler.ScopedContext(ctx, c.logger, headerRequestID, event.RequestID)

	err := c.processor.Process(ctx, &event)
	switch {
	case err == nil:
		c.settle(ctx, d.Ack(false))
	case handler.IsRetryable(err) && !d.Redelivered:
		reqLogger.WarnContext(ctx, "[Worker] Mail delivery failed, requeueing",
			slog.String("message_id", event.MessageID),
			slog.Any("error", err),
		)
		c.settle(ctx, d.Nack(false, true))
	default:
		reqLogger.ErrorContext(ctx, "[Worker] Dropping mail event",
			slog.String("message_id", event.MessageID),
			slog.String("kind", event.Kind),
			slog.Bool("redelivered", d.Redelivered),
			slog.Any("error", err),
		)
		c.settle(ctx, d.Nack(false, false))
	}
}

func (c *amqpConsumer) settle(ctx context.Context, err error) {
	if err != nil {
		c.logger.WarnContext(ctx, "[Worker] Failed to settle delivery", slog.Any("error", err))
	}
}

func (c *amqpConsumer) stop(ctx context.Context) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "amqp consumer did not stop in time")
	}
}
