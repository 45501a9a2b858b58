package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"recruit/config"
	"recruit/internal/domain/service"
	"recruit/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives mail events pushed by Pub/Sub or the local publisher.
type PushHandler struct {
	audience  string
	validate  tokenValidator
	processor *MailProcessor
	logger    *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Processor *MailProcessor
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler. Push requests are
// authenticated only when pubsub.pushAudience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:  audience,
		validate:  idtoken.Validate,
		processor: params.Processor,
		logger:    params.Logger,
	}
}

// HandlePush acknowledges with 200 unless delivery should be retried, in
// which case it answers 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPubSubToken(ctx, c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse mail event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// attributes > payload > X-Request-Id header
	ctx, reqLogger := ScopedContext(ctx, h.logger, pushMsg.Message.Attributes["request_id"], event.RequestID)

	if err := h.processor.Process(ctx, &event); err != nil {
		reqLogger.ErrorContext(ctx, "[Worker] Failed to process mail event",
			slog.String("message_id", event.MessageID),
			slog.String("kind", event.Kind),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryable(err)),
		)
		if IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated
// push subscriptions.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(ctx context.Context, req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
