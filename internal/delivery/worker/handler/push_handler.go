// Package handler contains the Pub/Sub push handler of the order worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"gadgetshop/config"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/constants"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/service"
	"gadgetshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

// PushHandler handles Pub/Sub push messages carrying placed orders
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	fulfillmentUC  usecase.FulfillmentUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	FulfillmentUC usecase.FulfillmentUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	// Google push tokens are checked everywhere but on developer machines
	develop := params.Config.Env.Env == constants.EnvDevelop
	verifyPushAuth := audience != "" && !develop
	if audience == "" && !develop {
		params.Logger.Warn("[Worker] worker.pushAudience is empty, push requests are accepted without token verification",
			slog.String("env", params.Config.Env.Env),
		)
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		fulfillmentUC:  params.FulfillmentUC,
	}
}

// errSkip marks a message for another consumer of the subscription.
var errSkip = errors.New("event type handled elsewhere")

// HandlePush answers Pub/Sub push deliveries of order.placed events.
// Malformed messages get 400, store failures 503 so Pub/Sub redelivers, everything else 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	switch {
	case errors.Is(err, errSkip):
		h.logger.Info("[Worker] Acknowledging foreign event",
			slog.String("event_type", msg.Message.Attributes["event_type"]),
		)

		return c.NoContent(http.StatusOK)
	case err != nil:
		h.logger.Error("[Worker] Dropping malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(c.Request().Context(), msg, event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("order_id", event.OrderID))
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("[Worker] Fulfilling order",
		slog.String("message_id", msg.Message.MessageID),
		slog.Int("product_count", len(event.ProductIDs)),
	)

	if err := h.fulfillmentUC.HandleOrderPlaced(ctx, event); err != nil {
		retry := isRetryable(err)
		logger.Error("[Worker] Fulfillment failed", slog.Any("error", err), slog.Bool("retryable", retry))
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusBadRequest)
	}

	logger.Info("[Worker] Order fulfilled")

	return c.NoContent(http.StatusOK)
}

// decodePush unwraps the push envelope into an order event. It returns errSkip,
// with the envelope, when the event_type attribute names another event.
func decodePush(c echo.Context) (*PubSubMessage, *service.OrderPlacedEvent, error) {
	msg := new(PubSubMessage)
	if err := c.Bind(msg); err != nil {
		return nil, nil, errors.Wrap(err, "bind envelope")
	}

	if eventType := msg.Message.Attributes["event_type"]; eventType != "" && eventType != constants.EventTypeOrderPlaced {
		return msg, nil, errSkip
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode data")
	}

	event := new(service.OrderPlacedEvent)
	if err := json.Unmarshal(data, event); err != nil {
		return nil, nil, errors.Wrap(err, "unmarshal order event")
	}

	return msg, event, nil
}

// isRetryable reports whether err comes from the store rather than from the message itself.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID follows the request across the queue: the publisher's
// attribute wins, then the event body, then this push request's own id.
func extractRequestID(ctx context.Context, msg *PubSubMessage, event *service.OrderPlacedEvent) string {
	for _, id := range []string{
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the Google-signed OIDC token attached to push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validate(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "validate token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}
