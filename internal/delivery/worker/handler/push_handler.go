package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/service"
	"staffing/internal/infra/pubsub"
	"staffing/internal/usecase"

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

// pushedEvent is service.Event with the payload left undecoded until the type is known.
type pushedEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
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

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes staffing domain events pushed by Pub/Sub.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	tierUC         usecase.TierUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	TierUC usecase.TierUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		tierUC:         params.TierUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; every other outcome is acknowledged so a
// malformed message is never retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event pushedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *pushedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *pushedEvent) error {
	switch event.Type {
	case service.EventTypeTierRecomputeRequested:
		var payload service.TierRecomputePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errors.Wrap(err, "invalid recompute payload")
		}

		return h.recompute(ctx, logger, &payload)

	case service.EventTypeShiftCancelled:
		var payload service.ShiftCancelledPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errors.Wrap(err, "invalid cancellation payload")
		}
		logger.Info("[Worker] Shift cancellation acknowledged",
			slog.String("shift_id", payload.ShiftID),
			slog.String("worker_id", payload.WorkerID),
			slog.Bool("late", payload.IsLateCancellation),
		)

		return nil

	case service.EventTypeTierChanged:
		var payload service.TierChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errors.Wrap(err, "invalid tier change payload")
		}
		logger.Info("[Worker] Tier change acknowledged",
			slog.String("subject_type", payload.SubjectType),
			slog.String("subject_id", payload.SubjectID),
			slog.String("previous_tier", payload.PreviousTier),
			slog.String("new_tier", payload.NewTier),
		)

		return nil

	default:
		logger.Warn("[Worker] Ignoring unknown event type", slog.String("event_type", event.Type))

		return nil
	}
}

// recompute refreshes the subject's tier and average rating from its completed shifts.
func (h *PushHandler) recompute(ctx context.Context, logger *slog.Logger, payload *service.TierRecomputePayload) error {
	subjectID, err := uuid.Parse(payload.SubjectID)
	if err != nil {
		return errors.Wrap(err, "invalid subject id")
	}

	switch payload.SubjectType {
	case service.SubjectWorker:
		result, err := h.tierUC.UpdateWorkerTier(ctx, subjectID)
		if err != nil {
			return classify(err)
		}
		if _, err := h.tierUC.RecalculateWorkerRating(ctx, subjectID); err != nil {
			return classify(err)
		}
		logger.Info("[Worker] Worker recomputed",
			slog.String("worker_id", subjectID.String()),
			slog.String("tier", result.NewTier.String()),
			slog.Float64("total_hours", result.TotalHours),
		)

	case service.SubjectHotel:
		if err := h.tierUC.UpdateHotelTier(ctx, subjectID); err != nil {
			return classify(err)
		}
		if _, err := h.tierUC.RecalculateHotelRating(ctx, subjectID); err != nil {
			return classify(err)
		}
		logger.Info("[Worker] Hotel recomputed", slog.String("hotel_id", subjectID.String()))

	default:
		return errors.Errorf("unknown subject type %q", payload.SubjectType)
	}

	return nil
}

// classify marks infrastructure failures as retryable. A missing profile will
// not appear on redelivery, so it is acknowledged.
func classify(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	return newRetryableError(err)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
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
