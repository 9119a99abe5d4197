package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staffing/config"
	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/service"
	mockUsecase "staffing/internal/mocks/usecase"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockTierUsecase) {
	t.Helper()

	tierUC := mockUsecase.NewMockTierUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		TierUC: tierUC,
	})

	return h, tierUC
}

func pushBody(t *testing.T, eventType string, payload any) string {
	t.Helper()

	data, err := json.Marshal(&service.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  "req-123",
		OccurredAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		Payload:    payload,
	})
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/staffing-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(t *testing.T, h *PushHandler, body string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	return rec.Code
}

func TestPushHandler_RecomputeWorker(t *testing.T) {
	h, tierUC := newTestPushHandler(t, &config.Config{})
	workerID := uuid.New()
	rating := 4.0

	tierUC.EXPECT().UpdateWorkerTier(mock.Anything, workerID).Return(&usecase.WorkerTierResult{
		PreviousTier: entity.TierSilver,
		NewTier:      entity.TierGold,
		TotalHours:   60,
		Promoted:     true,
	}, nil)
	tierUC.EXPECT().RecalculateWorkerRating(mock.Anything, workerID).Return(&rating, nil)

	code := push(t, h, pushBody(t, service.EventTypeTierRecomputeRequested, service.TierRecomputePayload{
		SubjectType: service.SubjectWorker,
		SubjectID:   workerID.String(),
	}))

	assert.Equal(t, http.StatusOK, code)
}

func TestPushHandler_RecomputeHotel(t *testing.T) {
	h, tierUC := newTestPushHandler(t, &config.Config{})
	hotelID := uuid.New()

	tierUC.EXPECT().UpdateHotelTier(mock.Anything, hotelID).Return(nil)
	tierUC.EXPECT().RecalculateHotelRating(mock.Anything, hotelID).Return(nil, nil)

	code := push(t, h, pushBody(t, service.EventTypeTierRecomputeRequested, service.TierRecomputePayload{
		SubjectType: service.SubjectHotel,
		SubjectID:   hotelID.String(),
	}))

	assert.Equal(t, http.StatusOK, code)
}

func TestPushHandler_StorageFailureIsRetried(t *testing.T) {
	h, tierUC := newTestPushHandler(t, &config.Config{})
	workerID := uuid.New()

	tierUC.EXPECT().UpdateWorkerTier(mock.Anything, workerID).Return(nil, errors.New("connection refused"))

	code := push(t, h, pushBody(t, service.EventTypeTierRecomputeRequested, service.TierRecomputePayload{
		SubjectType: service.SubjectWorker,
		SubjectID:   workerID.String(),
	}))

	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestPushHandler_MissingSubjectIsAcknowledged(t *testing.T) {
	h, tierUC := newTestPushHandler(t, &config.Config{})
	workerID := uuid.New()

	tierUC.EXPECT().UpdateWorkerTier(mock.Anything, workerID).
		Return(nil, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker profile not found"))

	code := push(t, h, pushBody(t, service.EventTypeTierRecomputeRequested, service.TierRecomputePayload{
		SubjectType: service.SubjectWorker,
		SubjectID:   workerID.String(),
	}))

	assert.Equal(t, http.StatusOK, code)
}

func TestPushHandler_BadPayloadsAreAcknowledged(t *testing.T) {
	tests := []struct {
		name    string
		payload service.TierRecomputePayload
	}{
		{name: "invalid subject id", payload: service.TierRecomputePayload{SubjectType: service.SubjectWorker, SubjectID: "nope"}},
		{name: "unknown subject type", payload: service.TierRecomputePayload{SubjectType: "agency", SubjectID: uuid.NewString()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			code := push(t, h, pushBody(t, service.EventTypeTierRecomputeRequested, tt.payload))

			assert.Equal(t, http.StatusOK, code)
		})
	}
}

func TestPushHandler_PublishedEventsAreAcknowledged(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, service.EventTypeShiftCancelled, service.ShiftCancelledPayload{
		ShiftID:            uuid.NewString(),
		WorkerID:           uuid.NewString(),
		IsLateCancellation: true,
	})))
	assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, service.EventTypeTierChanged, service.TierChangedPayload{
		SubjectType:  service.SubjectHotel,
		SubjectID:    uuid.NewString(),
		PreviousTier: "SILVER",
		NewTier:      "GOLD",
	})))
	assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, "posting.created", map[string]string{})))
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	assert.Equal(t, http.StatusBadRequest, push(t, h, `{"message":{"data":"%%%not-base64"}}`))

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, push(t, h, `{"message":{"data":"`+notJSON+`"}}`))
}

func TestPushHandler_GoogleProviderRequiresToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google", ProjectID: "p", TopicID: "t"}}
	cfg.Env.Env = "production"
	h, _ := newTestPushHandler(t, cfg)

	code := push(t, h, pushBody(t, service.EventTypeShiftCancelled, service.ShiftCancelledPayload{}))

	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = config.EnvDevelop
	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
