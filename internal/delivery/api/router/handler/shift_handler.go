package handler

import (
	"context"
	"log/slog"
	"net/http"

	"staffing/internal/delivery/api/middleware"
	"staffing/internal/delivery/api/response"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShiftHandlerParams holds dependencies for ShiftHandler, injected by Fx.
type ShiftHandlerParams struct {
	fx.In

	CancellationUC usecase.CancellationUsecase
	ShiftUC        usecase.ShiftUsecase
	Logger         *slog.Logger
}

// ShiftHandler serves the shift lifecycle: cancel, complete and rate.
type ShiftHandler struct {
	cancellationUC usecase.CancellationUsecase
	shiftUC        usecase.ShiftUsecase
	logger         *slog.Logger
}

// NewShiftHandler is the constructor for ShiftHandler.
func NewShiftHandler(params ShiftHandlerParams) *ShiftHandler {
	return &ShiftHandler{
		cancellationUC: params.CancellationUC,
		shiftUC:        params.ShiftUC,
		logger:         params.Logger,
	}
}

// CancelShiftRequest is the optional body of the cancel route.
type CancelShiftRequest struct {
	Reason             *string `json:"reason" validate:"omitempty,max=500"`
	IsLateCancellation *bool   `json:"isLateCancellation"`
}

// CancelShiftResponse reports the server's lateness classification.
type CancelShiftResponse struct {
	Success            bool   `json:"success"`
	IsLateCancellation bool   `json:"isLateCancellation"`
	Message            string `json:"message"`
}

// CompleteShiftRequest is the body of the complete route.
type CompleteShiftRequest struct {
	TotalHours float64 `json:"totalHours" validate:"gt=0,lte=24"`
}

// CompleteShiftResponse reports the worker tier after completion.
type CompleteShiftResponse struct {
	ShiftID      string  `json:"shiftId"`
	TotalHours   float64 `json:"totalHours"`
	PreviousTier string  `json:"previousTier"`
	NewTier      string  `json:"newTier"`
	WorkerHours  float64 `json:"workerTotalHours"`
	Promoted     bool    `json:"promoted"`
}

// RateShiftRequest is the body of both rating routes.
type RateShiftRequest struct {
	Rating int `json:"rating" validate:"gte=1,lte=5"`
}

// RatingResponse carries the rated party's new average.
type RatingResponse struct {
	AverageRating *float64 `json:"averageRating"`
}

// CancelShift lets the authenticated worker drop one of their shifts.
func (h *ShiftHandler) CancelShift(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidToken(c)
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "shift")
	}

	var req CancelShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "cancellation")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.cancellationUC.CancelShift(c.Request().Context(), userID, &usecase.CancelShiftInput{
		ShiftID:          shiftID,
		Reason:           req.Reason,
		ClientClaimsLate: req.IsLateCancellation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CancelShiftResponse{
		Success:            result.Cancelled,
		IsLateCancellation: result.LateCancellation,
		Message:            result.Message,
	})
}

// CompleteShift lets the hotel record the hours worked.
func (h *ShiftHandler) CompleteShift(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidToken(c)
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "shift")
	}

	var req CompleteShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "completion")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.shiftUC.CompleteShift(c.Request().Context(), userID, &usecase.CompleteShiftInput{
		ShiftID:    shiftID,
		TotalHours: req.TotalHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CompleteShiftResponse{
		ShiftID:      result.ShiftID.String(),
		TotalHours:   result.TotalHours,
		PreviousTier: result.WorkerTier.PreviousTier.String(),
		NewTier:      result.WorkerTier.NewTier.String(),
		WorkerHours:  result.WorkerTier.TotalHours,
		Promoted:     result.WorkerTier.Promoted,
	})
}

// RateWorker lets the hotel rate the worker of a completed shift.
func (h *ShiftHandler) RateWorker(c echo.Context) error {
	return h.rate(c, h.shiftUC.RateWorker)
}

// RateHotel lets the worker rate the hotel of a completed shift.
func (h *ShiftHandler) RateHotel(c echo.Context) error {
	return h.rate(c, h.shiftUC.RateHotel)
}

type rateFunc func(ctx context.Context, userID uuid.UUID, input *usecase.RateShiftInput) (*float64, error)

func (h *ShiftHandler) rate(c echo.Context, rate rateFunc) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidToken(c)
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "shift")
	}

	var req RateShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "rating")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	average, err := rate(c.Request().Context(), userID, &usecase.RateShiftInput{ShiftID: shiftID, Rating: req.Rating})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RatingResponse{AverageRating: average})
}
