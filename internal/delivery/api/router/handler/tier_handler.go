package handler

import (
	"log/slog"
	"net/http"

	"staffing/internal/delivery/api/middleware"
	"staffing/internal/delivery/api/response"
	"staffing/internal/domain/entity"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TierHandlerParams holds dependencies for TierHandler, injected by Fx.
type TierHandlerParams struct {
	fx.In

	TierUC usecase.TierUsecase
	Logger *slog.Logger
}

// TierHandler exposes tier progress to workers and recompute triggers to admins.
type TierHandler struct {
	tierUC usecase.TierUsecase
	logger *slog.Logger
}

// NewTierHandler is the constructor for TierHandler.
func NewTierHandler(params TierHandlerParams) *TierHandler {
	return &TierHandler{
		tierUC: params.TierUC,
		logger: params.Logger,
	}
}

// WorkerTierResponse reports a worker tier recompute.
type WorkerTierResponse struct {
	PreviousTier string  `json:"previousTier"`
	NewTier      string  `json:"newTier"`
	TotalHours   float64 `json:"totalHours"`
	Promoted     bool    `json:"promoted"`
}

// GetMyTierProgress returns the caller's progress towards the next tier.
func (h *TierHandler) GetMyTierProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidToken(c)
	}

	progress, err := h.tierUC.GetWorkerTierProgress(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// UpdateWorkerTier recomputes one worker's hours and tier.
func (h *TierHandler) UpdateWorkerTier(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "worker")
	}

	result, err := h.tierUC.UpdateWorkerTier(c.Request().Context(), workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, WorkerTierResponse{
		PreviousTier: result.PreviousTier.String(),
		NewTier:      result.NewTier.String(),
		TotalHours:   result.TotalHours,
		Promoted:     result.Promoted,
	})
}

// UpdateHotelTier recomputes one hotel's hours and tier.
func (h *TierHandler) UpdateHotelTier(c echo.Context) error {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "hotel")
	}

	if err := h.tierUC.UpdateHotelTier(c.Request().Context(), hotelID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Hotel tier recomputed"})
}

// RecalculateWorkerRating recomputes one worker's average rating.
func (h *TierHandler) RecalculateWorkerRating(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "worker")
	}

	average, err := h.tierUC.RecalculateWorkerRating(c.Request().Context(), workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RatingResponse{AverageRating: average})
}

// RecalculateHotelRating recomputes one hotel's average rating.
func (h *TierHandler) RecalculateHotelRating(c echo.Context) error {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "hotel")
	}

	average, err := h.tierUC.RecalculateHotelRating(c.Request().Context(), hotelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RatingResponse{AverageRating: average})
}

// TierThreshold describes one tier band.
type TierThreshold struct {
	Tier     string   `json:"tier"`
	MinHours float64  `json:"minHours"`
	MaxHours *float64 `json:"maxHours"`
}

// ListTiers returns the tier bands, lowest first.
func (h *TierHandler) ListTiers(c echo.Context) error {
	tiers := []entity.Tier{entity.TierSilver, entity.TierGold, entity.TierPlatinum}
	thresholds := make([]TierThreshold, 0, len(tiers))
	for _, tier := range tiers {
		threshold := TierThreshold{Tier: tier.String(), MinHours: tier.MinHours()}
		if maxHours, ok := tier.MaxHours(); ok {
			threshold.MaxHours = &maxHours
		}
		thresholds = append(thresholds, threshold)
	}

	return response.Success(c, http.StatusOK, thresholds)
}
