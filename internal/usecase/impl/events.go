// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "staffing/internal/delivery/context"
	"staffing/internal/domain/entity"
	"staffing/internal/domain/service"

	"github.com/google/uuid"
)

// tierChange is a recompute outcome waiting to be announced after commit.
type tierChange struct {
	subjectType string
	subjectID   uuid.UUID
	previous    entity.Tier
	next        entity.Tier
	totalHours  float64
}

func (c tierChange) changed() bool {
	return c.previous != c.next
}

// eventEmitter publishes domain events after the owning transaction committed.
// Publishing is best effort: a failure is logged and never undoes the committed work.
type eventEmitter struct {
	publisher service.EventPublisher
	clock     service.Clock
}

func (e eventEmitter) emit(ctx context.Context, logger *slog.Logger, eventType string, payload any) {
	if e.publisher == nil {
		return
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.RequestIDFromContext(ctx),
		OccurredAt: e.now(),
		Payload:    payload,
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

func (e eventEmitter) now() time.Time {
	if e.clock == nil {
		return time.Now().UTC()
	}

	return e.clock.Now()
}

func (e eventEmitter) emitTierChanges(ctx context.Context, logger *slog.Logger, changes ...tierChange) {
	for _, change := range changes {
		if !change.changed() {
			continue
		}

		e.emit(ctx, logger, service.EventTypeTierChanged, service.TierChangedPayload{
			SubjectType:  change.subjectType,
			SubjectID:    change.subjectID.String(),
			PreviousTier: change.previous.String(),
			NewTier:      change.next.String(),
			TotalHours:   change.totalHours,
			Promoted:     entity.IsPromotion(change.previous, change.next),
		})
	}
}
