// Package trackingrepo persists the append-only tracking ledger.
package trackingrepo

import (
	"time"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO is the database representation of a tracking event. Rows are
// inserted and read, never updated or deleted.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Code        string    `gorm:"not null"`
	Title       string    `gorm:"not null"`
	Description string    ``
	Location    string    ``
	UpdatedBy   string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to use "delivery_tracking_events".
func (EventDTO) TableName() string {
	return "delivery_tracking_events"
}

func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:          event.ID().Bytes(),
		OrderID:     event.OrderID().Bytes(),
		Code:        event.Code(),
		Title:       event.Title(),
		Description: event.Description(),
		Location:    event.Location(),
		UpdatedBy:   event.UpdatedBy().String(),
		CreatedAt:   event.CreatedAt(),
	}
}

func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	actor, err := tracking.ActorFromCode(dto.UpdatedBy)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(id, orderID, dto.Code, dto.Title,
		dto.Description, dto.Location, actor, dto.CreatedAt)
}
