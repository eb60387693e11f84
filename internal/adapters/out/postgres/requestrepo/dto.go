// Package requestrepo persists delivery request aggregates and implements
// the bulk cascade rejection that follows an approval.
package requestrepo

import (
	"time"

	"coordinator/internal/core/domain/model/deliveryrequest"
	"coordinator/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequestDTO is the database representation of a delivery request.
type RequestDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	VolunteerID uuid.UUID  `gorm:"type:uuid;index;not null"`
	Status      string     `gorm:"index"`
	RequestedAt time.Time  `gorm:"not null"`
	RespondedAt *time.Time ``
	Notes       string     ``
}

// TableName overrides GORM's default naming to use "delivery_requests".
func (RequestDTO) TableName() string {
	return "delivery_requests"
}

func fromDomain(aggregate *deliveryrequest.Request) RequestDTO {
	return RequestDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		VolunteerID: aggregate.VolunteerID().Bytes(),
		Status:      aggregate.Status().String(),
		RequestedAt: aggregate.RequestedAt(),
		RespondedAt: aggregate.RespondedAt(),
		Notes:       aggregate.Notes(),
	}
}

func toDomain(dto RequestDTO) (*deliveryrequest.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	volunteerID, err := kernel.UUIDFromBytes(dto.VolunteerID[:])
	if err != nil {
		return nil, err
	}
	status, err := deliveryrequest.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	return deliveryrequest.RestoreRequest(id, orderID, volunteerID, status,
		dto.RequestedAt, dto.RespondedAt, dto.Notes)
}
