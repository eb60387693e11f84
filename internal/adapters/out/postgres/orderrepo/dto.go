// Package orderrepo persists order aggregates. It handles the mapping
// between the order domain model and its relational representation,
// including the optimistic version column that serializes assignment writes.
package orderrepo

import (
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. Status
// columns hold the wire codes so ad-hoc queries stay readable.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerName        string     `gorm:"not null"`
	CustomerPhone       string     `gorm:"not null"`
	Product             string     `gorm:"not null"`
	Quantity            int        `gorm:"not null"`
	UnitPrice           int64      `gorm:"not null"`
	PaymentStatus       string     `gorm:"index"`
	Status              string     `gorm:"index"`
	DeliveryMethod      string     ``
	DeliveryVolunteerID *uuid.UUID `gorm:"type:uuid;index"`
	IsDeliveryDuty      bool       ``
	Address             AddressDTO `gorm:"embedded"`
	ReferredBy          *uuid.UUID `gorm:"type:uuid;index"`
	Version             int        `gorm:"not null"`
	IsDeleted           bool       `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO holds the structured address columns embedded in the orders
// and volunteers tables.
type AddressDTO struct {
	HouseBuilding string
	Town          string `gorm:"index"`
	PostOffice    string `gorm:"index"`
	City          string
	District      string
	State         string
	Pincode       string
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		HouseBuilding: a.HouseBuilding(),
		Town:          a.Town(),
		PostOffice:    a.PostOffice(),
		City:          a.City(),
		District:      a.District(),
		State:         a.State(),
		Pincode:       a.Pincode(),
	}
}

func (dto AddressDTO) toDomain() kernel.Address {
	return kernel.NewAddress(dto.HouseBuilding, dto.Town, dto.PostOffice,
		dto.City, dto.District, dto.State, dto.Pincode)
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var volunteerID *uuid.UUID
	if id := aggregate.Assignment().VolunteerID(); id != nil {
		raw := id.Bytes()
		volunteerID = &raw
	}

	var referredBy *uuid.UUID
	if id := aggregate.ReferredBy(); id != nil {
		raw := id.Bytes()
		referredBy = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerName:        aggregate.CustomerName(),
		CustomerPhone:       aggregate.CustomerPhone(),
		Product:             aggregate.Product(),
		Quantity:            aggregate.Quantity(),
		UnitPrice:           aggregate.UnitPrice(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		Status:              aggregate.Status().String(),
		DeliveryMethod:      aggregate.Assignment().Method().String(),
		DeliveryVolunteerID: volunteerID,
		IsDeliveryDuty:      aggregate.Assignment().IsDuty(),
		Address:             addressFromDomain(aggregate.Address()),
		ReferredBy:          referredBy,
		Version:             aggregate.Version(),
		IsDeleted:           aggregate.IsDeleted(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromCode(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}
	method, err := order.DeliveryMethodFromCode(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	var volunteerID *kernel.UUID
	if dto.DeliveryVolunteerID != nil {
		vID, volErr := kernel.UUIDFromBytes((*dto.DeliveryVolunteerID)[:])
		if volErr != nil {
			return nil, volErr
		}
		volunteerID = &vID
	}

	assignment, err := order.RestoreAssignment(method, volunteerID, dto.IsDeliveryDuty)
	if err != nil {
		return nil, err
	}

	var referredBy *kernel.UUID
	if dto.ReferredBy != nil {
		rID, refErr := kernel.UUIDFromBytes((*dto.ReferredBy)[:])
		if refErr != nil {
			return nil, refErr
		}
		referredBy = &rID
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.Product,
		dto.Quantity,
		dto.UnitPrice,
		paymentStatus,
		status,
		assignment,
		dto.Address.toDomain(),
		referredBy,
		dto.Version,
		dto.IsDeleted,
	)
}
