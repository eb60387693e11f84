// Package volunteerrepo persists volunteer aggregates, including the running
// delivery counters that are only ever moved by atomic increments.
package volunteerrepo

import (
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/volunteer"

	"github.com/google/uuid"
)

// VolunteerDTO is the database representation of a volunteer aggregate.
type VolunteerDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code                string     `gorm:"not null;uniqueIndex:idx_volunteers_code_lower,expression:lower(code)"`
	Name                string     `gorm:"not null"`
	Phone               string     `gorm:"not null"`
	Email               string     ``
	Address             AddressDTO `gorm:"embedded"`
	Status              string     `gorm:"index"`
	CommissionPerBottle int64      ``
	TotalDeliveries     int        ``
	TotalCommission     int64      ``
}

// TableName overrides GORM's default naming to use "volunteers".
func (VolunteerDTO) TableName() string {
	return "volunteers"
}

// AddressDTO holds the volunteer's delivery area address columns.
type AddressDTO struct {
	HouseBuilding string
	Town          string `gorm:"index"`
	PostOffice    string `gorm:"index"`
	City          string
	District      string
	State         string
	Pincode       string
}

func fromDomain(aggregate *volunteer.Volunteer) VolunteerDTO {
	a := aggregate.Address()
	return VolunteerDTO{
		ID:   aggregate.ID().Bytes(),
		Code: aggregate.Code(),
		Name: aggregate.Name(),
		Phone: aggregate.Phone(),
		Email: aggregate.Email(),
		Address: AddressDTO{
			HouseBuilding: a.HouseBuilding(),
			Town:          a.Town(),
			PostOffice:    a.PostOffice(),
			City:          a.City(),
			District:      a.District(),
			State:         a.State(),
			Pincode:       a.Pincode(),
		},
		Status:              aggregate.Status().String(),
		CommissionPerBottle: aggregate.CommissionPerBottle(),
		TotalDeliveries:     aggregate.TotalDeliveries(),
		TotalCommission:     aggregate.TotalCommission(),
	}
}

func toDomain(dto VolunteerDTO) (*volunteer.Volunteer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := volunteer.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	address := kernel.NewAddress(dto.Address.HouseBuilding, dto.Address.Town,
		dto.Address.PostOffice, dto.Address.City, dto.Address.District,
		dto.Address.State, dto.Address.Pincode)

	return volunteer.RestoreVolunteer(
		id,
		dto.Code,
		dto.Name,
		dto.Phone,
		dto.Email,
		address,
		status,
		dto.CommissionPerBottle,
		dto.TotalDeliveries,
		dto.TotalCommission,
	)
}
