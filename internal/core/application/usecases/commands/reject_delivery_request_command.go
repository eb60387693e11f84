package commands

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/guard"
)

var ErrRejectDeliveryRequestCommandIsNotConstructed = errors.New(
	"RejectDeliveryRequestCommand must be created via NewRejectDeliveryRequestCommand constructor",
)

// RejectDeliveryRequestCommand is an admin's decision to turn down a pending
// delivery request. Notes are optional; empty notes keep whatever the
// volunteer wrote on submission.
type RejectDeliveryRequestCommand struct {
	requestID kernel.UUID
	notes     string
	guard     guard.ConstructorGuard
}

// NewRejectDeliveryRequestCommand creates a validated
// RejectDeliveryRequestCommand.
func NewRejectDeliveryRequestCommand(requestID kernel.UUID, notes string) (RejectDeliveryRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return RejectDeliveryRequestCommand{}, err
	}

	return RejectDeliveryRequestCommand{
		requestID: requestID,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RequestID returns the request to reject.
func (c *RejectDeliveryRequestCommand) RequestID() kernel.UUID { return c.requestID }

// Notes returns the optional rejection reason.
func (c *RejectDeliveryRequestCommand) Notes() string { return c.notes }

// Validate ensures the command was created through the constructor.
func (c *RejectDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryRequestCommandIsNotConstructed)
}
