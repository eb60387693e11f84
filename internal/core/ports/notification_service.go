package ports

import (
	"context"

	"coordinator/internal/core/domain/model/kernel"
)

// NotificationService is the outbound port for the external notification
// fan-out (push/email). All methods are fire-and-forget from the caller's
// point of view: every call site catches and logs the returned error and
// never lets it reverse the primary state transition.
type NotificationService interface {
	// NotifyDeliveryAssigned announces a new delivery assignment to the
	// volunteer and the customer.
	NotifyDeliveryAssigned(ctx context.Context, orderID, volunteerID kernel.UUID) error

	// NotifyDeliveryRequestUpdate announces a decision on a delivery request
	// to the requesting volunteer. outcome is "approved" or "rejected".
	NotifyDeliveryRequestUpdate(ctx context.Context, requestID kernel.UUID, outcome string, volunteerID kernel.UUID) error

	// NotifyVolunteerApproved announces account activation to a volunteer.
	NotifyVolunteerApproved(ctx context.Context, volunteerID kernel.UUID) error

	// NotifyPendingRequestsReminder nudges the admin staff about delivery
	// requests that have been waiting too long.
	NotifyPendingRequestsReminder(ctx context.Context, pendingCount int) error
}
