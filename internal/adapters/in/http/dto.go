package http

import "time"

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressPayload carries the delivery address fields on order and volunteer
// creation.
type AddressPayload struct {
	HouseBuilding string `json:"houseBuilding"`
	Town          string `json:"town"`
	PostOffice    string `json:"postOffice"`
	City          string `json:"city"`
	District      string `json:"district"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
}

// NewOrder is the POST /orders request body.
type NewOrder struct {
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	Product       string         `json:"product"`
	Quantity      int            `json:"quantity"`
	UnitPrice     int64          `json:"unitPrice"`
	Address       AddressPayload `json:"address"`
	ReferredBy    string         `json:"referredBy,omitempty"`
}

// OrderCreated is the POST /orders response. Assigned and MatchCount report
// the auto-assignment outcome so the admin UI can tell "needs manual
// assignment" from "no volunteer in the area".
type OrderCreated struct {
	OrderID    string `json:"orderId"`
	Assigned   bool   `json:"assigned"`
	MatchCount int    `json:"matchCount"`
}

// AssignDelivery is the POST /orders/:id/assign-delivery request body.
// VolunteerID carries the human-readable volunteer code, not the UUID.
type AssignDelivery struct {
	VolunteerID      string `json:"volunteerId,omitempty"`
	DeliveryMethod   string `json:"deliveryMethod,omitempty"`
	RemoveAssignment bool   `json:"removeAssignment,omitempty"`
}

// UpdateStatus is the PATCH /orders/:id/status request body.
type UpdateStatus struct {
	VolunteerID string `json:"volunteerId"`
	NewStatus   string `json:"newStatus"`
}

// Commission reports the payout of a completed delivery.
type Commission struct {
	Earned          int64 `json:"earned"`
	TotalDeliveries int   `json:"totalDeliveries"`
	TotalCommission int64 `json:"totalCommission"`
}

// DeliveryOutcome is the PATCH /orders/:id/status response. Commission is
// only present when the outcome is delivered.
type DeliveryOutcome struct {
	Status     string      `json:"status"`
	Commission *Commission `json:"commission,omitempty"`
}

// NewDeliveryRequest is the POST /delivery-requests request body.
type NewDeliveryRequest struct {
	OrderID     string `json:"orderId"`
	VolunteerID string `json:"volunteerId"`
	Notes       string `json:"notes,omitempty"`
}

// DecideDeliveryRequest is the PATCH /delivery-requests request body.
// Action is approve or reject.
type DecideDeliveryRequest struct {
	RequestID string `json:"requestId"`
	Action    string `json:"action"`
	Notes     string `json:"notes,omitempty"`
}

// NewVolunteer is the POST /volunteers request body. AdminCreated accounts
// activate immediately; self-signups wait for approval.
type NewVolunteer struct {
	Code                string         `json:"code"`
	Name                string         `json:"name"`
	Phone               string         `json:"phone"`
	Email               string         `json:"email,omitempty"`
	Address             AddressPayload `json:"address"`
	CommissionPerBottle int64          `json:"commissionPerBottle"`
	AdminCreated        bool           `json:"adminCreated,omitempty"`
}

// VolunteerCreated is the POST /volunteers response.
type VolunteerCreated struct {
	VolunteerID string `json:"volunteerId"`
}

// MatchingVolunteer is one entry of the GET /orders/:id/matching-volunteers
// response.
type MatchingVolunteer struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Town            string `json:"town"`
	PostOffice      string `json:"postOffice"`
	TotalDeliveries int    `json:"totalDeliveries"`
}

// TimelineEvent is one entry of the GET /orders/:id/timeline response.
type TimelineEvent struct {
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	UpdatedBy   string    `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PendingDeliveryRequest is one entry of the GET /delivery-requests response.
type PendingDeliveryRequest struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	VolunteerID   string    `json:"volunteerId"`
	VolunteerCode string    `json:"volunteerCode"`
	VolunteerName string    `json:"volunteerName"`
	CustomerName  string    `json:"customerName"`
	Town          string    `json:"town"`
	Notes         string    `json:"notes,omitempty"`
	RequestedAt   time.Time `json:"requestedAt"`
}
