// Package http exposes the coordination platform's operations over a REST
// API. Handlers translate between JSON payloads and application commands and
// queries; all business rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"coordinator/internal/core/application/usecases/commands"
	"coordinator/internal/core/application/usecases/queries"
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultLeaderboardLimit = 10

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	confirmOrderHandler         commands.ConfirmOrderCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	submitRequestHandler        commands.SubmitDeliveryRequestCommandHandler
	approveRequestHandler       commands.ApproveDeliveryRequestCommandHandler
	rejectRequestHandler        commands.RejectDeliveryRequestCommandHandler
	createVolunteerHandler      commands.CreateVolunteerCommandHandler
	approveVolunteerHandler     commands.ApproveVolunteerCommandHandler

	// Query handlers
	matchingVolunteersHandler queries.MatchingVolunteersQueryHandler
	orderTimelineHandler      queries.OrderTimelineQueryHandler
	pendingRequestsHandler    queries.PendingDeliveryRequestsQueryHandler
	leaderboardHandler        queries.VolunteerLeaderboardQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	submitRequestHandler commands.SubmitDeliveryRequestCommandHandler,
	approveRequestHandler commands.ApproveDeliveryRequestCommandHandler,
	rejectRequestHandler commands.RejectDeliveryRequestCommandHandler,
	createVolunteerHandler commands.CreateVolunteerCommandHandler,
	approveVolunteerHandler commands.ApproveVolunteerCommandHandler,
	matchingVolunteersHandler queries.MatchingVolunteersQueryHandler,
	orderTimelineHandler queries.OrderTimelineQueryHandler,
	pendingRequestsHandler queries.PendingDeliveryRequestsQueryHandler,
	leaderboardHandler queries.VolunteerLeaderboardQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		confirmOrderHandler:         confirmOrderHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		submitRequestHandler:        submitRequestHandler,
		approveRequestHandler:       approveRequestHandler,
		rejectRequestHandler:        rejectRequestHandler,
		createVolunteerHandler:      createVolunteerHandler,
		approveVolunteerHandler:     approveVolunteerHandler,
		matchingVolunteersHandler:   matchingVolunteersHandler,
		orderTimelineHandler:        orderTimelineHandler,
		pendingRequestsHandler:      pendingRequestsHandler,
		leaderboardHandler:          leaderboardHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assign-delivery", s.AssignDelivery)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.PATCH("/orders/:id/status", s.UpdateDeliveryStatus)
	api.GET("/orders/:id/matching-volunteers", s.GetMatchingVolunteers)
	api.GET("/orders/:id/timeline", s.GetOrderTimeline)

	api.POST("/delivery-requests", s.SubmitDeliveryRequest)
	api.PATCH("/delivery-requests", s.DecideDeliveryRequest)
	api.GET("/delivery-requests", s.GetPendingDeliveryRequests)

	api.POST("/volunteers", s.CreateVolunteer)
	api.POST("/volunteers/:id/approve", s.ApproveVolunteer)
	api.GET("/volunteers/leaderboard", s.GetLeaderboard)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var referredBy *kernel.UUID
	if body.ReferredBy != "" {
		id, err := kernel.UUIDFromString(body.ReferredBy)
		if err != nil {
			return badRequest(ctx, "Invalid referredBy: "+err.Error())
		}
		referredBy = &id
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.CustomerName,
		body.CustomerPhone,
		body.Product,
		body.Quantity,
		body.UnitPrice,
		addressFromPayload(body.Address),
		referredBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{
		OrderID:    result.OrderID.String(),
		Assigned:   result.Assigned,
		MatchCount: result.MatchCount,
	})
}

// AssignDelivery handles POST /api/v1/orders/:id/assign-delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body AssignDelivery
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := order.DeliveryMethodFromCode(body.DeliveryMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, body.VolunteerID, method, body.RemoveAssignment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body UpdateStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	volunteerID, err := kernel.UUIDFromString(body.VolunteerID)
	if err != nil {
		return badRequest(ctx, "Invalid volunteer id")
	}

	newStatus, err := order.StatusFromCode(body.NewStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, volunteerID, newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	outcome := DeliveryOutcome{Status: result.Status}
	if result.Status == order.StatusDelivered.String() {
		outcome.Commission = &Commission{
			Earned:          result.Earned,
			TotalDeliveries: result.Totals.TotalDeliveries,
			TotalCommission: result.Totals.TotalCommission,
		}
	}

	return ctx.JSON(http.StatusOK, outcome)
}

// GetMatchingVolunteers handles GET /api/v1/orders/:id/matching-volunteers.
func (s *Server) GetMatchingVolunteers(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewMatchingVolunteersQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	matches, err := s.matchingVolunteersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MatchingVolunteer, len(matches))
	for i, match := range matches {
		response[i] = MatchingVolunteer{
			ID:              match.ID.String(),
			Code:            match.Code,
			Name:            match.Name,
			Phone:           match.Phone,
			Town:            match.Town,
			PostOffice:      match.PostOffice,
			TotalDeliveries: match.TotalDeliveries,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTimeline handles GET /api/v1/orders/:id/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewOrderTimelineQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.orderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TimelineEvent, len(entries))
	for i, entry := range entries {
		response[i] = TimelineEvent{
			Code:        entry.Code,
			Title:       entry.Title,
			Description: entry.Description,
			Location:    entry.Location,
			UpdatedBy:   entry.UpdatedBy,
			CreatedAt:   entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitDeliveryRequest handles POST /api/v1/delivery-requests.
func (s *Server) SubmitDeliveryRequest(ctx echo.Context) error {
	var body NewDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	volunteerID, err := kernel.UUIDFromString(body.VolunteerID)
	if err != nil {
		return badRequest(ctx, "Invalid volunteer id")
	}

	cmd, err := commands.NewSubmitDeliveryRequestCommand(kernel.NewUUID(), orderID, volunteerID, body.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DecideDeliveryRequest handles PATCH /api/v1/delivery-requests.
func (s *Server) DecideDeliveryRequest(ctx echo.Context) error {
	var body DecideDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	switch body.Action {
	case "approve":
		cmd, cmdErr := commands.NewApproveDeliveryRequestCommand(requestID)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		if err = s.approveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
	case "reject":
		cmd, cmdErr := commands.NewRejectDeliveryRequestCommand(requestID, body.Notes)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		if err = s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
	default:
		return badRequest(ctx, "Action must be approve or reject")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingDeliveryRequests handles GET /api/v1/delivery-requests.
// Only the pending queue is exposed; decided requests stay internal.
func (s *Server) GetPendingDeliveryRequests(ctx echo.Context) error {
	if status := ctx.QueryParam("status"); status != "" && status != "pending" {
		return badRequest(ctx, "Only status=pending is supported")
	}

	pending, err := s.pendingRequestsHandler.Handle(ctx.Request().Context(), queries.NewPendingDeliveryRequestsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingDeliveryRequest, len(pending))
	for i, request := range pending {
		response[i] = PendingDeliveryRequest{
			ID:            request.ID.String(),
			OrderID:       request.OrderID.String(),
			VolunteerID:   request.VolunteerID.String(),
			VolunteerCode: request.VolunteerCode,
			VolunteerName: request.VolunteerName,
			CustomerName:  request.CustomerName,
			Town:          request.Town,
			Notes:         request.Notes,
			RequestedAt:   request.RequestedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVolunteer handles POST /api/v1/volunteers.
func (s *Server) CreateVolunteer(ctx echo.Context) error {
	var body NewVolunteer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	volunteerID := kernel.NewUUID()
	cmd, err := commands.NewCreateVolunteerCommand(
		volunteerID,
		body.Code,
		body.Name,
		body.Phone,
		body.Email,
		addressFromPayload(body.Address),
		body.CommissionPerBottle,
		body.AdminCreated,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createVolunteerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, VolunteerCreated{VolunteerID: volunteerID.String()})
}

// ApproveVolunteer handles POST /api/v1/volunteers/:id/approve.
func (s *Server) ApproveVolunteer(ctx echo.Context) error {
	volunteerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid volunteer id")
	}

	cmd, err := commands.NewApproveVolunteerCommand(volunteerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveVolunteerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLeaderboard handles GET /api/v1/volunteers/leaderboard.
func (s *Server) GetLeaderboard(ctx echo.Context) error {
	limit := defaultLeaderboardLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewVolunteerLeaderboardQuery(limit)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.leaderboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

func addressFromPayload(payload AddressPayload) kernel.Address {
	return kernel.NewAddress(
		payload.HouseBuilding,
		payload.Town,
		payload.PostOffice,
		payload.City,
		payload.District,
		payload.State,
		payload.Pincode,
	)
}

// respondError maps the error taxonomy onto HTTP status codes: validation
// and invalid-state failures are 400, authorization 403, missing objects
// 404, concurrent-decision losers 409, everything else 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
