package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RespondError_MapsTaxonomyToStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", errs.NewValueIsRequiredError("customer name"), http.StatusBadRequest},
		{"OutOfRange", errs.NewValueIsOutOfRangeError("limit", 0, 1, 100), http.StatusBadRequest},
		{"InvalidState", errs.NewInvalidStateError("order", "delivered"), http.StatusBadRequest},
		{"Forbidden", errs.NewForbiddenError(kernel.NewUUID().String(), "not assigned"), http.StatusForbidden},
		{"NotFound", errs.NewObjectNotFoundError("order", kernel.NewUUID()), http.StatusNotFound},
		{"Conflict", errs.NewConflictError("order", "modified concurrently"), http.StatusConflict},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(ctx, tt.err))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func Test_DecideDeliveryRequest_RejectsUnknownAction(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/delivery-requests",
		strings.NewReader(`{"requestId": "`+kernel.NewUUID().String()+`", "action": "escalate"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ctx := e.NewContext(req, rec)

	server := &Server{}
	require.NoError(t, server.DecideDeliveryRequest(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_AssignDelivery_RejectsBadOrderID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/not-a-uuid/assign-delivery", nil)
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	server := &Server{}
	require.NoError(t, server.AssignDelivery(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
