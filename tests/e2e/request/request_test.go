//go:build e2e

package request_test

import (
	"context"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"equiploan/internal/domain/user"
	"equiploan/internal/handler/dto/request"
	"equiploan/internal/handler/dto/response"
	"equiploan/tests/common/authtest"
	"equiploan/tests/common/dbtest"
	"equiploan/tests/common/httptest"
	"equiploan/tests/common/testutil"
	"equiploan/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	userRequestsURL   = "/api/user/requests"
	pendingURL        = "/api/admin/requests/pending"
	activeURL         = "/api/admin/requests/active"
	adminRequestsURL  = "/api/admin/requests"
	adminHistoryURL   = "/api/admin/history"
	adminEquipmentURL = "/api/admin/equipment"
)

type requestSuite struct {
	e2e.SharedSuite

	adminToken  string
	memberToken string
	memberID    uuid.UUID
	equipmentID uuid.UUID
}

func TestRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(requestSuite))
}

func (s *requestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	s.memberID = dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleUser))
	s.equipmentID = dbtest.CreateTestEquipment(t, s.DB, "Laptop", "SN-E2E-001", 10)

	s.adminToken = authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
	s.memberToken = authtest.LoginUser(t, s.Router, "member@example.com", "password123")
}

func (s *requestSuite) equipmentQuantity() int {
	var quantity int
	err := s.DB.QueryRow(context.Background(),
		"SELECT quantity FROM equipment WHERE id = $1", s.equipmentID).Scan(&quantity)
	require.NoError(s.T(), err)
	return quantity
}

func (s *requestSuite) submitRequest(quantity int) *response.RequestResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, userRequestsURL,
		request.SubmitRequest{EquipmentID: s.equipmentID, Quantity: quantity}, s.memberToken)

	var body response.RequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	require.Equal(t, "pending", body.Status)
	return &body
}

func (s *requestSuite) decide(requestID uuid.UUID, status string) *nethttptest.ResponseRecorder {
	t := s.T()
	return httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("%s/%s", adminRequestsURL, requestID),
		request.DecideRequest{RequestStatus: status}, s.adminToken)
}

func (s *requestSuite) returnQuantity(requestID uuid.UUID, quantity int) *nethttptest.ResponseRecorder {
	t := s.T()
	return httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("%s/%s/return", adminRequestsURL, requestID),
		request.ReturnRequest{UnassignQuantity: quantity}, s.adminToken)
}

func (s *requestSuite) TestFullLifecycle() {
	s.Run("submit, accept, partial return, full return", func() {
		t := s.T()

		submitted := s.submitRequest(3)

		// Pending queue shows the request to admins.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.adminToken)
		var pending []*response.RequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Len(t, pending, 1)
		require.Equal(t, submitted.ID, pending[0].ID)

		// Accepting decrements stock and activates the request.
		w = s.decide(submitted.ID, "active")
		var decision response.DecisionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &decision)
		require.Equal(t, "Request activated successfully.", decision.Message)
		require.Equal(t, 7, s.equipmentQuantity())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, activeURL, nil, s.adminToken)
		var active []*response.RequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &active)
		require.Len(t, active, 1)
		require.Equal(t, "active", active[0].Status)
		require.NotNil(t, active[0].AssignDate)

		// Partial return keeps the request alive with the remainder.
		w = s.returnQuantity(submitted.ID, 2)
		var partial response.ReturnResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &partial)
		require.Equal(t, "Request status updated to RETURNED (2 → Laptop).", partial.Message)
		require.NotNil(t, partial.Request)
		require.Equal(t, 1, partial.Request.Quantity)
		require.Equal(t, 9, s.equipmentQuantity())

		// Returning the remainder deletes the request.
		w = s.returnQuantity(submitted.ID, 1)
		var full response.ReturnResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &full)
		require.Equal(t, "User has returned ALL EQUIPMENT. Request deleted.", full.Message)
		require.Nil(t, full.Request)
		require.Equal(t, 10, s.equipmentQuantity())

		// Both returns leave history entries.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminHistoryURL, nil, s.adminToken)
		var history []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 2)
	})

	s.Run("deny deletes the request without touching stock", func() {
		t := s.T()

		submitted := s.submitRequest(4)

		w := s.decide(submitted.ID, "denied")
		var decision response.DecisionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &decision)
		require.Equal(t, "Equipment request DENIED and DELETED successfully.", decision.Message)
		require.NotNil(t, decision.Equipment)
		require.Equal(t, "Laptop", decision.Equipment.Name)
		require.Equal(t, "SN-E2E-001", decision.Equipment.SerialNumber)
		require.Equal(t, 10, s.equipmentQuantity())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "There are no pending requests!")
	})

	s.Run("invalid return quantity is rejected", func() {
		t := s.T()

		submitted := s.submitRequest(2)
		w := s.decide(submitted.ID, "active")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.returnQuantity(submitted.ID, 5)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid quantity for unassigning equipment!")

		w = s.returnQuantity(submitted.ID, 0)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("malformed submit payloads are rejected", func() {
		t := s.T()

		valid := request.SubmitRequest{EquipmentID: s.equipmentID, Quantity: 2}
		for name, body := range map[string]map[string]any{
			"missing quantity":     testutil.DtoMap(t, valid, testutil.Field("quantity", nil)),
			"zero quantity":        testutil.DtoMap(t, valid, testutil.Field("quantity", 0)),
			"missing equipment id": testutil.DtoMap(t, valid, testutil.Field("equipment_id", nil)),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, userRequestsURL, body, s.memberToken)
			require.Equal(t, http.StatusBadRequest, w.Code, "%s: %s", name, w.Body.String())
		}
	})

	s.Run("accept fails when stock is insufficient", func() {
		t := s.T()

		submitted := s.submitRequest(8)
		w := s.decide(submitted.ID, "active")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 2, s.equipmentQuantity())

		second := s.submitRequest(5)
		w = s.decide(second.ID, "active")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Insufficient equipment quantity!")
		require.Equal(t, 2, s.equipmentQuantity())
	})

	s.Run("active list sorts ascending by assign date", func() {
		t := s.T()

		later := time.Now().UTC()
		earlier := later.Add(-time.Hour)
		laterID := dbtest.CreateTestRequest(t, s.DB, s.memberID, s.equipmentID, 1, "active", &later)
		earlierID := dbtest.CreateTestRequest(t, s.DB, s.memberID, s.equipmentID, 2, "active", &earlier)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, activeURL, nil, s.adminToken)
		var active []*response.RequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &active)
		require.Len(t, active, 2)
		require.Equal(t, earlierID, active[0].ID)
		require.Equal(t, laterID, active[1].ID)
	})

	s.Run("empty active list returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, activeURL, nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No active equipment assigned!")
	})

	s.Run("member cannot reach admin endpoints", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminEquipmentURL,
			request.CreateEquipmentRequest{Name: "X", FullName: "X", SerialNumber: "SN-X", Quantity: 1}, s.memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("owner can cancel a pending request", func() {
		t := s.T()

		submitted := s.submitRequest(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", userRequestsURL, submitted.ID), nil, s.memberToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, userRequestsURL, nil, s.memberToken)
		var own []*response.RequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &own)
		require.Empty(t, own)
	})
}
