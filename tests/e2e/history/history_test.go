//go:build e2e

package history_test

import (
	"fmt"
	"net/http"
	"testing"

	"equiploan/internal/domain/user"
	"equiploan/internal/handler/dto/request"
	"equiploan/internal/handler/dto/response"
	"equiploan/tests/common/authtest"
	"equiploan/tests/common/dbtest"
	"equiploan/tests/common/httptest"
	"equiploan/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	historyURL       = "/api/admin/history"
	userRequestsURL  = "/api/user/requests"
	adminRequestsURL = "/api/admin/requests"
)

type historySuite struct {
	e2e.SharedSuite

	adminToken  string
	memberToken string
	memberID    uuid.UUID
	equipmentID uuid.UUID
}

func TestHistorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(historySuite))
}

func (s *historySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	s.memberID = dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleUser))
	s.equipmentID = dbtest.CreateTestEquipment(t, s.DB, "Laptop", "SN-H-001", 10)

	s.adminToken = authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
	s.memberToken = authtest.LoginUser(t, s.Router, "member@example.com", "password123")
}

// returnEquipment walks a request through submit, accept and return so a
// history entry exists.
func (s *historySuite) returnEquipment(requested, returned int) {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, userRequestsURL,
		request.SubmitRequest{EquipmentID: s.equipmentID, Quantity: requested}, s.memberToken)
	var submitted response.RequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &submitted)

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("%s/%s", adminRequestsURL, submitted.ID),
		request.DecideRequest{RequestStatus: "active"}, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("%s/%s/return", adminRequestsURL, submitted.ID),
		request.ReturnRequest{UnassignQuantity: returned}, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *historySuite) listHistory() []*response.HistoryResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, s.adminToken)
	var list []*response.HistoryResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
	return list
}

func (s *historySuite) TestList() {
	s.Run("returns entries with user and equipment context", func() {
		t := s.T()

		s.returnEquipment(3, 2)

		list := s.listHistory()
		require.Len(t, list, 1)
		require.Equal(t, 2, list[0].UnassignedQuantity)
		require.Equal(t, "returned", list[0].ReturnStatus)
		require.Equal(t, s.memberID, list[0].User.ID)
		require.Equal(t, "Laptop", list[0].Equipment.Name)
	})

	s.Run("empty ledger returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Equipment history not found!")
	})

	s.Run("members cannot read the ledger", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, s.memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *historySuite) TestDelete() {
	s.Run("deletes a returned entry", func() {
		t := s.T()

		s.returnEquipment(2, 2)
		list := s.listHistory()
		require.Len(t, list, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", historyURL, list[0].ID), nil, s.adminToken)

		var body response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "History entry deleted successfully.", body.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Equipment history not found!")
	})

	s.Run("unknown entry", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", historyURL, uuid.New()), nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Equipment history not found!")
	})

	s.Run("entry that is not returned cannot be deleted", func() {
		t := s.T()

		entryID := uuid.New()
		_, err := s.DB.Exec(t.Context(),
			`INSERT INTO equipment_history (id, user_id, equipment_id, unassigned_quantity, unassign_date, return_status)
			 VALUES ($1, $2, $3, 1, now(), 'active')`,
			entryID, s.memberID, s.equipmentID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", historyURL, entryID), nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Request status is not 'RETURNED'!")
	})
}
