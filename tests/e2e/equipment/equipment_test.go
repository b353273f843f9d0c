//go:build e2e

package equipment_test

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
	equipmentURL      = "/api/equipment"
	adminEquipmentURL = "/api/admin/equipment"
)

type equipmentSuite struct {
	e2e.SharedSuite

	adminToken  string
	memberToken string
	laptopID    uuid.UUID
}

func TestEquipmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(equipmentSuite))
}

func (s *equipmentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleUser))
	s.laptopID = dbtest.CreateTestEquipment(t, s.DB, "Laptop", "SN-EQ-001", 10)

	s.adminToken = authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
	s.memberToken = authtest.LoginUser(t, s.Router, "member@example.com", "password123")
}

func (s *equipmentSuite) TestCreate() {
	s.Run("admin registers new equipment", func() {
		t := s.T()

		description := "27 inch, 4K"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminEquipmentURL,
			request.CreateEquipmentRequest{
				Name:         "Monitor",
				FullName:     "Dell UltraSharp U2723QE",
				SerialNumber: "SN-EQ-002",
				Condition:    true,
				Quantity:     5,
				Description:  &description,
			}, s.adminToken)

		var body response.EquipmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		require.NotEqual(t, uuid.Nil, body.ID)
		require.Equal(t, "Monitor", body.Name)
		require.Equal(t, "SN-EQ-002", body.SerialNumber)
		require.Equal(t, 5, body.Quantity)
		require.NotNil(t, body.Description)
		require.Equal(t, description, *body.Description)
	})

	s.Run("duplicate serial number is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminEquipmentURL,
			request.CreateEquipmentRequest{
				Name:         "Laptop Copy",
				FullName:     "Another Laptop",
				SerialNumber: "SN-EQ-001",
				Quantity:     1,
			}, s.adminToken)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Serial number already registered")
	})

	s.Run("missing name is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminEquipmentURL,
			request.CreateEquipmentRequest{
				FullName:     "Nameless",
				SerialNumber: "SN-EQ-003",
				Quantity:     1,
			}, s.adminToken)

		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *equipmentSuite) TestUpdate() {
	s.Run("partial update keeps untouched fields", func() {
		t := s.T()

		quantity := 25
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", adminEquipmentURL, s.laptopID),
			request.UpdateEquipmentRequest{Quantity: &quantity}, s.adminToken)

		var body response.EquipmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, 25, body.Quantity)
		require.Equal(t, "Laptop", body.Name)
		require.Equal(t, "SN-EQ-001", body.SerialNumber)
	})

	s.Run("unknown equipment", func() {
		t := s.T()

		name := "Ghost"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", adminEquipmentURL, uuid.New()),
			request.UpdateEquipmentRequest{Name: &name}, s.adminToken)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Equipment not found!")
	})

	s.Run("member cannot update", func() {
		t := s.T()

		name := "Hijacked"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", adminEquipmentURL, s.laptopID),
			request.UpdateEquipmentRequest{Name: &name}, s.memberToken)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *equipmentSuite) TestBrowse() {
	s.Run("members can list the catalogue", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, equipmentURL, nil, s.memberToken)

		var list []*response.EquipmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, s.laptopID, list[0].ID)
	})

	s.Run("get by id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", equipmentURL, s.laptopID), nil, s.memberToken)

		var body response.EquipmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "Laptop", body.Name)
	})

	s.Run("unknown id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", equipmentURL, uuid.New()), nil, s.memberToken)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Equipment not found!")
	})

	s.Run("anonymous access is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, equipmentURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
