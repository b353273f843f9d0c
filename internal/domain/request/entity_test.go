//go:build unit

package request_test

import (
	"testing"
	"time"

	"equiploan/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	userID := uuid.New()
	equipmentID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := request.NewRequest(userID, equipmentID, 3)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, equipmentID, actual.EquipmentID())
		assert.Equal(t, 3, actual.Quantity())
		assert.Equal(t, request.StatusPending, actual.Status())
		assert.Equal(t, request.StatusInactive, actual.ReturnStatus())
		assert.Nil(t, actual.AssignDate())
		assert.True(t, actual.IsPending())
	})

	t.Run("quantity validation", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := request.NewRequest(userID, equipmentID, quantity)
			assert.ErrorIs(t, err, request.ErrNonPositiveQuantity)
		}
	})
}

func TestAccept(t *testing.T) {
	req, err := request.NewRequest(uuid.New(), uuid.New(), 2)
	require.NoError(t, err)

	now := time.Now()
	req.Accept(now)

	assert.Equal(t, request.StatusActive, req.Status())
	assert.True(t, req.IsActive())
	require.NotNil(t, req.AssignDate())
	assert.Equal(t, now, *req.AssignDate())
}

func TestDeny(t *testing.T) {
	t.Run("denies a pending request", func(t *testing.T) {
		req, err := request.NewRequest(uuid.New(), uuid.New(), 2)
		require.NoError(t, err)

		require.NoError(t, req.Deny())
		assert.Equal(t, request.StatusDenied, req.Status())
	})

	t.Run("denying twice fails", func(t *testing.T) {
		req, err := request.NewRequest(uuid.New(), uuid.New(), 2)
		require.NoError(t, err)

		require.NoError(t, req.Deny())
		assert.ErrorIs(t, req.Deny(), request.ErrAlreadyDenied)
	})
}

func TestReturn(t *testing.T) {
	newActive := func(t *testing.T, quantity int) *request.Request {
		t.Helper()
		req, err := request.NewRequest(uuid.New(), uuid.New(), quantity)
		require.NoError(t, err)
		req.Accept(time.Now())
		return req
	}

	t.Run("partial return keeps the request active", func(t *testing.T) {
		req := newActive(t, 5)

		remaining, err := req.Return(2)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
		assert.Equal(t, 3, req.Quantity())
		assert.Equal(t, request.StatusActive, req.Status())
		assert.False(t, req.FullyReturned())
	})

	t.Run("full return marks the request returned", func(t *testing.T) {
		req := newActive(t, 5)

		remaining, err := req.Return(5)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
		assert.Equal(t, request.StatusInactive, req.Status())
		assert.Equal(t, request.StatusReturned, req.ReturnStatus())
		assert.True(t, req.FullyReturned())
	})

	t.Run("successive partial returns drain to zero", func(t *testing.T) {
		req := newActive(t, 3)

		_, err := req.Return(1)
		require.NoError(t, err)
		_, err = req.Return(1)
		require.NoError(t, err)
		remaining, err := req.Return(1)
		require.NoError(t, err)

		assert.Equal(t, 0, remaining)
		assert.True(t, req.FullyReturned())
	})

	t.Run("invalid quantities", func(t *testing.T) {
		req := newActive(t, 3)

		for _, quantity := range []int{0, -1, 4} {
			_, err := req.Return(quantity)
			assert.ErrorIs(t, err, request.ErrInvalidUnassign, "quantity %d", quantity)
		}
		assert.Equal(t, 3, req.Quantity(), "quantity must be unchanged after failed returns")
	})
}
