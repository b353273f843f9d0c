//go:build unit

package history_test

import (
	"testing"
	"time"

	"equiploan/internal/domain/history"
	"equiploan/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	userID := uuid.New()
	equipmentID := uuid.New()
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := history.NewEntry(userID, equipmentID, 2, now, request.StatusReturned)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, equipmentID, actual.EquipmentID())
		assert.Equal(t, 2, actual.UnassignedQuantity())
		assert.Equal(t, now, actual.UnassignDate())
		assert.Equal(t, request.StatusReturned, actual.ReturnStatus())
	})

	t.Run("quantity validation", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := history.NewEntry(userID, equipmentID, quantity, now, request.StatusReturned)
			assert.ErrorIs(t, err, history.ErrNonPositiveQuantity)
		}
	})
}

func TestCanDelete(t *testing.T) {
	userID := uuid.New()
	equipmentID := uuid.New()
	now := time.Now()

	t.Run("returned entries can be deleted", func(t *testing.T) {
		entry, err := history.NewEntry(userID, equipmentID, 1, now, request.StatusReturned)
		require.NoError(t, err)

		assert.NoError(t, entry.CanDelete())
	})

	t.Run("non-returned entries are protected", func(t *testing.T) {
		entry := history.ReconstructEntry(uuid.New(), userID, equipmentID, 1, now, request.StatusActive, now)

		assert.ErrorIs(t, entry.CanDelete(), history.ErrNotReturned)
	})
}
