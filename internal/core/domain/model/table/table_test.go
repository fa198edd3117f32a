package table_test

import (
	"testing"

	"kitchen/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCapacity(t *testing.T) {
	t.Run("should accept the standard capacities", func(t *testing.T) {
		for _, capacity := range []int{2, 4, 6, 8} {
			require.NoError(t, table.ValidateCapacity(capacity))
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, capacity := range []int{0, 1, 3, 5, 7, 9, 10, -2} {
			err := table.ValidateCapacity(capacity)

			require.Error(t, err, "capacity %d should be rejected", capacity)
			assert.ErrorIs(t, err, table.ErrInvalidCapacity)
		}
	})
}

func TestNewTable(t *testing.T) {
	t.Run("should create an unreserved table", func(t *testing.T) {
		tbl, err := table.NewTable(1, 4, "Window")

		require.NoError(t, err)
		require.NoError(t, tbl.Validate())
		assert.Equal(t, 1, tbl.Number())
		assert.Equal(t, 4, tbl.Capacity())
		assert.Equal(t, "Window", tbl.Name())
		assert.False(t, tbl.IsReserved())
		assert.Nil(t, tbl.ReservedBy())
	})

	t.Run("should fail with a non-positive number", func(t *testing.T) {
		_, err := table.NewTable(0, 4, "")

		require.Error(t, err)
	})

	t.Run("should fail with an invalid capacity", func(t *testing.T) {
		_, err := table.NewTable(1, 5, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, table.ErrInvalidCapacity)
	})
}

func TestRestoreTable(t *testing.T) {
	t.Run("should restore a reserved table with its party", func(t *testing.T) {
		party := table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 3}

		tbl, err := table.RestoreTable(2, 4, "", &party)

		require.NoError(t, err)
		assert.True(t, tbl.IsReserved())
		require.NotNil(t, tbl.ReservedBy())
		assert.Equal(t, "Alice", tbl.ReservedBy().CustomerName)
		assert.Equal(t, 3, tbl.ReservedBy().PartySize)
	})

	t.Run("should restore an unreserved table", func(t *testing.T) {
		tbl, err := table.RestoreTable(2, 4, "", nil)

		require.NoError(t, err)
		assert.False(t, tbl.IsReserved())
	})
}

func TestTable_Reserve(t *testing.T) {
	t.Run("should reserve a free table", func(t *testing.T) {
		tbl, err := table.NewTable(1, 4, "")
		require.NoError(t, err)

		err = tbl.Reserve(table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2})

		require.NoError(t, err)
		assert.True(t, tbl.IsReserved())
	})

	t.Run("should reject reserving an already reserved table", func(t *testing.T) {
		tbl, err := table.NewTable(1, 4, "")
		require.NoError(t, err)
		require.NoError(t, tbl.Reserve(table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2}))

		err = tbl.Reserve(table.Party{CustomerName: "Bob", PhoneNumber: "555-0102", PartySize: 2})

		require.Error(t, err)
		assert.ErrorIs(t, err, table.ErrAlreadyReserved)
		assert.Equal(t, "Alice", tbl.ReservedBy().CustomerName)
	})
}

func TestTable_Release(t *testing.T) {
	t.Run("should clear the reservation", func(t *testing.T) {
		tbl, err := table.NewTable(1, 4, "")
		require.NoError(t, err)
		require.NoError(t, tbl.Reserve(table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2}))

		tbl.Release()

		assert.False(t, tbl.IsReserved())
		assert.Nil(t, tbl.ReservedBy())
	})

	t.Run("should be a no-op on an unreserved table", func(t *testing.T) {
		tbl, err := table.NewTable(1, 4, "")
		require.NoError(t, err)

		tbl.Release()
		tbl.Release()

		assert.False(t, tbl.IsReserved())
	})
}

func TestTable_Renumber(t *testing.T) {
	t.Run("should shift the business key", func(t *testing.T) {
		tbl, err := table.NewTable(5, 4, "")
		require.NoError(t, err)

		require.NoError(t, tbl.Renumber(4))

		assert.Equal(t, 4, tbl.Number())
	})

	t.Run("should reject a non-positive number", func(t *testing.T) {
		tbl, err := table.NewTable(5, 4, "")
		require.NoError(t, err)

		err = tbl.Renumber(0)

		require.Error(t, err)
		assert.Equal(t, 5, tbl.Number())
	})
}
