package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChange(t *testing.T) {
	id := kernel.NewUUID()
	itemID := kernel.NewUUID()
	createdAt := time.Now().UTC()

	t.Run("creates edit change with from and to values", func(t *testing.T) {
		toValue := "Pasta"

		change, err := order.NewChange(id, itemID, order.ItemEdited, "Pizza", &toValue, createdAt)

		require.NoError(t, err)
		require.NoError(t, change.Validate())
		assert.True(t, change.ID().IsEqual(id))
		assert.True(t, change.ItemID().IsEqual(itemID))
		assert.Equal(t, order.ItemEdited, change.Type())
		assert.Equal(t, "Pizza", change.FromValue())
		require.NotNil(t, change.ToValue())
		assert.Equal(t, "Pasta", *change.ToValue())
		assert.Equal(t, createdAt, change.CreatedAt())
	})

	t.Run("creates void change without to value", func(t *testing.T) {
		change, err := order.NewChange(id, itemID, order.ItemVoided, "Pizza", nil, createdAt)

		require.NoError(t, err)
		assert.Nil(t, change.ToValue())
	})

	t.Run("rejects void change with a to value", func(t *testing.T) {
		toValue := "Pasta"

		change, err := order.NewChange(id, itemID, order.ItemVoided, "Pizza", &toValue, createdAt)

		require.Error(t, err)
		assert.Nil(t, change)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-void change without a to value", func(t *testing.T) {
		change, err := order.NewChange(id, itemID, order.ItemEdited, "Pizza", nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, change)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty from value", func(t *testing.T) {
		toValue := "Pasta"

		change, err := order.NewChange(id, itemID, order.ItemEdited, "", &toValue, createdAt)

		require.Error(t, err)
		assert.Nil(t, change)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		toValue := "Pasta"

		change, err := order.NewChange(id, itemID, order.ItemEdited, "Pizza", &toValue, time.Time{})

		require.Error(t, err)
		assert.Nil(t, change)
	})

	t.Run("rejects invalid change type", func(t *testing.T) {
		toValue := "Pasta"

		change, err := order.NewChange(id, itemID, order.ChangeTypeUnknown, "Pizza", &toValue, createdAt)

		require.Error(t, err)
		assert.Nil(t, change)
	})

	t.Run("zero value change fails validation", func(t *testing.T) {
		var change order.Change

		require.ErrorIs(t, change.Validate(), order.ErrChangeIsNotConstructed)
	})

	t.Run("copies the to value instead of aliasing it", func(t *testing.T) {
		toValue := "Pasta"

		change, err := order.NewChange(id, itemID, order.ItemEdited, "Pizza", &toValue, createdAt)
		require.NoError(t, err)

		toValue = "mutated"
		assert.Equal(t, "Pasta", *change.ToValue())
	})
}

func TestNewItem(t *testing.T) {
	t.Run("creates pending item", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := order.NewItem(id, "Burger")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Burger", item.Name())
		assert.Equal(t, order.StatusPending, item.Status())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, "Burger")

		require.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("restores item with stored status", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := order.RestoreItem(id, "Burger", order.StatusDone)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDone, item.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), "Burger", order.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, item)
	})
}
