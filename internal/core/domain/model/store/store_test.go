package store_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	id, owner := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should create store", func(t *testing.T) {
		s, err := store.NewStore(id, "  Corner Books ", owner)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Corner Books", s.Name())
		assert.True(t, s.IsOwnedBy(owner))
		assert.False(t, s.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := store.NewStore(id, " ", owner)

		assert.Equal(t, store.ErrStoreNameIsRequired, err)
	})

	t.Run("should require owner", func(t *testing.T) {
		_, err := store.NewStore(id, "Corner Books", kernel.UUID{})

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("nil store is invalid", func(t *testing.T) {
		var s *store.Store

		assert.Equal(t, store.ErrStoreIsNotConstructed, s.Validate())
	})
}
