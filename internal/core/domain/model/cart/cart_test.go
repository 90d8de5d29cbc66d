package cart_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(store kernel.UUID, ref string, qty int, price int64) cart.Line {
	return cart.Line{StoreID: store, ProductRef: ref, Title: ref, Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
}

func TestNewSubmission(t *testing.T) {
	storeA, storeB := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should accept a multi-store cart", func(t *testing.T) {
		sub, err := cart.NewSubmission([]cart.Line{line(storeA, "a", 2, 10), line(storeB, "b", 3, 5)}, " ring ")

		require.NoError(t, err)
		require.NoError(t, sub.Validate())
		assert.Equal(t, 2, sub.Len())
		assert.Equal(t, "ring", sub.Note())
		assert.True(t, decimal.NewFromInt(35).Equal(sub.Total()))

		var refs []string
		sub.Each(func(_ kernel.UUID, item order.Item) { refs = append(refs, item.ProductRef()) })
		assert.Equal(t, []string{"a", "b"}, refs)
	})

	testCases := []struct {
		name   string
		lines  []cart.Line
		reason string
	}{
		{"empty cart", nil, "cart is empty"},
		{"zero quantity", []cart.Line{line(storeA, "a", 1, 1), line(storeB, "b", 0, 1)}, "line 1: quantity 0"},
		{"negative quantity", []cart.Line{line(storeA, "a", -2, 1)}, "line 0: quantity -2"},
		{"negative price", []cart.Line{line(storeA, "a", 1, -1)}, "line 0: price -1 is negative"},
		{"missing store", []cart.Line{line(kernel.UUID{}, "a", 1, 1)}, "line 0: store is required"},
		{"missing product", []cart.Line{line(storeA, "", 1, 1)}, "product reference"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cart.NewSubmission(tc.lines, "")

			require.ErrorIs(t, err, errs.ErrInvalidCart)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}

	t.Run("zero submission is not constructed", func(t *testing.T) {
		var sub cart.Submission

		assert.Equal(t, cart.ErrSubmissionIsNotConstructed, sub.Validate())
	})
}
