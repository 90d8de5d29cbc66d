package services

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Draft is the part of a cart that becomes one store's order.
type Draft struct {
	StoreID    kernel.UUID
	CustomerID kernel.UUID
	Items      []order.Item
	Total      decimal.Decimal
	Note       string
}

// Build turns the draft into a pending order.
func (d Draft) Build(id kernel.UUID, createdAt time.Time) (*order.Order, error) {
	return order.NewOrder(id, d.CustomerID, d.StoreID, d.Items, d.Note, createdAt)
}

// OrderSplitter groups cart lines by the store reference each line carries.
//
// Business rules:
//   - one draft per distinct store, in order of the store's first appearance
//   - lines keep their relative order inside a draft
//   - a draft's total is the sum of price times quantity of its lines
//
// Example:
//
//	sub, _ := cart.NewSubmission(lines, note)
//	drafts, err := services.NewOrderSplitter().Split(customerID, sub)
//	for _, d := range drafts {
//	    o, _ := d.Build(kernel.NewUUID(), now)
//	}
type OrderSplitter struct{}

func NewOrderSplitter() OrderSplitter {
	return OrderSplitter{}
}

// Split partitions sub into per-store drafts for customerID. The submission has
// already been validated by cart.NewSubmission, so Split only rejects a zero
// submission or customer.
func (OrderSplitter) Split(customerID kernel.UUID, sub cart.Submission) ([]Draft, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	index := make(map[kernel.UUID]int)
	drafts := make([]Draft, 0)
	sub.Each(func(storeID kernel.UUID, item order.Item) {
		i, ok := index[storeID]
		if !ok {
			i = len(drafts)
			index[storeID] = i
			drafts = append(drafts, Draft{
				StoreID:    storeID,
				CustomerID: customerID,
				Total:      decimal.Zero,
				Note:       sub.Note(),
			})
		}
		drafts[i].Items = append(drafts[i].Items, item)
		drafts[i].Total = drafts[i].Total.Add(item.Subtotal())
	})

	return drafts, nil
}
