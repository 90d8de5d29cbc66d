// Package notification defines the payloads the order core hands to the notification
// sink. Rendering and delivery (email) belong to the sink.
package notification

import (
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
)

// Kind selects the template the sink renders.
type Kind string

const (
	OrderPlaced    Kind = "order_placed"
	OrderConfirmed Kind = "order_confirmed"
	OrderDeclined  Kind = "order_declined"
	PendingDigest  Kind = "pending_digest"
)

type Item struct {
	ProductRef string          `json:"productRef"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"price"`
}

type DeliveryInfo struct {
	Region   string `json:"region"`
	Street   string `json:"street"`
	Floor    string `json:"floor"`
	Doorbell string `json:"doorbell"`
	Phone    string `json:"phone"`
}

type CustomerInfo struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Delivery DeliveryInfo `json:"delivery"`
}

// PendingOrder is one row of a pending digest.
type PendingOrder struct {
	OrderID    string          `json:"orderId"`
	StoreName  string          `json:"storeName"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Notification is the payload sent to one destination address.
type Notification struct {
	Kind                  Kind            `json:"kind"`
	OrderID               string          `json:"orderId,omitempty"`
	StoreName             string          `json:"storeName,omitempty"`
	Username              string          `json:"username,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	Items                 []Item          `json:"items,omitempty"`
	TotalPrice            decimal.Decimal `json:"totalPrice"`
	Note                  string          `json:"note"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime,omitempty"`
	DeliveryInfo          *DeliveryInfo   `json:"deliveryInfo,omitempty"`
	CustomerInfo          *CustomerInfo   `json:"customerInfo,omitempty"`
	PendingOrders         []PendingOrder  `json:"pendingOrders,omitempty"`
}

// NewOrderPlaced is sent to the seller when an order is created for their store.
func NewOrderPlaced(o *order.Order, s *store.Store, customer *account.Account) Notification {
	info := customerInfo(customer)
	return Notification{
		Kind:         OrderPlaced,
		OrderID:      o.ID().String(),
		StoreName:    s.Name(),
		CreatedAt:    o.CreatedAt(),
		Items:        items(o),
		TotalPrice:   o.TotalPrice(),
		Note:         o.Note(),
		CustomerInfo: &info,
	}
}

// NewOrderConfirmed is sent to the customer after the seller confirms.
func NewOrderConfirmed(o *order.Order, s *store.Store, customer *account.Account) Notification {
	n := customerFacing(OrderConfirmed, o, s, customer)
	n.EstimatedDeliveryTime = o.EstimatedDeliveryTime()
	return n
}

// NewOrderDeclined is sent to the customer after the seller denies.
func NewOrderDeclined(o *order.Order, s *store.Store, customer *account.Account) Notification {
	return customerFacing(OrderDeclined, o, s, customer)
}

// NewPendingDigest summarizes orders still awaiting a decision.
func NewPendingDigest(at time.Time, pending []PendingOrder) Notification {
	total := decimal.Zero
	for _, p := range pending {
		total = total.Add(p.TotalPrice)
	}
	return Notification{
		Kind:          PendingDigest,
		CreatedAt:     at.UTC(),
		TotalPrice:    total,
		PendingOrders: pending,
	}
}

func customerFacing(kind Kind, o *order.Order, s *store.Store, customer *account.Account) Notification {
	info := deliveryInfo(customer.Delivery())
	return Notification{
		Kind:         kind,
		OrderID:      o.ID().String(),
		StoreName:    s.Name(),
		Username:     customer.Username(),
		CreatedAt:    o.CreatedAt(),
		Items:        items(o),
		TotalPrice:   o.TotalPrice(),
		Note:         o.Note(),
		DeliveryInfo: &info,
	}
}

func customerInfo(a *account.Account) CustomerInfo {
	return CustomerInfo{
		ID:       a.ID().String(),
		Username: a.Username(),
		Email:    a.Email(),
		Delivery: deliveryInfo(a.Delivery()),
	}
}

func deliveryInfo(d account.DeliveryInfo) DeliveryInfo {
	return DeliveryInfo{
		Region:   d.Region,
		Street:   d.Street,
		Floor:    d.Floor,
		Doorbell: d.Doorbell,
		Phone:    d.Phone,
	}
}

func items(o *order.Order) []Item {
	src := o.Items()
	out := make([]Item, len(src))
	for i, item := range src {
		out[i] = Item{
			ProductRef: item.ProductRef(),
			Title:      item.Title(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
		}
	}
	return out
}
