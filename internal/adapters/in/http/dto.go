package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a checkout request.
type CartItem struct {
	StoreID   string          `json:"storeId" example:"6f1c0a44-3b1e-4e8b-9a57-3f0a4a3c2b11"`
	ProductID string          `json:"productId" example:"book-42"`
	Title     string          `json:"title" example:"Dune"`
	Quantity  int             `json:"quantity" example:"2"`
	Price     decimal.Decimal `json:"price" swaggertype:"number" example:"10.50"`
}

type CheckoutRequest struct {
	Items        []CartItem `json:"items"`
	CustomerNote string     `json:"customerNote"`
}

type CreatedOrder struct {
	OrderID    string          `json:"orderId"`
	StoreID    string          `json:"storeId"`
	Store      string          `json:"store"`
	TotalPrice decimal.Decimal `json:"totalPrice" swaggertype:"number"`
}

type SkippedStore struct {
	StoreID string `json:"storeId"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Warning reports a best-effort step that failed after the change was saved.
// It never carries the recipient address or the sink error.
type Warning struct {
	Kind    string `json:"kind" example:"upstream_notification"`
	Message string `json:"message" example:"notification to seller could not be delivered"`
}

type CheckoutResponse struct {
	Message  string         `json:"message"`
	Orders   []CreatedOrder `json:"orders"`
	Skipped  []SkippedStore `json:"skipped"`
	Warnings []Warning      `json:"warnings"`
}

type ConfirmRequest struct {
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime" example:"2-3 days"`
}

type DecisionResponse struct {
	Message  string    `json:"message"`
	Order    Order     `json:"order"`
	Warnings []Warning `json:"warnings"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
}

type Customer struct {
	Username string `json:"username"`
	Region   string `json:"region"`
	Street   string `json:"street"`
	Floor    string `json:"floor"`
	Doorbell string `json:"doorbell"`
	Phone    string `json:"phone"`
}

// Order is the listing row. StoreName is set for customers, Customer for sellers.
type Order struct {
	ID                    string          `json:"id"`
	StoreID               string          `json:"storeId"`
	CustomerID            string          `json:"customerId"`
	Items                 []OrderItem     `json:"items"`
	TotalPrice            decimal.Decimal `json:"totalPrice" swaggertype:"number"`
	Note                  string          `json:"note"`
	Status                string          `json:"status" example:"Pending"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	DecidedAt             *time.Time      `json:"decidedAt,omitempty"`
	StoreName             string          `json:"storeName,omitempty"`
	Customer              *Customer       `json:"customer,omitempty"`
}

type AdminOrder struct {
	ID               string          `json:"id"`
	StoreID          string          `json:"storeId"`
	StoreName        string          `json:"storeName"`
	CustomerID       string          `json:"customerId"`
	CustomerUsername string          `json:"customerUsername"`
	TotalPrice       decimal.Decimal `json:"totalPrice" swaggertype:"number"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
