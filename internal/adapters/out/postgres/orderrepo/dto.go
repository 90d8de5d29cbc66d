// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are stored as a JSON column; the total is the numeric snapshot taken at
// creation and is never recomputed from them.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	StoreID               uuid.UUID       `gorm:"type:uuid;index;not null"`
	Items                 []ItemDTO       `gorm:"type:jsonb;serializer:json;not null"`
	TotalPrice            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Note                  string          `gorm:"not null;default:''"`
	Status                int             `gorm:"index;not null"`
	EstimatedDeliveryTime string          `gorm:"not null;default:''"`
	CreatedAt             time.Time       `gorm:"index;not null"`
	DecidedAt             *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items JSON column.
type ItemDTO struct {
	ProductRef string          `json:"productRef"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"price"`
}

func fromDomain(o *order.Order) OrderDTO {
	src := o.Items()
	items := make([]ItemDTO, len(src))
	for i, item := range src {
		items[i] = ItemDTO{
			ProductRef: item.ProductRef(),
			Title:      item.Title(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
		}
	}

	return OrderDTO{
		ID:                    o.ID().Bytes(),
		CustomerID:            o.CustomerID().Bytes(),
		StoreID:               o.StoreID().Bytes(),
		Items:                 items,
		TotalPrice:            o.TotalPrice(),
		Note:                  o.Note(),
		Status:                int(o.Status()),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		DecidedAt:             o.DecidedAt(),
	}
}

// toDomain reconstructs the aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		item, itemErr := order.NewItem(it.ProductRef, it.Title, it.Quantity, it.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                    id,
		CustomerID:            customerID,
		StoreID:               storeID,
		Items:                 items,
		TotalPrice:            dto.TotalPrice,
		Note:                  dto.Note,
		Status:                order.Status(dto.Status),
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		CreatedAt:             dto.CreatedAt,
		DecidedAt:             dto.DecidedAt,
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
