package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const adminOrdersSQL = `
	SELECT
		o.id,
		o.store_id,
		s.name,
		o.customer_id,
		a.username,
		o.total_price,
		o.status,
		o.created_at
	FROM orders o
	LEFT JOIN stores s ON s.id = o.store_id
	LEFT JOIN accounts a ON a.id = o.customer_id
`

// GetAllOrdersQueryHandler reads every order with its store name and customer
// username, newest first. Only admins may run it.
type GetAllOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]AdminOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeAdminRead(query.Actor()); err != nil {
		return nil, err
	}

	return scanAdminOrders(h.db.WithContext(ctx).Raw(adminOrdersSQL + `ORDER BY o.created_at DESC`))
}

// GetPendingOrdersQueryHandler reads orders in Pending status, newest first.
// Only admins may run it.
type GetPendingOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) ([]AdminOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeAdminRead(query.Actor()); err != nil {
		return nil, err
	}

	return scanAdminOrders(h.db.WithContext(ctx).Raw(
		adminOrdersSQL+`WHERE o.status = ? ORDER BY o.created_at DESC`, int(order.Pending)))
}

func scanAdminOrders(tx *gorm.DB) ([]AdminOrderView, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]AdminOrderView, 0)
	for rows.Next() {
		var (
			id, storeID, customerID uuid.UUID
			storeName, username     sql.NullString
			total                   decimal.Decimal
			status                  int
			createdAt               time.Time
		)
		if err = rows.Scan(&id, &storeID, &storeName, &customerID, &username, &total, &status, &createdAt); err != nil {
			return nil, err
		}

		view := AdminOrderView{
			StoreName:        storeName.String,
			CustomerUsername: username.String,
			TotalPrice:       total,
			Status:           order.Status(status),
			CreatedAt:        createdAt.UTC(),
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
