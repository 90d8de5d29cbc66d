package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. db may be a
// transaction handle.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Find retrieves the orders matching filter, newest first.
func (r *GormOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.scoped(ctx, filter).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindEarliest retrieves the oldest order matching filter.
func (r *GormOrderRepository) FindEarliest(ctx context.Context, filter ports.OrderFilter) (*order.Order, error) {
	var dto OrderDTO
	if err := r.scoped(ctx, filter).Order("created_at ASC").Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "earliest")
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDecision is a conditional update keyed on the expected status, so a
// concurrent confirm and deny cannot both succeed.
func (r *GormOrderRepository) UpdateDecision(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(expected)).
		Updates(map[string]any{
			"status":                  int(aggregate.Status()),
			"estimated_delivery_time": aggregate.EstimatedDeliveryTime(),
			"decided_at":              aggregate.DecidedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	current, err := r.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	return errs.NewInvalidStateError(decisionAction(aggregate.Status()), current.Status().String())
}

func (r *GormOrderRepository) scoped(ctx context.Context, filter ports.OrderFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&OrderDTO{})
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.StoreID != nil {
		q = q.Where("store_id = ?", filter.StoreID.Bytes())
	}
	if filter.Status != nil {
		q = q.Where("status = ?", int(*filter.Status))
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	return q
}

func decisionAction(target order.Status) string {
	if target == order.Denied {
		return "deny"
	}
	return "confirm"
}
