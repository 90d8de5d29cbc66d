package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ListOrdersQueryHandler builds a role-scoped listing:
//   - scope from the access policy (customer: own orders, seller: own store's orders)
//   - a blank from is replaced by the scope's earliest order time
//   - the projection depends on the view
type ListOrdersQueryHandler struct {
	orders    ports.OrderRepository
	directory ports.Directory
	parser    services.DateRangeParser
	policy    services.AccessPolicy
}

func NewListOrdersQueryHandler(
	orders ports.OrderRepository,
	directory ports.Directory,
	parser services.DateRangeParser,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orders:    orders,
		directory: directory,
		parser:    parser,
		policy:    services.NewAccessPolicy(),
	}
}

// Handle returns *errs.ForbiddenError for callers without a listing scope,
// *errs.ObjectNotFoundError for a seller without a store and
// *errs.ValueIsInvalidError for an unparseable to.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	a := query.Actor()
	if query.sellerOnly && !a.Is(actor.Seller) {
		return ListOrdersQueryResponse{}, errs.NewForbiddenError("list seller orders", "caller is not a seller")
	}

	var owned *store.Store
	if a.Is(actor.Seller) {
		var err error
		if owned, err = h.directory.FindStoreByOwner(ctx, a.ID()); err != nil {
			return ListOrdersQueryResponse{}, err
		}
	}

	scope, err := h.policy.ListingScope(a, owned)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	dates, err := h.parser.Parse(query.From(), query.To())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	filter := ports.OrderFilter{
		CustomerID: scope.CustomerID,
		StoreID:    scope.StoreID,
		From:       dates.From,
		To:         dates.To,
	}
	response := ListOrdersQueryResponse{View: scope.View, Orders: make([]ListedOrder, 0)}

	if dates.NeedsFloor {
		earliest, err := h.orders.FindEarliest(ctx, ports.OrderFilter{
			CustomerID: scope.CustomerID,
			StoreID:    scope.StoreID,
		})
		if errors.Is(err, errs.ErrObjectNotFound) {
			return response, nil
		}
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		floor := earliest.CreatedAt()
		filter.From = &floor
	}

	found, err := h.orders.Find(ctx, filter)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	switch scope.View {
	case services.SellerView:
		response.Orders, err = h.sellerView(ctx, found)
	default:
		response.Orders, err = h.customerView(ctx, found)
	}
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	return response, nil
}

func (h ListOrdersQueryHandler) customerView(ctx context.Context, found []*order.Order) ([]ListedOrder, error) {
	stores, err := h.directory.StoresByID(ctx, distinct(found, (*order.Order).StoreID))
	if err != nil {
		return nil, err
	}

	listed := make([]ListedOrder, 0, len(found))
	for _, o := range found {
		row := listedOrder(o)
		if s, ok := stores[o.StoreID()]; ok {
			row.StoreName = s.Name()
		}
		listed = append(listed, row)
	}
	return listed, nil
}

func (h ListOrdersQueryHandler) sellerView(ctx context.Context, found []*order.Order) ([]ListedOrder, error) {
	accounts, err := h.directory.AccountsByID(ctx, distinct(found, (*order.Order).CustomerID))
	if err != nil {
		return nil, err
	}

	listed := make([]ListedOrder, 0, len(found))
	for _, o := range found {
		row := listedOrder(o)
		if acc, ok := accounts[o.CustomerID()]; ok {
			d := acc.Delivery()
			row.Customer = &CustomerProfile{
				Username: acc.Username(),
				Region:   d.Region,
				Street:   d.Street,
				Floor:    d.Floor,
				Doorbell: d.Doorbell,
				Phone:    d.Phone,
			}
		}
		listed = append(listed, row)
	}
	return listed, nil
}

func listedOrder(o *order.Order) ListedOrder {
	return ListedOrder{
		ID:                    o.ID(),
		StoreID:               o.StoreID(),
		CustomerID:            o.CustomerID(),
		Items:                 o.Items(),
		TotalPrice:            o.TotalPrice(),
		Note:                  o.Note(),
		Status:                o.Status(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		DecidedAt:             o.DecidedAt(),
	}
}

func distinct(orders []*order.Order, key func(*order.Order) kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(orders))
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		id := key(o)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
