package http

import (
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// CreateOrdersFromCart godoc
//
//	@Summary	Split a cart into one pending order per store
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID		header		string			true	"caller id"
//	@Param		X-Actor-Role	header		string			true	"caller role"
//	@Param		Idempotency-Key	header		string			false	"deduplicates retried submissions"
//	@Param		request			body		CheckoutRequest	true	"cart"
//	@Success	201				{object}	CheckoutResponse
//	@Failure	400				{object}	Error
//	@Failure	403				{object}	Error
//	@Failure	409				{object}	Error
//	@Router		/api/order/complete [post]
func (s *Server) CreateOrdersFromCart(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return writeKind(c, http.StatusBadRequest, kindBadRequest, "invalid request body")
	}

	lines, err := cartLines(req.Items)
	if err != nil {
		return s.writeError(c, err)
	}

	a := actorFrom(c)
	cmd, err := commands.NewCreateOrdersFromCartCommand(a, lines, req.CustomerNote)
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	if key != "" && s.idempotency != nil {
		fresh, reserveErr := s.idempotency.Reserve(ctx, a.ID().String(), key)
		if reserveErr != nil {
			return s.writeError(c, reserveErr)
		}
		if !fresh {
			return writeKind(c, http.StatusConflict, kindDuplicateRequest, "cart with this Idempotency-Key was already submitted")
		}
	}

	result, err := s.handlers.CreateOrdersFromCart.Handle(ctx, cmd)
	if err != nil {
		if key != "" && s.idempotency != nil {
			if releaseErr := s.idempotency.Release(ctx, a.ID().String(), key); releaseErr != nil {
				s.logger.Warn("idempotency key not released", "err", releaseErr)
			}
		}
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, checkoutResponse(result))
}

// ListOrders godoc
//
//	@Summary	List the caller's orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		X-Actor-ID		header	string	true	"caller id"
//	@Param		X-Actor-Role	header	string	true	"caller role"
//	@Param		from			query	string	false	"lower bound, ignored when unparseable"
//	@Param		to				query	string	false	"upper bound, inclusive to the end of its day"
//	@Success	200				{array}	Order
//	@Failure	400				{object}	Error
//	@Failure	403				{object}	Error
//	@Router		/api/order [get]
func (s *Server) ListOrders(c echo.Context) error {
	query := queries.NewListOrdersQuery(actorFrom(c), c.QueryParam("from"), c.QueryParam("to"))
	return s.listOrders(c, query)
}

// ListSellerOrders godoc
//
//	@Summary	List orders placed with the caller's store, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		X-Actor-ID		header	string	true	"caller id"
//	@Param		X-Actor-Role	header	string	true	"caller role"
//	@Param		from			query	string	false	"lower bound"
//	@Param		to				query	string	false	"upper bound"
//	@Success	200				{array}	Order
//	@Failure	403				{object}	Error
//	@Failure	404				{object}	Error
//	@Router		/api/order/seller [get]
func (s *Server) ListSellerOrders(c echo.Context) error {
	query := queries.NewListSellerOrdersQuery(actorFrom(c), c.QueryParam("from"), c.QueryParam("to"))
	return s.listOrders(c, query)
}

func (s *Server) listOrders(c echo.Context, query queries.ListOrdersQuery) error {
	response, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	out := make([]Order, len(response.Orders))
	for i, o := range response.Orders {
		out[i] = listedOrder(o)
	}
	return c.JSON(http.StatusOK, out)
}

// ConfirmOrder godoc
//
//	@Summary	Confirm a pending order of the caller's store
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID		header		string			true	"caller id"
//	@Param		X-Actor-Role	header		string			true	"caller role"
//	@Param		orderId			path		string			true	"order id"
//	@Param		request			body		ConfirmRequest	true	"delivery estimate"
//	@Success	200				{object}	DecisionResponse
//	@Failure	400				{object}	Error
//	@Failure	403				{object}	Error
//	@Failure	404				{object}	Error
//	@Failure	409				{object}	Error
//	@Router		/api/order/confirm/{orderId} [put]
func (s *Server) ConfirmOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req ConfirmRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return writeKind(c, http.StatusBadRequest, kindBadRequest, "invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(actorFrom(c), orderID, req.EstimatedDeliveryTime)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.ConfirmOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, decisionResponse("Order confirmed", result))
}

// DenyOrder godoc
//
//	@Summary	Deny a pending order of the caller's store
//	@Tags		orders
//	@Produce	json
//	@Param		X-Actor-ID		header		string	true	"caller id"
//	@Param		X-Actor-Role	header		string	true	"caller role"
//	@Param		orderId			path		string	true	"order id"
//	@Success	200				{object}	DecisionResponse
//	@Failure	403				{object}	Error
//	@Failure	404				{object}	Error
//	@Failure	409				{object}	Error
//	@Router		/api/order/deny/{orderId} [put]
func (s *Server) DenyOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDenyOrderCommand(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.DenyOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, decisionResponse("Order denied", result))
}

// GetAllOrders godoc
//
//	@Summary	List every order (admin)
//	@Tags		admin
//	@Produce	json
//	@Param		X-Actor-ID		header	string	true	"caller id"
//	@Param		X-Actor-Role	header	string	true	"caller role"
//	@Success	200				{array}	AdminOrder
//	@Failure	403				{object}	Error
//	@Router		/api/admin/orders/all [get]
func (s *Server) GetAllOrders(c echo.Context) error {
	views, err := s.handlers.GetAllOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery(actorFrom(c)))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, adminOrders(views))
}

// GetPendingOrders godoc
//
//	@Summary	List orders awaiting a decision (admin)
//	@Tags		admin
//	@Produce	json
//	@Param		X-Actor-ID		header	string	true	"caller id"
//	@Param		X-Actor-Role	header	string	true	"caller role"
//	@Success	200				{array}	AdminOrder
//	@Failure	403				{object}	Error
//	@Router		/api/admin/orders/pending [get]
func (s *Server) GetPendingOrders(c echo.Context) error {
	views, err := s.handlers.GetPendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery(actorFrom(c)))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, adminOrders(views))
}

func orderIDParam(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}

func cartLines(items []CartItem) ([]cart.Line, error) {
	lines := make([]cart.Line, len(items))
	for i, item := range items {
		storeID, err := kernel.UUIDFromString(item.StoreID)
		if err != nil {
			return nil, errs.NewInvalidCartErrorWithCause(fmt.Sprintf("line %d: store is invalid", i), err)
		}
		lines[i] = cart.Line{
			StoreID:    storeID,
			ProductRef: item.ProductID,
			Title:      item.Title,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
		}
	}
	return lines, nil
}

func checkoutResponse(result commands.CreateOrdersResult) CheckoutResponse {
	resp := CheckoutResponse{
		Message:  fmt.Sprintf("%d order(s) created", len(result.Created)),
		Orders:   make([]CreatedOrder, len(result.Created)),
		Skipped:  make([]SkippedStore, len(result.Skipped)),
		Warnings: warnings(result.Warnings, "seller"),
	}
	for i, created := range result.Created {
		resp.Orders[i] = CreatedOrder{
			OrderID:    created.OrderID.String(),
			StoreID:    created.StoreID.String(),
			Store:      created.StoreName,
			TotalPrice: created.Total,
		}
	}
	for i, skipped := range result.Skipped {
		kind := errs.KindOf(skipped.Err)
		var message string
		switch kind {
		case errs.KindStoreNotFound:
			message = "store does not exist"
		case errs.KindSellerNotFound:
			message = "store has no seller account"
		default:
			message = "internal error"
		}
		resp.Skipped[i] = SkippedStore{
			StoreID: skipped.StoreID.String(),
			Kind:    string(kind),
			Message: message,
		}
	}
	return resp
}

func decisionResponse(message string, result commands.DecisionResult) DecisionResponse {
	return DecisionResponse{
		Message:  message,
		Order:    orderView(result.Order),
		Warnings: warnings(result.Warnings, "customer"),
	}
}

// warnings describes failed side effects by recipient role only. The address and
// cause stay in the server log.
func warnings(list []error, recipient string) []Warning {
	out := make([]Warning, len(list))
	for i, w := range list {
		kind := errs.KindOf(w)
		message := "notification to " + recipient + " could not be delivered"
		if kind != errs.KindUpstreamNotification {
			message = recipient + " side effect could not be completed"
		}
		out[i] = Warning{Kind: string(kind), Message: message}
	}
	return out
}

func orderItems(items []order.Item) []OrderItem {
	out := make([]OrderItem, len(items))
	for i, item := range items {
		out[i] = OrderItem{
			ProductID: item.ProductRef(),
			Title:     item.Title(),
			Quantity:  item.Quantity(),
			Price:     item.UnitPrice(),
		}
	}
	return out
}

func orderView(o *order.Order) Order {
	return Order{
		ID:                    o.ID().String(),
		StoreID:               o.StoreID().String(),
		CustomerID:            o.CustomerID().String(),
		Items:                 orderItems(o.Items()),
		TotalPrice:            o.TotalPrice(),
		Note:                  o.Note(),
		Status:                o.Status().String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		DecidedAt:             o.DecidedAt(),
	}
}

func listedOrder(o queries.ListedOrder) Order {
	out := Order{
		ID:                    o.ID.String(),
		StoreID:               o.StoreID.String(),
		CustomerID:            o.CustomerID.String(),
		Items:                 orderItems(o.Items),
		TotalPrice:            o.TotalPrice,
		Note:                  o.Note,
		Status:                o.Status.String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt,
		DecidedAt:             o.DecidedAt,
		StoreName:             o.StoreName,
	}
	if o.Customer != nil {
		out.Customer = &Customer{
			Username: o.Customer.Username,
			Region:   o.Customer.Region,
			Street:   o.Customer.Street,
			Floor:    o.Customer.Floor,
			Doorbell: o.Customer.Doorbell,
			Phone:    o.Customer.Phone,
		}
	}
	return out
}

func adminOrders(views []queries.AdminOrderView) []AdminOrder {
	out := make([]AdminOrder, len(views))
	for i, v := range views {
		out[i] = AdminOrder{
			ID:               v.ID.String(),
			StoreID:          v.StoreID.String(),
			StoreName:        v.StoreName,
			CustomerID:       v.CustomerID.String(),
			CustomerUsername: v.CustomerUsername,
			TotalPrice:       v.TotalPrice,
			Status:           v.Status.String(),
			CreatedAt:        v.CreatedAt,
		}
	}
	return out
}
