package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one immutable line of an order.
type Item struct {
	productRef string
	title      string
	quantity   int
	unitPrice  decimal.Decimal
}

// NewItem validates a line: product reference present, quantity > 0, unit price >= 0.
func NewItem(productRef, title string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	item := Item{
		productRef: strings.TrimSpace(productRef),
		title:      title,
		quantity:   quantity,
		unitPrice:  unitPrice,
	}

	var errList []error
	if item.productRef == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product reference"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if unitPrice.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid", fmt.Errorf("%s is negative", unitPrice)))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) ProductRef() string {
	return i.productRef
}

func (i Item) Title() string {
	return i.title
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// TotalOf sums the subtotals of items.
func TotalOf(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
