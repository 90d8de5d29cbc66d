// Package cart models a checkout request: a flat, multi-store list of lines that
// only lives for the duration of the split-and-create operation.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSubmissionIsNotConstructed = errors.New("Submission must be created via NewSubmission constructor")

// Line is one cart entry. Every line carries its own resolved store reference.
type Line struct {
	StoreID    kernel.UUID
	ProductRef string
	Title      string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// Submission is a validated cart: non-empty, every line with a store, a positive
// quantity and a non-negative price.
type Submission struct {
	lines []validLine
	note  string
	guard guard.ConstructorGuard
}

type validLine struct {
	storeID kernel.UUID
	item    order.Item
}

// NewSubmission validates the whole cart up front. Any bad line rejects the cart
// with *errs.InvalidCartError naming the first offending line.
func NewSubmission(lines []Line, note string) (Submission, error) {
	if len(lines) == 0 {
		return Submission{}, errs.NewInvalidCartError("cart is empty")
	}

	valid := make([]validLine, 0, len(lines))
	for i, line := range lines {
		if err := line.StoreID.Validate(); err != nil {
			return Submission{}, errs.NewInvalidCartErrorWithCause(fmt.Sprintf("line %d: store is required", i), err)
		}
		if line.Quantity <= 0 {
			return Submission{}, errs.NewInvalidCartError(
				fmt.Sprintf("line %d: quantity %d is not greater than 0", i, line.Quantity))
		}
		if line.UnitPrice.IsNegative() {
			return Submission{}, errs.NewInvalidCartError(
				fmt.Sprintf("line %d: price %s is negative", i, line.UnitPrice))
		}

		item, err := order.NewItem(line.ProductRef, line.Title, line.Quantity, line.UnitPrice)
		if err != nil {
			return Submission{}, errs.NewInvalidCartErrorWithCause(fmt.Sprintf("line %d", i), err)
		}
		valid = append(valid, validLine{storeID: line.StoreID, item: item})
	}

	return Submission{
		lines: valid,
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (s Submission) Validate() error {
	return s.guard.Validate(ErrSubmissionIsNotConstructed)
}

// Len is the number of lines.
func (s Submission) Len() int {
	return len(s.lines)
}

// Note is the customer note applied to every order created from the cart.
func (s Submission) Note() string {
	return s.note
}

// Each calls fn for every line in submission order.
func (s Submission) Each(fn func(storeID kernel.UUID, item order.Item)) {
	for _, line := range s.lines {
		fn(line.storeID, line.item)
	}
}

// Total is the sum of price times quantity over the whole cart.
func (s Submission) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.item.Subtotal())
	}
	return total
}
