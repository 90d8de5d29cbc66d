package errs

import "fmt"

// InvalidCartError rejects a whole cart submission before anything is persisted.
type InvalidCartError struct {
	Reason string
	Cause  error
}

func NewInvalidCartError(reason string) *InvalidCartError {
	return &InvalidCartError{Reason: reason}
}

func NewInvalidCartErrorWithCause(reason string, cause error) *InvalidCartError {
	return &InvalidCartError{Reason: reason, Cause: cause}
}

func (e *InvalidCartError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrInvalidCart, sanitize(e.Reason)), e.Cause)
}

func (e *InvalidCartError) Unwrap() error {
	return ErrInvalidCart
}

// StoreNotFoundError means a cart line references a store the directory does not know.
type StoreNotFoundError struct {
	StoreID string
}

func NewStoreNotFoundError(storeID string) *StoreNotFoundError {
	return &StoreNotFoundError{StoreID: storeID}
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStoreNotFound, e.StoreID)
}

func (e *StoreNotFoundError) Unwrap() error {
	return ErrStoreNotFound
}

// SellerNotFoundError means the store exists but its owning account does not.
type SellerNotFoundError struct {
	StoreID  string
	SellerID string
}

func NewSellerNotFoundError(storeID, sellerID string) *SellerNotFoundError {
	return &SellerNotFoundError{StoreID: storeID, SellerID: sellerID}
}

func (e *SellerNotFoundError) Error() string {
	return fmt.Sprintf("%s: store %s, seller %s", ErrSellerNotFound, e.StoreID, e.SellerID)
}

func (e *SellerNotFoundError) Unwrap() error {
	return ErrSellerNotFound
}

// ForbiddenError is a role or ownership mismatch.
type ForbiddenError struct {
	Action string
	Reason string
}

func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrForbidden, e.Action, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError is a lifecycle transition attempted from a status that does not allow it.
type InvalidStateError struct {
	Action string
	Status string
}

func NewInvalidStateError(action, status string) *InvalidStateError {
	return &InvalidStateError{Action: action, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in %s status", ErrInvalidState, e.Action, e.Status)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// UpstreamNotificationError wraps a notification sink failure. It never reverses a
// committed transition; callers report it as a warning.
type UpstreamNotificationError struct {
	Destination string
	Cause       error
}

func NewUpstreamNotificationError(destination string, cause error) *UpstreamNotificationError {
	return &UpstreamNotificationError{Destination: destination, Cause: cause}
}

func (e *UpstreamNotificationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUpstreamNotification, e.Destination), e.Cause)
}

func (e *UpstreamNotificationError) Unwrap() error {
	return ErrUpstreamNotification
}
