package errs

import "errors"

// Kind is the stable, machine-checkable classification of a caller-facing failure.
type Kind string

const (
	KindInvalidCart          Kind = "invalid_cart"
	KindInvalidArgument      Kind = "invalid_argument"
	KindStoreNotFound        Kind = "store_not_found"
	KindSellerNotFound       Kind = "seller_not_found"
	KindNotFound             Kind = "not_found"
	KindForbidden            Kind = "forbidden"
	KindInvalidState         Kind = "invalid_state"
	KindUpstreamNotification Kind = "upstream_notification"
	KindInternal             Kind = "internal"
)

// KindOf classifies err. Anything that does not unwrap to one of the package
// sentinels is KindInternal, which keeps persistence errors opaque to callers.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCart):
		return KindInvalidCart
	case errors.Is(err, ErrStoreNotFound):
		return KindStoreNotFound
	case errors.Is(err, ErrSellerNotFound):
		return KindSellerNotFound
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrUpstreamNotification):
		return KindUpstreamNotification
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidArgument
	default:
		return KindInternal
	}
}
