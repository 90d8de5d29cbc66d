// Package errs provides the error types shared by the marketplace order core.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired, ErrForbidden)
//   - a struct carrying the details of the failure
//   - constructor functions, with and without a cause where a cause makes sense
//   - Error() for the message and Unwrap() returning the sentinel
//
// The order lifecycle adds InvalidCartError, StoreNotFoundError, SellerNotFoundError,
// ForbiddenError, InvalidStateError and UpstreamNotificationError. KindOf maps any
// error onto a stable Kind that transport adapters translate into status codes;
// errors the package does not know about are classified as KindInternal.
package errs
