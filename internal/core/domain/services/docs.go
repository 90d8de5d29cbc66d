// Package services provides the stateless domain services of the order core.
//
// The package includes:
//   - OrderSplitter: partitions a cart into one pending-order draft per store
//   - AccessPolicy: the single authorization decision point for every role
//   - DateRangeParser: the tolerant date-filter policy used by order listings
package services
