// Package kernel holds the shared value objects of the marketplace domain.
//
// UUID identifies orders, stores and accounts. Its zero value is invalid, so every
// aggregate validates its references on construction and on restore from storage.
package kernel
