// Package kernel provides shared value objects used across the order
// management domain model.
//
// The package includes:
//   - OrderID: opaque unique order identifier with a generated, sortable format
//   - Money: non-negative monetary total with a currency code
//
// All value objects are immutable, validated at construction, and guarded
// against zero-value use through the constructor guard pattern.
package kernel
