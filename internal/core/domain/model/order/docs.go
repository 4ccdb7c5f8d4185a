// Package order provides domain entities and business logic for order
// lifecycle management. It implements the Order aggregate root together with
// the value objects describing an order: Status, Channel, and Customer.
//
// The package includes:
//   - Order: the aggregate root owning order identity, attributes, and lifecycle
//   - Status: the fixed status set, its linear progression, and terminal states
//   - Channel: the fixed set of sales channels
//   - Customer: the customer reference attached to every order
//
// Key business rules:
//   - every order starts in PENDING status with a generated identifier
//   - status only moves forward along the linear progression or sideways into
//     an exception state; terminal orders are never resurrected
//   - HOLDED is set only by the commerce validation pipeline and is frozen
//     with respect to automatic advancement
//   - every status change may carry an audit note recording the actor
//
// The package follows Domain-Driven Design principles with private fields,
// validated constructors, and restore functions for persistence.
package order
