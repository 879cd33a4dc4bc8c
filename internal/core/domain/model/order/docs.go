// Package order provides domain entities and business logic for order
// tracking in the point-of-sale system. It implements the Order aggregate
// root together with its Item and Change sub-entities.
//
// The package includes:
//   - Order: The aggregate root owning items and the append-only change log
//   - Item: A single ordered dish with a name and a preparation status
//   - Change: An immutable audit record of an edit, void or status transition
//   - ItemStatus: pending/cooking/done, with no enforced transition ordering
//
// Key business rules:
//   - sentAt is set if and only if the order was sent to the kitchen
//   - sending an order to the kitchen is a one-shot transition
//   - every edit, void and status change appends exactly one change record
//   - the change log is append-only; voided items stay resolvable through it
//   - items are addressed by stable identifiers, never by position
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
