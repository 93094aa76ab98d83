// Package services provides domain services that validate business
// operations spanning multiple aggregates of the order-operations core.
//
// The package includes:
//   - BatchValidator: cross-line validation of shipment batches
//
// Domain services hold logic that does not belong to a single backorder
// line, such as rules about the composition of a batch.
package services
