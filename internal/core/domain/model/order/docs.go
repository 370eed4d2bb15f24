// Package order contains the Order aggregate: the fulfillment lifecycle of a
// client order from creation through warehouse validation, client
// acknowledgment of adjustments, routing and delivery.
//
// The aggregate root is Order; Item entities are exclusively owned by their
// order and are only mutated through aggregate methods. Resolution captures
// the warehouse outcome per item and hosts the quantity/SKU rules. Status is
// the lifecycle state machine.
//
// Wire values (statuses, payment methods, resolution outcomes) are the Spanish
// strings used by callers of this engine; Go identifiers stay English.
package order
