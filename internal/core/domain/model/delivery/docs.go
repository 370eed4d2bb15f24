// Package delivery contains the Delivery aggregate: the trip of one routed
// order from route assignment to a terminal outcome, with append-only
// evidence and incident tracking.
package delivery
