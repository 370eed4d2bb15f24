// Package credit contains the Credit aggregate: the per-order credit
// sub-ledger with its append-only payment list and derived balance.
package credit
