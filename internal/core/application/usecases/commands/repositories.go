// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: role check and validation at
// construction, then transaction management and persistence in the handler.
package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the aggregates they
// touch; the postgres UnitOfWork satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CreditRepoFactory provides access to the credit repository within a transaction.
	CreditRepoFactory interface {
		CreditRepository() ports.CreditRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CreditUoW manages transactions for credit-only operations.
	CreditUoW interface {
		TxManager
		CreditRepoFactory
	}

	// CreditUoWFactory creates new credit unit of work instances.
	CreditUoWFactory interface {
		Create() CreditUoW
	}

	// OrderCreditUoW coordinates changes between an order and its credit record.
	// Used by order creation, which opens a credit record for credito orders.
	OrderCreditUoW interface {
		TxManager
		OrderRepoFactory
		CreditRepoFactory
	}

	// OrderCreditUoWFactory creates new order+credit unit of work instances.
	OrderCreditUoWFactory interface {
		Create() OrderCreditUoW
	}

	// OrderDeliveryUoW coordinates changes between a delivery and its order.
	// Delivery transitions cascade onto the order within the same transaction.
	OrderDeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderDeliveryUoWFactory creates new order+delivery unit of work instances.
	OrderDeliveryUoWFactory interface {
		Create() OrderDeliveryUoW
	}

	// UoW manages transactions across all three aggregates. Used by route
	// assignment, which reads the credit gate, moves the order and creates
	// the delivery atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		CreditRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
