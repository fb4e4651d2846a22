// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProblemRepoFactory provides access to problem record repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// InventoryRepoFactory provides access to warehouse stock repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// CollectionUoW manages transactions for collection completion.
	// The command writes the order and decrements warehouse stock together.
	CollectionUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// CollectionUoWFactory creates new collection unit of work instances.
	CollectionUoWFactory interface {
		Create() CollectionUoW
	}

	// EscalationUoW manages transactions for missing-product escalation.
	// The command writes the order, its problem records, and the stock of
	// pinned items together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   problemRepo := uow.ProblemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	EscalationUoW interface {
		TxManager
		OrderRepoFactory
		ProblemRepoFactory
		InventoryRepoFactory
	}

	// EscalationUoWFactory creates new escalation unit of work instances.
	EscalationUoWFactory interface {
		Create() EscalationUoW
	}

	// ResolutionUoW manages transactions for office decisions and silent
	// recovery, which touch all three aggregates.
	ResolutionUoW interface {
		TxManager
		OrderRepoFactory
		ProblemRepoFactory
		InventoryRepoFactory
	}

	// ResolutionUoWFactory creates new resolution unit of work instances.
	ResolutionUoWFactory interface {
		Create() ResolutionUoW
	}
)
