// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderops/internal/core/ports"
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

	// BackorderRepoFactory provides access to the backorder repository within a transaction.
	BackorderRepoFactory interface {
		BackorderRepository() ports.BackorderRepository
	}

	// ReconciliationRepoFactory provides access to the reconciliation repository within a transaction.
	ReconciliationRepoFactory interface {
		ReconciliationRepository() ports.ReconciliationRepository
	}

	// DiscountLineRepoFactory provides access to the discount line repository within a transaction.
	DiscountLineRepoFactory interface {
		DiscountLineRepository() ports.DiscountLineRepository
	}

	// FactoryDefaultRepoFactory provides access to the factory default repository within a transaction.
	FactoryDefaultRepoFactory interface {
		FactoryDefaultRepository() ports.FactoryDefaultRepository
	}

	// BackorderUoW manages transactions for fulfillment operations.
	// Used when commands only modify backorder line aggregates.
	BackorderUoW interface {
		TxManager
		BackorderRepoFactory
	}

	// BackorderUoWFactory creates new backorder unit of work instances.
	BackorderUoWFactory interface {
		Create() BackorderUoW
	}

	// ReconciliationUoW manages transactions for store reconciliation operations.
	ReconciliationUoW interface {
		TxManager
		ReconciliationRepoFactory
	}

	// ReconciliationUoWFactory creates new reconciliation unit of work instances.
	ReconciliationUoWFactory interface {
		Create() ReconciliationUoW
	}

	// DiscountUoW manages transactions across discount lines and factory defaults.
	// Used for commands that coordinate pricing changes with default settings.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lineRepo := uow.DiscountLineRepository()
	//   defaultRepo := uow.FactoryDefaultRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DiscountUoW interface {
		TxManager
		DiscountLineRepoFactory
		FactoryDefaultRepoFactory
	}

	// DiscountUoWFactory creates new discount unit of work instances.
	DiscountUoWFactory interface {
		Create() DiscountUoW
	}
)
