// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries load aggregates through the repositories outside of a transaction and return read
// models shaped for callers.
package queries

import (
	"dentallab/internal/core/ports"
)

type (
	// ReadUoW exposes repositories without opening a transaction. Reads take no locks.
	ReadUoW interface {
		OrderRepository() ports.OrderRepository
		OfferingRepository() ports.OfferingRepository
		OutsourcingRepository() ports.OutsourcingRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)
