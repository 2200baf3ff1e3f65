// Package memory provides an in-process implementation of the unit of work and repositories.
// It backs tests and single-node deployments started with STORAGE_DRIVER=memory.
//
// Writes made inside a transaction are buffered in a change set and applied to the Store
// atomically on Commit. Writes made without Begin are applied immediately, matching how the
// postgres adapter falls back to the plain connection.
package memory

import (
	"fmt"
	"sync"
	"sync/atomic"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

// Store is the shared state behind every unit of work created by one factory.
type Store struct {
	mu        sync.RWMutex
	orders    map[int64]orderRecord
	offerings map[offeringKey]offeringRecord
	requests  map[int64]requestRecord

	orderSeq   atomic.Int64
	stageSeq   atomic.Int64
	requestSeq atomic.Int64
}

func NewStore() *Store {
	return &Store{
		orders:    make(map[int64]orderRecord),
		offerings: make(map[offeringKey]offeringRecord),
		requests:  make(map[int64]requestRecord),
	}
}

// changeSet collects the writes of one transaction.
type changeSet struct {
	orders           map[int64]orderRecord
	offerings        map[offeringKey]offeringRecord
	deletedOfferings map[offeringKey]struct{}
	requests         map[int64]requestRecord
}

func newChangeSet() *changeSet {
	return &changeSet{
		orders:           make(map[int64]orderRecord),
		offerings:        make(map[offeringKey]offeringRecord),
		deletedOfferings: make(map[offeringKey]struct{}),
		requests:         make(map[int64]requestRecord),
	}
}

func nextID(seq *atomic.Int64) kernel.ID {
	return kernel.MustNewID(seq.Add(1))
}

// apply writes cs to the store after re-checking the uniqueness rules against committed state.
func (s *Store) apply(cs *changeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, rec := range cs.orders {
		if err := s.checkOrderCode(id, rec); err != nil {
			return err
		}
	}
	for id, rec := range cs.requests {
		if err := s.checkSingleActive(id, rec, cs.requests); err != nil {
			return err
		}
	}

	for id, rec := range cs.orders {
		s.orders[id] = rec
	}
	for key := range cs.deletedOfferings {
		delete(s.offerings, key)
	}
	for key, rec := range cs.offerings {
		s.offerings[key] = rec
	}
	for id, rec := range cs.requests {
		s.requests[id] = rec
	}
	return nil
}

func (s *Store) checkOrderCode(id int64, rec orderRecord) error {
	for otherID, other := range s.orders {
		if otherID != id && other.Params.Code.String() == rec.Params.Code.String() {
			return errs.NewValueIsInvalidErrorWithCause("order code",
				fmt.Errorf("code %s is already used by order %d", rec.Params.Code, otherID))
		}
	}
	return nil
}

// checkSingleActive rejects rec when another request of the same order would stay active.
// pending holds the other writes of the same change set, which take precedence.
func (s *Store) checkSingleActive(id int64, rec requestRecord, pending map[int64]requestRecord) error {
	if !rec.isActive() {
		return nil
	}
	orderID := rec.Params.OrderID
	for otherID, other := range s.requests {
		if otherID == id {
			continue
		}
		if p, ok := pending[otherID]; ok {
			other = p
		}
		if other.isActive() && other.Params.OrderID.IsEqual(orderID) {
			return errs.NewOutsourcingAlreadyActiveError(orderID)
		}
	}
	for otherID, other := range pending {
		if _, committed := s.requests[otherID]; committed || otherID == id {
			continue
		}
		if other.isActive() && other.Params.OrderID.IsEqual(orderID) {
			return errs.NewOutsourcingAlreadyActiveError(orderID)
		}
	}
	return nil
}
