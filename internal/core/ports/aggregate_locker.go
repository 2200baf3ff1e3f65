package ports

import (
	"context"
	"fmt"

	"dentallab/internal/core/domain/model/kernel"
)

// AggregateLocker serializes state changes per aggregate. Locks on different keys never
// block one another.
type AggregateLocker interface {
	// Lock blocks until key is held or the wait bound expires, in which case it returns a
	// ContentionError. The returned func releases the lock and is safe to call once.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

func OrderLockKey(id kernel.ID) string {
	return fmt.Sprintf("order:%s", id)
}

func OutsourcingLockKey(id kernel.ID) string {
	return fmt.Sprintf("outsourcing:%s", id)
}
