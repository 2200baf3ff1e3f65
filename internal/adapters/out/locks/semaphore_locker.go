package locks

import (
	"context"
	"errors"
	"sync"
	"time"

	"dentallab/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

type semaphoreEntry struct {
	sem  *semaphore.Weighted
	refs int
}

// SemaphoreLocker holds one weighted semaphore of size 1 per key. Entries are dropped once no
// caller holds or waits for them.
type SemaphoreLocker struct {
	mu      sync.Mutex
	entries map[string]*semaphoreEntry
	wait    time.Duration
}

func NewSemaphoreLocker(wait time.Duration) *SemaphoreLocker {
	return &SemaphoreLocker{
		entries: make(map[string]*semaphoreEntry),
		wait:    wait,
	}
}

func (l *SemaphoreLocker) Lock(ctx context.Context, key string) (func(), error) {
	entry := l.acquireEntry(key)

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	if err := entry.sem.Acquire(waitCtx, 1); err != nil {
		l.releaseEntry(key)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewContentionError(key, err)
		}
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.sem.Release(1)
			l.releaseEntry(key)
		})
	}, nil
}

func (l *SemaphoreLocker) acquireEntry(key string) *semaphoreEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &semaphoreEntry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (l *SemaphoreLocker) releaseEntry(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}
