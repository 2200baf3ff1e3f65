// Package locks provides ports.AggregateLocker implementations.
//
// SemaphoreLocker serialises callers within one process. RedisLocker serialises callers across
// processes sharing a Redis instance. Both bound the wait for a held lock and report an exceeded
// bound as a retryable ContentionError.
package locks
