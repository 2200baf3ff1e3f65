// Package kernel provides the shared value objects of the lab ordering domain.
//
// The package includes:
//   - ID: a positive numeric identifier for orders, stages and outsourcing requests
//   - Actor and Role: the explicit identity passed into every state-changing operation
//   - Money and Percentage: decimal amounts with two-place rounding
//   - ServiceType: the closed set of prosthetic services a fulfiller may offer
//   - DomainEvent and EventRecorder: facts recorded by aggregates and published after commit
//
// All value objects are immutable, guarded by constructors and safe for concurrent use.
package kernel
