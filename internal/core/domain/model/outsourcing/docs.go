// Package outsourcing models the delegation of an order's work from its assigned fulfiller to
// another fulfiller in exchange for a share of the order's charged value.
//
// A Request runs its own state machine and never changes the parent order:
//
//	REQUESTED ─> ACCEPTED ─> IN_PROGRESS ─> COMPLETED
//	    │            │
//	    ├─> REFUSED  └─> CANCELLED
//	    └─> CANCELLED
//
// An order holds at most one active (REQUESTED, ACCEPTED or IN_PROGRESS) request at a time.
// The settlement owed to the executing fulfiller is never stored; it is computed from the order's
// charged value at the moment it is read.
package outsourcing
