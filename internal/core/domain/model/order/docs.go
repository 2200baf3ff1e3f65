// Package order models the order fulfillment lifecycle of the lab portal.
//
// The package includes:
//   - Order: the aggregate root holding parties, schedule, money and the ordered stages
//   - Status: the production state machine (DRAFT through DELIVERED, plus CANCELLED)
//   - Stage and StageStatus: linear production sub-steps (PENDING, IN_PROGRESS, COMPLETED)
//   - Code and Party: value objects for the displayed reference and the order parties
//
// Key business rules:
//   - Status never regresses; CANCELLED is reachable until the order is complete
//   - Approval and every production-side transition belong to the assigned fulfiller or an admin
//   - The actual delivery date exists exactly when the order is FINALIZED or DELIVERED
//   - Stages are appended while the order is open and never renumbered
package order
