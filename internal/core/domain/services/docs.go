// Package services provides domain services whose rules span more than one aggregate of the
// ordering engine.
//
// The package includes:
//   - PricingResolver: resolves catalog terms for an execution mode and quotes new orders
//   - DelegateFinder: lists the fulfillers an order's work may be delegated to
//   - OutsourcingCoordinator: checks every cross-aggregate rule before opening an outsourcing request
//   - StageTemplates: default production stages per service type
//
// Services are stateless; callers load the aggregates and persist the results.
package services
