// Package catalog models a fulfiller's service catalog.
//
// Each Offering is keyed by (fulfiller, service type) and declares an ExecutionPolicy together
// with self-executed and delegated Terms. The policy decides which Terms may be resolved:
//
//	SELF_ONLY      self terms only
//	DELEGATE_ONLY  delegate terms only
//	EITHER         both
//	NOT_OFFERED    none
//
// Offerings are edited independently of orders and outsourcing requests; orders keep a snapshot
// of the terms they were created with.
package catalog
