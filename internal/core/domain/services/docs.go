// Package services contains domain services: stateless operations that span
// multiple aggregates and therefore belong to no single one.
//
// The settlement service turns a completed order into the ledger entries for
// every party involved. It works purely on domain objects; persisting the
// entries atomically with the order is the application layer's job.
package services
