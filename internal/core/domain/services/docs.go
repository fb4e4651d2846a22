// Package services contains stateless domain services for the fulfillment
// engine: the WarehouseSelector, which turns a client locality into an
// ordered, deduplicated list of candidate warehouses, and the
// AvailabilityProber, which finds the first candidate able to satisfy every
// required (product, quantity) pair simultaneously.
//
// Together they implement silent recovery: a Problem order's missing items are
// probed across the candidate list and, when a warehouse passes, the order is
// transitioned back to Collecting by the application layer.
package services
