// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created pending with a price frozen from the route quote, is
// claimed by exactly one carrier (pending -> accepted), then moves through
// in_transit to delivered, or is cancelled by its client while still pending.
// The package also defines the Expectation/Change pair that repositories
// translate into a single atomic compare-and-set write.
package order
