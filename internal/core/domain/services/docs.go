// Package services provides domain services that implement business logic
// spanning multiple domain entities in the freight marketplace.
//
// The package includes:
//   - PriceCalculator: derives the immutable price quote for a new order
//     from a route and a cargo weight
package services
