package services

import (
	"fmt"
	"math"

	"freight/internal/core/domain/model/route"
	"freight/internal/pkg/errs"
)

// PriceCalculator is a domain service that derives the quoted price for a new
// order from a route and a cargo weight.
//
// Business rules:
//   - quote = base price + price per kg * weight, rounded to currency precision
//   - the weight must be positive and the route must be active at submission
//   - the quote is deterministic: repeated calls with the same inputs produce
//     the same price
//
// The produced price is frozen into the order at creation and never
// recalculated, even if the route's prices later change.
//
// Example usage:
//
//	calculator := NewPriceCalculator()
//	total, err := calculator.Quote(route, 10)
//	if err != nil {
//	    // weight or route rejected
//	    return
//	}
//	// total == route.BasePrice() + route.PricePerKg()*10, rounded to cents
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Quote computes the total price for carrying weightKg over the given route.
// Returns a validation error when the weight is not positive or the route is
// missing or inactive. Pure function, no side effects.
func (PriceCalculator) Quote(r *route.Route, weightKg float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if !r.IsActive() {
		return 0, errs.NewValueIsInvalidErrorWithCause("route is invalid",
			fmt.Errorf("route %s is not active", r.ID()))
	}
	if weightKg <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}

	total := r.BasePrice() + r.PricePerKg()*weightKg
	return roundToCents(total), nil
}

// roundToCents rounds to the store's currency precision of two decimal places.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
