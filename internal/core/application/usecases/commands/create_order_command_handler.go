package commands

import (
	"context"

	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Looks up the route, quotes the price through the pricing calculator, copies
// the route's endpoints into the order, and persists it in pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPriceCalculator())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.TotalPrice() is frozen; later route price edits won't touch it
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PriceCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, calculator services.PriceCalculator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the order creation command. The route must exist and be
// active at submission time; the quoted price and the route's endpoints are
// frozen into the order. Uses a transaction so the order is either fully
// persisted or not at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quotedRoute, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	totalPrice, err := h.calculator.Quote(quotedRoute, cmd.WeightKg())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.RouteID(),
		quotedRoute.OriginID(),
		quotedRoute.DestinationID(),
		cmd.ProductDescription(),
		cmd.WeightKg(),
		totalPrice,
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
