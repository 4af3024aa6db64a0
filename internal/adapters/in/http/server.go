// Package http exposes the marketplace over a REST API. Handlers translate
// wire payloads into commands and queries, and domain failures into HTTP
// status codes; no business rule lives here.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers. The marketplace trusts an upstream gateway to have
// authenticated the user; these headers carry the result.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	ClaimOrder      commands.ClaimOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler
	RegisterCarrier commands.RegisterCarrierCommandHandler
	CreateRoute     commands.CreateRouteCommandHandler
	DeactivateRoute commands.DeactivateRouteCommandHandler
	CreateLocation  commands.CreateLocationCommandHandler

	AvailableOrders queries.GetAvailableOrdersQueryHandler
	ClientOrders    queries.GetClientOrdersQueryHandler
	CarrierOrders   queries.GetCarrierOrdersQueryHandler
	AllOrders       queries.GetAllOrdersQueryHandler
	ActiveRoutes    queries.ListActiveRoutesQueryHandler
	Locations       queries.ListLocationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetAllOrders)
	v1.GET("/orders/available", s.GetAvailableOrders)
	v1.GET("/orders/my", s.GetMyOrders)
	v1.POST("/orders/:id/claim", s.ClaimOrder)
	v1.POST("/orders/:id/transition", s.TransitionOrder)

	v1.POST("/carriers", s.RegisterCarrier)

	v1.GET("/routes", s.GetActiveRoutes)
	v1.POST("/routes", s.CreateRoute)
	v1.POST("/routes/:id/deactivate", s.DeactivateRoute)

	v1.GET("/locations", s.GetLocations)
	v1.POST("/locations", s.CreateLocation)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorFromRequest builds the acting identity from the trusted headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("user id header is invalid", err)
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// errorResponse maps a failure to its HTTP status. Domain conflicts (lost
// races, dead lifecycle edges, double registrations) all surface as 409 so
// clients treat them uniformly: refresh, then decide.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrConflict),
		errors.Is(err, commands.ErrCarrierAlreadyRegistered):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	message := "internal error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{Code: http.StatusForbidden, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

// CreateOrder handles POST /api/v1/orders. Only clients post orders; the
// quoted price is computed server side and frozen into the response.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleClient) {
		return forbidden(ctx, "only clients can post orders")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	routeID, err := kernel.UUIDFromString(req.RouteID)
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actor.ID(), routeID, req.ProductDescription, req.WeightKg, req.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetAvailableOrders handles GET /api/v1/orders/available. The board is the
// carriers' view; clients and admins have their own order lists.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleCarrier) {
		return forbidden(ctx, "only carriers can browse the order board")
	}

	board, err := s.handlers.AvailableOrders.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(board))
}

// GetMyOrders handles GET /api/v1/orders/my. Clients see the orders they
// posted; carriers see the orders they hold.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var history []queries.OrderResponse
	switch {
	case actor.Is(kernel.RoleClient):
		query, queryErr := queries.NewGetClientOrdersQuery(actor.ID())
		if queryErr != nil {
			return errorResponse(ctx, queryErr)
		}
		history, err = s.handlers.ClientOrders.Handle(ctx.Request().Context(), query)
	case actor.Is(kernel.RoleCarrier):
		query, queryErr := queries.NewGetCarrierOrdersQuery(actor.ID())
		if queryErr != nil {
			return errorResponse(ctx, queryErr)
		}
		history, err = s.handlers.CarrierOrders.Handle(ctx.Request().Context(), query)
	default:
		return forbidden(ctx, "no personal order view for this role")
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(history))
}

// GetAllOrders handles GET /api/v1/orders. Administrative view, optionally
// narrowed with ?status=.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleAdmin) {
		return forbidden(ctx, "only admins can list all orders")
	}

	query := queries.NewGetAllOrdersQuery()
	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return badRequest(ctx, "invalid status filter")
		}
		if query, err = queries.NewGetAllOrdersQueryWithStatus(status); err != nil {
			return errorResponse(ctx, err)
		}
	}

	orders, err := s.handlers.AllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim. Losing the race is a 409
// with a result payload, not a server fault.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleCarrier) {
		return forbidden(ctx, "only carriers can claim orders")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor.ID())
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.handlers.ClaimOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	switch result {
	case commands.ClaimResultClaimed:
		return ctx.JSON(http.StatusOK, ClaimResponse{Result: result.String()})
	case commands.ClaimResultAlreadyClaimed:
		return ctx.JSON(http.StatusConflict, ClaimResponse{Result: result.String()})
	case commands.ClaimResultNotFound:
		return ctx.JSON(http.StatusNotFound, ClaimResponse{Result: result.String()})
	case commands.ClaimResultUnknown:
	}
	return ctx.JSON(http.StatusInternalServerError,
		ErrorResponse{Code: http.StatusInternalServerError, Message: "internal error"})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid target status")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actor, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// RegisterCarrier handles POST /api/v1/carriers. A user with the carrier
// role registers their own vehicle.
func (s *Server) RegisterCarrier(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleCarrier) {
		return forbidden(ctx, "only carriers can register vehicles")
	}

	var req RegisterCarrierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterCarrierCommand(
		kernel.NewUUID(), actor.ID(), req.VehicleType, req.VehiclePlate, req.DriverLicense)
	if err != nil {
		return errorResponse(ctx, err)
	}

	registered, err := s.handlers.RegisterCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CarrierResponse{
		ID:            registered.ID().String(),
		UserID:        registered.UserID().String(),
		VehicleType:   registered.VehicleType(),
		VehiclePlate:  registered.VehiclePlate(),
		DriverLicense: registered.DriverLicense(),
		Rating:        registered.Rating(),
		Active:        registered.IsActive(),
	})
}

// GetActiveRoutes handles GET /api/v1/routes.
func (s *Server) GetActiveRoutes(ctx echo.Context) error {
	catalog, err := s.handlers.ActiveRoutes.Handle(
		ctx.Request().Context(), queries.NewListActiveRoutesQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]RouteResponse, len(catalog))
	for i, r := range catalog {
		response[i] = RouteResponse{
			ID:                 r.ID.String(),
			OriginID:           r.OriginID.String(),
			DestinationID:      r.DestinationID.String(),
			DistanceKm:         r.DistanceKm,
			EstimatedTimeHours: r.EstimatedTimeHours,
			BasePrice:          r.BasePrice,
			PricePerKg:         r.PricePerKg,
			Active:             r.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleAdmin) {
		return forbidden(ctx, "only admins can manage the route catalog")
	}

	var req CreateRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	originID, err := kernel.UUIDFromString(req.OriginID)
	if err != nil {
		return badRequest(ctx, "invalid origin id")
	}
	destinationID, err := kernel.UUIDFromString(req.DestinationID)
	if err != nil {
		return badRequest(ctx, "invalid destination id")
	}

	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), originID, destinationID,
		req.DistanceKm, req.EstimatedTimeHours, req.BasePrice, req.PricePerKg)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RouteResponse{
		ID:                 created.ID().String(),
		OriginID:           created.OriginID().String(),
		DestinationID:      created.DestinationID().String(),
		DistanceKm:         created.DistanceKm(),
		EstimatedTimeHours: created.EstimatedTimeHours(),
		BasePrice:          created.BasePrice(),
		PricePerKg:         created.PricePerKg(),
		Active:             created.IsActive(),
	})
}

// DeactivateRoute handles POST /api/v1/routes/:id/deactivate.
func (s *Server) DeactivateRoute(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleAdmin) {
		return forbidden(ctx, "only admins can manage the route catalog")
	}

	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewDeactivateRouteCommand(routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.DeactivateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLocations handles GET /api/v1/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	directory, err := s.handlers.Locations.Handle(
		ctx.Request().Context(), queries.NewListLocationsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]LocationResponse, len(directory))
	for i, l := range directory {
		response[i] = LocationResponse{
			ID:      l.ID.String(),
			Name:    l.Name,
			Address: l.Address,
			City:    l.City,
			State:   l.State,
			ZipCode: l.ZipCode,
			Active:  l.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !actor.Is(kernel.RoleAdmin) {
		return forbidden(ctx, "only admins can manage the location directory")
	}

	var req CreateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateLocationCommand(
		kernel.NewUUID(), req.Name, req.Address, req.City, req.State, req.ZipCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, LocationResponse{
		ID:      created.ID().String(),
		Name:    created.Name(),
		Address: created.Address(),
		City:    created.City(),
		State:   created.State(),
		ZipCode: created.ZipCode(),
		Active:  created.IsActive(),
	})
}

// orderResponseFromAggregate maps a domain order to the wire representation.
func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:                 aggregate.ID().String(),
		ClientID:           aggregate.ClientID().String(),
		RouteID:            aggregate.RouteID().String(),
		PickupLocationID:   aggregate.PickupLocationID().String(),
		DeliveryLocationID: aggregate.DeliveryLocationID().String(),
		ProductDescription: aggregate.ProductDescription(),
		WeightKg:           aggregate.WeightKg(),
		TotalPrice:         aggregate.TotalPrice(),
		Notes:              aggregate.Notes(),
		Status:             aggregate.Status().String(),
		PickupDate:         aggregate.PickupDate(),
		DeliveryDate:       aggregate.DeliveryDate(),
		CreatedAt:          aggregate.CreatedAt(),
	}
	if id := aggregate.Carrier(); id != nil {
		carrierID := id.String()
		resp.CarrierID = &carrierID
	}
	return resp
}
