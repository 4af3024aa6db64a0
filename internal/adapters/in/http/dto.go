package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for posting a new order.
type CreateOrderRequest struct {
	RouteID            string  `json:"route_id"`
	ProductDescription string  `json:"product_description"`
	WeightKg           float64 `json:"weight_kg"`
	Notes              string  `json:"notes"`
}

// TransitionOrderRequest is the payload for a status transition.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// RegisterCarrierRequest is the payload for carrier registration.
type RegisterCarrierRequest struct {
	VehicleType   string `json:"vehicle_type"`
	VehiclePlate  string `json:"vehicle_plate"`
	DriverLicense string `json:"driver_license,omitempty"`
}

// CreateRouteRequest is the payload for adding a route to the catalog.
type CreateRouteRequest struct {
	OriginID           string  `json:"origin_id"`
	DestinationID      string  `json:"destination_id"`
	DistanceKm         float64 `json:"distance_km"`
	EstimatedTimeHours float64 `json:"estimated_time_hours"`
	BasePrice          float64 `json:"base_price"`
	PricePerKg         float64 `json:"price_per_kg"`
}

// CreateLocationRequest is the payload for adding a location to the directory.
type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code,omitempty"`
}

// OrderResponse is the order wire representation.
type OrderResponse struct {
	ID                 string     `json:"id"`
	ClientID           string     `json:"client_id"`
	RouteID            string     `json:"route_id"`
	PickupLocationID   string     `json:"pickup_location_id"`
	DeliveryLocationID string     `json:"delivery_location_id"`
	ProductDescription string     `json:"product_description"`
	WeightKg           float64    `json:"weight_kg"`
	TotalPrice         float64    `json:"total_price"`
	Notes              string     `json:"notes,omitempty"`
	Status             string     `json:"status"`
	CarrierID          *string    `json:"carrier_id,omitempty"`
	PickupDate         *time.Time `json:"pickup_date,omitempty"`
	DeliveryDate       *time.Time `json:"delivery_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ClaimResponse reports the outcome of a claim attempt.
type ClaimResponse struct {
	Result string `json:"result"`
}

// CarrierResponse is the carrier wire representation.
type CarrierResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	VehicleType   string  `json:"vehicle_type"`
	VehiclePlate  string  `json:"vehicle_plate"`
	DriverLicense string  `json:"driver_license,omitempty"`
	Rating        float64 `json:"rating"`
	Active        bool    `json:"active"`
}

// RouteResponse is the route wire representation.
type RouteResponse struct {
	ID                 string  `json:"id"`
	OriginID           string  `json:"origin_id"`
	DestinationID      string  `json:"destination_id"`
	DistanceKm         float64 `json:"distance_km"`
	EstimatedTimeHours float64 `json:"estimated_time_hours"`
	BasePrice          float64 `json:"base_price"`
	PricePerKg         float64 `json:"price_per_kg"`
	Active             bool    `json:"active"`
}

// LocationResponse is the location wire representation.
type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code,omitempty"`
	Active  bool   `json:"active"`
}

func orderResponseFromReadModel(m queries.OrderResponse) OrderResponse {
	resp := OrderResponse{
		ID:                 m.ID.String(),
		ClientID:           m.ClientID.String(),
		RouteID:            m.RouteID.String(),
		PickupLocationID:   m.PickupLocationID.String(),
		DeliveryLocationID: m.DeliveryLocationID.String(),
		ProductDescription: m.ProductDescription,
		WeightKg:           m.WeightKg,
		TotalPrice:         m.TotalPrice,
		Notes:              m.Notes,
		Status:             m.Status.String(),
		PickupDate:         m.PickupDate,
		DeliveryDate:       m.DeliveryDate,
		CreatedAt:          m.CreatedAt,
	}
	if m.CarrierID != nil {
		carrierID := m.CarrierID.String()
		resp.CarrierID = &carrierID
	}
	return resp
}

func orderResponsesFromReadModels(models []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, len(models))
	for i, m := range models {
		responses[i] = orderResponseFromReadModel(m)
	}
	return responses
}
