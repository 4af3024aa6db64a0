// Package queries contains read-only operations over the marketplace data.
// Query handlers bypass the domain model and read database rows directly,
// implementing the read side of the CQRS architecture.
package queries

import (
	"database/sql"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the order read model shared by every order query.
type OrderResponse struct {
	ID                 kernel.UUID
	ClientID           kernel.UUID
	RouteID            kernel.UUID
	PickupLocationID   kernel.UUID
	DeliveryLocationID kernel.UUID
	ProductDescription string
	WeightKg           float64
	TotalPrice         float64
	Notes              string
	Status             order.Status
	CarrierID          *kernel.UUID
	PickupDate         *time.Time
	DeliveryDate       *time.Time
	CreatedAt          time.Time
}

// orderSelectColumns is the column list every order query selects, in the
// order scanOrderRows expects.
const orderSelectColumns = `
	id,
	client_id,
	route_id,
	pickup_location_id,
	delivery_location_id,
	product_description,
	weight_kg,
	total_price,
	notes,
	status,
	carrier_id,
	pickup_date,
	delivery_date,
	created_at`

// scanOrderRows drains rows produced by a SELECT over orderSelectColumns
// into read models, converting database types to domain types.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, clientID, routeID, pickupLocationID, deliveryLocationID uuid.UUID
		var carrierID uuid.NullUUID
		var status string
		var pickupDate, deliveryDate sql.NullTime

		err := rows.Scan(
			&id,
			&clientID,
			&routeID,
			&pickupLocationID,
			&deliveryLocationID,
			&resp.ProductDescription,
			&resp.WeightKg,
			&resp.TotalPrice,
			&resp.Notes,
			&status,
			&carrierID,
			&pickupDate,
			&deliveryDate,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if resp.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
			return nil, err
		}
		if resp.PickupLocationID, err = kernel.UUIDFromBytes(pickupLocationID[:]); err != nil {
			return nil, err
		}
		if resp.DeliveryLocationID, err = kernel.UUIDFromBytes(deliveryLocationID[:]); err != nil {
			return nil, err
		}

		if resp.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}

		if carrierID.Valid {
			assignee, idErr := kernel.UUIDFromBytes(carrierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CarrierID = &assignee
		}
		if pickupDate.Valid {
			at := pickupDate.Time
			resp.PickupDate = &at
		}
		if deliveryDate.Valid {
			at := deliveryDate.Time
			resp.DeliveryDate = &at
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
