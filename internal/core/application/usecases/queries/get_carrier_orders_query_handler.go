package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCarrierOrdersQueryHandler reads one carrier's assigned orders.
type GetCarrierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierOrdersQueryHandler creates a handler for carrier workload queries.
func NewGetCarrierOrdersQueryHandler(db *gorm.DB) GetCarrierOrdersQueryHandler {
	return GetCarrierOrdersQueryHandler{db: db}
}

// Handle returns the carrier's assigned orders, newest first.
func (h GetCarrierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE carrier_id = ?
		ORDER BY created_at DESC
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
