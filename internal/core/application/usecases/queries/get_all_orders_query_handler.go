package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the administrative order list.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for administrative order queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns every order, optionally narrowed to the query's status,
// newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderSelectColumns + `
		FROM orders`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += `
		WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sql += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
