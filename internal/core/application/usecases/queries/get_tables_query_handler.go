package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetTablesQueryHandler retrieves the floor plan from the database.
type GetTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetTablesQueryHandler creates a handler for table queries.
func NewGetTablesQueryHandler(db *gorm.DB) GetTablesQueryHandler {
	return GetTablesQueryHandler{db: db}
}

// Handle executes the query in table-number order.
func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) ([]GetTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			number,
			capacity,
			name,
			is_reserved,
			reserved_by_name,
			reserved_by_phone,
			reserved_party_size
		FROM tables`
	args := make([]any, 0, 1)
	if query.AvailableOnly() {
		stmt += `
		WHERE is_reserved = false AND capacity >= ?`
		args = append(args, query.MinCapacity())
	}
	stmt += `
		ORDER BY number`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]GetTablesQueryResponse, 0)
	for rows.Next() {
		var resp GetTablesQueryResponse
		var customerName, phoneNumber sql.NullString
		var partySize sql.NullInt64

		err = rows.Scan(
			&resp.Number,
			&resp.Capacity,
			&resp.Name,
			&resp.IsReserved,
			&customerName,
			&phoneNumber,
			&partySize,
		)
		if err != nil {
			return nil, err
		}

		resp.CustomerName = customerName.String
		resp.PhoneNumber = phoneNumber.String
		resp.PartySize = int(partySize.Int64)
		tables = append(tables, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
