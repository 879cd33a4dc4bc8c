package queries

import (
	"context"

	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetChangeLogQueryHandler retrieves an order's change log from the database.
// Distinguishes a missing order from an order with an empty log: the former
// is a not-found error, the latter an empty result.
type GetChangeLogQueryHandler struct {
	db *gorm.DB
}

// NewGetChangeLogQueryHandler creates a handler for change log queries.
// Requires a GORM database connection for query execution.
func NewGetChangeLogQueryHandler(db *gorm.DB) GetChangeLogQueryHandler {
	return GetChangeLogQueryHandler{db: db}
}

// Handle executes the query to retrieve one order's change log.
// Entries come back in append order, oldest first. Returns
// errs.ObjectNotFoundError when no order carries the requested ID.
func (h GetChangeLogQueryHandler) Handle(
	ctx context.Context,
	query GetChangeLogQuery,
) ([]ChangeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Row().Scan(&count); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	changes, err := fetchChangesByOrder(ctx, h.db, []uuid.UUID{query.OrderID().Bytes()})
	if err != nil {
		return nil, err
	}

	log := changes[query.OrderID().Bytes()]
	if log == nil {
		log = make([]ChangeQueryResponse, 0)
	}

	return log, nil
}
