package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items and changes.
// Returns errs.ObjectNotFoundError when no order carries the requested ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	var createdAt time.Time
	var sentToKitchen bool
	var sentAt *time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			created_at,
			sent_to_kitchen,
			sent_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&createdAt, &sentToKitchen, &sentAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderQueryResponse{}, err
	}

	orderIDs := []uuid.UUID{query.OrderID().Bytes()}
	items, err := fetchItemsByOrder(ctx, h.db, orderIDs)
	if err != nil {
		return OrderQueryResponse{}, err
	}
	changes, err := fetchChangesByOrder(ctx, h.db, orderIDs)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	response := OrderQueryResponse{
		ID:            query.OrderID(),
		CreatedAt:     createdAt,
		SentToKitchen: sentToKitchen,
		SentAt:        sentAt,
		Items:         make([]ItemQueryResponse, 0),
		Changes:       make([]ChangeQueryResponse, 0),
	}
	if orderItems, ok := items[orderIDs[0]]; ok {
		response.Items = orderItems
	}
	if orderChanges, ok := changes[orderIDs[0]]; ok {
		response.Changes = orderChanges
	}

	return response, nil
}
