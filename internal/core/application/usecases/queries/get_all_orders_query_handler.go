package queries

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders with their items and change
// logs from the database, most recently opened first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results are sorted by creation time descending so new orders surface first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderQueryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at,
			sent_to_kitchen,
			sent_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var createdAt time.Time
		var sentToKitchen bool
		var sentAt *time.Time

		if err = rows.Scan(&id, &createdAt, &sentToKitchen, &sentAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderIDs = append(orderIDs, id)
		orders = append(orders, OrderQueryResponse{
			ID:            orderID,
			CreatedAt:     createdAt,
			SentToKitchen: sentToKitchen,
			SentAt:        sentAt,
			Items:         make([]ItemQueryResponse, 0),
			Changes:       make([]ChangeQueryResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := fetchItemsByOrder(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}
	changes, err := fetchChangesByOrder(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		raw := orders[i].ID.Bytes()
		if orderItems, ok := items[raw]; ok {
			orders[i].Items = orderItems
		}
		if orderChanges, ok := changes[raw]; ok {
			orders[i].Changes = orderChanges
		}
	}

	return orders, nil
}
