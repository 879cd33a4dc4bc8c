package queries

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler retrieves the kitchen queue from the database.
// The unseen-updates flag is derived from the latest change timestamp per
// order compared against the kitchen's last acknowledgement.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection for query execution.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all sent orders.
// Results are sorted by handoff time ascending, FIFO for kitchen staff.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]KitchenOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	kitchenOrders := make([]KitchenOrderQueryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.sent_at,
			o.last_kitchen_viewed_at,
			(SELECT MAX(c.created_at) FROM order_changes c WHERE c.order_id = o.id) AS last_change_at
		FROM orders o
		WHERE o.sent_to_kitchen
		ORDER BY o.sent_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var sentAt time.Time
		var lastViewedAt, lastChangeAt *time.Time

		if err = rows.Scan(&id, &sentAt, &lastViewedAt, &lastChangeAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		hasUnseen := lastChangeAt != nil &&
			(lastViewedAt == nil || lastChangeAt.After(*lastViewedAt))

		orderIDs = append(orderIDs, id)
		kitchenOrders = append(kitchenOrders, KitchenOrderQueryResponse{
			ID:               orderID,
			SentAt:           sentAt,
			Items:            make([]ItemQueryResponse, 0),
			HasUnseenUpdates: hasUnseen,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := fetchItemsByOrder(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range kitchenOrders {
		if orderItems, ok := items[kitchenOrders[i].ID.Bytes()]; ok {
			kitchenOrders[i].Items = orderItems
		}
	}

	return kitchenOrders, nil
}
