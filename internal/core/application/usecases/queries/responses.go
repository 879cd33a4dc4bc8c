// Package queries contains read operations that retrieve system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read directly from the database for efficiency.
package queries

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderQueryResponse represents a full order read model: the order row plus
// its items in insertion order and its change log in creation order.
type OrderQueryResponse struct {
	ID            kernel.UUID
	CreatedAt     time.Time
	SentToKitchen bool
	SentAt        *time.Time
	Items         []ItemQueryResponse
	Changes       []ChangeQueryResponse
}

// ItemQueryResponse represents an item read model. Status carries the wire
// representation ("pending", "cooking", "done").
type ItemQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Status string
}

// ChangeQueryResponse represents a change-log entry read model. ChangeType
// carries the wire representation ("ITEM_EDITED", "ITEM_STATUS_CHANGED",
// "ITEM_VOIDED"); ToValue is nil for voids.
type ChangeQueryResponse struct {
	ID         kernel.UUID
	ItemID     kernel.UUID
	ChangeType string
	FromValue  string
	ToValue    *string
	CreatedAt  time.Time
}

// KitchenOrderQueryResponse represents a kitchen queue entry: a sent order
// with its items and a flag for change records the kitchen has not
// acknowledged yet.
type KitchenOrderQueryResponse struct {
	ID               kernel.UUID
	SentAt           time.Time
	Items            []ItemQueryResponse
	HasUnseenUpdates bool
}

// fetchItemsByOrder loads the item read models for the given orders, keyed by
// order ID, preserving each order's insertion order.
func fetchItemsByOrder(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]ItemQueryResponse, error) {
	items := make(map[uuid.UUID][]ItemQueryResponse)
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			name,
			status
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, sort_order
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var name string
		var status int

		if err = rows.Scan(&id, &orderID, &name, &status); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items[orderID] = append(items[orderID], ItemQueryResponse{
			ID:     itemID,
			Name:   name,
			Status: order.ItemStatus(status).String(),
		})
	}

	return items, rows.Err()
}

// fetchChangesByOrder loads the change-log read models for the given orders,
// keyed by order ID, preserving each order's append order.
func fetchChangesByOrder(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]ChangeQueryResponse, error) {
	changes := make(map[uuid.UUID][]ChangeQueryResponse)
	if len(orderIDs) == 0 {
		return changes, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_id,
			change_type,
			from_value,
			to_value,
			created_at
		FROM order_changes
		WHERE order_id IN ?
		ORDER BY order_id, sort_order
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, itemID uuid.UUID
		var changeType int
		var fromValue string
		var toValue *string
		var createdAt time.Time

		if err = rows.Scan(&id, &orderID, &itemID, &changeType, &fromValue, &toValue, &createdAt); err != nil {
			return nil, err
		}

		changeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		changedItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}

		changes[orderID] = append(changes[orderID], ChangeQueryResponse{
			ID:         changeID,
			ItemID:     changedItemID,
			ChangeType: order.ChangeType(changeType).String(),
			FromValue:  fromValue,
			ToValue:    toValue,
			CreatedAt:  createdAt,
		})
	}

	return changes, rows.Err()
}
