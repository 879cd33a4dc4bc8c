// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The aggregate spans three tables: the order row, its items, and its
// append-only change log.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt           time.Time `gorm:"not null;index"`
	SentToKitchen       bool      `gorm:"not null;index"`
	SentAt              *time.Time
	LastKitchenViewedAt *time.Time
	Items               []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Changes             []ChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order items.
// SortOrder preserves the item's position within the order, since insertion
// order is part of the aggregate's state.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    int       `gorm:"type:int;not null"`
	SortOrder int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// ChangeDTO represents the database structure for persisting change records.
// Rows are only ever inserted. ItemID intentionally carries no foreign key:
// a change record must survive the deletion of the item it describes.
type ChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ChangeType int       `gorm:"type:int;not null"`
	FromValue  string    `gorm:"type:varchar(255);not null"`
	ToValue    *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"not null"`
	SortOrder  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for change record entities.
func (ChangeDTO) TableName() string {
	return "order_changes"
}

// fromDomain converts an order domain aggregate to its database representation.
// Slice positions become SortOrder values so insertion and append order
// survive the round trip.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Name:      item.Name(),
			Status:    int(item.Status()),
			SortOrder: i,
		})
	}

	changes := make([]ChangeDTO, 0, len(aggregate.Changes()))
	for i, change := range aggregate.Changes() {
		changes = append(changes, ChangeDTO{
			ID:         change.ID().Bytes(),
			OrderID:    orderID,
			ItemID:     change.ItemID().Bytes(),
			ChangeType: int(change.Type()),
			FromValue:  change.FromValue(),
			ToValue:    change.ToValue(),
			CreatedAt:  change.CreatedAt(),
			SortOrder:  i,
		})
	}

	return OrderDTO{
		ID:                  orderID,
		CreatedAt:           aggregate.CreatedAt(),
		SentToKitchen:       aggregate.SentToKitchen(),
		SentAt:              aggregate.SentAt(),
		LastKitchenViewedAt: aggregate.LastKitchenViewedAt(),
		Items:               items,
		Changes:             changes,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and change log using RestoreOrder.
// Expects dto.Items and dto.Changes to be preloaded in SortOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	changes := make([]*order.Change, 0, len(dto.Changes))
	for _, changeDto := range dto.Changes {
		change, changeErr := changeToDomain(changeDto)
		if changeErr != nil {
			return nil, changeErr
		}
		changes = append(changes, change)
	}

	return order.RestoreOrder(
		id,
		dto.CreatedAt,
		dto.SentToKitchen,
		dto.SentAt,
		dto.LastKitchenViewedAt,
		items,
		changes,
	)
}

// itemToDomain converts an item DTO to its domain entity.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dto.Name, order.ItemStatus(dto.Status))
}

// changeToDomain converts a change record DTO to its domain entity.
func changeToDomain(dto ChangeDTO) (*order.Change, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreChange(
		id,
		itemID,
		order.ChangeType(dto.ChangeType),
		dto.FromValue,
		dto.ToValue,
		dto.CreatedAt,
	)
}
