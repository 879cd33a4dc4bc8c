package orderrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including any items and changes
// the aggregate already carries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database: the order row, the current
// item set (voided items are deleted), and the change log. Change rows are
// append-only, so existing ones are left untouched and only new ones are
// inserted. Run inside a unit of work so the whole write is atomic.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Updates(map[string]any{
			"sent_to_kitchen":        dto.SentToKitchen,
			"sent_at":                dto.SentAt,
			"last_kitchen_viewed_at": dto.LastKitchenViewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := r.deleteRemovedItems(db, dto); err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	if len(dto.Changes) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Changes).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and change log, both in their
// persisted sort order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Changes", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// deleteRemovedItems drops item rows that are no longer part of the aggregate.
func (r *GormOrderRepository) deleteRemovedItems(db *gorm.DB, dto OrderDTO) error {
	if len(dto.Items) == 0 {
		return db.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error
	}

	itemIDs := make([]uuid.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemIDs = append(itemIDs, item.ID)
	}

	return db.Where("order_id = ? AND id NOT IN ?", dto.ID, itemIDs).Delete(&ItemDTO{}).Error
}
