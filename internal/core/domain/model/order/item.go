package order

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrItemNameIsRequired is returned when an item is created or renamed with an empty name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a single ordered dish on an order. It is owned exclusively by its
// Order aggregate and is only mutated through the aggregate's methods, which
// pair every mutation with a change-log record.
type Item struct {
	// id uniquely identifies the item within the system
	id kernel.UUID
	// name is the free-text dish name, never empty
	name string
	// status is the current preparation state
	status ItemStatus
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new item in Pending status.
// The id must be a valid UUID and the name must not be empty.
func NewItem(id kernel.UUID, name string) (*Item, error) {
	item := &Item{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence with its stored status.
func RestoreItem(id kernel.UUID, name string, status ItemStatus) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the dish name.
func (i *Item) Name() string {
	return i.name
}

// Status returns the current preparation status.
func (i *Item) Status() ItemStatus {
	return i.status
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setStatus(status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
