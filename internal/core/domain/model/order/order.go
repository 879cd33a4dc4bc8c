package order

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadySentToKitchen is returned when sending an order to the kitchen
	// a second time. The transition is one-shot.
	ErrOrderAlreadySentToKitchen = errors.New("order has already been sent to kitchen")

	// ErrOrderCreatedAtIsRequired is returned when an order is created with a zero timestamp.
	ErrOrderCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order is the aggregate root of the order tracking model. It owns its items
// and its change log exclusively; all item mutations go through the
// aggregate so that each mutation and its audit record are produced
// together, as one unit.
//
// Order maintains these invariants:
//   - sentAt is set if and only if sentToKitchen is true
//   - an order cannot be sent to the kitchen twice
//   - items keep their insertion order
//   - every edit, void and status change appends exactly one Change record
//   - the change log is append-only; voiding an item never removes its changes
//
// Items are addressed by their UUID, never by position: a positional index
// changes meaning as soon as another item is voided.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// createdAt is when the order was opened
	createdAt time.Time

	// sentToKitchen marks the order as handed over to the kitchen queue
	sentToKitchen bool

	// sentAt is when the order was handed over; nil until then
	sentAt *time.Time

	// lastKitchenViewedAt is when kitchen staff last acknowledged the
	// order's change log; nil until the first acknowledgement
	lastKitchenViewedAt *time.Time

	// items are the dishes on the order, in insertion order
	items []*Item

	// changes is the append-only audit log, in creation order
	changes []*Change

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new empty order: no items, no changes, not sent to the
// kitchen. createdAt must be a non-zero timestamp.
func NewOrder(id kernel.UUID, createdAt time.Time) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
// It enforces the sentAt/sentToKitchen consistency invariant on the restored
// data so that a corrupted row cannot produce a half-sent aggregate.
func RestoreOrder(
	id kernel.UUID,
	createdAt time.Time,
	sentToKitchen bool,
	sentAt *time.Time,
	lastKitchenViewedAt *time.Time,
	items []*Item,
	changes []*Change,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedAt(createdAt),
		order.setSent(sentToKitchen, sentAt),
		order.setItems(items),
		order.setChanges(changes),
	); err != nil {
		return nil, err
	}

	order.lastKitchenViewedAt = lastKitchenViewedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns when the order was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// SentToKitchen reports whether the order has been handed over to the kitchen.
func (o *Order) SentToKitchen() bool {
	return o.sentToKitchen
}

// SentAt returns when the order was handed over, or nil if it wasn't yet.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// LastKitchenViewedAt returns when kitchen staff last acknowledged the
// order's changes, or nil if they never did.
func (o *Order) LastKitchenViewedAt() *time.Time {
	return o.lastKitchenViewedAt
}

// Items returns the order's items in insertion order.
func (o *Order) Items() []*Item {
	return o.items
}

// Changes returns the order's change log in creation order.
func (o *Order) Changes() []*Change {
	return o.changes
}

// AddItem appends a new item in Pending status and returns it.
// Adding an item is not an audit event: only post-creation mutations are
// logged, so no Change record is produced here.
func (o *Order) AddItem(itemID kernel.UUID, name string) (*Item, error) {
	item, err := NewItem(itemID, name)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	return item, nil
}

// EditItem renames an item and appends an ItemEdited change record.
// A rename to the same name is still logged: the audit log records what the
// client did, not whether it made a difference.
func (o *Order) EditItem(itemID kernel.UUID, newName string, at time.Time) error {
	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}

	oldName := item.Name()
	if err = item.setName(newName); err != nil {
		return err
	}

	return o.appendChange(itemID, ItemEdited, oldName, &newName, at)
}

// VoidItem removes an item from the order and appends an ItemVoided change
// record carrying the item's last name. The item's prior changes are kept,
// so its identity and history survive the removal.
func (o *Order) VoidItem(itemID kernel.UUID, at time.Time) error {
	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}

	if err = o.appendChange(itemID, ItemVoided, item.Name(), nil, at); err != nil {
		return err
	}

	remaining := make([]*Item, 0, len(o.items)-1)
	for _, existing := range o.items {
		if !existing.ID().IsEqual(itemID) {
			remaining = append(remaining, existing)
		}
	}
	o.items = remaining

	return nil
}

// UpdateItemStatus moves an item to newStatus and appends an
// ItemStatusChanged change record. Transitions are unrestricted, and a
// transition to the current status is still logged.
func (o *Order) UpdateItemStatus(itemID kernel.UUID, newStatus ItemStatus, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}

	oldStatus := item.Status()
	if err = item.setStatus(newStatus); err != nil {
		return err
	}

	newValue := newStatus.String()
	return o.appendChange(itemID, ItemStatusChanged, oldStatus.String(), &newValue, at)
}

// SendToKitchen hands the order over to the kitchen queue, setting sentAt.
// The transition is one-shot: a second call fails with
// ErrOrderAlreadySentToKitchen and leaves the order untouched.
// Sending is an order-level transition, not an item mutation, so it produces
// no change record.
func (o *Order) SendToKitchen(at time.Time) error {
	if o.sentToKitchen {
		return ErrOrderAlreadySentToKitchen
	}

	sentAt := at
	o.sentToKitchen = true
	o.sentAt = &sentAt
	return nil
}

// MarkKitchenViewed records that kitchen staff have seen the order's current
// change log. Idempotent: repeated calls just advance the timestamp.
func (o *Order) MarkKitchenViewed(at time.Time) {
	viewedAt := at
	o.lastKitchenViewedAt = &viewedAt
}

// HasUnseenUpdates reports whether the order has change records that kitchen
// staff have not acknowledged yet: any change at all if the order was never
// viewed, or any change strictly later than the last view.
func (o *Order) HasUnseenUpdates() bool {
	if len(o.changes) == 0 {
		return false
	}
	if o.lastKitchenViewedAt == nil {
		return true
	}

	for _, change := range o.changes {
		if change.CreatedAt().After(*o.lastKitchenViewedAt) {
			return true
		}
	}
	return false
}

// findItem resolves an item by identity within the order.
func (o *Order) findItem(itemID kernel.UUID) (*Item, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// appendChange creates and appends a change record for an item mutation.
func (o *Order) appendChange(
	itemID kernel.UUID,
	changeType ChangeType,
	fromValue string,
	toValue *string,
	at time.Time,
) error {
	change, err := NewChange(kernel.NewUUID(), itemID, changeType, fromValue, toValue, at)
	if err != nil {
		return err
	}

	o.changes = append(o.changes, change)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrOrderCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setSent(sentToKitchen bool, sentAt *time.Time) error {
	if sentToKitchen && sentAt == nil {
		return errs.NewValueIsRequiredError("sentAt")
	}
	if !sentToKitchen && sentAt != nil {
		return errs.NewValueIsInvalidError("sentAt must be empty for an unsent order")
	}

	o.sentToKitchen = sentToKitchen
	o.sentAt = sentAt
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setChanges(changes []*Change) error {
	for _, change := range changes {
		if err := change.Validate(); err != nil {
			return err
		}
	}
	o.changes = changes
	return nil
}
