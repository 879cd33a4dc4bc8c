package order

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

// ChangeType identifies what kind of item mutation a change record describes.
type ChangeType int

const (
	// ChangeTypeUnknown represents an invalid or undefined change type.
	ChangeTypeUnknown ChangeType = iota

	// ItemEdited records a rename of an item.
	ItemEdited

	// ItemStatusChanged records a preparation-status transition of an item.
	ItemStatusChanged

	// ItemVoided records the removal of an item from the order.
	ItemVoided
)

// getChangeTypeStrings returns a map of ChangeType values to their wire representations.
func getChangeTypeStrings() map[ChangeType]string {
	return map[ChangeType]string{
		ChangeTypeUnknown: "UNKNOWN",
		ItemEdited:        "ITEM_EDITED",
		ItemStatusChanged: "ITEM_STATUS_CHANGED",
		ItemVoided:        "ITEM_VOIDED",
	}
}

// getValidChangeTypeStrings returns a map of only valid ChangeType values.
func getValidChangeTypeStrings() map[ChangeType]string {
	//nolint:exhaustive // ChangeTypeUnknown is intentionally excluded as it's invalid
	return map[ChangeType]string{
		ItemEdited:        "ITEM_EDITED",
		ItemStatusChanged: "ITEM_STATUS_CHANGED",
		ItemVoided:        "ITEM_VOIDED",
	}
}

// ChangeTypeFromString parses the wire representation of a change type.
func ChangeTypeFromString(s string) (ChangeType, error) {
	for changeType, str := range getValidChangeTypeStrings() {
		if str == s {
			return changeType, nil
		}
	}
	return ChangeTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"change type is invalid",
		fmt.Errorf("%q is not a valid change type", s),
	)
}

// Validate checks if the ChangeType value is valid.
func (t ChangeType) Validate() error {
	if _, ok := getValidChangeTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"change type is invalid",
			fmt.Errorf("%d is not a valid change type", t),
		)
	}
	return nil
}

// String returns the wire representation of the change type
// ("ITEM_EDITED", "ITEM_STATUS_CHANGED", "ITEM_VOIDED"). Implements fmt.Stringer.
func (t ChangeType) String() string {
	if str, ok := getChangeTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

var (
	// ErrChangeIsNotConstructed is returned when using an improperly initialized Change.
	ErrChangeIsNotConstructed = errors.New("Change must be created via NewChange constructor")
	// ErrChangeFromValueIsRequired is returned when a change is created without a from value.
	ErrChangeFromValueIsRequired = errs.NewValueIsRequiredError("fromValue")
	// ErrChangeToValueIsRequired is returned when a non-void change is created without a to value.
	ErrChangeToValueIsRequired = errs.NewValueIsRequiredError("toValue")
	// ErrChangeCreatedAtIsRequired is returned when a change is created with a zero timestamp.
	ErrChangeCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Change is an immutable audit record of a single item mutation. Once
// appended to an order's change log it is never modified or deleted; in
// particular, voiding an item does not remove the changes that reference it,
// so a voided item's identity and prior name stay resolvable through the log.
type Change struct {
	// id uniquely identifies the change record
	id kernel.UUID
	// itemID references the mutated item; the item may no longer exist
	itemID kernel.UUID
	// changeType says whether the item was edited, status-changed or voided
	changeType ChangeType
	// fromValue is the value before the mutation (old name or old status)
	fromValue string
	// toValue is the value after the mutation; nil for voids
	toValue *string
	// createdAt is when the mutation happened
	createdAt time.Time
	// guard ensures the change was properly constructed
	guard guard.ConstructorGuard
}

// NewChange creates an immutable change record.
// toValue must be nil exactly when changeType is ItemVoided: a void has no
// "after" state, every other change does.
func NewChange(
	id kernel.UUID,
	itemID kernel.UUID,
	changeType ChangeType,
	fromValue string,
	toValue *string,
	createdAt time.Time,
) (*Change, error) {
	change := &Change{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		change.setID(id),
		change.setItemID(itemID),
		change.setChangeType(changeType),
		change.setFromValue(fromValue),
		change.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := change.setToValue(toValue); err != nil {
		return nil, err
	}

	return change, nil
}

// RestoreChange reconstructs a change record from persistence.
func RestoreChange(
	id kernel.UUID,
	itemID kernel.UUID,
	changeType ChangeType,
	fromValue string,
	toValue *string,
	createdAt time.Time,
) (*Change, error) {
	return NewChange(id, itemID, changeType, fromValue, toValue, createdAt)
}

// Validate ensures the Change instance was properly constructed.
func (c *Change) Validate() error {
	if c == nil {
		return ErrChangeIsNotConstructed
	}
	return c.guard.Validate(ErrChangeIsNotConstructed)
}

// ID returns the change record's unique identifier.
func (c *Change) ID() kernel.UUID {
	return c.id
}

// ItemID returns the identifier of the mutated item. The item itself may
// have been voided since; the identity stays valid for audit purposes.
func (c *Change) ItemID() kernel.UUID {
	return c.itemID
}

// Type returns what kind of mutation this record describes.
func (c *Change) Type() ChangeType {
	return c.changeType
}

// FromValue returns the value before the mutation.
func (c *Change) FromValue() string {
	return c.fromValue
}

// ToValue returns the value after the mutation, or nil for voids.
func (c *Change) ToValue() *string {
	return c.toValue
}

// CreatedAt returns when the mutation happened.
func (c *Change) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Change) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Change) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *Change) setChangeType(changeType ChangeType) error {
	if err := changeType.Validate(); err != nil {
		return err
	}
	c.changeType = changeType
	return nil
}

func (c *Change) setFromValue(fromValue string) error {
	if fromValue == "" {
		return ErrChangeFromValueIsRequired
	}
	c.fromValue = fromValue
	return nil
}

func (c *Change) setToValue(toValue *string) error {
	if c.changeType == ItemVoided {
		if toValue != nil {
			return errs.NewValueIsInvalidError("toValue must be empty for a void")
		}
		return nil
	}

	if toValue == nil || *toValue == "" {
		return ErrChangeToValueIsRequired
	}

	value := *toValue
	c.toValue = &value
	return nil
}

func (c *Change) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrChangeCreatedAtIsRequired
	}
	c.createdAt = createdAt
	return nil
}
