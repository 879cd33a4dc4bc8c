package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// ItemStatus represents the preparation state of an item on an order.
//
// Items start as Pending and are normally moved to Cooking and then Done by
// kitchen staff, but no transition ordering is enforced: any valid status may
// be set at any time, including backward moves (e.g. Done back to Cooking
// when a dish is sent back). Every status change is recorded in the order's
// change log regardless of direction.
type ItemStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ItemStatus values.
	StatusUnknown ItemStatus = iota

	// StatusPending is the initial status of every newly added item.
	StatusPending

	// StatusCooking indicates the kitchen is preparing the item.
	StatusCooking

	// StatusDone indicates the item is ready to serve.
	StatusDone
)

// getItemStatusStrings returns a map of ItemStatus values to their wire representations.
// All statuses are included for string conversion.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		StatusUnknown: "unknown",
		StatusPending: "pending",
		StatusCooking: "cooking",
		StatusDone:    "done",
	}
}

// getValidItemStatusStrings returns a map of only valid ItemStatus values.
// Only valid statuses are included to support validation and parsing.
func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		StatusPending: "pending",
		StatusCooking: "cooking",
		StatusDone:    "done",
	}
}

// ItemStatusFromString parses the wire representation of a status.
// Accepts exactly "pending", "cooking" or "done"; anything else is invalid.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getValidItemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid item status", s),
	)
}

// Validate checks if the ItemStatus value is valid.
//
// Valid statuses are: StatusPending, StatusCooking, StatusDone.
// StatusUnknown (0) and any other values are invalid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status ("pending", "cooking",
// "done"), or "unknown" for invalid values. Implements fmt.Stringer.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
