package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrGetChangeLogQueryIsNotConstructed = errors.New(
		"GetChangeLogQuery must be created via NewGetChangeLogQuery constructor",
	)
)

// GetChangeLogQuery retrieves an order's full change log, oldest entry
// first. The log includes records for voided items: a change record outlives
// the item it describes.
type GetChangeLogQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetChangeLogQuery creates a query to retrieve one order's change log.
// Validates that the order ID is a properly constructed UUID.
func NewGetChangeLogQuery(orderID kernel.UUID) (GetChangeLogQuery, error) {
	logQuery := GetChangeLogQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := logQuery.setOrderID(orderID); err != nil {
		return GetChangeLogQuery{}, err
	}

	return logQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetChangeLogQueryIsNotConstructed if validation fails.
func (q GetChangeLogQuery) Validate() error {
	return q.guard.Validate(ErrGetChangeLogQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose log is requested.
func (q GetChangeLogQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetChangeLogQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
