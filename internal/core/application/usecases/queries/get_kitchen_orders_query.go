package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var (
	ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
		"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
	)
)

// GetKitchenOrdersQuery retrieves the kitchen queue: orders that have been
// sent to the kitchen, oldest handoff first, each flagged when it carries
// change records the kitchen has not acknowledged yet. The kitchen client
// polls this query; there is no push channel.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query to retrieve the kitchen queue.
// This is a parameterless query.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenOrdersQueryIsNotConstructed if validation fails.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}
