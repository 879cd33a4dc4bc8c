package http

import (
	"errors"
	"net/http"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/generated/servers"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	addItemHandler            commands.AddItemCommandHandler
	editItemHandler           commands.EditItemCommandHandler
	voidItemHandler           commands.VoidItemCommandHandler
	updateItemStatusHandler   commands.UpdateItemStatusCommandHandler
	sendOrderToKitchenHandler commands.SendOrderToKitchenCommandHandler
	markKitchenViewedHandler  commands.MarkKitchenViewedCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler
	getChangeLogHandler     queries.GetChangeLogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	editItemHandler commands.EditItemCommandHandler,
	voidItemHandler commands.VoidItemCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	sendOrderToKitchenHandler commands.SendOrderToKitchenCommandHandler,
	markKitchenViewedHandler commands.MarkKitchenViewedCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	getChangeLogHandler queries.GetChangeLogQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		addItemHandler:            addItemHandler,
		editItemHandler:           editItemHandler,
		voidItemHandler:           voidItemHandler,
		updateItemStatusHandler:   updateItemStatusHandler,
		sendOrderToKitchenHandler: sendOrderToKitchenHandler,
		markKitchenViewedHandler:  markKitchenViewedHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getKitchenOrdersHandler:   getKitchenOrdersHandler,
		getChangeLogHandler:       getChangeLogHandler,
	}
}

// CreateOrder handles POST /orders - creates a new empty order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrders handles GET /orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toAPIOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:orderId - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// AddItem handles POST /orders/:orderId/items - appends an item to an order.
func (s *Server) AddItem(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AddItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(orderID, kernel.NewUUID(), body.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// EditItem handles PUT /orders/:orderId/items/:itemId - renames an item.
func (s *Server) EditItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	var body servers.EditItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, itemID, err := pathIDs(orderId, itemId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEditItemCommand(orderID, itemID, body.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.editItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// VoidItem handles DELETE /orders/:orderId/items/:itemId - voids an item while
// keeping its change history.
func (s *Server) VoidItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	orderID, itemID, err := pathIDs(orderId, itemId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewVoidItemCommand(orderID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.voidItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateItemStatus handles PUT /orders/:orderId/items/:itemId/status.
func (s *Server) UpdateItemStatus(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	var body servers.UpdateItemStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, itemID, err := pathIDs(orderId, itemId)
	if err != nil {
		return writeError(ctx, err)
	}

	newStatus, err := order.ItemStatusFromString(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, itemID, newStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// SendOrderToKitchen handles POST /orders/:orderId/send - hands the order to
// the kitchen queue.
func (s *Server) SendOrderToKitchen(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSendOrderToKitchenCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.sendOrderToKitchenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// GetKitchenOrders handles GET /kitchen/orders - the kitchen queue, oldest
// handoff first.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	query := queries.NewGetKitchenOrdersQuery()

	kitchenOrders, err := s.getKitchenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.KitchenOrder, len(kitchenOrders))
	for i, ko := range kitchenOrders {
		response[i] = servers.KitchenOrder{
			Id:               ko.ID.Bytes(),
			SentAt:           ko.SentAt,
			Items:            toAPIItems(ko.Items),
			HasUnseenUpdates: ko.HasUnseenUpdates,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkKitchenViewed handles POST /kitchen/orders/:orderId/view - acknowledges
// an order's pending change records.
func (s *Server) MarkKitchenViewed(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkKitchenViewedCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markKitchenViewedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetChangeLog handles GET /kitchen/orders/:orderId/changes - the full
// append-only change log, voided items included.
func (s *Server) GetChangeLog(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetChangeLogQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	changes, err := s.getChangeLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIChanges(changes))
}

// respondWithOrder re-reads the order through the query side and writes it
// with the given status. Mutations use it so every write returns the full
// updated resource.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toAPIOrder(result))
}

func pathIDs(orderId, itemId openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, itemID, nil
}

// writeError maps application errors onto HTTP codes: missing objects are
// 404, rejected input is 400, a second kitchen handoff is 409, everything
// else is 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	case errors.Is(err, order.ErrOrderAlreadySentToKitchen):
		code = http.StatusConflict
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toAPIOrder(o queries.OrderQueryResponse) servers.Order {
	return servers.Order{
		Id:            o.ID.Bytes(),
		CreatedAt:     o.CreatedAt,
		SentToKitchen: o.SentToKitchen,
		SentAt:        o.SentAt,
		Items:         toAPIItems(o.Items),
		Changes:       toAPIChanges(o.Changes),
	}
}

func toAPIItems(items []queries.ItemQueryResponse) []servers.Item {
	result := make([]servers.Item, len(items))
	for i, item := range items {
		result[i] = servers.Item{
			Id:     item.ID.Bytes(),
			Name:   item.Name,
			Status: servers.ItemStatus(item.Status),
		}
	}
	return result
}

func toAPIChanges(changes []queries.ChangeQueryResponse) []servers.Change {
	result := make([]servers.Change, len(changes))
	for i, change := range changes {
		result[i] = servers.Change{
			Id:         change.ID.Bytes(),
			ItemId:     change.ItemID.Bytes(),
			ChangeType: servers.ChangeChangeType(change.ChangeType),
			FromValue:  change.FromValue,
			ToValue:    change.ToValue,
			CreatedAt:  change.CreatedAt,
		}
	}
	return result
}
