package http

import (
	"errors"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/generated/servers"
	"procurement/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	receiveOrderHandler      commands.ReceiveOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	getStockBalanceHandler queries.GetStockBalanceQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	receiveOrderHandler commands.ReceiveOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getStockBalanceHandler queries.GetStockBalanceQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		receiveOrderHandler:      receiveOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getStockBalanceHandler:   getStockBalanceHandler,
		validate:                 validator.New(),
	}
}

// ListOrders handles GET /api/v1/orders - retrieves one page of purchase orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	status := ""
	if params.Status != nil {
		status = *params.Status
	}

	var supplierID *kernel.UUID
	if params.SupplierId != nil {
		id, idErr := domainUUID(*params.SupplierId)
		if idErr != nil {
			return badRequest(ctx, "Invalid supplier identifier: "+idErr.Error())
		}
		supplierID = &id
	}

	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	pageSize := 20
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewListOrdersQuery(organizationID, status, supplierID, page, pageSize)
	if err != nil {
		return badRequest(ctx, "Invalid list parameters: "+err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]servers.OrderSummary, len(result.Orders))
	for i, summary := range result.Orders {
		orders[i] = servers.OrderSummary{
			Id:                   summary.ID.Bytes(),
			OrderNumber:          summary.OrderNumber,
			SupplierId:           summary.SupplierID.Bytes(),
			SupplierName:         optionalString(summary.SupplierName),
			Status:               summary.Status,
			OrderDate:            summary.OrderDate,
			ExpectedDeliveryDate: summary.ExpectedDeliveryDate,
			TotalAmount:          summary.TotalAmount.String(),
			ItemCount:            summary.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{
		Orders:   orders,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// CreateOrder handles POST /api/v1/orders - creates a new purchase order in draft status.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	var request servers.CreateOrderJSONRequestBody
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if validateErr := s.validate.Var(request.Items, "required,min=1"); validateErr != nil {
		return badRequest(ctx, "At least one order item is required")
	}

	supplierID, err := domainUUID(request.SupplierId)
	if err != nil {
		return badRequest(ctx, "Invalid supplier identifier: "+err.Error())
	}

	specs := make([]commands.OrderItemSpec, len(request.Items))
	for i, item := range request.Items {
		productID, idErr := domainUUID(item.ProductId)
		if idErr != nil {
			return badRequest(ctx, "Invalid product identifier: "+idErr.Error())
		}

		unitPrice, priceErr := kernel.MoneyFromString(item.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
		}

		spec, specErr := commands.NewOrderItemSpec(productID, item.Quantity, unitPrice)
		if specErr != nil {
			return badRequest(ctx, "Invalid order item: "+specErr.Error())
		}
		specs[i] = spec
	}

	notes := ""
	if request.Notes != nil {
		notes = *request.Notes
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), organizationID, supplierID,
		request.OrderDate, request.ExpectedDeliveryDate, notes, specs,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one purchase order with its lines.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(organizationID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]servers.OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = servers.OrderItem{
			Id:               item.ID.Bytes(),
			ProductId:        item.ProductID.Bytes(),
			ProductName:      optionalString(item.ProductName),
			Quantity:         item.Quantity,
			ReceivedQuantity: item.ReceivedQuantity,
			UnitPrice:        item.UnitPrice.String(),
			TotalAmount:      item.TotalAmount.String(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:                   result.ID.Bytes(),
		OrderNumber:          result.OrderNumber,
		SupplierId:           result.SupplierID.Bytes(),
		SupplierName:         optionalString(result.SupplierName),
		Status:               result.Status,
		OrderDate:            result.OrderDate,
		ExpectedDeliveryDate: result.ExpectedDeliveryDate,
		TotalAmount:          result.TotalAmount.String(),
		Notes:                optionalString(result.Notes),
		Items:                items,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - deletes a draft purchase order.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.DeleteOrderParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(organizationID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - changes an order's status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateOrderStatusParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	var request servers.UpdateOrderStatusJSONRequestBody
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(organizationID, orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveOrder handles POST /api/v1/orders/{orderId}/receipts - records a batch of goods receipts.
func (s *Server) ReceiveOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.ReceiveOrderParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	userID, err := domainUUID(params.XUserID)
	if err != nil {
		return badRequest(ctx, "Invalid user identifier: "+err.Error())
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	var request servers.ReceiveOrderJSONRequestBody
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if validateErr := s.validate.Var(request.Lines, "required,min=1"); validateErr != nil {
		return badRequest(ctx, "At least one receipt line is required")
	}

	lines := make([]commands.ReceiptLine, len(request.Lines))
	for i, requestLine := range request.Lines {
		orderItemID, idErr := domainUUID(requestLine.OrderItemId)
		if idErr != nil {
			return badRequest(ctx, "Invalid order item identifier: "+idErr.Error())
		}

		line, lineErr := commands.NewReceiptLine(orderItemID, requestLine.Quantity,
			requestLine.ReceivedDate, requestLine.Notes)
		if lineErr != nil {
			return badRequest(ctx, "Invalid receipt line: "+lineErr.Error())
		}
		lines[i] = line
	}

	receivedDate := time.Now().UTC()
	if request.ReceivedDate != nil {
		receivedDate = *request.ReceivedDate
	}

	notes := ""
	if request.Notes != nil {
		notes = *request.Notes
	}

	cmd, err := commands.NewReceiveOrderCommand(organizationID, orderID, userID, receivedDate, notes, lines)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	result, err := s.receiveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	receipts := make([]servers.Receipt, len(result.Receipts))
	for i, recorded := range result.Receipts {
		receipts[i] = servers.Receipt{
			Id:           recorded.ID().Bytes(),
			OrderItemId:  recorded.OrderItemID().Bytes(),
			Quantity:     recorded.Quantity(),
			UnitPrice:    recorded.UnitPrice().String(),
			TotalAmount:  recorded.TotalAmount().String(),
			ReceivedDate: recorded.ReceivedDate(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.ReceiveResult{
		OrderId:            orderID.Bytes(),
		Status:             result.NewStatus.String(),
		TotalReceivedValue: result.TotalReceivedValue.String(),
		Receipts:           receipts,
	})
}

// GetStockBalance handles GET /api/v1/products/{productId}/stock - retrieves a product's stock position.
func (s *Server) GetStockBalance(ctx echo.Context, productId openapi_types.UUID, params servers.GetStockBalanceParams) error {
	organizationID, err := domainUUID(params.XOrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization identifier: "+err.Error())
	}

	productID, err := domainUUID(productId)
	if err != nil {
		return badRequest(ctx, "Invalid product identifier: "+err.Error())
	}

	query, err := queries.NewGetStockBalanceQuery(organizationID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	result, err := s.getStockBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StockBalance{
		ProductId:      result.ProductID.Bytes(),
		Balance:        result.Balance,
		LastMovementAt: result.LastMovementAt,
	})
}

// orderToResponse maps a freshly created order aggregate to the API shape.
// Names come from the read side, so they are absent here.
func orderToResponse(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.OrderItem{
			Id:          item.ID().Bytes(),
			ProductId:   item.ProductID().Bytes(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			TotalAmount: item.TotalAmount().String(),
		}
	}

	return servers.Order{
		Id:                   o.ID().Bytes(),
		OrderNumber:          o.OrderNumber(),
		SupplierId:           o.SupplierID().Bytes(),
		Status:               o.Status().String(),
		OrderDate:            o.OrderDate(),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate(),
		TotalAmount:          o.TotalAmount().String(),
		Notes:                optionalString(o.Notes()),
		Items:                items,
	}
}

func domainUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromString(id.String())
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

// statusForError maps domain and application errors to HTTP status codes.
// Exceeding the remaining quantity is a semantic rejection rather than a
// state conflict, hence 422.
func statusForError(err error) int {
	var (
		notFound   *errs.ObjectNotFoundError
		invalid    *errs.ValueIsInvalidError
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
		state      *errs.InvalidStateError
		transition *errs.InvalidTransitionError
		exceeded   *errs.QuantityExceededError
		conflict   *errs.ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &exceeded):
		return http.StatusUnprocessableEntity
	case errors.As(err, &state), errors.As(err, &transition), errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
