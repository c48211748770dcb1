package commands

import (
	"context"
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for purchase order creation.
// Validates supplier and product references against master data, allocates the
// next order number for the organization and year, and persists the order in
// draft status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s created", created.OrderNumber())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
//
// The supplier and every referenced product must exist within the caller's
// organization and be active. The order number is allocated inside the same
// transaction as the insert, so a rollback abandons the allocated sequence
// value and leaves a gap instead of a duplicate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// An inactive supplier is treated like a missing one: the caller is not
	// supposed to see suppliers it can no longer order from.
	supplier, err := uow.SupplierRepository().Get(ctx, cmd.OrganizationID(), cmd.SupplierID())
	if err != nil {
		return nil, err
	}
	if !supplier.IsActive() {
		return nil, errs.NewObjectNotFoundError("supplierID", supplier.ID().String())
	}

	// A missing product is a flaw in the submitted order lines, so it is
	// reported as invalid input naming the product rather than as not-found.
	productRepo := uow.ProductRepository()
	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		product, err := productRepo.Get(ctx, cmd.OrganizationID(), spec.ProductID())
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if errors.As(err, &notFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause("productID",
					fmt.Errorf("product %s does not exist in the organization", spec.ProductID()))
			}
			return nil, err
		}
		if !product.IsActive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("productID",
				fmt.Errorf("product %s is inactive", product.ID()))
		}

		item, err := order.NewItem(kernel.NewUUID(), spec.ProductID(), spec.Quantity(), spec.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	year := cmd.OrderDate().Year()
	sequence, err := uow.OrderNumberAllocator().NextSequence(ctx, cmd.OrganizationID(), year)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrganizationID(),
		cmd.SupplierID(),
		order.FormatOrderNumber(year, sequence),
		cmd.OrderDate(),
		items,
		cmd.ExpectedDeliveryDate(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
