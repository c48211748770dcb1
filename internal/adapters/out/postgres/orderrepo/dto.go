// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the purchase order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is unique per organization, enforced by a composite unique
// index so two concurrent creations can never commit the same number.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_orders_org_number;index"`
	SupplierID           uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber          string    `gorm:"uniqueIndex:idx_orders_org_number"`
	OrderDate            time.Time
	Status               string          `gorm:"index"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(14,2)"`
	ExpectedDeliveryDate *time.Time
	Notes                string
	Items                []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order lines.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalAmount: item.TotalAmount().Amount(),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrganizationID:       aggregate.OrganizationID().Bytes(),
		SupplierID:           aggregate.SupplierID().Bytes(),
		OrderNumber:          aggregate.OrderNumber(),
		OrderDate:            aggregate.OrderDate(),
		Status:               aggregate.Status().String(),
		TotalAmount:          aggregate.TotalAmount().Amount(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		Notes:                aggregate.Notes(),
		Items:                items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		organizationID,
		supplierID,
		dto.OrderNumber,
		dto.OrderDate,
		status,
		totalAmount,
		items,
		dto.ExpectedDeliveryDate,
		dto.Notes,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.Quantity, unitPrice, totalAmount)
}
