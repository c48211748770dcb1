// Package receiptrepo provides data transfer objects and mapping functions for
// goods receipt persistence. Receipts are append-only; the repository exposes
// no update or delete operations.
package receiptrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/receipt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptDTO represents the database structure for persisting goods receipts.
type ReceiptDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID    uuid.UUID `gorm:"type:uuid;index"`
	UserID         uuid.UUID `gorm:"type:uuid"`
	Quantity       int
	UnitPrice      decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`
	ReceivedDate   time.Time
	Notes          string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for receipt entities.
func (ReceiptDTO) TableName() string {
	return "receipts"
}

// fromDomain converts a receipt domain entity to its database representation.
func fromDomain(entry *receipt.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ID:             entry.ID().Bytes(),
		OrganizationID: entry.OrganizationID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		OrderItemID:    entry.OrderItemID().Bytes(),
		UserID:         entry.UserID().Bytes(),
		Quantity:       entry.Quantity(),
		UnitPrice:      entry.UnitPrice().Amount(),
		TotalAmount:    entry.TotalAmount().Amount(),
		ReceivedDate:   entry.ReceivedDate(),
		Notes:          entry.Notes(),
	}
}

// toDomain converts a database DTO to a receipt domain entity.
func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	orderItemID, err := kernel.UUIDFromBytes(dto.OrderItemID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
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

	return receipt.RestoreReceipt(
		id,
		organizationID,
		orderID,
		orderItemID,
		userID,
		dto.Quantity,
		unitPrice,
		totalAmount,
		dto.ReceivedDate,
		dto.Notes,
	)
}
