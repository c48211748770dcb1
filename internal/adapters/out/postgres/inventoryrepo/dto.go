// Package inventoryrepo provides data transfer objects and mapping functions
// for the append-only inventory transaction ledger.
package inventoryrepo

import (
	"time"

	"procurement/internal/core/domain/model/inventory"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting ledger entries.
// Entries for one (organization, product) pair form a chain where each entry's
// previous stock equals the new stock of the entry before it.
type TransactionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;index:idx_inventory_org_product"`
	ProductID       uuid.UUID `gorm:"type:uuid;index:idx_inventory_org_product"`
	UserID          uuid.UUID `gorm:"type:uuid"`
	Quantity        int
	PreviousStock   int
	NewStock        int
	TransactionType string
	Reference       string
	Notes           string
	OccurredAt      time.Time `gorm:"index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "inventory_transactions"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(tx *inventory.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              tx.ID().Bytes(),
		OrganizationID:  tx.OrganizationID().Bytes(),
		ProductID:       tx.ProductID().Bytes(),
		UserID:          tx.UserID().Bytes(),
		Quantity:        tx.Quantity(),
		PreviousStock:   tx.PreviousStock(),
		NewStock:        tx.NewStock(),
		TransactionType: tx.TransactionType().String(),
		Reference:       tx.Reference(),
		Notes:           tx.Notes(),
		OccurredAt:      tx.OccurredAt(),
	}
}

// toDomain converts a database DTO to a ledger entry, verifying the chaining
// invariant along the way.
func toDomain(dto TransactionDTO) (*inventory.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	transactionType, err := inventory.TransactionTypeFromString(dto.TransactionType)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreTransaction(
		id,
		organizationID,
		productID,
		userID,
		dto.Quantity,
		dto.PreviousStock,
		dto.NewStock,
		transactionType,
		dto.Reference,
		dto.Notes,
		dto.OccurredAt,
	)
}
