// Package reconciliationrepo provides data transfer objects and mapping
// functions for store reconciliation line persistence.
package reconciliationrepo

import (
	"time"

	"github.com/google/uuid"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/model/reconciliation"
)

// LineDTO represents the database structure for persisting reconciliation
// lines. Locked rows are final: committed quantities never change again.
type LineDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SkuID             string    `gorm:"index"`
	StoreInventoryQty int
	ConfirmedQty      int
	InputQty          int
	Baseline          int
	Locked            bool `gorm:"index"`
	LockedAt          time.Time
	LockedBy          string
	Version           int
}

// TableName specifies the database table name for reconciliation lines.
func (LineDTO) TableName() string {
	return "reconciliation_lines"
}

// fromDomain converts a reconciliation line aggregate to its database representation.
func fromDomain(line *reconciliation.Line) LineDTO {
	return LineDTO{
		ID:                line.ID().Bytes(),
		SkuID:             line.SkuID(),
		StoreInventoryQty: line.StoreInventoryQty(),
		ConfirmedQty:      line.ConfirmedQty(),
		InputQty:          line.InputQty(),
		Baseline:          line.Baseline(),
		Locked:            line.Locked(),
		LockedAt:          line.LockedAt(),
		LockedBy:          line.LockedBy(),
		Version:           line.Version(),
	}
}

// toDomain converts a database DTO to a reconciliation line aggregate using RestoreLine.
func toDomain(dto LineDTO) (*reconciliation.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return reconciliation.RestoreLine(
		id,
		dto.SkuID,
		dto.StoreInventoryQty,
		dto.ConfirmedQty,
		dto.InputQty,
		dto.Baseline,
		dto.Locked,
		dto.LockedAt,
		dto.LockedBy,
		dto.Version,
	)
}
