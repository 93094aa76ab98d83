// Package backorderrepo provides data transfer objects and mapping functions
// for backorder line persistence. This package implements the repository
// pattern for the backorder domain aggregate, handling the conversion between
// domain entities and database representations.
package backorderrepo

import (
	"time"

	"github.com/google/uuid"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
)

// LineDTO represents the database structure for persisting backorder lines.
// The version column drives optimistic concurrency: every update must match
// the version it read.
type LineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID       string    `gorm:"index"`
	SkuID          string    `gorm:"index"`
	OrderedQty     int
	ShippedQty     int
	StoreHeldQty   int
	ActualStockQty int
	DelayFlag      bool
	BundleFlag     bool
	Rank           int
	Version        int
	LastModified   time.Time
	LastActor      string
}

// TableName specifies the database table name for backorder lines.
// Overrides GORM's default naming convention to use "backorder_lines".
func (LineDTO) TableName() string {
	return "backorder_lines"
}

// fromDomain converts a backorder line aggregate to its database representation.
func fromDomain(line *backorder.Line) LineDTO {
	return LineDTO{
		ID:             line.ID().Bytes(),
		SellerID:       line.SellerID(),
		SkuID:          line.SkuID(),
		OrderedQty:     line.OrderedQty(),
		ShippedQty:     line.ShippedQty(),
		StoreHeldQty:   line.StoreHeldQty(),
		ActualStockQty: line.ActualStockQty(),
		DelayFlag:      line.DelayFlag(),
		BundleFlag:     line.BundleFlag(),
		Rank:           line.Rank(),
		Version:        line.Version(),
		LastModified:   line.LastModified(),
		LastActor:      line.LastActor(),
	}
}

// toDomain converts a database DTO to a backorder line aggregate using RestoreLine.
func toDomain(dto LineDTO) (*backorder.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return backorder.RestoreLine(
		id,
		dto.SellerID,
		dto.SkuID,
		dto.OrderedQty,
		dto.ShippedQty,
		dto.StoreHeldQty,
		dto.ActualStockQty,
		dto.DelayFlag,
		dto.BundleFlag,
		dto.Rank,
		dto.Version,
		dto.LastModified,
		dto.LastActor,
	)
}
