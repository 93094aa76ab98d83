// Package discountrepo provides data transfer objects and mapping functions
// for factory order discount persistence: discount lines and per-factory
// default settings.
package discountrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
)

// LineDTO represents the database structure for persisting discount lines.
// DiscountAmt and AppliedDefault are nullable: NULL means the value was
// never decided, which is distinct from an explicit zero.
type LineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FactoryID      string    `gorm:"index:idx_discount_factory_sku"`
	SkuID          string    `gorm:"index:idx_discount_factory_sku"`
	BaseUnitPrice  decimal.Decimal     `gorm:"type:numeric"`
	Quantity       int
	DiscountAmt    decimal.NullDecimal `gorm:"type:numeric"`
	AppliedDefault decimal.NullDecimal `gorm:"type:numeric"`
	OverrideFlag   bool
	Version        int
}

// TableName specifies the database table name for discount lines.
func (LineDTO) TableName() string {
	return "discount_lines"
}

// FactoryDefaultDTO represents the database structure for per-factory
// default discounts, keyed by factory and SKU.
type FactoryDefaultDTO struct {
	FactoryID   string          `gorm:"primaryKey"`
	SkuID       string          `gorm:"primaryKey"`
	DiscountAmt decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for factory defaults.
func (FactoryDefaultDTO) TableName() string {
	return "factory_defaults"
}

// fromDomain converts a discount line aggregate to its database representation.
func fromDomain(line *discount.Line) LineDTO {
	dto := LineDTO{
		ID:            line.ID().Bytes(),
		FactoryID:     line.FactoryID(),
		SkuID:         line.SkuID(),
		BaseUnitPrice: line.BaseUnitPrice(),
		Quantity:      line.Quantity(),
		OverrideFlag:  line.OverrideFlag(),
		Version:       line.Version(),
	}

	if line.DiscountIsSet() {
		dto.DiscountAmt = decimal.NewNullDecimal(line.DiscountAmt())
	}
	if def, ok := line.AppliedDefault(); ok {
		dto.AppliedDefault = decimal.NewNullDecimal(def)
	}

	return dto
}

// toDomain converts a database DTO to a discount line aggregate using RestoreLine.
func toDomain(dto LineDTO) (*discount.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var discountAmt, appliedDefault *decimal.Decimal
	if dto.DiscountAmt.Valid {
		v := dto.DiscountAmt.Decimal
		discountAmt = &v
	}
	if dto.AppliedDefault.Valid {
		v := dto.AppliedDefault.Decimal
		appliedDefault = &v
	}

	return discount.RestoreLine(
		id,
		dto.FactoryID,
		dto.SkuID,
		dto.BaseUnitPrice,
		dto.Quantity,
		discountAmt,
		appliedDefault,
		dto.OverrideFlag,
		dto.Version,
	)
}

// defaultFromDomain converts a factory default setting to its database representation.
func defaultFromDomain(setting *discount.FactoryDefault) FactoryDefaultDTO {
	return FactoryDefaultDTO{
		FactoryID:   setting.FactoryID(),
		SkuID:       setting.SkuID(),
		DiscountAmt: setting.DiscountAmt(),
	}
}

// defaultToDomain converts a database DTO to a factory default setting.
func defaultToDomain(dto FactoryDefaultDTO) (*discount.FactoryDefault, error) {
	return discount.NewFactoryDefault(dto.FactoryID, dto.SkuID, dto.DiscountAmt)
}
