package discountrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/errs"
)

// GormDiscountLineRepository implements DiscountLineRepository using GORM.
type GormDiscountLineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDiscountLineRepository creates a new GORM discount line repository.
func NewGormDiscountLineRepository(db *gorm.DB, tracker aggregateTracker) *GormDiscountLineRepository {
	return &GormDiscountLineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new discount line to the database.
func (r *GormDiscountLineRepository) Add(ctx context.Context, aggregate *discount.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing line with an optimistic version check.
func (r *GormDiscountLineRepository) Update(ctx context.Context, aggregate *discount.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("discountLine")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a discount line by ID.
func (r *GormDiscountLineRepository) Get(ctx context.Context, id kernel.UUID) (*discount.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discountLine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLinesWithUnsetDiscount retrieves lines whose discount was never
// decided, locked for update so the propagation sweep is the only writer,
// up to limit.
func (r *GormDiscountLineRepository) GetLinesWithUnsetDiscount(
	ctx context.Context,
	limit int,
) ([]*discount.Line, error) {
	var dtos []LineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("discount_amt IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*discount.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// GormFactoryDefaultRepository implements FactoryDefaultRepository using GORM.
type GormFactoryDefaultRepository struct {
	db *gorm.DB
}

// NewGormFactoryDefaultRepository creates a new GORM factory default repository.
func NewGormFactoryDefaultRepository(db *gorm.DB) *GormFactoryDefaultRepository {
	return &GormFactoryDefaultRepository{db: db}
}

// Upsert creates or replaces the default for the setting's factory and SKU pair.
func (r *GormFactoryDefaultRepository) Upsert(ctx context.Context, setting *discount.FactoryDefault) error {
	if err := setting.Validate(); err != nil {
		return err
	}

	dto := defaultFromDomain(setting)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "factory_id"}, {Name: "sku_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"discount_amt"}),
		}).
		Create(&dto).Error
}

// Get retrieves the default for a factory and SKU pair.
func (r *GormFactoryDefaultRepository) Get(
	ctx context.Context,
	factoryID string,
	skuID string,
) (*discount.FactoryDefault, error) {
	var dto FactoryDefaultDTO
	err := r.db.WithContext(ctx).
		First(&dto, "factory_id = ? AND sku_id = ?", factoryID, skuID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("factoryDefault", factoryID+"/"+skuID)
		}
		return nil, err
	}

	return defaultToDomain(dto)
}
