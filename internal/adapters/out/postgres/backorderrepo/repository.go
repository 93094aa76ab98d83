package backorderrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/errs"
)

// GormBackorderRepository implements BackorderRepository using GORM.
type GormBackorderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBackorderRepository creates a new GORM backorder repository.
func NewGormBackorderRepository(db *gorm.DB, tracker aggregateTracker) *GormBackorderRepository {
	return &GormBackorderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new backorder line to the database.
func (r *GormBackorderRepository) Add(ctx context.Context, aggregate *backorder.Line) error {
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
// The row must still carry the version the aggregate was loaded with;
// a concurrent writer fails the check and the caller's transaction
// rolls back.
func (r *GormBackorderRepository) Update(ctx context.Context, aggregate *backorder.Line) error {
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
		return errs.NewVersionIsInvalidErrorWithCause("backorderLine")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a backorder line by ID.
func (r *GormBackorderRepository) Get(ctx context.Context, id kernel.UUID) (*backorder.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("backorderLine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatchForUpdate retrieves all requested lines with SELECT ... FOR UPDATE
// row locks, in the order the IDs were given. Fails with an
// object-not-found error when any requested line does not exist, so a
// batch never proceeds on a partial selection.
func (r *GormBackorderRepository) GetBatchForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*backorder.Line, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []LineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "id IN ?", raw).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]LineDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	lines := make([]*backorder.Line, 0, len(ids))
	for i, id := range ids {
		dto, ok := byID[raw[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("backorderLine", id.String())
		}

		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
