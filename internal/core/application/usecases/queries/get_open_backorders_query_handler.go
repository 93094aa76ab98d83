package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
)

// GetOpenBackordersQueryHandler reads the fulfillment worklist from the
// database. A line is open while its remaining quantity is positive.
type GetOpenBackordersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenBackordersQueryHandler creates a handler for open backorder queries.
// Requires a GORM database connection for query execution.
func NewGetOpenBackordersQueryHandler(db *gorm.DB) GetOpenBackordersQueryHandler {
	return GetOpenBackordersQueryHandler{db: db}
}

// Handle executes the query.
// Returns open lines grouped by seller, in rank order within each seller,
// so the worklist reads the way operators process it.
func (h GetOpenBackordersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenBackordersQuery,
) ([]GetOpenBackordersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetOpenBackordersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			seller_id,
			sku_id,
			ordered_qty,
			shipped_qty,
			store_held_qty,
			rank,
			delay_flag,
			bundle_flag
		FROM backorder_lines
		WHERE ordered_qty - shipped_qty - store_held_qty > 0
		ORDER BY seller_id, rank, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp GetOpenBackordersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&lineResp.SellerID,
			&lineResp.SkuID,
			&lineResp.OrderedQty,
			&lineResp.ShippedQty,
			&lineResp.StoreHeldQty,
			&lineResp.Rank,
			&lineResp.DelayFlag,
			&lineResp.BundleFlag,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		lineResp.ID = lineID

		lineResp.RemainingQty = backorder.ComputeRemaining(
			lineResp.OrderedQty, lineResp.ShippedQty, lineResp.StoreHeldQty,
		)
		lineResp.Status = backorder.StatusFor(
			lineResp.OrderedQty, lineResp.ShippedQty, lineResp.StoreHeldQty,
		)
		lines = append(lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
