package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orderops/internal/core/domain/model/kernel"
)

// GetReconciliationBatchQueryHandler reads the reconciliation working set
// from the database, computing the diff per line in SQL.
type GetReconciliationBatchQueryHandler struct {
	db *gorm.DB
}

// NewGetReconciliationBatchQueryHandler creates a handler for reconciliation queries.
// Requires a GORM database connection for query execution.
func NewGetReconciliationBatchQueryHandler(db *gorm.DB) GetReconciliationBatchQueryHandler {
	return GetReconciliationBatchQueryHandler{db: db}
}

// Handle executes the query. Returns every line of the working set in SKU
// order, locked lines included so operators see what is already final.
func (h GetReconciliationBatchQueryHandler) Handle(
	ctx context.Context,
	query GetReconciliationBatchQuery,
) ([]GetReconciliationBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetReconciliationBatchQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku_id,
			store_inventory_qty,
			confirmed_qty,
			input_qty,
			confirmed_qty - input_qty AS diff,
			locked,
			locked_by
		FROM reconciliation_lines
		ORDER BY sku_id, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp GetReconciliationBatchQueryResponse
		var id uuid.UUID
		var lockedBy sql.NullString

		err = rows.Scan(
			&id,
			&lineResp.SkuID,
			&lineResp.StoreInventoryQty,
			&lineResp.ConfirmedQty,
			&lineResp.InputQty,
			&lineResp.Diff,
			&lineResp.Locked,
			&lockedBy,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		lineResp.ID = lineID
		lineResp.LockedBy = lockedBy.String

		lines = append(lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
