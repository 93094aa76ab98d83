package services

import (
	"errors"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
)

// Batch-level errors for shipment validation.
var (
	// ErrEmptyBatch is returned when a shipment batch contains no lines.
	ErrEmptyBatch = errors.New("shipment batch is empty")
	// ErrCrossSellerBatch is returned when the lines of a batch do not
	// share a single seller.
	ErrCrossSellerBatch = errors.New("shipment batch spans multiple sellers")
)

// LineCheck is the validation result for one line of a batch. Err is nil
// for a line that passed every check.
type LineCheck struct {
	LineID kernel.UUID
	Err    error
}

// BatchReport is the complete pre-commit validation report for a shipment
// batch: one entry per line, in batch order, plus the batch-level error.
// Callers get the full picture rather than the first failure only.
type BatchReport struct {
	Checks []LineCheck
	// Err is the batch-level verdict: nil when every line passed.
	Err error
}

// OK reports whether the batch may ship.
func (r BatchReport) OK() bool {
	return r.Err == nil
}

// FailedLineIDs returns the identifiers of every line that failed a
// per-line check, for error reporting back to the caller.
func (r BatchReport) FailedLineIDs() []kernel.UUID {
	var ids []kernel.UUID
	for _, c := range r.Checks {
		if c.Err != nil {
			ids = append(ids, c.LineID)
		}
	}
	return ids
}

// BatchValidator is a domain service that checks the cross-line rules of
// a shipment batch before any line mutates: a batch must target exactly
// one seller and every line must have outstanding quantity.
type BatchValidator struct{}

// NewBatchValidator creates a new BatchValidator instance.
func NewBatchValidator() BatchValidator {
	return BatchValidator{}
}

// ValidateShipment checks a batch of backorder lines against the shipment
// rules without mutating anything.
//
// Per line, the ledger must balance and the remaining quantity must be
// positive (ErrNothingToShip otherwise). Batch-wide, all lines must share
// one seller; a mixed batch yields ErrCrossSellerBatch. The report always
// covers every line, so a caller sees all failures of the batch at once.
//
// When requireSingleSeller is false (single-line shipment) the seller
// check is skipped.
func (v BatchValidator) ValidateShipment(lines []*backorder.Line, requireSingleSeller bool) BatchReport {
	if len(lines) == 0 {
		return BatchReport{Err: ErrEmptyBatch}
	}

	report := BatchReport{Checks: make([]LineCheck, 0, len(lines))}

	sellerID := lines[0].SellerID()
	crossSeller := false

	for _, line := range lines {
		check := LineCheck{LineID: line.ID()}

		switch {
		case line.Validate() != nil:
			check.Err = line.Validate()
		case line.ValidateLedger() != nil:
			check.Err = line.ValidateLedger()
		case line.RemainingQty() <= 0:
			check.Err = backorder.ErrNothingToShip
		}

		if requireSingleSeller && line.SellerID() != sellerID {
			crossSeller = true
			if check.Err == nil {
				check.Err = ErrCrossSellerBatch
			}
		}

		report.Checks = append(report.Checks, check)
	}

	// The batch verdict: cross-seller dominates, otherwise the first
	// per-line failure.
	if crossSeller {
		report.Err = ErrCrossSellerBatch
		return report
	}
	for _, c := range report.Checks {
		if c.Err != nil {
			report.Err = c.Err
			break
		}
	}
	return report
}
