// Package reconciliation contains the ReconciliationLine aggregate: one
// line of a return/inbound stock-movement batch being confirmed against a
// physically counted quantity. Edits are bounds-checked against available
// stock; a committed line is locked and immutable through this engine.
package reconciliation
