// Package backorder contains the quantity ledger and the BackorderLine
// aggregate. A backorder line tracks how much of an ordered quantity has
// been shipped, held at a store, or remains outstanding. The ledger
// invariant
//
//	orderedQty == shippedQty + storeHeldQty + remainingQty
//
// with every component non-negative holds after every operation; any
// mutation that would break it is rejected before state changes.
package backorder
