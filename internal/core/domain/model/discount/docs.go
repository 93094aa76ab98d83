// Package discount contains the DiscountLine aggregate and the per
// factory/sku default discount. A line's unit price and amount are always
// derived from the base unit price and the current discount; the override
// flag records whether the discount came from a user edit that diverged
// from the auto-applied default, never from inferred call order.
package discount
