// Package aggregate derives per-job component records and summary tallies
// from classified job-cost rows in a single pass.
package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
)

// Shortage returns committed minus onHand, or zero when stock covers the
// commitment.
func Shortage(committed, onHand decimal.Decimal) decimal.Decimal {
	if committed.GreaterThan(onHand) {
		return committed.Sub(onHand)
	}
	return decimal.Zero
}

// FulfillmentOf buckets a PO line by quantity received against quantity
// ordered. A line with nothing ordered is never fully received.
func FulfillmentOf(ordered, received decimal.Decimal) models.Fulfillment {
	switch {
	case received.GreaterThanOrEqual(ordered) && ordered.IsPositive():
		return models.FullyReceived
	case received.IsPositive():
		return models.PartiallyReceived
	default:
		return models.NotReceived
	}
}

// StockOf buckets a stock line by whether on-hand covers the commitment.
func StockOf(committed, onHand decimal.Decimal) models.StockLevel {
	if onHand.GreaterThanOrEqual(committed) {
		return models.StockSufficient
	}
	return models.StockShortage
}
