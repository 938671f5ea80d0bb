package aggregate

import (
	"github.com/ukaji3/shopstat-go/pkg/shopstat/classify"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
)

// NewRecord builds the component record for row under ctx. Null
// quantities count as zero.
func NewRecord(ctx classify.Context, row models.Row) models.ComponentRecord {
	committed := models.Qty(row.QtyCommitted)
	onHand := models.Qty(row.QtyOnHand)

	rec := models.ComponentRecord{
		Row:         row.R,
		Customer:    ctx.Customer.String(),
		Mark:        ctx.Mark.String(),
		Job:         ctx.Job.String(),
		Component:   row.Component.String(),
		Description: row.Description.String(),
		UM:          row.UM.String(),
		Committed:   committed,
		Issued:      models.Qty(row.QtyIssued),
		OnHand:      onHand,
		HasPO:       row.PurchaseOrder.Present(),
		PO:          row.PurchaseOrder,
		Vendor:      row.Vendor,
		Ordered:     row.QtyOrdered,
		Received:    row.QtyReceived,
		Shortage:    Shortage(committed, onHand),
	}
	if row.DateDue.Truthy() {
		rec.DateDue = row.DateDue
	}

	if rec.HasPO {
		rec.Fulfillment = FulfillmentOf(models.Qty(row.QtyOrdered), models.Qty(row.QtyReceived))
	} else {
		rec.Stock = StockOf(committed, onHand)
	}
	return rec
}
