package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/classify"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
)

func qty(n int64) decimal.NullDecimal {
	return models.Quantity(decimal.NewFromInt(n))
}

func header(mark, customer string) models.Row {
	return models.Row{Mark: models.Text(mark), Customer: models.Text(customer)}
}

func job(id string) models.Row {
	return models.Row{Job: models.Text(id)}
}

func stockLine(component string, committed, onHand int64) models.Row {
	return models.Row{
		Component:    models.Text(component),
		QtyCommitted: qty(committed),
		QtyOnHand:    qty(onHand),
	}
}

func poLine(component, po, vendor string, ordered, received int64) models.Row {
	return models.Row{
		Component:     models.Text(component),
		PurchaseOrder: models.Text(po),
		Vendor:        models.Text(vendor),
		QtyOrdered:    qty(ordered),
		QtyReceived:   qty(received),
	}
}

func TestShortage(t *testing.T) {
	tests := []struct {
		committed, onHand, want int64
	}{
		{10, 4, 6},
		{3, 3, 0},
		{0, 5, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := Shortage(decimal.NewFromInt(tt.committed), decimal.NewFromInt(tt.onHand))
		assert.Truef(t, got.Equal(decimal.NewFromInt(tt.want)),
			"Shortage(%d, %d) = %s, expected %d", tt.committed, tt.onHand, got, tt.want)
	}
}

func TestFulfillmentOf(t *testing.T) {
	tests := []struct {
		ordered, received int64
		want              models.Fulfillment
	}{
		{10, 10, models.FullyReceived},
		{10, 12, models.FullyReceived},
		{10, 4, models.PartiallyReceived},
		{10, 0, models.NotReceived},
		{0, 0, models.NotReceived},
		{0, 3, models.PartiallyReceived},
	}

	for _, tt := range tests {
		got := FulfillmentOf(decimal.NewFromInt(tt.ordered), decimal.NewFromInt(tt.received))
		assert.Equalf(t, tt.want, got, "FulfillmentOf(%d, %d)", tt.ordered, tt.received)
	}
}

func TestStockOf(t *testing.T) {
	assert.Equal(t, models.StockSufficient, StockOf(decimal.NewFromInt(3), decimal.NewFromInt(3)))
	assert.Equal(t, models.StockSufficient, StockOf(decimal.Zero, decimal.Zero))
	assert.Equal(t, models.StockShortage, StockOf(decimal.NewFromInt(5), decimal.NewFromInt(2)))
}

func TestAggregatorStockShortageScenario(t *testing.T) {
	agg := New(nil)
	assert.Equal(t, classify.Header, agg.Add(header("M1", "ACME")))
	assert.Equal(t, classify.Job, agg.Add(job("J100")))
	assert.Equal(t, classify.Component, agg.Add(stockLine("C1", 5, 2)))

	s := agg.Summary()
	require.Len(t, s.JobGroups, 1)
	assert.Equal(t, "J100", s.JobGroups[0].Job)
	require.Len(t, s.JobGroups[0].Components, 1)

	rec := s.JobGroups[0].Components[0]
	assert.Equal(t, "C1", rec.Component)
	assert.Equal(t, "ACME", rec.Customer)
	assert.Equal(t, "M1", rec.Mark)
	assert.False(t, rec.HasPO)
	assert.True(t, rec.Shortage.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, models.StockShortage, rec.Stock)

	assert.Equal(t, models.StockTally{Shortage: 1}, s.Stock)
	assert.Equal(t, models.POTally{}, s.PO)
}

func TestAggregatorFullyReceivedScenario(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{
		header("M1", "ACME"),
		job("J100"),
		poLine("C2", "PO77", "V1", 20, 20),
	})

	s := agg.Summary()
	require.Len(t, s.JobGroups, 1)
	rec := s.JobGroups[0].Components[0]
	assert.True(t, rec.HasPO)
	assert.Equal(t, models.FullyReceived, rec.Fulfillment)
	assert.Equal(t, models.POTally{WithPO: 1, FullyReceived: 1}, s.PO)
	assert.Equal(t, models.StockTally{}, s.Stock)
	assert.Equal(t, []string{"V1"}, s.Vendors)
	assert.Equal(t, []string{"PO77"}, s.PONumbers)
}

func TestAggregatorBuckets(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{
		header("M1", "ACME"),
		job("J1"),
		poLine("A", "PO1", "V1", 10, 10),
		poLine("B", "PO2", "V1", 10, 4),
		poLine("C", "PO3", "V2", 10, 0),
		poLine("D", "PO4", "V2", 0, 0),
		stockLine("E", 3, 3),
		stockLine("F", 4, 1),
		{Component: models.Text("G")},
	})

	s := agg.Summary()
	assert.Equal(t, models.POTally{WithPO: 4, FullyReceived: 1, PartiallyReceived: 1, NotReceived: 2}, s.PO)
	assert.Equal(t, models.StockTally{Sufficient: 2, Shortage: 1}, s.Stock)
	assert.Equal(t, models.RowCounts{Header: 1, Job: 1, Component: 7}, s.Rows)
}

func TestAggregatorMissingQuantitiesDefaultToZero(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{
		job("J1"),
		{Component: models.Text("C1"), QtyCommitted: qty(4)},
		{Component: models.Text("C2"), PurchaseOrder: models.Text("PO9")},
	})

	s := agg.Summary()
	require.Len(t, s.JobGroups[0].Components, 2)

	stock := s.JobGroups[0].Components[0]
	assert.True(t, stock.OnHand.IsZero())
	assert.True(t, stock.Shortage.Equal(decimal.NewFromInt(4)))

	po := s.JobGroups[0].Components[1]
	assert.False(t, po.Ordered.Valid)
	assert.Equal(t, models.NotReceived, po.Fulfillment)
}

func TestAggregatorOrphanComponents(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{
		header("M1", "ACME"),
		poLine("EARLY", "PO1", "V1", 5, 5),
		job("J1"),
		stockLine("LATE", 1, 1),
	})

	s := agg.Summary()
	assert.Equal(t, 1, s.Orphans)
	assert.Equal(t, []string{"EARLY", "LATE"}, s.Components)
	assert.Equal(t, []string{"V1"}, s.Vendors)
	assert.Equal(t, []string{"PO1"}, s.PONumbers)

	require.Len(t, s.JobGroups, 1)
	require.Len(t, s.JobGroups[0].Components, 1)
	assert.Equal(t, "LATE", s.JobGroups[0].Components[0].Component)
	assert.Equal(t, models.POTally{}, s.PO, "orphan PO lines are not bucketed")
}

func TestAggregatorUniqueSets(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{
		{Mark: models.Text("M1"), Customer: models.Text("ZETA"), SalesOrder: models.Text("SO2"), CodeSort: models.Text("B")},
		job("J2"),
		{Mark: models.Text("M2"), Customer: models.Text("ACME"), SalesOrder: models.Text("SO1"), CodeSort: models.Text("A")},
		job("J1"),
		{Mark: models.Text("M3"), Customer: models.Text("ACME"), SalesOrder: models.Text("SO1"), CodeSort: models.Text("A")},
		job("J2"),
		{},
	})

	s := agg.Summary()
	assert.Equal(t, []string{"ACME", "ZETA"}, s.Customers)
	assert.Equal(t, []string{"SO1", "SO2"}, s.SalesOrders)
	assert.Equal(t, []string{"J1", "J2"}, s.Jobs)
	assert.Equal(t, []models.CodeSortCount{{Code: "A", Count: 2}, {Code: "B", Count: 1}}, s.CodeSorts)
	assert.Equal(t, models.RowCounts{Header: 3, Job: 3, Other: 1}, s.Rows)
	assert.Empty(t, s.JobGroups)
}

func TestAggregatorJobGroupsFirstSeenOrder(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{
		job("J9"),
		stockLine("A", 1, 1),
		job("J1"),
		stockLine("B", 1, 1),
		job("J9"),
		stockLine("C", 1, 1),
	})

	s := agg.Summary()
	require.Len(t, s.JobGroups, 2)
	assert.Equal(t, "J9", s.JobGroups[0].Job)
	assert.Equal(t, "J1", s.JobGroups[1].Job)
	require.Len(t, s.JobGroups[0].Components, 2)
	assert.Equal(t, "C", s.JobGroups[0].Components[1].Component)
}

func TestAggregatorIdempotent(t *testing.T) {
	rows := []models.Row{
		header("M1", "ACME"),
		job("J100"),
		stockLine("C1", 5, 2),
		poLine("C2", "PO77", "V1", 20, 20),
		header("M2", "BETA"),
		job("J200"),
		poLine("C3", "PO78", "V2", 10, 3),
	}

	first := New(nil)
	first.AddAll(rows)
	second := New(nil)
	second.AddAll(rows)

	assert.Equal(t, first.Summary(), second.Summary())
}

func TestSummarySnapshotIsIndependent(t *testing.T) {
	agg := New(nil)
	agg.AddAll([]models.Row{job("J1"), stockLine("A", 1, 0)})

	s := agg.Summary()
	agg.Add(stockLine("B", 1, 0))

	assert.Len(t, s.JobGroups[0].Components, 1)
	assert.Equal(t, 1, s.Stock.Shortage)
}
