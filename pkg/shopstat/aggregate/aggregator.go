package aggregate

import (
	"log/slog"
	"sort"

	"github.com/ukaji3/shopstat-go/pkg/shopstat/classify"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
)

// Aggregator accumulates one pass over job-cost rows. It owns the
// classification context; rows must be added in sheet order.
type Aggregator struct {
	logger *slog.Logger
	ctx    classify.Context

	rows models.RowCounts

	customers   valueSet
	jobs        valueSet
	salesOrders valueSet
	components  valueSet
	vendors     valueSet
	poNumbers   valueSet

	codeSorts   []models.CodeSortCount
	codeSortIdx map[string]int

	groups   []models.JobGroup
	groupIdx map[string]int

	po      models.POTally
	stock   models.StockTally
	orphans int
}

// New creates an empty Aggregator. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		logger:      logger,
		customers:   valueSet{},
		jobs:        valueSet{},
		salesOrders: valueSet{},
		components:  valueSet{},
		vendors:     valueSet{},
		poNumbers:   valueSet{},
		codeSortIdx: make(map[string]int),
		groupIdx:    make(map[string]int),
	}
}

// AddAll adds rows in order.
func (a *Aggregator) AddAll(rows []models.Row) {
	for _, row := range rows {
		a.Add(row)
	}
}

// Add classifies row, advances the context and updates the tallies.
func (a *Aggregator) Add(row models.Row) classify.Kind {
	kind := a.ctx.Apply(row)

	switch kind {
	case classify.Header:
		a.rows.Header++
		a.customers.add(a.ctx.Customer)
		a.salesOrders.add(row.SalesOrder)
		if row.CodeSort.Truthy() {
			a.countCodeSort(row.CodeSort.Value)
		}
	case classify.Job:
		a.rows.Job++
		a.jobs.add(a.ctx.Job)
	case classify.Component:
		a.rows.Component++
		a.addComponent(row)
	default:
		a.rows.Other++
	}

	return kind
}

// Context returns the context in effect after the last added row.
func (a *Aggregator) Context() classify.Context {
	return a.ctx
}

func (a *Aggregator) addComponent(row models.Row) {
	a.components.add(row.Component)
	a.vendors.add(row.Vendor)
	a.poNumbers.add(row.PurchaseOrder)

	if !a.ctx.HasJob() {
		a.orphans++
		a.logger.Debug("component row before any job",
			slog.Int("row", row.R),
			slog.String("component", row.Component.Value))
		return
	}

	rec := NewRecord(a.ctx, row)
	if rec.HasPO {
		a.po.WithPO++
		switch rec.Fulfillment {
		case models.FullyReceived:
			a.po.FullyReceived++
		case models.PartiallyReceived:
			a.po.PartiallyReceived++
		default:
			a.po.NotReceived++
		}
	} else if rec.Stock == models.StockSufficient {
		a.stock.Sufficient++
	} else {
		a.stock.Shortage++
	}

	idx, ok := a.groupIdx[rec.Job]
	if !ok {
		idx = len(a.groups)
		a.groupIdx[rec.Job] = idx
		a.groups = append(a.groups, models.JobGroup{Job: rec.Job})
	}
	a.groups[idx].Components = append(a.groups[idx].Components, rec)
}

func (a *Aggregator) countCodeSort(code string) {
	if idx, ok := a.codeSortIdx[code]; ok {
		a.codeSorts[idx].Count++
		return
	}
	a.codeSortIdx[code] = len(a.codeSorts)
	a.codeSorts = append(a.codeSorts, models.CodeSortCount{Code: code, Count: 1})
}

// Summary returns a snapshot of the tallies. Later Adds do not change it.
func (a *Aggregator) Summary() *models.Summary {
	codeSorts := append([]models.CodeSortCount(nil), a.codeSorts...)
	sort.SliceStable(codeSorts, func(i, j int) bool {
		return codeSorts[i].Count > codeSorts[j].Count
	})

	groups := make([]models.JobGroup, len(a.groups))
	for i, g := range a.groups {
		groups[i] = models.JobGroup{
			Job:        g.Job,
			Components: append([]models.ComponentRecord(nil), g.Components...),
		}
	}

	return &models.Summary{
		Rows:        a.rows,
		Customers:   a.customers.sorted(),
		Jobs:        a.jobs.sorted(),
		SalesOrders: a.salesOrders.sorted(),
		Components:  a.components.sorted(),
		Vendors:     a.vendors.sorted(),
		PONumbers:   a.poNumbers.sorted(),
		CodeSorts:   codeSorts,
		JobGroups:   groups,
		PO:          a.po,
		Stock:       a.stock,
		Orphans:     a.orphans,
	}
}

// valueSet holds the distinct truthy cell values seen.
type valueSet map[string]struct{}

func (s valueSet) add(c models.Cell) {
	if c.Truthy() {
		s[c.Value] = struct{}{}
	}
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
