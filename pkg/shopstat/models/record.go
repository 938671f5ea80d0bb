package models

import "github.com/shopspring/decimal"

// Fulfillment is the receipt state of a purchased component.
type Fulfillment string

const (
	FullyReceived     Fulfillment = "fully_received"
	PartiallyReceived Fulfillment = "partially_received"
	NotReceived       Fulfillment = "not_received"
)

// StockLevel is the sufficiency state of a component drawn from stock.
type StockLevel string

const (
	StockSufficient StockLevel = "sufficient"
	StockShortage   StockLevel = "shortage"
)

// ComponentRecord is a component line resolved against its customer, mark
// and job.
type ComponentRecord struct {
	// Row is the sheet row the record came from (1-based).
	Row         int    `json:"row"`
	Customer    string `json:"customer,omitempty"`
	Mark        string `json:"mark,omitempty"`
	Job         string `json:"job"`
	Component   string `json:"component"`
	Description string `json:"description,omitempty"`
	UM          string `json:"um,omitempty"`

	Committed decimal.Decimal `json:"qty_committed"`
	Issued    decimal.Decimal `json:"qty_issued"`
	OnHand    decimal.Decimal `json:"qty_onhand"`

	HasPO    bool                `json:"has_po"`
	PO       Cell                `json:"po"`
	Vendor   Cell                `json:"vendor"`
	Ordered  decimal.NullDecimal `json:"qty_ordered"`
	Received decimal.NullDecimal `json:"qty_received"`
	DateDue  Cell                `json:"date_due"`

	// Shortage is committed minus on-hand, floored at zero.
	Shortage decimal.Decimal `json:"shortage"`

	// Fulfillment is set for PO lines, Stock for stock lines.
	Fulfillment Fulfillment `json:"fulfillment,omitempty"`
	Stock       StockLevel  `json:"stock,omitempty"`
}
