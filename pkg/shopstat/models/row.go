package models

import "github.com/shopspring/decimal"

// Column positions (1-based) of the job-cost sheet.
const (
	ColText48 = iota + 1
	ColAutoDate
	ColSalesOrder
	ColMarkInfo
	ColSalesperson
	ColCustomer
	ColCodeSort
	ColJob
	ColPartCustomer
	ColText72
	ColComponent
	ColDescription
	ColUM
	ColQtyCommitted
	ColQtyIssued
	ColQtyOnHand
	ColPurchaseOrder
	ColVendor
	ColQtyOrder
	ColQtyReceived
	ColDateDueLine
	ColDateLastReceived

	// ColumnCount is the number of logical columns in a row.
	ColumnCount = ColDateLastReceived
)

// ColumnNames maps each column position to its sheet heading.
var ColumnNames = [ColumnCount + 1]string{
	ColText48:           "Text48",
	ColAutoDate:         "Auto_Date",
	ColSalesOrder:       "SALES_ORDER",
	ColMarkInfo:         "MARK_INFO",
	ColSalesperson:      "SALESPERSON",
	ColCustomer:         "CUSTOMER",
	ColCodeSort:         "CODE_SORT",
	ColJob:              "JOB",
	ColPartCustomer:     "PART_CUSTOMER",
	ColText72:           "Text72",
	ColComponent:        "COMPONENT",
	ColDescription:      "DESCRIPTION",
	ColUM:               "UM",
	ColQtyCommitted:     "QTY_COMMITTED",
	ColQtyIssued:        "QTY_ISSUED",
	ColQtyOnHand:        "QTY_ONHAND",
	ColPurchaseOrder:    "PURCHASE_ORDER",
	ColVendor:           "VENDOR",
	ColQtyOrder:         "QTY_ORDER",
	ColQtyReceived:      "QTY_RECEIVED",
	ColDateDueLine:      "DATE_DUE_LINE",
	ColDateLastReceived: "DATE_LAST_RECEIVED",
}

// Row is one job-cost sheet row. Every field may be null.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`

	Text48       Cell `json:"text48"`
	AutoDate     Cell `json:"auto_date"`
	SalesOrder   Cell `json:"sales_order"`
	Mark         Cell `json:"mark_info"`
	Salesperson  Cell `json:"salesperson"`
	Customer     Cell `json:"customer"`
	CodeSort     Cell `json:"code_sort"`
	Job          Cell `json:"job"`
	PartCustomer Cell `json:"part_customer"`
	Text72       Cell `json:"text72"`
	Component    Cell `json:"component"`
	Description  Cell `json:"description"`
	UM           Cell `json:"um"`

	QtyCommitted decimal.NullDecimal `json:"qty_committed"`
	QtyIssued    decimal.NullDecimal `json:"qty_issued"`
	QtyOnHand    decimal.NullDecimal `json:"qty_onhand"`

	PurchaseOrder Cell                `json:"purchase_order"`
	Vendor        Cell                `json:"vendor"`
	QtyOrdered    decimal.NullDecimal `json:"qty_order"`
	QtyReceived   decimal.NullDecimal `json:"qty_received"`

	DateDue          Cell `json:"date_due_line"`
	DateLastReceived Cell `json:"date_last_received"`
}

// Qty returns the quantity held by n, or zero when n is null.
func Qty(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// Quantity wraps d as a non-null quantity.
func Quantity(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}
