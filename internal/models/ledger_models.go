package models

import "time"

// PaymentStatus is the payment state recorded on a wedding invoice.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnknown PaymentStatus = "unknown" // Column was NULL or held an unexpected value
)

// NormalizePaymentStatus maps a raw, possibly NULL, column value onto a PaymentStatus.
func NormalizePaymentStatus(raw *string) PaymentStatus {
	if raw == nil {
		return PaymentStatusUnknown
	}
	switch s := PaymentStatus(*raw); s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return s
	default:
		return PaymentStatusUnknown
	}
}

// WeddingInvoiceRow is one wedding projected as an invoice line.
// StoredTotalCost is carried for diagnostics only; invoice totals are always recomputed.
type WeddingInvoiceRow struct {
	WeddingID           int64
	CoupleName          string
	WeddingDate         time.Time
	EquipmentRentalCost *float64
	FoodCost            *float64
	StoredTotalCost     *float64
	PaymentStatus       *string
}

// Status returns the normalized payment status of the row.
func (r WeddingInvoiceRow) Status() PaymentStatus {
	return NormalizePaymentStatus(r.PaymentStatus)
}

// PackageAssignmentRow links a wedding, through one of its seating tables, to a package.
type PackageAssignmentRow struct {
	WeddingID    int64
	TableID      int64
	PackageID    int64
	PackageName  string
	SellingPrice float64
	UnitCost     float64
}

// MenuItemAssignmentRow is one menu item served by one package assignment.
type MenuItemAssignmentRow struct {
	WeddingID    int64
	TableID      int64
	PackageID    int64
	MenuItemID   int64
	MenuItemName string
	Quantity     float64
	UnitCost     float64
	SellingPrice float64
}

// InventoryAllocationRow is an inventory item allocated to a wedding.
type InventoryAllocationRow struct {
	WeddingID       int64
	InventoryItemID int64
	ItemName        string
	QuantityUsed    float64
	UnitRentalCost  float64
}

// IngredientConsumptionRow is one ingredient required by one menu item of one package assignment.
type IngredientConsumptionRow struct {
	IngredientID     int64
	IngredientName   string
	Unit             string
	MenuItemID       int64
	QuantityNeeded   float64
	MenuItemQuantity float64
}
