package reporting

import (
	"testing"
	"time"

	"wedding_venue_backend/internal/models"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func mustPeriod(t *testing.T, granularity, value string) Period {
	t.Helper()
	p, err := ParsePeriod(granularity, value)
	require.NoError(t, err)
	return p
}

func wedding(t *testing.T, id int64, day string, equipment, food float64, status string) models.WeddingInvoiceRow {
	t.Helper()
	return models.WeddingInvoiceRow{
		WeddingID:           id,
		CoupleName:          "Couple " + day,
		WeddingDate:         date(t, day),
		EquipmentRentalCost: ptr(equipment),
		FoodCost:            ptr(food),
		StoredTotalCost:     ptr(999999.0),
		PaymentStatus:       ptr(status),
	}
}

func pkg(weddingID, tableID, packageID int64, name string, selling, cost float64) models.PackageAssignmentRow {
	return models.PackageAssignmentRow{
		WeddingID:    weddingID,
		TableID:      tableID,
		PackageID:    packageID,
		PackageName:  name,
		SellingPrice: selling,
		UnitCost:     cost,
	}
}

// marchLedger is a small month of activity: one partially paid, one paid and one pending wedding.
func marchLedger(t *testing.T) Ledger {
	t.Helper()
	return Ledger{
		Weddings: []models.WeddingInvoiceRow{
			wedding(t, 1, "2024-03-15", 1000, 1500, "partial"),
			wedding(t, 2, "2024-03-20", 500, 800, "paid"),
			wedding(t, 3, "2024-03-28", 0, 300, "pending"),
		},
		Packages: []models.PackageAssignmentRow{
			pkg(1, 10, 100, "Gold", 2500, 1200),
			pkg(1, 11, 100, "Gold", 2500, 1200),
			pkg(2, 20, 200, "Silver", 1800, 900),
			pkg(3, 30, 300, "Bronze", 1000, 400),
		},
		MenuItems: []models.MenuItemAssignmentRow{
			{WeddingID: 1, TableID: 10, PackageID: 100, MenuItemID: 7, MenuItemName: "Salmon", Quantity: 10, UnitCost: 8, SellingPrice: 20},
			{WeddingID: 1, TableID: 11, PackageID: 100, MenuItemID: 7, MenuItemName: "Salmon", Quantity: 10, UnitCost: 8, SellingPrice: 20},
			{WeddingID: 2, TableID: 20, PackageID: 200, MenuItemID: 8, MenuItemName: "Risotto", Quantity: 12, UnitCost: 5, SellingPrice: 15},
			{WeddingID: 3, TableID: 30, PackageID: 300, MenuItemID: 9, MenuItemName: "Cake", Quantity: 1, UnitCost: 40, SellingPrice: 120},
		},
		Allocations: []models.InventoryAllocationRow{
			{WeddingID: 1, InventoryItemID: 50, ItemName: "Chairs", QuantityUsed: 120, UnitRentalCost: 2.5},
			{WeddingID: 2, InventoryItemID: 50, ItemName: "Chairs", QuantityUsed: 80, UnitRentalCost: 2.5},
			{WeddingID: 2, InventoryItemID: 51, ItemName: "Arch", QuantityUsed: 1, UnitRentalCost: 150},
		},
		Ingredients: []models.IngredientConsumptionRow{
			{IngredientID: 70, IngredientName: "Salmon fillet", Unit: "kg", MenuItemID: 7, QuantityNeeded: 0.2, MenuItemQuantity: 10},
			{IngredientID: 70, IngredientName: "Salmon fillet", Unit: "kg", MenuItemID: 7, QuantityNeeded: 0.2, MenuItemQuantity: 10},
			{IngredientID: 71, IngredientName: "Rice", Unit: "kg", MenuItemID: 8, QuantityNeeded: 0.1, MenuItemQuantity: 12},
		},
	}
}

// februaryLedger is the month before marchLedger.
func februaryLedger(t *testing.T) Ledger {
	t.Helper()
	return Ledger{
		Weddings: []models.WeddingInvoiceRow{
			wedding(t, 4, "2024-02-10", 400, 600, "paid"),
		},
		Packages: []models.PackageAssignmentRow{
			pkg(4, 40, 200, "Silver", 1800, 900),
		},
		MenuItems: []models.MenuItemAssignmentRow{
			{WeddingID: 4, TableID: 40, PackageID: 200, MenuItemID: 8, MenuItemName: "Risotto", Quantity: 8, UnitCost: 5, SellingPrice: 15},
			{WeddingID: 4, TableID: 40, PackageID: 200, MenuItemID: 6, MenuItemName: "Soup", Quantity: 8, UnitCost: 2, SellingPrice: 6},
		},
		Allocations: []models.InventoryAllocationRow{
			{WeddingID: 4, InventoryItemID: 50, ItemName: "Chairs", QuantityUsed: 100, UnitRentalCost: 2.5},
			{WeddingID: 4, InventoryItemID: 52, ItemName: "Lanterns", QuantityUsed: 20, UnitRentalCost: 4},
		},
		Ingredients: []models.IngredientConsumptionRow{
			{IngredientID: 71, IngredientName: "Rice", Unit: "kg", MenuItemID: 8, QuantityNeeded: 0.1, MenuItemQuantity: 8},
		},
	}
}
