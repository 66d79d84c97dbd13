package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding_venue_backend/internal/models"
	"wedding_venue_backend/internal/reporting"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (ReportRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReportRepository(db), mock
}

func marchPredicate(t *testing.T) reporting.Predicate {
	t.Helper()
	p, err := reporting.ParsePeriod("month", "2024-03")
	require.NoError(t, err)
	return p.Predicate()
}

const marchClause = `WHERE w\.wedding_date >= \$1::date AND w\.wedding_date < \$2::date`

func TestListWeddingInvoices(t *testing.T) {
	repo, mock := newMockRepo(t)
	weddingDate := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "couple_name", "wedding_date", "equipment_rental_cost", "food_cost", "total_cost", "payment_status"}).
		AddRow(int64(1), "Ana & Ben", weddingDate, 1000.0, 1500.0, 6000.0, "partial").
		AddRow(int64(2), "", weddingDate, nil, nil, nil, nil)
	mock.ExpectQuery(`FROM weddings w LEFT JOIN couples c ON w\.couple_id = c\.id ` + marchClause + ` ORDER BY w\.wedding_date, w\.id`).
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(rows)

	got, err := repo.ListWeddingInvoices(context.Background(), marchPredicate(t))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].WeddingID)
	assert.Equal(t, "Ana & Ben", got[0].CoupleName)
	assert.True(t, got[0].WeddingDate.Equal(weddingDate))
	require.NotNil(t, got[0].EquipmentRentalCost)
	assert.Equal(t, 1000.0, *got[0].EquipmentRentalCost)
	assert.Equal(t, 1500.0, *got[0].FoodCost)
	assert.Equal(t, 6000.0, *got[0].StoredTotalCost)
	assert.Equal(t, models.PaymentStatusPartial, got[0].Status())

	assert.Nil(t, got[1].EquipmentRentalCost)
	assert.Nil(t, got[1].FoodCost)
	assert.Nil(t, got[1].PaymentStatus)
	assert.Equal(t, models.PaymentStatusUnknown, got[1].Status())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListWeddingInvoicesAllTime(t *testing.T) {
	repo, mock := newMockRepo(t)
	p, err := reporting.ParsePeriod("year", "")
	require.NoError(t, err)

	mock.ExpectQuery(`FROM weddings w .* WHERE TRUE ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "couple_name", "wedding_date", "equipment_rental_cost", "food_cost", "total_cost", "payment_status"}))

	got, err := repo.ListWeddingInvoices(context.Background(), p.Predicate())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPackageAssignments(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"wedding_id", "table_id", "package_id", "name", "selling_price", "unit_cost"}).
		AddRow(int64(1), int64(10), int64(100), "Gold", 2500.0, 1200.0).
		AddRow(int64(1), int64(11), int64(100), "Gold", nil, nil)
	mock.ExpectQuery(`JOIN seating_tables st ON st\.wedding_id = w\.id JOIN packages p ON st\.package_id = p\.id ` + marchClause).
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(rows)

	got, err := repo.ListPackageAssignments(context.Background(), marchPredicate(t))
	require.NoError(t, err)
	assert.Equal(t, []models.PackageAssignmentRow{
		{WeddingID: 1, TableID: 10, PackageID: 100, PackageName: "Gold", SellingPrice: 2500, UnitCost: 1200},
		{WeddingID: 1, TableID: 11, PackageID: 100, PackageName: "Gold"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListMenuItemAssignments(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"wedding_id", "table_id", "package_id", "menu_item_id", "name", "quantity", "unit_cost", "selling_price"}).
		AddRow(int64(1), int64(10), int64(100), int64(7), "Salmon", 10.0, 8.0, 20.0)
	mock.ExpectQuery(`JOIN package_menu_items pmi ON pmi\.package_id = p\.id JOIN menu_items mi ON pmi\.menu_item_id = mi\.id ` + marchClause).
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(rows)

	got, err := repo.ListMenuItemAssignments(context.Background(), marchPredicate(t))
	require.NoError(t, err)
	assert.Equal(t, []models.MenuItemAssignmentRow{
		{WeddingID: 1, TableID: 10, PackageID: 100, MenuItemID: 7, MenuItemName: "Salmon", Quantity: 10, UnitCost: 8, SellingPrice: 20},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListInventoryAllocations(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"wedding_id", "inventory_item_id", "name", "quantity_used", "unit_rental_cost"}).
		AddRow(int64(1), int64(50), "Chairs", 120.0, 2.5)
	mock.ExpectQuery(`JOIN inventory_allocations ia ON ia\.wedding_id = w\.id JOIN inventory_items ii ON ia\.inventory_item_id = ii\.id ` + marchClause).
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(rows)

	got, err := repo.ListInventoryAllocations(context.Background(), marchPredicate(t))
	require.NoError(t, err)
	assert.Equal(t, []models.InventoryAllocationRow{
		{WeddingID: 1, InventoryItemID: 50, ItemName: "Chairs", QuantityUsed: 120, UnitRentalCost: 2.5},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListIngredientConsumption(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"ingredient_id", "name", "unit", "menu_item_id", "quantity_needed", "quantity"}).
		AddRow(int64(70), "Salmon fillet", "kg", int64(7), 0.2, 10.0)
	mock.ExpectQuery(`JOIN recipes r ON r\.menu_item_id = mi\.id JOIN ingredients ing ON r\.ingredient_id = ing\.id ` + marchClause).
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(rows)

	got, err := repo.ListIngredientConsumption(context.Background(), marchPredicate(t))
	require.NoError(t, err)
	assert.Equal(t, []models.IngredientConsumptionRow{
		{IngredientID: 70, IngredientName: "Salmon fillet", Unit: "kg", MenuItemID: 7, QuantityNeeded: 0.2, MenuItemQuantity: 10},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryWrapsDriverErrors(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM weddings w`).
		WillReturnError(&pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"})

	got, err := repo.ListWeddingInvoices(context.Background(), marchPredicate(t))
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "57014")
	assert.Contains(t, err.Error(), "querying wedding invoices")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryScanAndRowErrors(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM weddings w JOIN inventory_allocations`).
		WillReturnRows(sqlmock.NewRows([]string{"wedding_id", "inventory_item_id", "name", "quantity_used", "unit_rental_cost"}).
			AddRow("not-a-number", int64(50), "Chairs", 1.0, 1.0))
	_, err := repo.ListInventoryAllocations(context.Background(), marchPredicate(t))
	require.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "scanning inventory allocations")

	mock.ExpectQuery(`FROM weddings w JOIN seating_tables`).
		WillReturnRows(sqlmock.NewRows([]string{"wedding_id", "table_id", "package_id", "name", "selling_price", "unit_cost"}).
			AddRow(int64(1), int64(10), int64(100), "Gold", 1.0, 1.0).
			RowError(0, errors.New("connection reset")))
	_, err = repo.ListPackageAssignments(context.Background(), marchPredicate(t))
	require.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection reset")

	require.NoError(t, mock.ExpectationsWereMet())
}
