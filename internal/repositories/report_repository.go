package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"wedding_venue_backend/internal/models"
	"wedding_venue_backend/internal/reporting"
)

// ReportRepository defines the read-only ledger queries the reporting engine consumes.
// Every method projects rows scoped by the predicate; none of them aggregate.
type ReportRepository interface {
	ListWeddingInvoices(ctx context.Context, pred reporting.Predicate) ([]models.WeddingInvoiceRow, error)
	ListPackageAssignments(ctx context.Context, pred reporting.Predicate) ([]models.PackageAssignmentRow, error)
	ListMenuItemAssignments(ctx context.Context, pred reporting.Predicate) ([]models.MenuItemAssignmentRow, error)
	ListInventoryAllocations(ctx context.Context, pred reporting.Predicate) ([]models.InventoryAllocationRow, error)
	ListIngredientConsumption(ctx context.Context, pred reporting.Predicate) ([]models.IngredientConsumptionRow, error)
}

type reportRepository struct {
	db Querier
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db Querier) ReportRepository {
	return &reportRepository{db: db}
}

const weddingDateColumn = "w.wedding_date"

const listWeddingInvoicesQuery = `
	SELECT
		w.id,
		COALESCE(c.partner1_name || ' & ' || c.partner2_name, c.partner1_name, ''),
		w.wedding_date,
		w.equipment_rental_cost,
		w.food_cost,
		w.total_cost,
		w.payment_status
	FROM weddings w
	LEFT JOIN couples c ON w.couple_id = c.id
	WHERE %s
	ORDER BY w.wedding_date, w.id`

const listPackageAssignmentsQuery = `
	SELECT w.id, st.id, p.id, p.name, p.selling_price, p.unit_cost
	FROM weddings w
	JOIN seating_tables st ON st.wedding_id = w.id
	JOIN packages p ON st.package_id = p.id
	WHERE %s
	ORDER BY w.wedding_date, w.id, st.id`

const listMenuItemAssignmentsQuery = `
	SELECT w.id, st.id, p.id, mi.id, mi.name, pmi.quantity, mi.unit_cost, mi.selling_price
	FROM weddings w
	JOIN seating_tables st ON st.wedding_id = w.id
	JOIN packages p ON st.package_id = p.id
	JOIN package_menu_items pmi ON pmi.package_id = p.id
	JOIN menu_items mi ON pmi.menu_item_id = mi.id
	WHERE %s
	ORDER BY w.wedding_date, w.id, st.id, mi.id`

const listInventoryAllocationsQuery = `
	SELECT w.id, ii.id, ii.name, ia.quantity_used, ii.unit_rental_cost
	FROM weddings w
	JOIN inventory_allocations ia ON ia.wedding_id = w.id
	JOIN inventory_items ii ON ia.inventory_item_id = ii.id
	WHERE %s
	ORDER BY w.wedding_date, w.id, ia.id`

const listIngredientConsumptionQuery = `
	SELECT ing.id, ing.name, COALESCE(ing.unit, ''), mi.id, r.quantity_needed, pmi.quantity
	FROM weddings w
	JOIN seating_tables st ON st.wedding_id = w.id
	JOIN package_menu_items pmi ON pmi.package_id = st.package_id
	JOIN menu_items mi ON pmi.menu_item_id = mi.id
	JOIN recipes r ON r.menu_item_id = mi.id
	JOIN ingredients ing ON r.ingredient_id = ing.id
	WHERE %s
	ORDER BY w.wedding_date, w.id, st.id, mi.id, ing.id`

// scoped renders query with the predicate applied to the wedding date.
func scoped(query string, pred reporting.Predicate) (string, []interface{}) {
	clause, args := pred.SQL(weddingDateColumn, 1)
	return fmt.Sprintf(query, clause), args
}

// queryRows runs a scoped query and scans every row with scan.
func queryRows[T any](ctx context.Context, db Querier, what, query string, pred reporting.Predicate, scan func(scanner) (T, error)) ([]T, error) {
	q, args := scoped(query, pred)
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapDBError("querying "+what, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrapDBError("scanning "+what, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("iterating "+what, err)
	}
	return out, nil
}

func (r *reportRepository) ListWeddingInvoices(ctx context.Context, pred reporting.Predicate) ([]models.WeddingInvoiceRow, error) {
	return queryRows(ctx, r.db, "wedding invoices", listWeddingInvoicesQuery, pred, func(row scanner) (models.WeddingInvoiceRow, error) {
		var w models.WeddingInvoiceRow
		var equipment, food, total sql.NullFloat64
		var status sql.NullString
		if err := row.Scan(&w.WeddingID, &w.CoupleName, &w.WeddingDate, &equipment, &food, &total, &status); err != nil {
			return w, err
		}
		w.EquipmentRentalCost = nullFloat(equipment)
		w.FoodCost = nullFloat(food)
		w.StoredTotalCost = nullFloat(total)
		if status.Valid {
			w.PaymentStatus = &status.String
		}
		return w, nil
	})
}

func (r *reportRepository) ListPackageAssignments(ctx context.Context, pred reporting.Predicate) ([]models.PackageAssignmentRow, error) {
	return queryRows(ctx, r.db, "package assignments", listPackageAssignmentsQuery, pred, func(row scanner) (models.PackageAssignmentRow, error) {
		var p models.PackageAssignmentRow
		var selling, cost sql.NullFloat64
		if err := row.Scan(&p.WeddingID, &p.TableID, &p.PackageID, &p.PackageName, &selling, &cost); err != nil {
			return p, err
		}
		p.SellingPrice = selling.Float64
		p.UnitCost = cost.Float64
		return p, nil
	})
}

func (r *reportRepository) ListMenuItemAssignments(ctx context.Context, pred reporting.Predicate) ([]models.MenuItemAssignmentRow, error) {
	return queryRows(ctx, r.db, "menu item assignments", listMenuItemAssignmentsQuery, pred, func(row scanner) (models.MenuItemAssignmentRow, error) {
		var m models.MenuItemAssignmentRow
		var qty, cost, selling sql.NullFloat64
		if err := row.Scan(&m.WeddingID, &m.TableID, &m.PackageID, &m.MenuItemID, &m.MenuItemName, &qty, &cost, &selling); err != nil {
			return m, err
		}
		m.Quantity = qty.Float64
		m.UnitCost = cost.Float64
		m.SellingPrice = selling.Float64
		return m, nil
	})
}

func (r *reportRepository) ListInventoryAllocations(ctx context.Context, pred reporting.Predicate) ([]models.InventoryAllocationRow, error) {
	return queryRows(ctx, r.db, "inventory allocations", listInventoryAllocationsQuery, pred, func(row scanner) (models.InventoryAllocationRow, error) {
		var a models.InventoryAllocationRow
		var qty, rental sql.NullFloat64
		if err := row.Scan(&a.WeddingID, &a.InventoryItemID, &a.ItemName, &qty, &rental); err != nil {
			return a, err
		}
		a.QuantityUsed = qty.Float64
		a.UnitRentalCost = rental.Float64
		return a, nil
	})
}

func (r *reportRepository) ListIngredientConsumption(ctx context.Context, pred reporting.Predicate) ([]models.IngredientConsumptionRow, error) {
	return queryRows(ctx, r.db, "ingredient consumption", listIngredientConsumptionQuery, pred, func(row scanner) (models.IngredientConsumptionRow, error) {
		var i models.IngredientConsumptionRow
		var needed, qty sql.NullFloat64
		if err := row.Scan(&i.IngredientID, &i.IngredientName, &i.Unit, &i.MenuItemID, &needed, &qty); err != nil {
			return i, err
		}
		i.QuantityNeeded = needed.Float64
		i.MenuItemQuantity = qty.Float64
		return i, nil
	})
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
