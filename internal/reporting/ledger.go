package reporting

import (
	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopN is how many packages and menu items a sales report ranks.
const DefaultTopN = 5

// Ledger bundles the rows fetched for one period predicate.
// Assemblers only read the row sets their report needs.
type Ledger struct {
	Weddings    []models.WeddingInvoiceRow
	Packages    []models.PackageAssignmentRow
	MenuItems   []models.MenuItemAssignmentRow
	Allocations []models.InventoryAllocationRow
	Ingredients []models.IngredientConsumptionRow
}

// Profitability derives profit figures from revenue and costs.
// Sales and financial statements both read these values.
type Profitability struct {
	GrossProfit        decimal.Decimal
	GrossMarginPercent decimal.Decimal
	NetIncome          decimal.Decimal
	NetMarginPercent   decimal.Decimal
}

// ProfitOf computes profitability. Gross profit is revenue less package costs;
// net income additionally deducts food costs.
func ProfitOf(r Revenue, c Costs) Profitability {
	return Profitability{
		GrossProfit:        Margin(r.Total, c.PackageCost),
		GrossMarginPercent: MarginPercent(r.Total, c.PackageCost),
		NetIncome:          Margin(r.Total, c.Total),
		NetMarginPercent:   MarginPercent(r.Total, c.Total),
	}
}

// Collections sums invoice lines.
type Collections struct {
	Invoiced    decimal.Decimal
	Collected   decimal.Decimal
	Outstanding decimal.Decimal
}

// CollectionsOf totals recomputed invoices of a ledger.
func CollectionsOf(l Ledger) Collections {
	c := Collections{Invoiced: decimal.Zero, Collected: decimal.Zero, Outstanding: decimal.Zero}
	for _, line := range InvoiceLines(l.Weddings, l.Packages) {
		c.Invoiced = c.Invoiced.Add(line.Total)
		c.Collected = c.Collected.Add(line.Collected)
		c.Outstanding = c.Outstanding.Add(line.Outstanding)
	}
	return c
}

// NetCashFlowOf is cash collected less every cost incurred.
func NetCashFlowOf(l Ledger) decimal.Decimal {
	return CollectionsOf(l).Collected.Sub(CostsOf(l.Weddings, l.Packages).Total)
}

// PerUnit divides total evenly across n units; zero units yield zero.
func PerUnit(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n)))
}

// LineTotal multiplies a unit price by a quantity.
func LineTotal(price, quantity float64) decimal.Decimal {
	return Amount(price).Mul(Amount(quantity))
}

func previousRef(p Period) *models.PeriodRef {
	prev, ok := p.Previous()
	if !ok {
		return nil
	}
	return &models.PeriodRef{Period: string(prev.Granularity), Value: prev.Value}
}

func countChange(current, previous int) decimal.Decimal {
	return PercentChange(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
