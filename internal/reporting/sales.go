package reporting

import (
	"sort"

	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

type packageTotals struct {
	id      int64
	name    string
	sold    int
	revenue decimal.Decimal
	cost    decimal.Decimal
}

type menuItemTotals struct {
	id          int64
	name        string
	quantity    decimal.Decimal
	assignments int
	revenue     decimal.Decimal
	cost        decimal.Decimal
}

// BuildSalesReport assembles the sales summary for period, comparing against previous.
func BuildSalesReport(period Period, current, previous Ledger, topN int) models.SalesReport {
	if topN <= 0 {
		topN = DefaultTopN
	}

	revenue := RevenueOf(current.Weddings, current.Packages)
	costs := CostsOf(current.Weddings, current.Packages)
	profit := ProfitOf(revenue, costs)
	prevRevenue := RevenueOf(previous.Weddings, previous.Packages)
	weddings := Count(current.Weddings)
	prevWeddings := Count(previous.Weddings)

	report := models.SalesReport{
		Period:                    string(period.Granularity),
		Value:                     period.Value,
		PreviousPeriod:            previousRef(period),
		TotalRevenue:              Money(revenue.Total),
		TotalCost:                 Money(costs.Total),
		NetProfit:                 Money(profit.NetIncome),
		ProfitMarginPercent:       Money(profit.NetMarginPercent),
		WeddingCount:              weddings,
		AverageRevenuePerWedding:  Money(PerUnit(revenue.Total, weddings)),
		PreviousRevenue:           Money(prevRevenue.Total),
		RevenueChangePercent:      Money(PercentChange(revenue.Total, prevRevenue.Total)),
		PreviousWeddingCount:      prevWeddings,
		WeddingCountChangePercent: Money(countChange(weddings, prevWeddings)),
		TopPackages:               make([]models.PackageSales, 0, topN),
		TopMenuItems:              make([]models.MenuItemSales, 0, topN),
	}

	packages := rankPackages(packagesOf(current.Weddings, current.Packages))
	for i, p := range packages {
		if i == topN {
			break
		}
		report.TopPackages = append(report.TopPackages, models.PackageSales{
			PackageID:     p.id,
			Name:          p.name,
			TimesSold:     p.sold,
			Revenue:       Money(p.revenue),
			Cost:          Money(p.cost),
			Margin:        Money(Margin(p.revenue, p.cost)),
			MarginPercent: Money(MarginPercent(p.revenue, p.cost)),
		})
	}

	items := totalMenuItems(current.MenuItems)
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].revenue.Equal(items[j].revenue) {
			return items[i].revenue.GreaterThan(items[j].revenue)
		}
		return lessByName(items[i].name, items[i].id, items[j].name, items[j].id)
	})
	for i, m := range items {
		if i == topN {
			break
		}
		report.TopMenuItems = append(report.TopMenuItems, models.MenuItemSales{
			MenuItemID:    m.id,
			Name:          m.name,
			QuantitySold:  Quantity(m.quantity),
			Revenue:       Money(m.revenue),
			Cost:          Money(m.cost),
			Margin:        Money(Margin(m.revenue, m.cost)),
			MarginPercent: Money(MarginPercent(m.revenue, m.cost)),
		})
	}

	return report
}

// rankPackages groups assignments by package, ordered by revenue descending.
func rankPackages(rows []models.PackageAssignmentRow) []*packageTotals {
	byID := make(map[int64]*packageTotals)
	out := make([]*packageTotals, 0)
	for _, r := range rows {
		t, ok := byID[r.PackageID]
		if !ok {
			t = &packageTotals{id: r.PackageID, name: r.PackageName, revenue: decimal.Zero, cost: decimal.Zero}
			byID[r.PackageID] = t
			out = append(out, t)
		}
		t.sold++
		t.revenue = t.revenue.Add(Amount(r.SellingPrice))
		t.cost = t.cost.Add(Amount(r.UnitCost))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].revenue.Equal(out[j].revenue) {
			return out[i].revenue.GreaterThan(out[j].revenue)
		}
		return lessByName(out[i].name, out[i].id, out[j].name, out[j].id)
	})
	return out
}

// totalMenuItems groups menu item assignments by item. Quantities, revenue and
// cost are counted per assignment quantity. Order follows first appearance.
func totalMenuItems(rows []models.MenuItemAssignmentRow) []*menuItemTotals {
	byID := make(map[int64]*menuItemTotals)
	out := make([]*menuItemTotals, 0)
	for _, r := range rows {
		t, ok := byID[r.MenuItemID]
		if !ok {
			t = &menuItemTotals{id: r.MenuItemID, name: r.MenuItemName, quantity: decimal.Zero, revenue: decimal.Zero, cost: decimal.Zero}
			byID[r.MenuItemID] = t
			out = append(out, t)
		}
		t.assignments++
		t.quantity = t.quantity.Add(Amount(r.Quantity))
		t.revenue = t.revenue.Add(LineTotal(r.SellingPrice, r.Quantity))
		t.cost = t.cost.Add(LineTotal(r.UnitCost, r.Quantity))
	}
	return out
}

func lessByName(nameA string, idA int64, nameB string, idB int64) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}
