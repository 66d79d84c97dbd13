package reporting

import (
	"sort"

	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

// BuildMenuUsageReport reports per menu item quantities served, with margins and
// the change against the previous period. Items only served in the previous period
// are listed with zero current usage.
func BuildMenuUsageReport(period Period, current, previous Ledger) models.MenuUsageReport {
	cur := totalMenuItems(current.MenuItems)
	prev := totalMenuItems(previous.MenuItems)

	prevByID := make(map[int64]*menuItemTotals, len(prev))
	for _, p := range prev {
		prevByID[p.id] = p
	}
	seen := make(map[int64]struct{}, len(cur))
	for _, c := range cur {
		seen[c.id] = struct{}{}
	}
	for _, p := range prev {
		if _, ok := seen[p.id]; !ok {
			cur = append(cur, &menuItemTotals{id: p.id, name: p.name, quantity: decimal.Zero, revenue: decimal.Zero, cost: decimal.Zero})
		}
	}
	sort.SliceStable(cur, func(i, j int) bool {
		if !cur[i].quantity.Equal(cur[j].quantity) {
			return cur[i].quantity.GreaterThan(cur[j].quantity)
		}
		return lessByName(cur[i].name, cur[i].id, cur[j].name, cur[j].id)
	})

	var totalQty, totalRevenue, totalCost, prevQty decimal.Decimal
	items := make([]models.MenuItemUsage, 0, len(cur))
	for _, c := range cur {
		prevQuantity := decimal.Zero
		if p, ok := prevByID[c.id]; ok {
			prevQuantity = p.quantity
		}
		totalQty = totalQty.Add(c.quantity)
		totalRevenue = totalRevenue.Add(c.revenue)
		totalCost = totalCost.Add(c.cost)
		prevQty = prevQty.Add(prevQuantity)

		items = append(items, models.MenuItemUsage{
			MenuItemID:            c.id,
			Name:                  c.name,
			Quantity:              Quantity(c.quantity),
			PackageAssignments:    c.assignments,
			Revenue:               Money(c.revenue),
			Cost:                  Money(c.cost),
			Margin:                Money(Margin(c.revenue, c.cost)),
			MarginPercent:         Money(MarginPercent(c.revenue, c.cost)),
			PreviousQuantity:      Quantity(prevQuantity),
			QuantityChangePercent: Money(PercentChange(c.quantity, prevQuantity)),
		})
	}

	return models.MenuUsageReport{
		Period:                string(period.Granularity),
		Value:                 period.Value,
		PreviousPeriod:        previousRef(period),
		TotalQuantity:         Quantity(totalQty),
		TotalRevenue:          Money(totalRevenue),
		TotalCost:             Money(totalCost),
		TotalMargin:           Money(Margin(totalRevenue, totalCost)),
		PreviousTotalQuantity: Quantity(prevQty),
		QuantityChangePercent: Money(PercentChange(totalQty, prevQty)),
		Items:                 items,
	}
}

type inventoryTotals struct {
	id       int64
	name     string
	quantity decimal.Decimal
	value    decimal.Decimal
	weddings map[int64]struct{}
}

func totalAllocations(rows []models.InventoryAllocationRow) ([]*inventoryTotals, map[int64]*inventoryTotals) {
	byID := make(map[int64]*inventoryTotals)
	out := make([]*inventoryTotals, 0)
	for _, r := range rows {
		t, ok := byID[r.InventoryItemID]
		if !ok {
			t = &inventoryTotals{id: r.InventoryItemID, name: r.ItemName, quantity: decimal.Zero, value: decimal.Zero, weddings: make(map[int64]struct{})}
			byID[r.InventoryItemID] = t
			out = append(out, t)
		}
		t.quantity = t.quantity.Add(Amount(r.QuantityUsed))
		t.value = t.value.Add(LineTotal(r.UnitRentalCost, r.QuantityUsed))
		t.weddings[r.WeddingID] = struct{}{}
	}
	return out, byID
}

type ingredientTotals struct {
	id       int64
	name     string
	unit     string
	quantity decimal.Decimal
}

// totalIngredients rolls consumption up per ingredient: quantity needed per menu item
// times the menu item quantity, summed over every package assignment serving it.
func totalIngredients(rows []models.IngredientConsumptionRow) ([]*ingredientTotals, map[int64]*ingredientTotals) {
	byID := make(map[int64]*ingredientTotals)
	out := make([]*ingredientTotals, 0)
	for _, r := range rows {
		t, ok := byID[r.IngredientID]
		if !ok {
			t = &ingredientTotals{id: r.IngredientID, name: r.IngredientName, unit: r.Unit, quantity: decimal.Zero}
			byID[r.IngredientID] = t
			out = append(out, t)
		}
		t.quantity = t.quantity.Add(LineTotal(r.QuantityNeeded, r.MenuItemQuantity))
	}
	return out, byID
}

// BuildInventoryUsageReport reports equipment allocations and ingredient consumption.
func BuildInventoryUsageReport(period Period, current, previous Ledger) models.InventoryUsageReport {
	curItems, curItemsByID := totalAllocations(current.Allocations)
	prevItems, prevItemsByID := totalAllocations(previous.Allocations)
	for _, p := range prevItems {
		if _, ok := curItemsByID[p.id]; !ok {
			curItems = append(curItems, &inventoryTotals{id: p.id, name: p.name, quantity: decimal.Zero, value: decimal.Zero})
		}
	}
	sort.SliceStable(curItems, func(i, j int) bool {
		if !curItems[i].quantity.Equal(curItems[j].quantity) {
			return curItems[i].quantity.GreaterThan(curItems[j].quantity)
		}
		return lessByName(curItems[i].name, curItems[i].id, curItems[j].name, curItems[j].id)
	})

	var totalQty, totalValue, prevQty decimal.Decimal
	items := make([]models.InventoryItemUsage, 0, len(curItems))
	for _, c := range curItems {
		prevQuantity := decimal.Zero
		if p, ok := prevItemsByID[c.id]; ok {
			prevQuantity = p.quantity
		}
		totalQty = totalQty.Add(c.quantity)
		totalValue = totalValue.Add(c.value)
		prevQty = prevQty.Add(prevQuantity)

		items = append(items, models.InventoryItemUsage{
			InventoryItemID:       c.id,
			Name:                  c.name,
			QuantityUsed:          Quantity(c.quantity),
			WeddingCount:          len(c.weddings),
			RentalValue:           Money(c.value),
			PreviousQuantityUsed:  Quantity(prevQuantity),
			QuantityChangePercent: Money(PercentChange(c.quantity, prevQuantity)),
		})
	}

	curIngredients, curIngredientsByID := totalIngredients(current.Ingredients)
	prevIngredients, prevIngredientsByID := totalIngredients(previous.Ingredients)
	for _, p := range prevIngredients {
		if _, ok := curIngredientsByID[p.id]; !ok {
			curIngredients = append(curIngredients, &ingredientTotals{id: p.id, name: p.name, unit: p.unit, quantity: decimal.Zero})
		}
	}
	sort.SliceStable(curIngredients, func(i, j int) bool {
		if !curIngredients[i].quantity.Equal(curIngredients[j].quantity) {
			return curIngredients[i].quantity.GreaterThan(curIngredients[j].quantity)
		}
		return lessByName(curIngredients[i].name, curIngredients[i].id, curIngredients[j].name, curIngredients[j].id)
	})

	ingredients := make([]models.IngredientUsage, 0, len(curIngredients))
	for _, c := range curIngredients {
		prevQuantity := decimal.Zero
		if p, ok := prevIngredientsByID[c.id]; ok {
			prevQuantity = p.quantity
		}
		ingredients = append(ingredients, models.IngredientUsage{
			IngredientID:             c.id,
			Name:                     c.name,
			Unit:                     c.unit,
			QuantityConsumed:         Quantity(c.quantity),
			PreviousQuantityConsumed: Quantity(prevQuantity),
			ChangePercent:            Money(PercentChange(c.quantity, prevQuantity)),
		})
	}

	return models.InventoryUsageReport{
		Period:                    string(period.Granularity),
		Value:                     period.Value,
		PreviousPeriod:            previousRef(period),
		TotalQuantityUsed:         Quantity(totalQty),
		TotalRentalValue:          Money(totalValue),
		PreviousTotalQuantityUsed: Quantity(prevQty),
		QuantityChangePercent:     Money(PercentChange(totalQty, prevQty)),
		Items:                     items,
		Ingredients:               ingredients,
	}
}
