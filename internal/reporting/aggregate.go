package reporting

import (
	"math"

	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amount converts a column value to a decimal, treating NaN and infinities as zero.
func Amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Nullable converts a nullable column value to a decimal; NULL counts as zero.
func Nullable(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return Amount(*v)
}

// Sum adds field over rows.
func Sum[T any](rows []T, field func(T) float64) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(Amount(field(r)))
	}
	return total
}

// SumNullable adds a nullable field over rows.
func SumNullable[T any](rows []T, field func(T) *float64) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(Nullable(field(r)))
	}
	return total
}

// Avg averages field over rows; an empty set averages to zero.
func Avg[T any](rows []T, field func(T) float64) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return Sum(rows, field).Div(decimal.NewFromInt(int64(len(rows))))
}

// Count returns the number of rows.
func Count[T any](rows []T) int {
	return len(rows)
}

// PercentChange is the relative change from previous to current, in percent.
// Without a baseline (previous == 0) the change is reported as 0.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// Margin is selling price minus cost.
func Margin(selling, cost decimal.Decimal) decimal.Decimal {
	return selling.Sub(cost)
}

// MarginPercent is the margin as a share of the selling price; 0 when nothing was sold.
func MarginPercent(selling, cost decimal.Decimal) decimal.Decimal {
	if !selling.IsPositive() {
		return decimal.Zero
	}
	return Margin(selling, cost).Div(selling).Mul(hundred)
}

// Percentage returns part/whole*100, or 0 when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Money rounds a currency or percentage amount to cents for the payload.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Quantity rounds a unit count for the payload.
func Quantity(d decimal.Decimal) float64 {
	return d.Round(3).InexactFloat64()
}

// Revenue is the revenue of a set of weddings split by source.
type Revenue struct {
	PackageRevenue   decimal.Decimal
	EquipmentRevenue decimal.Decimal
	Total            decimal.Decimal
}

// Costs are the costs incurred by a set of weddings.
type Costs struct {
	PackageCost decimal.Decimal
	FoodCost    decimal.Decimal
	Total       decimal.Decimal
}

// RevenueOf computes revenue for weddings. Only package assignments that belong
// to one of the weddings are counted.
func RevenueOf(weddings []models.WeddingInvoiceRow, packages []models.PackageAssignmentRow) Revenue {
	assigned := packagesOf(weddings, packages)
	r := Revenue{
		PackageRevenue:   Sum(assigned, func(p models.PackageAssignmentRow) float64 { return p.SellingPrice }),
		EquipmentRevenue: SumNullable(weddings, func(w models.WeddingInvoiceRow) *float64 { return w.EquipmentRentalCost }),
	}
	r.Total = r.PackageRevenue.Add(r.EquipmentRevenue)
	return r
}

// CostsOf computes the costs carried by weddings.
func CostsOf(weddings []models.WeddingInvoiceRow, packages []models.PackageAssignmentRow) Costs {
	assigned := packagesOf(weddings, packages)
	c := Costs{
		PackageCost: Sum(assigned, func(p models.PackageAssignmentRow) float64 { return p.UnitCost }),
		FoodCost:    SumNullable(weddings, func(w models.WeddingInvoiceRow) *float64 { return w.FoodCost }),
	}
	c.Total = c.PackageCost.Add(c.FoodCost)
	return c
}

// packagesOf keeps the assignments whose wedding is in weddings, preserving order.
func packagesOf(weddings []models.WeddingInvoiceRow, packages []models.PackageAssignmentRow) []models.PackageAssignmentRow {
	ids := make(map[int64]struct{}, len(weddings))
	for _, w := range weddings {
		ids[w.WeddingID] = struct{}{}
	}
	out := make([]models.PackageAssignmentRow, 0, len(packages))
	for _, p := range packages {
		if _, ok := ids[p.WeddingID]; ok {
			out = append(out, p)
		}
	}
	return out
}
