package reporting

import (
	"math"
	"testing"

	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmountTreatsNonFiniteAsZero(t *testing.T) {
	assert.True(t, Amount(math.NaN()).IsZero())
	assert.True(t, Amount(math.Inf(1)).IsZero())
	assert.True(t, Amount(math.Inf(-1)).IsZero())
	assert.True(t, Nullable(nil).IsZero())
	assert.Equal(t, "12.5", Nullable(ptr(12.5)).String())
}

func TestSumAvgCount(t *testing.T) {
	rows := []float64{0.1, 0.2, math.NaN(), 0.3}
	id := func(v float64) float64 { return v }

	assert.Equal(t, "0.6", Sum(rows, id).String())
	assert.Equal(t, "0.15", Avg(rows, id).String())
	assert.Equal(t, 4, Count(rows))

	assert.True(t, Sum([]float64{}, id).IsZero())
	assert.True(t, Avg([]float64{}, id).IsZero())
	assert.Equal(t, 0, Count([]float64(nil)))

	nullable := []*float64{ptr(1.25), nil, ptr(2.0)}
	assert.Equal(t, "3.25", SumNullable(nullable, func(v *float64) *float64 { return v }).String())
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		current, previous, want string
	}{
		{"0", "0", "0"},
		{"100", "0", "0"},
		{"0", "100", "-100"},
		{"150", "100", "50"},
		{"75", "100", "-25"},
		{"-50", "-100", "-50"},
	}
	for _, tt := range tests {
		got := PercentChange(dec(tt.current), dec(tt.previous))
		assert.True(t, got.Equal(dec(tt.want)), "PercentChange(%s, %s) = %s, want %s", tt.current, tt.previous, got, tt.want)
	}
}

func TestMarginAndPercentages(t *testing.T) {
	assert.Equal(t, "50", Margin(dec("200"), dec("150")).String())
	assert.Equal(t, "-10", Margin(dec("0"), dec("10")).String())

	assert.True(t, MarginPercent(dec("200"), dec("150")).Equal(dec("25")))
	assert.True(t, MarginPercent(dec("0"), dec("10")).IsZero())
	assert.True(t, MarginPercent(dec("-5"), dec("10")).IsZero())

	assert.True(t, Percentage(dec("5"), dec("0")).IsZero())
	assert.Equal(t, 33.33, Money(Percentage(dec("1"), dec("3"))))
}

func TestMoneyAndQuantityRounding(t *testing.T) {
	assert.Equal(t, 10.01, Money(dec("10.005")))
	assert.Equal(t, -2.68, Money(dec("-2.675")))
	assert.Equal(t, 0.0, Money(decimal.Decimal{}))
	assert.Equal(t, 1.235, Quantity(dec("1.2345")))
}

func TestRevenueAndCostsOnlyCountWeddingsInSet(t *testing.T) {
	l := marchLedger(t)
	stray := append(l.Packages, pkg(99, 990, 100, "Gold", 2500, 1200))

	r := RevenueOf(l.Weddings, stray)
	assert.True(t, r.PackageRevenue.Equal(dec("7800")), r.PackageRevenue.String())
	assert.True(t, r.EquipmentRevenue.Equal(dec("1500")), r.EquipmentRevenue.String())
	assert.True(t, r.Total.Equal(dec("9300")), r.Total.String())

	c := CostsOf(l.Weddings, stray)
	assert.True(t, c.PackageCost.Equal(dec("3700")), c.PackageCost.String())
	assert.True(t, c.FoodCost.Equal(dec("2600")), c.FoodCost.String())
	assert.True(t, c.Total.Equal(dec("6300")), c.Total.String())
}

func TestRevenueOfNullColumns(t *testing.T) {
	weddings := []models.WeddingInvoiceRow{{WeddingID: 1}}
	r := RevenueOf(weddings, nil)
	c := CostsOf(weddings, nil)
	assert.True(t, r.Total.IsZero())
	assert.True(t, c.Total.IsZero())
}
