package reporting

import (
	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

var statusOrder = []models.PaymentStatus{
	models.PaymentStatusPaid,
	models.PaymentStatusPartial,
	models.PaymentStatusPending,
	models.PaymentStatusUnknown,
}

type statusTotals struct {
	count int
	Collections
}

// BuildPaymentsReport assembles invoiced/collected/outstanding amounts by payment status.
func BuildPaymentsReport(period Period, current, previous Ledger) models.PaymentsReport {
	lines := InvoiceLines(current.Weddings, current.Packages)
	totals := CollectionsOf(current)
	prevCollected := CollectionsOf(previous).Collected

	byStatus := make(map[models.PaymentStatus]*statusTotals, len(statusOrder))
	for _, s := range statusOrder {
		byStatus[s] = &statusTotals{Collections: Collections{Invoiced: decimal.Zero, Collected: decimal.Zero, Outstanding: decimal.Zero}}
	}

	report := models.PaymentsReport{
		Period:                 string(period.Granularity),
		Value:                  period.Value,
		PreviousPeriod:         previousRef(period),
		TotalInvoiced:          Money(totals.Invoiced),
		TotalCollected:         Money(totals.Collected),
		TotalOutstanding:       Money(totals.Outstanding),
		CollectionRatePercent:  Money(Percentage(totals.Collected, totals.Invoiced)),
		PartialPaymentRatio:    PartialPaymentRatio,
		ByStatus:               make([]models.PaymentStatusSummary, 0, len(statusOrder)),
		Invoices:               make([]models.InvoiceBalance, 0, len(lines)),
		PreviousCollected:      Money(prevCollected),
		CollectedChangePercent: Money(PercentChange(totals.Collected, prevCollected)),
	}

	for _, line := range lines {
		t := byStatus[line.Status]
		t.count++
		t.Invoiced = t.Invoiced.Add(line.Total)
		t.Collected = t.Collected.Add(line.Collected)
		t.Outstanding = t.Outstanding.Add(line.Outstanding)

		report.Invoices = append(report.Invoices, models.InvoiceBalance{
			WeddingID:     line.Wedding.WeddingID,
			CoupleName:    line.Wedding.CoupleName,
			WeddingDate:   line.Wedding.WeddingDate.Format(dayLayout),
			PaymentStatus: string(line.Status),
			InvoiceTotal:  Money(line.Total),
			Collected:     Money(line.Collected),
			Outstanding:   Money(line.Outstanding),
		})
	}

	for _, s := range statusOrder {
		t := byStatus[s]
		if s == models.PaymentStatusUnknown && t.count == 0 {
			continue
		}
		report.ByStatus = append(report.ByStatus, models.PaymentStatusSummary{
			Status:      string(s),
			Count:       t.count,
			Invoiced:    Money(t.Invoiced),
			Collected:   Money(t.Collected),
			Outstanding: Money(t.Outstanding),
		})
	}

	return report
}

// BuildFinancialStatement assembles the income statement.
func BuildFinancialStatement(period Period, current, previous Ledger) models.FinancialStatement {
	revenue := RevenueOf(current.Weddings, current.Packages)
	costs := CostsOf(current.Weddings, current.Packages)
	profit := ProfitOf(revenue, costs)

	prevRevenue := RevenueOf(previous.Weddings, previous.Packages)
	prevProfit := ProfitOf(prevRevenue, CostsOf(previous.Weddings, previous.Packages))

	return models.FinancialStatement{
		Period:         string(period.Granularity),
		Value:          period.Value,
		PreviousPeriod: previousRef(period),
		Revenue: models.RevenueLines{
			PackageRevenue:   Money(revenue.PackageRevenue),
			EquipmentRevenue: Money(revenue.EquipmentRevenue),
			Total:            Money(revenue.Total),
		},
		CostOfSales:        Money(costs.PackageCost),
		GrossProfit:        Money(profit.GrossProfit),
		GrossMarginPercent: Money(profit.GrossMarginPercent),
		OperatingExpenses: models.OperatingExpenses{
			FoodCost: Money(costs.FoodCost),
			Total:    Money(costs.FoodCost),
		},
		NetIncome:              Money(profit.NetIncome),
		NetMarginPercent:       Money(profit.NetMarginPercent),
		PreviousRevenue:        Money(prevRevenue.Total),
		PreviousNetIncome:      Money(prevProfit.NetIncome),
		RevenueChangePercent:   Money(PercentChange(revenue.Total, prevRevenue.Total)),
		NetIncomeChangePercent: Money(PercentChange(profit.NetIncome, prevProfit.NetIncome)),
	}
}

// BuildCashFlowStatement assembles cash collected against costs incurred.
func BuildCashFlowStatement(period Period, current, previous Ledger) models.CashFlowStatement {
	collections := CollectionsOf(current)
	costs := CostsOf(current.Weddings, current.Packages)
	net := NetCashFlowOf(current)
	prevNet := NetCashFlowOf(previous)

	return models.CashFlowStatement{
		Period:         string(period.Granularity),
		Value:          period.Value,
		PreviousPeriod: previousRef(period),
		CashInflows: models.CashInflows{
			CollectedFromClients: Money(collections.Collected),
			Total:                Money(collections.Collected),
		},
		CashOutflows: models.CashOutflows{
			PackageCosts: Money(costs.PackageCost),
			FoodCosts:    Money(costs.FoodCost),
			Total:        Money(costs.Total),
		},
		NetCashFlow:              Money(net),
		Invoiced:                 Money(collections.Invoiced),
		ReceivablesIncrease:      Money(collections.Outstanding),
		PreviousNetCashFlow:      Money(prevNet),
		NetCashFlowChangePercent: Money(PercentChange(net, prevNet)),
	}
}
