package reporting

import (
	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

// PartialPaymentRatio is the share of an invoice assumed collected when its status is "partial".
// There is no payments ledger, so the real collected amount is unknown; this is an approximation.
const PartialPaymentRatio = 0.5

var partialRatio = decimal.NewFromFloat(PartialPaymentRatio)

// Balance splits an invoice total into collected and outstanding amounts.
type Balance struct {
	Collected   decimal.Decimal
	Outstanding decimal.Decimal
}

// Outstanding applies the payment status policy to an invoice total.
// Collected + Outstanding always equals total.
func Outstanding(total decimal.Decimal, status models.PaymentStatus) Balance {
	switch status {
	case models.PaymentStatusPaid:
		return Balance{Collected: total, Outstanding: decimal.Zero}
	case models.PaymentStatusPartial:
		collected := total.Mul(partialRatio)
		return Balance{Collected: collected, Outstanding: total.Sub(collected)}
	default:
		return Balance{Collected: decimal.Zero, Outstanding: total}
	}
}

// InvoiceTotal recomputes a wedding's invoice total as its equipment rental cost
// plus the selling price of every package assigned to it. The stored total is ignored.
func InvoiceTotal(wedding models.WeddingInvoiceRow, packages []models.PackageAssignmentRow) decimal.Decimal {
	total := Nullable(wedding.EquipmentRentalCost)
	for _, p := range packages {
		if p.WeddingID == wedding.WeddingID {
			total = total.Add(Amount(p.SellingPrice))
		}
	}
	return total
}

// InvoiceLine is a wedding with its recomputed total and balance.
type InvoiceLine struct {
	Wedding models.WeddingInvoiceRow
	Status  models.PaymentStatus
	Total   decimal.Decimal
	Balance
}

// InvoiceLines computes an InvoiceLine for each wedding, in input order.
func InvoiceLines(weddings []models.WeddingInvoiceRow, packages []models.PackageAssignmentRow) []InvoiceLine {
	byWedding := make(map[int64][]models.PackageAssignmentRow, len(weddings))
	for _, p := range packages {
		byWedding[p.WeddingID] = append(byWedding[p.WeddingID], p)
	}

	lines := make([]InvoiceLine, 0, len(weddings))
	for _, w := range weddings {
		total := InvoiceTotal(w, byWedding[w.WeddingID])
		status := w.Status()
		lines = append(lines, InvoiceLine{
			Wedding: w,
			Status:  status,
			Total:   total,
			Balance: Outstanding(total, status),
		})
	}
	return lines
}
