package reporting

import (
	"time"

	"wedding_venue_backend/internal/models"

	"github.com/shopspring/decimal"
)

// PaymentTermDays is how many days before the wedding an invoice falls due.
const PaymentTermDays = 30

// AgingBucket identifies one aging bucket.
type AgingBucket string

const (
	BucketCurrent AgingBucket = "current"
	Bucket31To60  AgingBucket = "31-60"
	Bucket61To90  AgingBucket = "61-90"
	BucketOver90  AgingBucket = "over-90"
)

// Aging is the due-date classification of one invoice.
type Aging struct {
	DueDate     time.Time
	DaysOverdue int
	Bucket      AgingBucket
}

// Classify computes the due date, whole days overdue as of asOf, and the bucket.
// DaysOverdue is negative for invoices not yet due; those age as current.
func Classify(weddingDate, asOf time.Time) Aging {
	due := calendarDate(weddingDate).AddDate(0, 0, -PaymentTermDays)
	days := int(calendarDate(asOf).Sub(due).Hours() / 24)
	return Aging{DueDate: due, DaysOverdue: days, Bucket: BucketFor(days)}
}

// BucketFor maps days overdue onto a bucket.
func BucketFor(daysOverdue int) AgingBucket {
	switch {
	case daysOverdue <= 30:
		return BucketCurrent
	case daysOverdue <= 60:
		return Bucket31To60
	case daysOverdue <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}

// AgedInvoice is an outstanding invoice with its aging.
type AgedInvoice struct {
	InvoiceLine
	Aging
}

// AgingSummary accumulates outstanding invoices per bucket.
type AgingSummary struct {
	Total   decimal.Decimal
	Buckets map[AgingBucket]*AgingTotals
}

// AgingTotals is the running total of one bucket.
type AgingTotals struct {
	Amount decimal.Decimal
	Items  []AgedInvoice
}

// Share returns the bucket amount as a percentage of the summary total.
func (s AgingSummary) Share(b AgingBucket) decimal.Decimal {
	return Percentage(s.Buckets[b].Amount, s.Total)
}

// BucketOrder lists the buckets in reporting order.
var BucketOrder = []AgingBucket{BucketCurrent, Bucket31To60, Bucket61To90, BucketOver90}

// AgeInvoices buckets every invoice that is not fully paid. Paid invoices are skipped entirely.
func AgeInvoices(lines []InvoiceLine, asOf time.Time) AgingSummary {
	summary := AgingSummary{Total: decimal.Zero, Buckets: make(map[AgingBucket]*AgingTotals, len(BucketOrder))}
	for _, b := range BucketOrder {
		summary.Buckets[b] = &AgingTotals{Amount: decimal.Zero}
	}

	for _, line := range lines {
		if line.Status == models.PaymentStatusPaid {
			continue
		}
		aging := Classify(line.Wedding.WeddingDate, asOf)
		bucket := summary.Buckets[aging.Bucket]
		bucket.Amount = bucket.Amount.Add(line.Outstanding)
		bucket.Items = append(bucket.Items, AgedInvoice{InvoiceLine: line, Aging: aging})
		summary.Total = summary.Total.Add(line.Outstanding)
	}
	return summary
}
