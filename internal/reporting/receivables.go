package reporting

import (
	"sort"
	"time"

	"wedding_venue_backend/internal/models"
)

// BuildAgingReport buckets the period's unpaid invoices by days past due as of asOf.
func BuildAgingReport(period Period, current Ledger, asOf time.Time) models.AgingReport {
	summary := AgeInvoices(InvoiceLines(current.Weddings, current.Packages), asOf)

	report := models.AgingReport{
		Period:           string(period.Granularity),
		Value:            period.Value,
		AsOf:             calendarDate(asOf).Format(dayLayout),
		TotalOutstanding: Money(summary.Total),
	}

	buckets := make(map[AgingBucket]models.AgingBucket, len(BucketOrder))
	for _, b := range BucketOrder {
		totals := summary.Buckets[b]
		items := totals.Items
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].DaysOverdue != items[j].DaysOverdue {
				return items[i].DaysOverdue > items[j].DaysOverdue
			}
			return items[i].Wedding.WeddingID < items[j].Wedding.WeddingID
		})

		bucket := models.AgingBucket{
			Label:      string(b),
			Amount:     Money(totals.Amount),
			Count:      len(items),
			Percentage: Money(summary.Share(b)),
			Items:      make([]models.AgingItem, 0, len(items)),
		}
		for _, it := range items {
			bucket.Items = append(bucket.Items, models.AgingItem{
				WeddingID:     it.Wedding.WeddingID,
				CoupleName:    it.Wedding.CoupleName,
				WeddingDate:   it.Wedding.WeddingDate.Format(dayLayout),
				DueDate:       it.DueDate.Format(dayLayout),
				DaysOverdue:   it.DaysOverdue,
				PaymentStatus: string(it.Status),
				InvoiceTotal:  Money(it.Total),
				Outstanding:   Money(it.Outstanding),
			})
		}
		report.InvoiceCount += bucket.Count
		buckets[b] = bucket
	}

	report.Buckets = models.AgingBuckets{
		Current:    buckets[BucketCurrent],
		Days31To60: buckets[Bucket31To60],
		Days61To90: buckets[Bucket61To90],
		Over90:     buckets[BucketOver90],
	}
	return report
}
