// Package usecase contains the business logic for the cheapest-trip search:
// the two-phase orchestrator, the monthly price aggregation and the airline
// name resolver.
package usecase

import (
	"time"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// AggregateMonthly reduces a flat sequence of dated offers into the cheapest
// offer per calendar month plus the single overall-cheapest record.
//
// Processing is a single linear scan. A record replaces the current holder
// for its month, and separately the overall holder, only on strictly lower
// price, so on equal prices the first record encountered wins. Records with
// an unparsable date or a missing/non-positive price are skipped without
// aborting the scan.
func AggregateMonthly(records []domain.DatedOffer) domain.MonthlySummary {
	summary := domain.MonthlySummary{
		Months: make(map[string]domain.DatedOffer),
	}

	for _, rec := range records {
		date, err := time.Parse("2006-01-02", rec.DepartureDate)
		if err != nil {
			continue
		}
		if !rec.Offer.Price.IsValid() {
			continue
		}

		monthKey := date.Format(domain.MonthKeyLayout)

		if holder, ok := summary.Months[monthKey]; !ok || rec.Offer.Price.Amount < holder.Offer.Price.Amount {
			summary.Months[monthKey] = rec
		}

		if summary.Overall == nil || rec.Offer.Price.Amount < summary.Overall.Offer.Price.Amount {
			r := rec
			summary.Overall = &r
		}
	}

	return summary
}

// candidatesAsRecords wraps indicative candidate dates as dated offers so the
// same monthly aggregation serves both the candidate price trend and the
// confirmed offers.
func candidatesAsRecords(candidates []domain.CandidateDate) []domain.DatedOffer {
	records := make([]domain.DatedOffer, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, domain.DatedOffer{
			DepartureDate: c.DepartureDate,
			Offer:         domain.Offer{Price: c.Price},
		})
	}
	return records
}
