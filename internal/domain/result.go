package domain

import "sort"

// MonthKeyLayout is the time layout of MonthlySummary map keys.
const MonthKeyLayout = "2006-01"

// MonthlySummary maps a month key (YYYY-MM) to the cheapest dated offer
// observed for that month, plus the single overall-cheapest record.
// It is built incrementally: a record replaces a holder only on strictly
// lower price, so the first minimum encountered wins ties.
type MonthlySummary struct {
	// Months maps YYYY-MM to the cheapest record seen for that month
	Months map[string]DatedOffer `json:"months"`

	// Overall is the cheapest record across all months, nil when no valid
	// record was seen
	Overall *DatedOffer `json:"overall,omitempty"`
}

// SortedMonths returns the month keys in ascending calendar order, for
// deterministic presentation.
func (m MonthlySummary) SortedMonths() []string {
	keys := make([]string, 0, len(m.Months))
	for k := range m.Months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether the summary holds no records at all.
func (m MonthlySummary) IsEmpty() bool {
	return len(m.Months) == 0
}

// TripSearchResult is the aggregated outcome of one cheapest-trip search.
type TripSearchResult struct {
	// Criteria echoes the search parameters
	Criteria SearchCriteria `json:"criteria"`

	// Candidates holds every indicative date returned by the inspirational
	// collaborator, in upstream order
	Candidates []CandidateDate `json:"candidates"`

	// Confirmed holds the live offers confirmed per probed date, in probe order
	Confirmed []DatedOffer `json:"confirmed"`

	// Cheapest is the globally cheapest confirmed offer (strict minimum,
	// first occurrence wins on equal prices)
	Cheapest DatedOffer `json:"cheapest"`

	// ConfirmedMonths is the cheapest confirmed offer per calendar month
	ConfirmedMonths MonthlySummary `json:"confirmedMonths"`

	// IndicativeMonths is the cheapest indicative price per calendar month,
	// aggregated over all candidate dates. Empty when the fallback probe
	// strategy was used.
	IndicativeMonths MonthlySummary `json:"indicativeMonths"`

	// Metadata describes how the search executed
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// CandidatesFound is the number of indicative dates returned upstream
	CandidatesFound int `json:"candidates_found"`

	// DatesProbed is the number of dates confirmation was attempted for
	DatesProbed int `json:"dates_probed"`

	// OffersConfirmed is the number of dates that yielded a usable offer
	OffersConfirmed int `json:"offers_confirmed"`

	// FallbackUsed is true when the fixed calendar probe set replaced an
	// empty candidate phase
	FallbackUsed bool `json:"fallback_used"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}
