package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/timeutil"
)

// Fallback probe strategy: when the inspirational index has nothing for a
// route, confirmation is attempted on the first Tuesday of each of the next
// fallbackProbeMonths calendar months. The probe set needs no upstream
// knowledge and exercises three independent months.
const fallbackProbeMonths = 3

// fallbackWeekday is the weekday probed by the fallback strategy.
const fallbackWeekday = time.Tuesday

// TripSearchUseCase defines the interface for the cheapest-trip search.
type TripSearchUseCase interface {
	// Search runs the two-phase search for the given criteria. It returns
	// ErrNoOffers when no live offer could be confirmed for any probed date.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.TripSearchResult, error)
}

// tripSearchUseCase implements TripSearchUseCase.
//
// The inspirational endpoint is cheap and wide but returns unconfirmed
// indicative prices; the live endpoint is accurate but expensive. The search
// therefore probes a bounded number of likely-cheap dates and confirms each
// against the live endpoint, so the final answer always reflects a real
// bookable price.
type tripSearchUseCase struct {
	dates  domain.CandidateDateService
	offers domain.LiveOfferService
	clock  timeutil.Clock
	log    *logger.Logger
}

// NewTripSearchUseCase creates a TripSearchUseCase with the given
// collaborators. A nil clock defaults to the system clock, a nil logger to a
// no-op logger.
func NewTripSearchUseCase(dates domain.CandidateDateService, offers domain.LiveOfferService, clock timeutil.Clock, log *logger.Logger) TripSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &tripSearchUseCase{
		dates:  dates,
		offers: offers,
		clock:  clock,
		log:    log,
	}
}

// Search implements TripSearchUseCase.Search.
func (uc *tripSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.TripSearchResult, error) {
	start := uc.clock.Now()
	log := uc.log.WithRoute(criteria.Origin, criteria.Destination)

	// Phase 1: candidate dates from the inspirational index.
	candidates := uc.findCandidates(ctx, criteria, log)

	// Phase 2: pick the dates to confirm. Fallback to the fixed calendar
	// probe set when the candidate phase came back empty.
	probeDates, fallbackUsed := uc.selectProbeDates(candidates, criteria.TopCandidates)
	if fallbackUsed {
		log.Info().Strs("dates", probeDates).Msg("no candidate dates, probing fixed calendar days")
	}

	// Phase 3: confirm each probed date against the live endpoint. The calls
	// are independent, so they run concurrently; results keep probe order so
	// tie-breaking stays deterministic.
	confirmed := uc.confirmDates(ctx, criteria, probeDates, log)

	// Phase 4: strict-minimum selection, first occurrence wins on ties.
	if len(confirmed) == 0 {
		log.Info().Int("dates_probed", len(probeDates)).Msg("no live offer confirmed for any probed date")
		return nil, domain.ErrNoOffers
	}

	cheapest := confirmed[0]
	for _, rec := range confirmed[1:] {
		if rec.Offer.Price.Amount < cheapest.Offer.Price.Amount {
			cheapest = rec
		}
	}

	result := &domain.TripSearchResult{
		Criteria:         criteria,
		Candidates:       candidates,
		Confirmed:        confirmed,
		Cheapest:         cheapest,
		ConfirmedMonths:  AggregateMonthly(confirmed),
		IndicativeMonths: AggregateMonthly(candidatesAsRecords(candidates)),
		Metadata: domain.SearchMetadata{
			CandidatesFound: len(candidates),
			DatesProbed:     len(probeDates),
			OffersConfirmed: len(confirmed),
			FallbackUsed:    fallbackUsed,
			SearchTimeMs:    time.Since(start).Milliseconds(),
		},
	}

	log.Info().
		Int("candidates", len(candidates)).
		Int("confirmed", len(confirmed)).
		Float64("cheapest_price", cheapest.Offer.Price.Amount).
		Str("cheapest_date", cheapest.DepartureDate).
		Msg("search completed")

	return result, nil
}

// findCandidates queries the inspirational endpoint for the forward-looking
// window starting tomorrow. Every failure degrades to an empty candidate
// list: a route the upstream has not indexed is a valid empty outcome, and a
// transport failure must never abort the search while the fallback strategy
// can still produce an answer.
func (uc *tripSearchUseCase) findCandidates(ctx context.Context, criteria domain.SearchCriteria, log *logger.Logger) []domain.CandidateDate {
	from := timeutil.Tomorrow(uc.clock)
	to := from.AddDate(0, 0, criteria.WindowDays)

	candidates, err := uc.dates.FindDates(ctx, domain.CandidateQuery{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureFrom: timeutil.FormatDate(from),
		DepartureTo:   timeutil.FormatDate(to),
		OneWay:        true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRouteNotFound) {
			log.Debug().Msg("route not present in inspirational index")
		} else {
			log.Warn().Err(err).Msg("candidate date lookup failed, continuing with fallback")
		}
		return nil
	}

	return candidates
}

// selectProbeDates returns the departure dates to confirm: the lowest-priced
// topN candidates when any exist, otherwise the fixed fallback probe set.
func (uc *tripSearchUseCase) selectProbeDates(candidates []domain.CandidateDate, topN int) (dates []string, fallbackUsed bool) {
	if len(candidates) == 0 {
		for _, day := range timeutil.FirstWeekdays(uc.clock, fallbackWeekday, fallbackProbeMonths) {
			dates = append(dates, timeutil.FormatDate(day))
		}
		return dates, true
	}

	ranked := make([]domain.CandidateDate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price.Amount < ranked[j].Price.Amount
	})

	if topN > len(ranked) {
		topN = len(ranked)
	}
	for _, c := range ranked[:topN] {
		dates = append(dates, c.DepartureDate)
	}
	return dates, false
}

// confirmDates issues one live-offer call per probed date, concurrently, and
// returns the confirmed offers in probe order.
func (uc *tripSearchUseCase) confirmDates(ctx context.Context, criteria domain.SearchCriteria, probeDates []string, log *logger.Logger) []domain.DatedOffer {
	results := make([]*domain.DatedOffer, len(probeDates))

	var wg sync.WaitGroup
	for i, date := range probeDates {
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()
			results[i] = uc.confirmDate(ctx, criteria, date, log)
		}(i, date)
	}
	wg.Wait()

	confirmed := make([]domain.DatedOffer, 0, len(probeDates))
	for _, r := range results {
		if r != nil {
			confirmed = append(confirmed, *r)
		}
	}
	return confirmed
}

// confirmDate fetches live offers for one departure date and returns the
// first offer within the connection limit, or nil when the date yields
// nothing usable. The return date is the departure plus the rounded midpoint
// of the configured stay bounds. Connection filtering happens here, on the
// returned itineraries, because the upstream query parameter for it is
// unreliable.
func (uc *tripSearchUseCase) confirmDate(ctx context.Context, criteria domain.SearchCriteria, date string, log *logger.Logger) *domain.DatedOffer {
	departure, err := timeutil.ParseDate(date)
	if err != nil {
		log.Warn().Str("date", date).Msg("skipping candidate with malformed departure date")
		return nil
	}
	returnDate := departure.AddDate(0, 0, criteria.StayDays())

	offers, err := uc.offers.SearchOffers(ctx, domain.OfferQuery{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: date,
		ReturnDate:    timeutil.FormatDate(returnDate),
		Adults:        1,
		Currency:      criteria.Currency,
		MaxOffers:     criteria.MaxOffers,
	})
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("live offer lookup failed, dropping date")
		return nil
	}

	for _, offer := range offers {
		if !offer.Price.IsValid() || len(offer.Itineraries) == 0 {
			continue
		}
		if !offer.WithinConnectionLimit(criteria.MaxConnections) {
			continue
		}
		return &domain.DatedOffer{DepartureDate: date, Offer: offer}
	}

	return nil
}

// Ensure tripSearchUseCase implements TripSearchUseCase at compile time.
var _ TripSearchUseCase = (*tripSearchUseCase)(nil)
