package reconcile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// NotificationSink receives novel activity events. The sink owns display and
// dismissal; the engine never queries it for past state.
type NotificationSink interface {
	Notify(event ActivityEvent)
}

// StatsSink receives the aggregate output of every completed cycle.
type StatsSink interface {
	Publish(stock StockSnapshot, latest *ActivityEvent)
}

// Options configure a Service.
type Options struct {
	// FeedKey is the cache key for this feed (supports multiple feeds).
	FeedKey string

	// CacheTTL bounds the age of the cached payload before a live fetch.
	CacheTTL time.Duration

	// WatchSpecies, when non-empty, adds a per-species live view matching
	// records whose species contains this term (case-insensitive).
	WatchSpecies string

	// Notifier, when set, receives the cycle's novel event.
	Notifier NotificationSink

	// Stats, when set, receives every cycle's snapshot and latest activity.
	Stats StatsSink

	// Now is the clock used for "today" checks. Defaults to time.Now.
	Now func() time.Time
}

// Service orchestrates one reconciliation cycle: cache, fetch, normalize,
// aggregate, rank, detect novelty, publish. At most one cycle executes at a
// time; results are only published once a cycle has run to completion.
type Service struct {
	fetch    Fetcher
	cache    *FeedCache
	detector *Detector
	logger   *zap.Logger
	opts     Options

	// runMu serializes cycles: manual refreshes queue on it, the periodic
	// poller drops its tick instead (TryRunCycle).
	runMu sync.Mutex

	// mu guards the last published result.
	mu   sync.RWMutex
	last *Result
}

// NewService creates a reconciliation service.
func NewService(fetch Fetcher, cache *FeedCache, detector *Detector, logger *zap.Logger, opts Options) *Service {
	if opts.FeedKey == "" {
		opts.FeedKey = "feed"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		fetch:    fetch,
		cache:    cache,
		detector: detector,
		logger:   logger,
		opts:     opts,
	}
}

// RunCycle executes one cycle, waiting for any in-flight cycle to finish
// first. Used for user-initiated refreshes.
func (s *Service) RunCycle(ctx context.Context) (*Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.runLocked(ctx)
}

// TryRunCycle executes one cycle unless another is already in flight, in
// which case it reports ran=false and does nothing. Used by the periodic
// poller so a tick racing a manual refresh is dropped and retried on the
// next interval rather than queued.
func (s *Service) TryRunCycle(ctx context.Context) (result *Result, ran bool, err error) {
	if !s.runMu.TryLock() {
		return nil, false, nil
	}
	defer s.runMu.Unlock()
	result, err = s.runLocked(ctx)
	return result, true, err
}

// Refresh invalidates the cached payload and runs a cycle, forcing a live
// fetch. Mirrors the user's "update data" action.
func (s *Service) Refresh(ctx context.Context) (*Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if err := s.cache.Invalidate(ctx, s.opts.FeedKey); err != nil {
		s.logger.Warn("Failed to invalidate feed cache", zap.Error(err))
	}
	return s.runLocked(ctx)
}

func (s *Service) runLocked(ctx context.Context) (*Result, error) {
	rows, fetchedAt, err := s.cache.GetOrFetch(ctx, s.opts.FeedKey, s.opts.CacheTTL, s.fetch)
	if err != nil {
		return s.degrade(ctx, err)
	}

	records, discarded := NormalizeAll(rows)
	if discarded > 0 {
		s.logger.Error("Discarded rows with unparseable dates",
			zap.Int("count", discarded),
			zap.String("feed", s.opts.FeedKey),
		)
	}

	result := s.compute(records, discarded, fetchedAt, false)

	// Novelty is only checked for activity dated today: a quiet day must not
	// re-surface an old "latest" record as a notification.
	if candidate := s.todayCandidate(records); candidate != nil {
		fp := Fingerprint(candidate)
		novel, err := s.detector.IsNovel(ctx, fp)
		if err != nil {
			s.logger.Warn("Failed to persist seen fingerprint", zap.Error(err))
		}
		if novel {
			result.Notify = &ActivityEvent{Record: *candidate, Fingerprint: fp}
		}
	}

	s.publish(result)
	return result, nil
}

// degrade serves last-known-good data when the live fetch fails. The previous
// result (or, failing that, a stale cache entry) is surfaced with the Stale
// flag instead of clearing the view to empty. Degraded cycles never notify.
func (s *Service) degrade(ctx context.Context, fetchErr error) (*Result, error) {
	s.logger.Error("Feed fetch failed, serving last known good data",
		zap.Error(fetchErr),
		zap.String("feed", s.opts.FeedKey),
	)

	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	if last != nil {
		stale := *last
		stale.Stale = true
		stale.Notify = nil
		s.publish(&stale)
		return &stale, nil
	}

	if rows, fetchedAt, ok := s.cache.Stale(ctx, s.opts.FeedKey); ok {
		records, discarded := NormalizeAll(rows)
		result := s.compute(records, discarded, fetchedAt, true)
		s.publish(result)
		return result, nil
	}

	return nil, fetchErr
}

func (s *Service) compute(records []InventoryRecord, discarded int, fetchedAt time.Time, stale bool) *Result {
	result := &Result{
		Stock:     Aggregate(records),
		Stale:     stale,
		Discarded: discarded,
		FetchedAt: fetchedAt,
		Records:   SortLatestFirst(records),
	}

	if latest := PickLatest(records); latest != nil {
		result.Latest = &ActivityEvent{Record: *latest, Fingerprint: Fingerprint(latest)}
	}
	result.Today = PickTodayAggregate(records, s.opts.Now())

	if s.opts.WatchSpecies != "" {
		result.Watched = speciesStats(records, s.opts.WatchSpecies)
	}

	return result
}

// todayCandidate returns the latest record constrained to today's date with
// actual activity, or nil.
func (s *Service) todayCandidate(records []InventoryRecord) *InventoryRecord {
	latest := PickLatest(records)
	if latest == nil {
		return nil
	}
	if !SameDay(latest.Date, s.opts.Now()) || !latest.HasActivity() {
		return nil
	}
	return latest
}

func (s *Service) publish(result *Result) {
	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	if s.opts.Stats != nil {
		s.opts.Stats.Publish(result.Stock, result.Latest)
	}
	if s.opts.Notifier != nil && result.Notify != nil {
		s.opts.Notifier.Notify(*result.Notify)
	}
}

// Last returns the most recently published result, or nil before the first
// completed cycle.
func (s *Service) Last() *Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// SpeciesView computes a species-scoped snapshot over the last cycle's
// canonical record set. ok is false before the first completed cycle.
func (s *Service) SpeciesView(name string) (SpeciesStats, bool) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	if last == nil {
		return SpeciesStats{}, false
	}
	return *speciesStats(last.Records, name), true
}

// speciesStats builds the live view for one species term.
func speciesStats(records []InventoryRecord, term string) *SpeciesStats {
	pred := SpeciesContains(term)
	stats := &SpeciesStats{
		Species: term,
		Stock:   AggregateFor(records, pred),
	}

	var latest *InventoryRecord
	for i := range records {
		if !pred(&records[i]) {
			continue
		}
		stats.HasData = true
		if latest == nil || less(latest, &records[i]) {
			latest = &records[i]
		}
	}
	if latest != nil {
		stats.LastActivity = latest.Date
	}
	return stats
}
