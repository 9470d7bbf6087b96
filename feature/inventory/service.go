package inventory

import (
	"context"
	"errors"
	"time"

	"nursery-monitor/core/reconcile"
	"nursery-monitor/feature/inventory/models"

	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned when snapshot endpoints are hit while no
// storage backend is configured.
var ErrArchiveDisabled = errors.New("snapshot archive is disabled")

// Service exposes the reconciliation engine to the HTTP layer and owns the
// background polling loop and snapshot archiving.
type Service struct {
	engine   *reconcile.Service
	archiver *Archiver
	logger   *zap.Logger
	poll     time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the inventory service. archiver may be nil when snapshot
// archiving is disabled.
func NewService(engine *reconcile.Service, archiver *Archiver, logger *zap.Logger, poll time.Duration) *Service {
	return &Service{
		engine:   engine,
		archiver: archiver,
		logger:   logger,
		poll:     poll,
	}
}

// Start launches the background poller. A zero or negative interval disables
// polling; cycles then only run on demand.
func (s *Service) Start() {
	if s.poll <= 0 {
		s.logger.Info("Background polling disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop terminates the background poller and waits for it to exit.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	// Prime the view immediately so the first request is served warm.
	if result, err := s.engine.RunCycle(ctx); err != nil {
		s.logger.Error("Initial reconciliation cycle failed", zap.Error(err))
	} else {
		s.archive(ctx, result)
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A tick colliding with a manual refresh is dropped, not queued.
			result, ran, err := s.engine.TryRunCycle(ctx)
			if err != nil {
				s.logger.Error("Reconciliation cycle failed", zap.Error(err))
				continue
			}
			if ran {
				s.archive(ctx, result)
			}
		}
	}
}

// archive persists the cycle outcome best-effort. An archive failure never
// fails the cycle.
func (s *Service) archive(ctx context.Context, result *reconcile.Result) {
	if s.archiver == nil || result == nil {
		return
	}
	if err := s.archiver.Archive(ctx, result); err != nil {
		s.logger.Warn("Failed to archive snapshot", zap.Error(err))
	}
}

// ensure returns the last published result, running a cycle first when none
// exists yet.
func (s *Service) ensure(ctx context.Context) (*reconcile.Result, error) {
	if last := s.engine.Last(); last != nil {
		return last, nil
	}

	result, err := s.engine.RunCycle(ctx)
	if err != nil {
		return nil, err
	}
	s.archive(ctx, result)
	return result, nil
}

func statsResponse(result *reconcile.Result) *models.StatsResponse {
	return &models.StatsResponse{
		Stock:     result.Stock,
		Latest:    result.Latest,
		Notify:    result.Notify,
		Today:     result.Today,
		Watched:   result.Watched,
		Stale:     result.Stale,
		Discarded: result.Discarded,
		FetchedAt: result.FetchedAt,
	}
}

// Stats returns the aggregate inventory view.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	result, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return statsResponse(result), nil
}

// Recent returns up to limit records, most recent first. limit <= 0 returns
// everything.
func (s *Service) Recent(ctx context.Context, limit int) (*models.RecentResponse, error) {
	result, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}

	records := result.Records
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	return &models.RecentResponse{Records: records, Stale: result.Stale}, nil
}

// Species returns the live view for one species term.
func (s *Service) Species(ctx context.Context, name string) (*models.SpeciesResponse, error) {
	result, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}

	stats, _ := s.engine.SpeciesView(name)
	return &models.SpeciesResponse{Stats: stats, Stale: result.Stale}, nil
}

// Refresh drops the cached payload and runs a cycle against the live feed.
func (s *Service) Refresh(ctx context.Context) (*models.StatsResponse, error) {
	result, err := s.engine.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	s.archive(ctx, result)
	return statsResponse(result), nil
}

// Snapshots lists the archived snapshot objects for this feed.
func (s *Service) Snapshots(ctx context.Context) (*models.SnapshotsResponse, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}

	names, err := s.archiver.List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.SnapshotsResponse{Snapshots: names}, nil
}

// LogNotifier is a reconcile.NotificationSink that reports novel activity
// through the structured log, the server-side analogue of a user-facing toast.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notification sink writing to the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the novel event.
func (n *LogNotifier) Notify(event reconcile.ActivityEvent) {
	n.logger.Info("New inventory activity detected",
		zap.Time("date", event.Record.Date),
		zap.String("species", event.Record.Species),
		zap.Float64("received", event.Record.Received),
		zap.Float64("shipped", event.Record.Shipped),
		zap.Float64("lost", event.Record.Lost),
		zap.String("fingerprint", event.Fingerprint),
	)
}
