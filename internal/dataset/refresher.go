// Package dataset owns the process-wide cached derived view: it loads the
// observation table, reference data and betting lines, runs the full
// aggregation pipeline, and publishes the result as an immutable snapshot.
// Readers always see either the previous complete snapshot or the new one,
// never a partial recompute.
package dataset

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/logic"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// Prometheus metrics
var (
	refreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cdl_dataset_refreshes_total",
		Help: "Total number of dataset refresh attempts",
	})

	refreshFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cdl_dataset_refresh_failures_total",
		Help: "Total number of failed dataset refreshes",
	})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cdl_dataset_refresh_duration_seconds",
		Help:    "Duration of full dataset refreshes",
		Buckets: prometheus.DefBuckets,
	})

	observationRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cdl_dataset_observation_rows",
		Help: "Observation rows in the current snapshot",
	})

	snapshotAge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cdl_dataset_snapshot_age_seconds",
		Help: "Age of the current snapshot",
	})
)

// ObservationLoader supplies the flat match-level dataset.
type ObservationLoader interface {
	LoadAll(ctx context.Context) ([]models.Observation, error)
}

// TeamLister supplies the league team reference list.
type TeamLister interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
}

// LineLoader supplies the current betting-line snapshot.
type LineLoader interface {
	Snapshot(ctx context.Context) ([]models.PropLine, error)
}

// Config configures the refresher.
type Config struct {
	Observations ObservationLoader
	Teams        TeamLister
	Lines        LineLoader
	Interval     time.Duration
	Logger       *zap.Logger
}

// Refresher recomputes the derived view on an interval and on demand.
type Refresher struct {
	cfg    Config
	logger *zap.SugaredLogger
	snap   atomic.Pointer[models.Snapshot]

	mu     sync.Mutex // serializes concurrent Refresh calls
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefresher creates a refresher. It publishes nothing until the first
// successful Refresh.
func NewRefresher(cfg Config) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	return &Refresher{
		cfg:    cfg,
		logger: cfg.Logger.Sugar(),
	}
}

// Snapshot returns the current derived view, or nil before the first
// successful refresh. Implements logic.SnapshotSource.
func (r *Refresher) Snapshot() *models.Snapshot {
	return r.snap.Load()
}

// Refresh loads all three sources, reruns the aggregation pipeline and
// swaps in a new snapshot. On any failure the previous snapshot stays
// published untouched.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	refreshesTotal.Inc()
	start := time.Now()

	var (
		obs   []models.Observation
		teams []models.Team
		lines []models.PropLine
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if obs, err = r.cfg.Observations.LoadAll(gctx); err != nil {
			return fmt.Errorf("observations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if teams, err = r.cfg.Teams.ListTeams(gctx); err != nil {
			return fmt.Errorf("teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if lines, err = r.cfg.Lines.Snapshot(gctx); err != nil {
			return fmt.Errorf("lines: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		refreshFailures.Inc()
		return fmt.Errorf("dataset load failed: %w", err)
	}

	obs, err := logic.AttachOpponents(obs)
	if err != nil {
		refreshFailures.Inc()
		return fmt.Errorf("opponent join failed: %w", err)
	}
	series, err := logic.BuildSeriesSummaries(obs)
	if err != nil {
		refreshFailures.Inc()
		return fmt.Errorf("series summaries failed: %w", err)
	}

	snap := &models.Snapshot{
		ID:              uuid.NewString(),
		LoadedAt:        time.Now().UTC(),
		Observations:    obs,
		Teams:           teams,
		TeamSummaries:   logic.BuildTeamSummaries(obs, teams),
		SeriesSummaries: series,
		Lines:           lines,
	}
	r.snap.Store(snap)

	elapsed := time.Since(start)
	refreshDuration.Observe(elapsed.Seconds())
	observationRows.Set(float64(len(obs)))
	snapshotAge.Set(0)

	r.logger.Infow("Dataset refreshed",
		"snapshot", snap.ID,
		"observations", len(obs),
		"teams", len(teams),
		"lines", len(lines),
		"duration", elapsed,
	)
	return nil
}

// Start launches the background refresh loop.
func (r *Refresher) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := r.Refresh(ctx); err != nil {
					r.logger.Errorw("Scheduled refresh failed", "error", err)
				}
				r.reportAge()
			case <-ctx.Done():
				return
			}
		}
	}()

	r.logger.Infow("Dataset refresher started", "interval", r.cfg.Interval)
}

// Stop halts the background loop. The current snapshot remains readable.
func (r *Refresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	r.logger.Info("Dataset refresher stopped")
}

func (r *Refresher) reportAge() {
	if snap := r.snap.Load(); snap != nil {
		snapshotAge.Set(time.Since(snap.LoadedAt).Seconds())
	}
}
