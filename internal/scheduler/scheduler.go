package scheduler

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"weather-insights/config"
	"weather-insights/internal/models"
	"weather-insights/internal/repositories"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

const (
	defaultLookaheadDays = 7
	perLocationTimeout   = 30 * time.Second
	fetchConcurrency     = 8
)

// FavoritesLister exposes every saved favorite across users.
type FavoritesLister interface {
	AllFavorites() []models.Favorite
}

// Digest lists the upcoming high-risk days for one user's favorite location.
type Digest struct {
	UserID       string                   `json:"user_id"`
	Location     string                   `json:"location"`
	HighRiskDays []models.DailyPrediction `json:"high_risk_days"`
}

// Scheduler runs the daily risk digest over all favorite locations.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	favorites   FavoritesLister
	predictions repositories.PredictionRepository
	clock       clockwork.Clock
	metrics     *observe.Metrics
	l           *logger.Logger

	digestAt  string
	lookahead int

	mu   sync.Mutex
	last []Digest
}

type Option func(*Scheduler)

func WithClock(c clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

func WithMetrics(m *observe.Metrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// WithLookahead limits alerts to the next n days, today included.
func WithLookahead(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.lookahead = n
		}
	}
}

func New(cfg config.SchedulerConfig, favorites FavoritesLister, predictions repositories.PredictionRepository, l *logger.Logger, opts ...Option) (*Scheduler, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.Timezone, err)
		}
	}

	digestAt := cfg.DigestAt
	if digestAt == "" {
		digestAt = "07:00"
	}

	s := &Scheduler{
		scheduler:   gocron.NewScheduler(loc),
		favorites:   favorites,
		predictions: predictions,
		clock:       clockwork.NewRealClock(),
		l:           l,
		digestAt:    digestAt,
		lookahead:   defaultLookaheadDays,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Start schedules the daily digest and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.predictions == nil {
		s.l.Warning("scheduler: no prediction provider configured; digest disabled", nil)
		return nil
	}

	_, err := s.scheduler.Every(1).Day().At(s.digestAt).Do(func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("schedule daily digest at %s: %w", s.digestAt, err)
	}

	s.scheduler.StartAsync()

	s.l.Info("scheduler started", map[string]any{
		"digestAt": s.digestAt,
	})

	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// LastDigest returns the digests produced by the most recent run.
func (s *Scheduler) LastDigest() []Digest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.last)
}

type spot struct {
	lat, lon float64
}

// RunOnce fetches predictions once per distinct favorite location and
// returns a digest for every favorite with at least one high-risk day.
func (s *Scheduler) RunOnce(ctx context.Context) []Digest {
	favorites := s.favorites.AllFavorites()

	s.l.Info("scheduler: running daily digest", map[string]any{
		"favorites": len(favorites),
	})

	var spots []spot
	index := make(map[spot]int)
	for _, f := range favorites {
		sp := spot{f.Latitude, f.Longitude}
		if _, ok := index[sp]; !ok {
			index[sp] = len(spots)
			spots = append(spots, sp)
		}
	}

	results := make([][]models.DailyPrediction, len(spots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, sp := range spots {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, perLocationTimeout)
			defer cancel()

			predictions, err := s.predictions.FetchDailyPredictions(fetchCtx, sp.lat, sp.lon)
			if err != nil {
				s.l.Warning("scheduler: prediction fetch failed", map[string]any{
					"lat":   sp.lat,
					"lon":   sp.lon,
					"error": err.Error(),
				})
				return nil
			}

			results[i] = s.highRisk(predictions)
			return nil
		})
	}
	_ = g.Wait()

	var digests []Digest
	alerts := 0
	for _, f := range favorites {
		days := results[index[spot{f.Latitude, f.Longitude}]]
		if len(days) == 0 {
			continue
		}
		digests = append(digests, Digest{
			UserID:       f.UserID,
			Location:     f.LocationName,
			HighRiskDays: days,
		})
		alerts += len(days)

		s.l.Info("scheduler: high-risk weather ahead", map[string]any{
			"user":     f.UserID,
			"location": f.LocationName,
			"days":     len(days),
			"first":    days[0].DateString,
		})
	}

	if s.metrics != nil {
		s.metrics.DigestAlerts.Add(float64(alerts))
	}

	s.mu.Lock()
	s.last = digests
	s.mu.Unlock()

	s.l.Info("scheduler: completed daily digest", map[string]any{
		"locations": len(spots),
		"digests":   len(digests),
		"alerts":    alerts,
	})

	return digests
}

// highRisk keeps high-risk days from today through the lookahead window.
func (s *Scheduler) highRisk(predictions []models.DailyPrediction) []models.DailyPrediction {
	today := s.clock.Now().UTC().Format(time.DateOnly)
	until := s.clock.Now().UTC().AddDate(0, 0, s.lookahead-1).Format(time.DateOnly)

	var out []models.DailyPrediction
	for _, p := range predictions {
		if p.RiskLevel != models.DayRiskHigh {
			continue
		}
		if p.DateString < today || p.DateString > until {
			continue
		}
		out = append(out, p)
	}

	return out
}
