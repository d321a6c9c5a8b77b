package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gardenmon/internal/cache"
	"gardenmon/internal/models"
)

// ReadingSource is the read side of the sensor store.
type ReadingSource interface {
	FetchWindow(ctx context.Context, hours int) ([]models.Reading, error)
	FetchLatest(ctx context.Context) (*models.Reading, error)
}

// RangePersistence keeps user-edited bands across restarts of a session.
type RangePersistence interface {
	Save(ctx context.Context, session string, ranges models.Ranges) error
	Load(ctx context.Context, session string) (*models.Ranges, error)
}

// ErrInvalidWindow rejects lookback windows outside the selectable set.
var ErrInvalidWindow = fmt.Errorf("window must be one of %v hours", models.WindowOptions)

// DashboardService serves one dashboard session: shaped readings, trend
// series, period statistics and range classification. Windowed fetches go
// through the cache; the latest reading always queries fresh so the
// current-values panel reflects real-time state.
type DashboardService struct {
	source   ReadingSource
	windows  *cache.WindowCache
	persist  RangePersistence
	session  string
	logger   *zap.Logger

	mu     sync.RWMutex
	ranges models.Ranges
}

// NewDashboardService builds service with default bands. persist may be nil
// when no redis is configured; bands then live only in memory.
func NewDashboardService(
	source ReadingSource,
	windows *cache.WindowCache,
	persist RangePersistence,
	session string,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		source:  source,
		windows: windows,
		persist: persist,
		session: session,
		logger:  logger,
		ranges:  models.DefaultRanges(),
	}
}

// RestoreRanges loads persisted bands for the session, keeping defaults
// when none were saved. Called once during wiring.
func (s *DashboardService) RestoreRanges(ctx context.Context) {
	if s.persist == nil {
		return
	}
	saved, err := s.persist.Load(ctx, s.session)
	if err != nil {
		s.logger.Warn("failed to restore ranges, keeping defaults", zap.Error(err))
		return
	}
	if saved == nil {
		return
	}
	if err := saved.Validate(); err != nil {
		s.logger.Warn("persisted ranges invalid, keeping defaults", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.ranges = *saved
	s.mu.Unlock()
}

// Window returns the shaped, ascending readings for the lookback window,
// served from cache while the entry is valid.
func (s *DashboardService) Window(ctx context.Context, hours int) ([]models.Reading, error) {
	if !models.ValidWindow(hours) {
		return nil, ErrInvalidWindow
	}
	return s.windows.Get(ctx, hours, s.source.FetchWindow)
}

// LatestReading is the current-values panel payload: the most recent
// sample plus its per-channel statuses. PHStatus is omitted when the probe
// is disabled.
type LatestReading struct {
	Reading        models.Reading `json:"reading"`
	PHStatus       *models.Status `json:"ph_status,omitempty"`
	HumidityStatus models.Status  `json:"humidity_status"`
	LightStatus    models.Status  `json:"light_status"`
}

// Latest fetches the most recent reading, never through the cache.
// Returns (nil, nil) when the store is empty.
func (s *DashboardService) Latest(ctx context.Context) (*LatestReading, error) {
	reading, err := s.source.FetchLatest(ctx)
	if err != nil {
		return nil, err
	}
	if reading == nil {
		return nil, nil
	}
	return s.classifyLatest(*reading), nil
}

func (s *DashboardService) classifyLatest(reading models.Reading) *LatestReading {
	ranges := s.Ranges()

	latest := &LatestReading{
		Reading:        reading,
		HumidityStatus: ClassifyHumidity(reading.Humidity, ranges.Humidity),
		LightStatus:    ClassifyLight(reading.Light, ranges.Light),
	}
	if reading.PHEnabled() {
		status := ClassifyPH(*reading.PH, ranges.PH)
		latest.PHStatus = &status
	}
	return latest
}

// Overview is one full render pass for the UI collaborator.
type Overview struct {
	WindowHours int              `json:"window_hours"`
	Latest      *LatestReading   `json:"latest"`
	Readings    []models.Reading `json:"readings"`
	Series      TrendSeries      `json:"series"`
	Stats       PeriodStats      `json:"stats"`
	Recent      []models.Reading `json:"recent"`
	Ranges      models.Ranges    `json:"ranges"`
	FetchedAt   time.Time        `json:"fetched_at"`
}

// Overview performs one render pass: latest reading with statuses, the
// shaped window, trend series, period stats, the recent-records tail and
// the active bands. Every surface filters disabled pH identically because
// they all derive from the same shaped window.
func (s *DashboardService) Overview(ctx context.Context, hours int) (*Overview, error) {
	readings, err := s.Window(ctx, hours)
	if err != nil {
		return nil, err
	}

	latest, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		WindowHours: hours,
		Latest:      latest,
		Readings:    readings,
		Series:      computeSeries(readings),
		Stats:       computeStats(readings),
		Recent:      recentRecords(readings, recentLimit),
		Ranges:      s.Ranges(),
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// Ranges returns the active bands.
func (s *DashboardService) Ranges() models.Ranges {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ranges
}

// UpdateRanges replaces the active bands and persists them when a store is
// configured. Persistence failures keep the in-memory update and are only
// logged; the session still sees its edit.
func (s *DashboardService) UpdateRanges(ctx context.Context, ranges models.Ranges) error {
	if err := ranges.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.ranges = ranges
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Save(ctx, s.session, ranges); err != nil {
			s.logger.Warn("failed to persist ranges", zap.Error(err))
		}
	}
	return nil
}

// Refresh drops every cached window. Wired to the UI refresh button.
func (s *DashboardService) Refresh() {
	s.windows.InvalidateAll()
	s.logger.Debug("window cache invalidated")
}
