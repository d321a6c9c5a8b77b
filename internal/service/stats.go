package service

import (
	"time"

	"gardenmon/internal/models"
)

// ChannelStats aggregates one channel over a window.
type ChannelStats struct {
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// PeriodStats aggregates every channel over a window. PH is nil when no
// reading in the window carries a pH measurement.
type PeriodStats struct {
	PH       *ChannelStats `json:"ph,omitempty"`
	Humidity ChannelStats  `json:"humidity"`
	Light    ChannelStats  `json:"light"`
}

// SeriesPoint is one sample of a trend series.
type SeriesPoint struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

// TrendSeries carries the per-channel plot data for a window. The pH
// series drops readings with a disabled probe; humidity and light keep
// every reading. All series preserve the window's timestamp order.
type TrendSeries struct {
	PH       []SeriesPoint `json:"ph"`
	Humidity []SeriesPoint `json:"humidity"`
	Light    []SeriesPoint `json:"light"`
}

// recentLimit bounds the recent-records table.
const recentLimit = 20

// computeStats aggregates a window. A reading with a disabled pH probe is
// excluded from the pH figures but still contributes humidity and light, so
// the stats panel always agrees with the trend chart.
func computeStats(readings []models.Reading) PeriodStats {
	if len(readings) == 0 {
		return PeriodStats{}
	}

	var stats PeriodStats
	var phSum, humSum, lightSum float64

	for _, r := range readings {
		humSum += r.Humidity
		lightSum += r.Light
		accumulate(&stats.Humidity, r.Humidity)
		accumulate(&stats.Light, r.Light)

		if !r.PHEnabled() {
			continue
		}
		if stats.PH == nil {
			stats.PH = &ChannelStats{}
		}
		phSum += *r.PH
		accumulate(stats.PH, *r.PH)
	}

	stats.Humidity.Avg = humSum / float64(stats.Humidity.Count)
	stats.Light.Avg = lightSum / float64(stats.Light.Count)
	if stats.PH != nil {
		stats.PH.Avg = phSum / float64(stats.PH.Count)
	}
	return stats
}

func accumulate(cs *ChannelStats, value float64) {
	if cs.Count == 0 {
		cs.Min = value
		cs.Max = value
	} else {
		if value < cs.Min {
			cs.Min = value
		}
		if value > cs.Max {
			cs.Max = value
		}
	}
	cs.Count++
}

// computeSeries shapes the window into per-channel plot series.
func computeSeries(readings []models.Reading) TrendSeries {
	series := TrendSeries{
		PH:       []SeriesPoint{},
		Humidity: make([]SeriesPoint, 0, len(readings)),
		Light:    make([]SeriesPoint, 0, len(readings)),
	}
	for _, r := range readings {
		series.Humidity = append(series.Humidity, SeriesPoint{At: r.RecordedAt, Value: r.Humidity})
		series.Light = append(series.Light, SeriesPoint{At: r.RecordedAt, Value: r.Light})
		if r.PHEnabled() {
			series.PH = append(series.PH, SeriesPoint{At: r.RecordedAt, Value: *r.PH})
		}
	}
	return series
}

// recentRecords returns the tail of the window for the records table,
// oldest of the tail first.
func recentRecords(readings []models.Reading, limit int) []models.Reading {
	if limit <= 0 || limit > len(readings) {
		limit = len(readings)
	}
	tail := readings[len(readings)-limit:]
	out := make([]models.Reading, len(tail))
	copy(out, tail)
	return out
}
