package service

import (
	"math"
	"testing"
	"time"

	"gardenmon/internal/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func sampleWindow(t *testing.T) []models.Reading {
	t.Helper()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	return []models.Reading{
		{RecordedAt: base, PH: floatPtr(6.0), Humidity: 60, Light: 1000},
		{RecordedAt: base.Add(10 * time.Minute), PH: nil, Humidity: 70, Light: 2000},
		{RecordedAt: base.Add(20 * time.Minute), PH: floatPtr(7.0), Humidity: 80, Light: 3000},
	}
}

func TestComputeStatsExcludesDisabledPH(t *testing.T) {
	stats := computeStats(sampleWindow(t))

	if stats.PH == nil {
		t.Fatal("expected pH stats for a window with two measurements")
	}
	if stats.PH.Count != 2 {
		t.Fatalf("pH count = %d, want 2", stats.PH.Count)
	}
	if math.Abs(stats.PH.Avg-6.5) > 1e-9 {
		t.Fatalf("pH avg = %f, want 6.5", stats.PH.Avg)
	}
	if stats.PH.Min != 6.0 || stats.PH.Max != 7.0 {
		t.Fatalf("pH min/max = %f/%f, want 6.0/7.0", stats.PH.Min, stats.PH.Max)
	}

	// The disabled-pH reading still feeds humidity and light.
	if stats.Humidity.Count != 3 || stats.Light.Count != 3 {
		t.Fatalf("humidity/light counts = %d/%d, want 3/3", stats.Humidity.Count, stats.Light.Count)
	}
	if math.Abs(stats.Humidity.Avg-70) > 1e-9 {
		t.Fatalf("humidity avg = %f, want 70", stats.Humidity.Avg)
	}
	if stats.Light.Min != 1000 || stats.Light.Max != 3000 {
		t.Fatalf("light min/max = %f/%f, want 1000/3000", stats.Light.Min, stats.Light.Max)
	}
}

func TestComputeStatsWithoutAnyPH(t *testing.T) {
	readings := []models.Reading{
		{Humidity: 50, Light: 800},
		{PH: nil, Humidity: 52, Light: 900},
	}

	stats := computeStats(readings)

	if stats.PH != nil {
		t.Fatalf("expected absent pH stats, got %+v", stats.PH)
	}
	if stats.Humidity.Count != 2 {
		t.Fatalf("humidity count = %d, want 2", stats.Humidity.Count)
	}
}

func TestComputeStatsEmptyWindow(t *testing.T) {
	stats := computeStats(nil)

	if stats.PH != nil || stats.Humidity.Count != 0 || stats.Light.Count != 0 {
		t.Fatalf("expected zero stats for empty window, got %+v", stats)
	}
}

func TestComputeSeriesFiltersPHOnly(t *testing.T) {
	readings := sampleWindow(t)
	series := computeSeries(readings)

	if len(series.PH) != 2 {
		t.Fatalf("pH series length = %d, want 2", len(series.PH))
	}
	if len(series.Humidity) != 3 || len(series.Light) != 3 {
		t.Fatalf("humidity/light series lengths = %d/%d, want 3/3", len(series.Humidity), len(series.Light))
	}

	// Order within each series must follow the window order.
	for i := 1; i < len(series.Humidity); i++ {
		if series.Humidity[i].At.Before(series.Humidity[i-1].At) {
			t.Fatal("humidity series out of order")
		}
	}
	if series.PH[0].Value != 6.0 || series.PH[1].Value != 7.0 {
		t.Fatalf("pH series values = %f, %f", series.PH[0].Value, series.PH[1].Value)
	}
}

func TestRecentRecords(t *testing.T) {
	readings := sampleWindow(t)

	recent := recentRecords(readings, 2)
	if len(recent) != 2 {
		t.Fatalf("recent length = %d, want 2", len(recent))
	}
	if !recent[1].RecordedAt.Equal(readings[2].RecordedAt) {
		t.Fatal("recent tail must end with the newest reading")
	}

	all := recentRecords(readings, 20)
	if len(all) != len(readings) {
		t.Fatalf("recent over short window length = %d, want %d", len(all), len(readings))
	}

	// The tail is a copy; mutating it must not touch the window.
	all[0].Humidity = -99
	if readings[0].Humidity == -99 {
		t.Fatal("recentRecords must copy the tail")
	}
}
