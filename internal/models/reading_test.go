package models

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestNormalizeMapsSentinelToDisabled(t *testing.T) {
	reading := Reading{
		RecordedAt: time.Now(),
		PH:         floatPtr(-1),
		Humidity:   55,
		Light:      2000,
	}

	reading.Normalize()

	if reading.PH != nil {
		t.Fatalf("expected sentinel pH to normalize to nil, got %v", *reading.PH)
	}
	if reading.PHEnabled() {
		t.Fatal("expected PHEnabled to be false after normalization")
	}
	if reading.Humidity != 55 || reading.Light != 2000 {
		t.Fatal("normalization must not touch humidity or light")
	}
}

func TestNormalizeKeepsRealMeasurement(t *testing.T) {
	reading := Reading{PH: floatPtr(6.8), Humidity: 70, Light: 3000}

	reading.Normalize()

	if reading.PH == nil || *reading.PH != 6.8 {
		t.Fatalf("expected pH 6.8 to survive normalization, got %v", reading.PH)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cases := []struct {
		name string
		ph   *float64
	}{
		{name: "sentinel", ph: floatPtr(-1)},
		{name: "null", ph: nil},
		{name: "measurement", ph: floatPtr(7.1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reading := Reading{PH: tc.ph, Humidity: 60, Light: 1500}

			reading.Normalize()
			once := reading

			reading.Normalize()

			if (once.PH == nil) != (reading.PH == nil) {
				t.Fatal("second normalization changed pH presence")
			}
			if once.PH != nil && *once.PH != *reading.PH {
				t.Fatal("second normalization changed pH value")
			}
		})
	}
}

func TestNormalizePH(t *testing.T) {
	if got := NormalizePH(nil); got != nil {
		t.Fatalf("expected nil for null pH, got %v", *got)
	}
	if got := NormalizePH(floatPtr(-1)); got != nil {
		t.Fatalf("expected nil for sentinel pH, got %v", *got)
	}
	if got := NormalizePH(floatPtr(6.5)); got == nil || *got != 6.5 {
		t.Fatalf("expected 6.5 to pass through, got %v", got)
	}
}
