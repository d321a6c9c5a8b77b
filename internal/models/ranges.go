package models

import "fmt"

// RangeConfig defines the optimal band for one channel. The
// acceptable-but-suboptimal tolerance around the band is a per-channel rule
// applied by the classifier, not part of the config.
type RangeConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Ranges bundles the per-channel optimal bands active for a dashboard
// session. User edits arrive through the presentation layer at runtime.
type Ranges struct {
	PH       RangeConfig `json:"ph"`
	Humidity RangeConfig `json:"humidity"`
	Light    RangeConfig `json:"light"`
}

// DefaultRanges returns the startup bands.
func DefaultRanges() Ranges {
	return Ranges{
		PH:       RangeConfig{Min: 6.0, Max: 7.5},
		Humidity: RangeConfig{Min: 60, Max: 100},
		Light:    RangeConfig{Min: 1000, Max: 10000},
	}
}

// Validate rejects bands that cannot classify anything sensibly.
func (r Ranges) Validate() error {
	if r.PH.Min >= r.PH.Max {
		return fmt.Errorf("ranges: ph min %.2f must be below max %.2f", r.PH.Min, r.PH.Max)
	}
	if r.Humidity.Min >= r.Humidity.Max {
		return fmt.Errorf("ranges: humidity min %.1f must be below max %.1f", r.Humidity.Min, r.Humidity.Max)
	}
	if r.Humidity.Min < 0 || r.Humidity.Max > 100 {
		return fmt.Errorf("ranges: humidity band %.1f-%.1f outside 0-100", r.Humidity.Min, r.Humidity.Max)
	}
	if r.Light.Min < 0 {
		return fmt.Errorf("ranges: light min %.0f must not be negative", r.Light.Min)
	}
	if r.Light.Min >= r.Light.Max {
		return fmt.Errorf("ranges: light min %.0f must be below max %.0f", r.Light.Min, r.Light.Max)
	}
	return nil
}
