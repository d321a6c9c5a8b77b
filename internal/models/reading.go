package models

import "time"

// phSentinel is written by the device firmware when the pH probe is
// disabled or not installed. It is never a real measurement.
const phSentinel = -1.0

// Reading represents a single sensor sample from the garden device.
// PH is nil when the probe is disabled; humidity and light are always present.
type Reading struct {
	RecordedAt time.Time `db:"read_at" json:"read_at"`
	PH         *float64  `db:"ph" json:"ph"`
	Humidity   float64   `db:"humidity" json:"humidity"`
	Light      float64   `db:"light" json:"light"`
}

// Normalize maps the pH sentinel to the nil "probe disabled" state.
// NULL from the store arrives as nil already, so applying Normalize to an
// already normalized reading changes nothing.
func (r *Reading) Normalize() {
	if r.PH != nil && *r.PH == phSentinel {
		r.PH = nil
	}
}

// PHEnabled reports whether the reading carries a real pH measurement.
func (r *Reading) PHEnabled() bool {
	return r.PH != nil
}

// NormalizePH returns the nil "probe disabled" state for the sentinel value,
// otherwise a pointer to the measurement. Used when scanning nullable store
// columns.
func NormalizePH(value *float64) *float64 {
	if value == nil || *value == phSentinel {
		return nil
	}
	return value
}
