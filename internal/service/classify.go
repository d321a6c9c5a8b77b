package service

import "gardenmon/internal/models"

// The three channels classify differently on purpose: which side of the
// band is inclusive and which direction warns at all varies per sensor.
// Keep them as separate functions.

// phTolerance is the acceptable band width on either side of the optimal
// pH range.
const phTolerance = 0.5

// humidityTolerance is the acceptable band below the optimal humidity
// minimum. Humidity has no upper warning: too wet is never flagged.
const humidityTolerance = 10.0

// ClassifyPH grades a pH measurement. Tolerance boundaries are inclusive,
// the optimal band is excluded from the acceptable verdict. Callers must
// skip classification entirely for readings with a disabled probe.
func ClassifyPH(value float64, rc models.RangeConfig) models.Status {
	switch {
	case value >= rc.Min && value <= rc.Max:
		return models.StatusOptimal
	case value >= rc.Min-phTolerance && value < rc.Min:
		return models.StatusAcceptable
	case value > rc.Max && value <= rc.Max+phTolerance:
		return models.StatusAcceptable
	default:
		return models.StatusOutOfRange
	}
}

// ClassifyHumidity grades a soil humidity percentage. Only the dry side has
// an acceptable band; anything above the optimal maximum is out of range.
func ClassifyHumidity(value float64, rc models.RangeConfig) models.Status {
	switch {
	case value >= rc.Min && value <= rc.Max:
		return models.StatusOptimal
	case value >= rc.Min-humidityTolerance && value < rc.Min:
		return models.StatusAcceptable
	default:
		return models.StatusOutOfRange
	}
}

// ClassifyLight grades illuminance. Light has no error state: above the
// band is a warning (direct sun), below is informational (shade or night).
func ClassifyLight(value float64, rc models.RangeConfig) models.Status {
	switch {
	case value > rc.Max:
		return models.StatusTooIntense
	case value < rc.Min:
		return models.StatusLowLight
	default:
		return models.StatusOptimal
	}
}
