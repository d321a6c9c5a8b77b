package models

// Status is the classification of a channel value against its range.
// pH and humidity use Optimal/Acceptable/OutOfRange; light has no error
// state and uses Optimal/TooIntense/LowLight instead.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusAcceptable Status = "acceptable"
	StatusOutOfRange Status = "out_of_range"
	StatusTooIntense Status = "too_intense"
	StatusLowLight   Status = "low_light"
)
