package models

// WindowOptions are the selectable lookback windows, in hours. The
// presentation layer offers exactly these; anything else is rejected.
var WindowOptions = []int{1, 6, 12, 24, 48, 72}

// DefaultWindowHours is the window selected on first render.
const DefaultWindowHours = 24

// ValidWindow reports whether hours is one of the selectable windows.
func ValidWindow(hours int) bool {
	for _, opt := range WindowOptions {
		if hours == opt {
			return true
		}
	}
	return false
}
