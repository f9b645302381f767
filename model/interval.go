package model

// Interval is a (start, end) span in quarter-note units, Start <= End.
type Interval struct {
	Start float64
	End   float64
}

func (i Interval) Duration() float64 {
	return i.End - i.Start
}
