package model

type RestReport struct {
	RestsEighth          []float64    `json:"rests_eighth"`
	RestIntervalsQuarter [][2]float64 `json:"rest_intervals_quarter"`
}

type ResultDocument struct {
	Lumen RestReport `json:"lumen"`
	Nidi  RestReport `json:"nidi"`
}
