package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/model"
)

func q(s, e float64) model.Interval {
	return model.Interval{Start: s, End: e}
}

func TestCoalesceMergesOverlappingAndTouching(t *testing.T) {
	in := []model.Interval{q(2, 3), q(0, 1), q(0.5, 1.5), q(1.5, 2)}

	assert := assert.New(t)
	assert.Equal(Coalesce(in), []model.Interval{q(0, 3)})
}

func TestCoalesceIsIdempotent(t *testing.T) {
	coalesced := Coalesce([]model.Interval{q(0, 1), q(2, 3), q(5, 7)})

	assert := assert.New(t)
	assert.Equal(Coalesce(coalesced), coalesced)
}

func TestCoalesceOutputIsSortedDisjointAndMeasurePreserving(t *testing.T) {
	in := []model.Interval{q(8, 9), q(1, 3), q(0, 2), q(5, 6), q(4, 5)}
	out := Coalesce(in)

	assert := assert.New(t)
	assert.Equal(out, []model.Interval{q(0, 3), q(4, 6), q(8, 9)})

	var measure float64
	for i, iv := range out {
		measure += iv.Duration()
		if i > 0 {
			assert.Greater(iv.Start, out[i-1].End)
		}
	}
	// union measure of the input set
	assert.Equal(measure, 6.0)
}

func TestExplicitRestsTakePrecedenceOverGaps(t *testing.T) {
	events := []model.Event{
		{"onset": 0.0, "dur_q": 1.0, "pitch": 60.0},
		{"onset": 4.0, "dur_q": 1.0, "pitch": 62.0},
		{"onset": 1.0, "dur_q": 0.5, "is_rest": true},
	}
	rests := ExtractRests(events, false)

	assert := assert.New(t)
	assert.Equal(rests, []model.Interval{q(1, 1.5)})
}

func TestInfersRestsFromGapsBetweenActiveSpans(t *testing.T) {
	events := []model.Event{
		{"onset": 0.0, "dur_q": 1.0, "pitch": 60.0},
		{"onset": 2.0, "dur_q": 1.0, "pitch": 62.0},
	}
	rests := ExtractRests(events, false)

	assert := assert.New(t)
	assert.Equal(rests, []model.Interval{q(1, 2)})
	assert.Equal(EighthDurations(rests), []float64{2})
}

func TestRequireExplicitDisablesInference(t *testing.T) {
	events := []model.Event{
		{"onset": 0.0, "dur_q": 1.0, "pitch": 60.0},
		{"onset": 2.0, "dur_q": 1.0, "pitch": 62.0},
	}
	rests := ExtractRests(events, true)

	assert := assert.New(t)
	assert.Len(rests, 0)
}

func TestZeroDurationRestsFallThroughToInference(t *testing.T) {
	events := []model.Event{
		{"onset": 1.0, "dur_q": 0.0, "is_rest": true},
		{"onset": 0.0, "dur_q": 1.0, "pitch": 60.0},
		{"onset": 3.0, "dur_q": 1.0, "pitch": 62.0},
	}
	rests := ExtractRests(events, false)

	assert := assert.New(t)
	assert.Equal(rests, []model.Interval{q(1, 3)})
}

func TestSkipsRecordsMissingOnsetOrDuration(t *testing.T) {
	events := []model.Event{
		{"pitch": 60.0, "dur_q": 1.0},
		{"onset": 0.0, "pitch": 60.0},
		{"onset": 2.0, "is_rest": true},
	}
	rests := ExtractRests(events, false)

	assert := assert.New(t)
	assert.Len(rests, 0)
}

func TestSkipsNegativeDurationActiveSpans(t *testing.T) {
	events := []model.Event{
		{"onset": 0.0, "dur_q": -1.0, "pitch": 60.0},
		{"onset": 2.0, "dur_q": 1.0, "pitch": 62.0},
	}
	rests := ExtractRests(events, false)

	assert := assert.New(t)
	assert.Len(rests, 0)
}

func TestEmptyEventListYieldsNoRests(t *testing.T) {
	assert := assert.New(t)
	assert.Len(ExtractRests(nil, false), 0)
	assert.Len(ExtractRests([]model.Event{}, false), 0)
}

func TestEighthDurations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(EighthDurations([]model.Interval{q(0, 1.25)}), []float64{2.5})
	assert.Equal(EighthDurations(nil), []float64{})
}
