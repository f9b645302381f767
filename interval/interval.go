package interval

import (
	"sort"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/constants"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/event"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/model"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/util"
)

// Coalesce merges overlapping and touching intervals into a minimal sorted
// disjoint set. Touching means within constants.Eps.
func Coalesce(intervals []model.Interval) []model.Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]model.Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	out := sorted[:1]
	for _, cur := range sorted[1:] {
		last := &out[len(out)-1]
		if cur.Start <= last.End+constants.Eps {
			last.End = util.Max(last.End, cur.End)
		} else {
			out = append(out, cur)
		}
	}
	return out
}

// ExtractRests returns coalesced rest intervals in quarter units.
//
// Explicit rest events always win: gap inference only runs when the document
// carries no usable explicit rest and requireExplicit is off. Records with
// missing onset or duration are skipped, never errors; partial records are
// common across these sources.
func ExtractRests(events []model.Event, requireExplicit bool) []model.Interval {
	var rests []model.Interval
	for _, ev := range events {
		if !event.IsRest(ev) {
			continue
		}
		onset, ok := event.Onset(ev)
		if !ok {
			continue
		}
		dur, ok := event.Dur(ev)
		if !ok {
			continue
		}
		if dur > constants.Eps {
			rests = append(rests, model.Interval{Start: onset, End: onset + dur})
		}
	}
	rests = Coalesce(rests)
	if len(rests) > 0 || requireExplicit {
		return rests
	}

	var active []model.Interval
	for _, ev := range events {
		if event.IsRest(ev) {
			continue
		}
		onset, ok := event.Onset(ev)
		if !ok {
			continue
		}
		dur, ok := event.Dur(ev)
		if !ok {
			continue
		}
		if dur < 0 {
			continue
		}
		active = append(active, model.Interval{Start: onset, End: onset + dur})
	}
	if len(active) == 0 {
		return nil
	}
	active = Coalesce(active)

	var inferred []model.Interval
	for i := 1; i < len(active); i++ {
		gap := active[i].Start - active[i-1].End
		if gap > constants.Eps {
			inferred = append(inferred, model.Interval{Start: active[i-1].End, End: active[i].Start})
		}
	}
	return Coalesce(inferred)
}

// EighthDurations converts quarter-unit rest intervals to eighth-note
// durations, rounded to 6 decimals.
func EighthDurations(rests []model.Interval) []float64 {
	out := make([]float64, 0, len(rests))
	for _, r := range rests {
		out = append(out, util.Round6(r.Duration()*2))
	}
	return out
}
