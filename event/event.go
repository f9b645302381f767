package event

import (
	"strconv"
	"strings"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/constants"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/model"
)

// FirstPresent returns the first non-null value among keys, in priority
// order.
func FirstPresent(ev model.Event, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := ev[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// ToFloat coerces a JSON scalar to a float. Numeric strings and booleans
// count; anything else is absent.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return v != nil
}

// IsRest classifies a record. The sources disagree on how rests are encoded,
// so three conventions are checked in order: an explicit boolean-like flag,
// a type/kind/name containing "rest", and finally the absence of any
// pitch-like field alongside an empty pitch list.
//
// The last branch can also catch a malformed active record whose pitch data
// is genuinely missing; the sources give no way to tell the two apart.
func IsRest(ev model.Event) bool {
	for _, k := range constants.RestFlagKeys {
		if v, ok := ev[k]; ok && truthy(v) {
			return true
		}
	}
	if t, ok := FirstPresent(ev, constants.TypeKeys); ok {
		if s, ok := t.(string); ok && strings.Contains(strings.ToLower(s), "rest") {
			return true
		}
	}
	if _, ok := FirstPresent(ev, constants.PitchKeys); !ok {
		if pitches, ok := FirstPresent(ev, constants.PitchListKeys); ok {
			if seq, ok := pitches.([]any); ok && len(seq) == 0 {
				return true
			}
		}
	}
	return false
}

// Onset extracts the event start time in quarter units.
func Onset(ev model.Event) (float64, bool) {
	v, ok := FirstPresent(ev, constants.OnsetKeys)
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// Dur extracts the event duration in quarter units. Some sources record
// durations in eighth units instead; those divide by two.
func Dur(ev model.Event) (float64, bool) {
	if v, ok := FirstPresent(ev, constants.DurQuarterKeys); ok {
		if d, ok := ToFloat(v); ok {
			return d, true
		}
	}
	if v, ok := FirstPresent(ev, constants.DurEighthKeys); ok {
		if d, ok := ToFloat(v); ok {
			return d / 2, true
		}
	}
	return 0, false
}
