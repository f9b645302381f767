package document

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/constants"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/model"
)

// Load reads and parses a JSON document into an untyped tree of
// map[string]any, []any and scalars.
func Load(path string) (any, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(dat, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}

// asEventList accepts v when it is a sequence whose records are mappings, or
// an empty sequence. Non-mapping elements are dropped rather than rejected.
func asEventList(v any) ([]model.Event, bool) {
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	if len(seq) == 0 {
		return []model.Event{}, true
	}
	if _, ok := seq[0].(map[string]any); !ok {
		return nil, false
	}
	events := make([]model.Event, 0, len(seq))
	for _, el := range seq {
		if m, ok := el.(map[string]any); ok {
			events = append(events, m)
		}
	}
	return events, true
}

// FindEventList locates a list of event records inside an arbitrarily nested
// document. Neither source guarantees a canonical structure, so this trades
// precision for tolerance: the value itself, then well-known keys, then a
// depth-first walk over nested containers.
func FindEventList(v any) ([]model.Event, bool) {
	if events, ok := asEventList(v); ok {
		return events, true
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, key := range constants.EventListKeys {
		if events, ok := asEventList(m[key]); ok {
			return events, true
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch m[k].(type) {
		case map[string]any, []any:
			if events, ok := FindEventList(m[k]); ok {
				return events, true
			}
		}
	}
	return nil, false
}
