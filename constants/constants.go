package constants

// Eps absorbs floating-point noise when comparing onsets and durations.
const Eps = 1e-9

// Field-name aliases, tried in priority order. The two source schemas name
// the same attributes differently, so every semantic attribute carries its
// own list.
var (
	RestFlagKeys   = []string{"is_rest", "isRest", "rest", "is_silence", "silence"}
	TypeKeys       = []string{"type", "kind", "event_type", "eventType", "name"}
	PitchKeys      = []string{"pitch_midi", "pitchMidi", "pitch", "pc", "pitch_class", "pitchClass"}
	PitchListKeys  = []string{"pitches", "midi", "midis"}
	OnsetKeys      = []string{"offset", "off", "onset", "start", "t", "time", "offset_q", "onset_q", "start_q"}
	DurQuarterKeys = []string{"dur_q", "duration_q", "dur", "duration", "ql", "quarterLength", "quarter_length"}
	DurEighthKeys  = []string{"dur_8", "duration_8", "eighth", "eighths"}
)

// EventListKeys are the keys most likely to hold the event list when a
// document root is a mapping.
var EventListKeys = []string{"events", "event_list", "items", "notes", "data", "sequence", "segments"}

// ExpectedNidiPanel1Eighth is the known rest sequence of the Nidi panel-1
// fixture, in eighth-note units. Only consulted by --check-nidi-panel1.
var ExpectedNidiPanel1Eighth = []float64{
	3, 2.5, 1, 3.5, 1, 4, 1.5, 0.5, 1.5, 3, 2.5, 0.5, 3.5, 1, 4, 1.5, 0.5, 0.5,
}
