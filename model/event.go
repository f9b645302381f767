package model

// Event is a single record from a source document. The two sources don't
// agree on field names, so records stay schema-free and attributes are
// resolved through alias lists at read time.
type Event = map[string]any
