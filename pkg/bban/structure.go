package bban

import "strings"

// Structure is the ordered field layout of one BBAN. Several countries may
// share one Structure; it is never mutated after construction.
type Structure struct {
	entries []Entry
	length  int
}

// Segment is one entry paired with the slice of a BBAN it covers.
type Segment struct {
	Entry Entry
	Value string
}

// NewStructure builds a structure from entries in declaration order.
func NewStructure(entries ...Entry) *Structure {
	s := &Structure{entries: make([]Entry, len(entries))}
	copy(s.entries, entries)
	for _, e := range entries {
		s.length += e.Length()
	}
	return s
}

// Entries returns a copy of the entries in declaration order.
func (s *Structure) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Length is the total BBAN length: the sum of every entry length.
func (s *Structure) Length() int {
	return s.length
}

// Has reports whether the structure contains an entry with the given role.
func (s *Structure) Has(t EntryType) bool {
	for _, e := range s.entries {
		if e.Type() == t {
			return true
		}
	}
	return false
}

// Split walks the entries and slices bban at the cumulative offsets. Entries
// past the end of a short bban get a truncated (possibly empty) value; callers
// that need exact slices check Length first.
func (s *Structure) Split(bban string) []Segment {
	segments := make([]Segment, 0, len(s.entries))
	offset := 0
	for _, e := range s.entries {
		start := min(offset, len(bban))
		end := min(offset+e.Length(), len(bban))
		segments = append(segments, Segment{Entry: e, Value: bban[start:end]})
		offset += e.Length()
	}
	return segments
}

// Field extracts the value of the first entry with role t.
// ok is false when the structure has no such entry.
func (s *Structure) Field(bban string, t EntryType) (value string, ok bool) {
	for _, seg := range s.Split(bban) {
		if seg.Entry.Type() == t {
			return seg.Value, true
		}
	}
	return "", false
}

// String renders the layout in registry notation, e.g. "bank_code:5!n account_number:11!n".
func (s *Structure) String() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
