package wikimark

import "strings"

// Segment is one run of text in the flat form together with the state that
// was current when it was scanned.
type Segment struct {
	State State
	Text  string
}

// JoinSegments concatenates the text of all segments.
func JoinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// SegmentsByState keeps the segments tagged with state, in order.
func SegmentsByState(segs []Segment, state State) []Segment {
	var out []Segment
	for _, s := range segs {
		if s.State == state {
			out = append(out, s)
		}
	}
	return out
}
