package wikimark

import (
	"fmt"
	"strings"
)

// State is a formatting context. Text is the root context and the zero value.
type State uint8

const (
	// Text is plain, unformatted text. It is always the bottom of the
	// context stack and is never pushed or popped by a rule.
	Text State = iota
	// Bold is entered and left by ''' .
	Bold
	// Italic is entered and left by '' .
	Italic
	// BoldItalic is entered and left by ''''' .
	BoldItalic
	// Link spans [[ ... ]].
	Link
	// Template spans {{ ... }}.
	Template

	stateCount
)

var stateNames = [stateCount]string{
	Text:       "text",
	Bold:       "bold",
	Italic:     "italic",
	BoldItalic: "bold-italic",
	Link:       "link",
	Template:   "template",
}

// States returns every state in declaration order.
func States() []State {
	out := make([]State, 0, stateCount)
	for s := Text; s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	return s < stateCount
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// ParseState resolves a state name as produced by String. Matching ignores
// case, surrounding space, and accepts '_' in place of '-'.
func ParseState(name string) (State, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch normalized {
	case "text":
		return Text, nil
	case "bold":
		return Bold, nil
	case "italic":
		return Italic, nil
	case "bold-italic", "bolditalic":
		return BoldItalic, nil
	case "link":
		return Link, nil
	case "template":
		return Template, nil
	default:
		return Text, fmt.Errorf("unknown state %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal state: invalid value %d", uint8(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
