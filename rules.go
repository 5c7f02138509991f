package wikimark

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyToken reports a rule without a token.
	ErrEmptyToken = errors.New("rule token is empty")
	// ErrShadowedRule reports a rule that can never match because an
	// earlier rule's token is a prefix of it.
	ErrShadowedRule = errors.New("rule is shadowed by an earlier rule")
	// ErrRootState reports a rule that enters or exits the Text state.
	ErrRootState = errors.New("rule must not enter or exit the text state")
	// ErrNoTransition reports a rule that neither enters nor exits a state.
	ErrNoTransition = errors.New("rule has no state transition")
)

// RuleKind classifies how a rule moves between states.
type RuleKind uint8

const (
	// RuleToggle opens its state, or closes it when it is already on top.
	RuleToggle RuleKind = iota
	// RuleOpener only opens its state.
	RuleOpener
	// RuleCloser only closes its state.
	RuleCloser
)

func (k RuleKind) String() string {
	switch k {
	case RuleToggle:
		return "toggle"
	case RuleOpener:
		return "opener"
	case RuleCloser:
		return "closer"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseRuleKind resolves "toggle", "opener" or "closer".
func ParseRuleKind(name string) (RuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toggle":
		return RuleToggle, nil
	case "opener", "open":
		return RuleOpener, nil
	case "closer", "close":
		return RuleCloser, nil
	default:
		return RuleToggle, fmt.Errorf("unknown rule kind %q", name)
	}
}

// Rule maps a literal delimiter token to a state transition.
//
// A toggle has both Enter and Exit set to the same state, an opener only
// Enter, a closer only Exit. Len caches len(Token).
type Rule struct {
	Token    string
	Len      int
	Enter    State
	Exit     State
	HasEnter bool
	HasExit  bool
}

// Toggle returns a rule that opens state and closes it on the next
// occurrence while it is the current context.
func Toggle(token string, state State) Rule {
	return Rule{Token: token, Len: len(token), Enter: state, Exit: state, HasEnter: true, HasExit: true}
}

// Opener returns a rule that only opens state.
func Opener(token string, state State) Rule {
	return Rule{Token: token, Len: len(token), Enter: state, HasEnter: true}
}

// Closer returns a rule that only closes state.
func Closer(token string, state State) Rule {
	return Rule{Token: token, Len: len(token), Exit: state, HasExit: true}
}

// NewRule builds a rule of the given kind.
func NewRule(kind RuleKind, token string, state State) Rule {
	switch kind {
	case RuleOpener:
		return Opener(token, state)
	case RuleCloser:
		return Closer(token, state)
	default:
		return Toggle(token, state)
	}
}

// Kind classifies the rule.
func (r Rule) Kind() RuleKind {
	switch {
	case r.HasEnter && r.HasExit:
		return RuleToggle
	case r.HasEnter:
		return RuleOpener
	default:
		return RuleCloser
	}
}

// State returns the state the rule enters or exits.
func (r Rule) State() State {
	if r.HasEnter {
		return r.Enter
	}
	return r.Exit
}

// Matches reports whether the token occurs in text at byte offset pos.
func (r Rule) Matches(text string, pos int) bool {
	if pos < 0 || r.Len == 0 || pos+r.Len > len(text) {
		return false
	}
	return text[pos:pos+r.Len] == r.Token
}

func (r Rule) String() string {
	return fmt.Sprintf("%q %s %s", r.Token, r.Kind(), r.State())
}

// Rules is an ordered rule table. Earlier rules win, so a token must come
// before any shorter token that is a prefix of it.
type Rules []Rule

// DefaultRules returns a fresh copy of the wiki markup grammar.
func DefaultRules() Rules {
	return Rules{
		Toggle("'''''", BoldItalic),
		Toggle("'''", Bold),
		Toggle("''", Italic),
		Opener("[[", Link),
		Closer("]]", Link),
		Opener("{{", Template),
		Closer("}}", Template),
	}
}

// Match returns the first rule whose token occurs at pos.
func (rs Rules) Match(text string, pos int) (Rule, bool) {
	for i := range rs {
		if rs[i].Matches(text, pos) {
			return rs[i], true
		}
	}
	return Rule{}, false
}

// Validate checks the table for rules that can never match or that would
// corrupt the context stack.
func (rs Rules) Validate() error {
	for i, r := range rs {
		if r.Token == "" {
			return fmt.Errorf("rule %d: %w", i, ErrEmptyToken)
		}
		if r.Len != len(r.Token) {
			return fmt.Errorf("rule %d %q: length %d does not match token", i, r.Token, r.Len)
		}
		if !r.HasEnter && !r.HasExit {
			return fmt.Errorf("rule %d %q: %w", i, r.Token, ErrNoTransition)
		}
		if (r.HasEnter && r.Enter == Text) || (r.HasExit && r.Exit == Text) {
			return fmt.Errorf("rule %d %q: %w", i, r.Token, ErrRootState)
		}
		if (r.HasEnter && !r.Enter.Valid()) || (r.HasExit && !r.Exit.Valid()) {
			return fmt.Errorf("rule %d %q: invalid state", i, r.Token)
		}
		for j := 0; j < i; j++ {
			if strings.HasPrefix(r.Token, rs[j].Token) {
				return fmt.Errorf("rule %d %q after rule %d %q: %w", i, r.Token, j, rs[j].Token, ErrShadowedRule)
			}
		}
	}
	return nil
}

// Clone returns a copy that does not share the backing array.
func (rs Rules) Clone() Rules {
	if rs == nil {
		return nil
	}
	out := make(Rules, len(rs))
	copy(out, rs)
	return out
}
