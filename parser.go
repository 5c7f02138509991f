package wikimark

import (
	"sync"
	"unicode/utf8"
)

var parserPool = sync.Pool{
	New: func() any {
		return &Parser{}
	},
}

// Parser scans wiki markup in a single forward pass. The zero value is not
// ready for use; create parsers with NewParser.
//
// A Parser resets its state on every call and may be reused, but it is not
// safe to use from parallel goroutines.
type Parser struct {
	cfg   config
	stack []*Node
	buf   []byte

	stackArr [32]*Node
	bufArr   [256]byte
}

// NewParser returns a parser using the default rule table unless WithRules
// is given.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	p.configure(opts)
	return p
}

func (p *Parser) configure(opts []Option) {
	p.cfg = newConfig(opts)
	p.reset()
}

func (p *Parser) reset() {
	for i := range p.stack {
		p.stack[i] = nil
	}
	p.stack = p.stackArr[:0]
	p.buf = p.bufArr[:0]
}

// Rules returns a copy of the parser's rule table.
func (p *Parser) Rules() Rules {
	return p.cfg.rules.Clone()
}

// Parse converts text into a tree rooted at a Text node. It never fails:
// unterminated contexts are closed at end of input, and closers without a
// matching open context are handled per the stray policy.
func (p *Parser) Parse(text string) *Node {
	p.reset()
	root := &Node{State: Text}
	p.stack = append(p.stack, root)
	for i := 0; i < len(text); {
		if rule, ok := p.cfg.rules.Match(text, i); ok {
			p.apply(rule, i)
			i += rule.Len
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		p.buf = append(p.buf, text[i:i+size]...)
		i += size
	}
	p.flush()
	for len(p.stack) > 1 {
		if p.cfg.log != nil {
			p.cfg.log.Debug("wikimark implicit close", "state", p.top().State.String(), "depth", len(p.stack)-1)
		}
		p.pop()
	}
	p.reset()
	return root
}

// ParseSegments returns the flat form of Parse.
func (p *Parser) ParseSegments(text string) []Segment {
	return p.Parse(text).Segments()
}

func (p *Parser) apply(rule Rule, offset int) {
	top := p.top().State
	switch {
	case rule.HasExit && top == rule.Exit:
		p.flush()
		p.pop()
	case rule.HasEnter && top == rule.Enter:
		p.flush()
		p.pop()
	case rule.HasEnter:
		p.flush()
		p.stack = append(p.stack, &Node{State: rule.Enter})
	default:
		p.stray(rule, offset)
	}
}

func (p *Parser) stray(rule Rule, offset int) {
	switch p.cfg.stray {
	case StrayLiteral:
		p.buf = append(p.buf, rule.Token...)
	default:
		p.flush()
		if p.cfg.log != nil {
			p.cfg.log.Debug("wikimark stray closer dropped", "token", rule.Token, "offset", offset, "state", p.top().State.String())
		}
	}
}

func (p *Parser) top() *Node {
	return p.stack[len(p.stack)-1]
}

// pop seals the current context into its parent. The root is never popped.
func (p *Parser) pop() {
	if len(p.stack) < 2 {
		return
	}
	n := p.stack[len(p.stack)-1]
	p.stack[len(p.stack)-1] = nil
	p.stack = p.stack[:len(p.stack)-1]
	p.top().appendNode(n)
}

func (p *Parser) flush() {
	if len(p.buf) == 0 {
		return
	}
	p.top().appendText(string(p.buf))
	p.buf = p.buf[:0]
}

// Parse parses text with a pooled parser.
func Parse(text string, opts ...Option) *Node {
	p := parserPool.Get().(*Parser)
	p.configure(opts)
	root := p.Parse(text)
	p.cfg = config{}
	parserPool.Put(p)
	return root
}

// ParseSegments parses text with a pooled parser and returns the flat form.
func ParseSegments(text string, opts ...Option) []Segment {
	return Parse(text, opts...).Segments()
}
