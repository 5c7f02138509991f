package wikimark

import (
	"fmt"
	"strings"

	"pkt.systems/pslog"
)

// Option configures a Parser.
type Option func(*config)

// StrayPolicy decides what happens to a closer token that does not match
// the current context, e.g. "]]" outside a link.
type StrayPolicy uint8

const (
	// StrayDrop consumes the token without producing text.
	StrayDrop StrayPolicy = iota
	// StrayLiteral keeps the token as plain text.
	StrayLiteral
)

func (p StrayPolicy) String() string {
	switch p {
	case StrayDrop:
		return "drop"
	case StrayLiteral:
		return "literal"
	default:
		return fmt.Sprintf("stray(%d)", uint8(p))
	}
}

// ParseStrayPolicy resolves "drop" or "literal". An empty name selects
// StrayDrop.
func ParseStrayPolicy(name string) (StrayPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "drop":
		return StrayDrop, nil
	case "literal", "keep", "text":
		return StrayLiteral, nil
	default:
		return StrayDrop, fmt.Errorf("unknown stray closer policy %q (expected drop|literal)", name)
	}
}

type config struct {
	rules       Rules
	stray       StrayPolicy
	log         pslog.Logger
	frontMatter bool
	softWrap    bool
}

var defaultRules = DefaultRules()

func newConfig(opts []Option) config {
	cfg := config{rules: defaultRules}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRules replaces the delimiter table. The table is copied; callers that
// build tables from untrusted input should run Rules.Validate first.
func WithRules(rules Rules) Option {
	return func(cfg *config) {
		if len(rules) == 0 {
			cfg.rules = defaultRules
			return
		}
		cfg.rules = rules.Clone()
	}
}

// WithStrayPolicy selects how unmatched closers are handled.
func WithStrayPolicy(policy StrayPolicy) Option {
	return func(cfg *config) {
		cfg.stray = policy
	}
}

// WithLogger enables debug events for dropped closers and contexts closed
// implicitly at end of input.
func WithLogger(log pslog.Logger) Option {
	return func(cfg *config) {
		cfg.log = log
	}
}

// WithFrontMatter makes ParseReader split a leading YAML front matter block
// off the input instead of parsing it as markup.
func WithFrontMatter(enabled bool) Option {
	return func(cfg *config) {
		cfg.frontMatter = enabled
	}
}

// WithSoftWrap breaks words longer than the render width instead of letting
// them overflow.
func WithSoftWrap(enabled bool) Option {
	return func(cfg *config) {
		cfg.softWrap = enabled
	}
}
