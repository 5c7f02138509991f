package wikimark

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"

	"pkt.systems/pslog"
)

func leaf(text string) Child {
	return Child{Text: text}
}

func node(state State, children ...Child) Child {
	return Child{Node: &Node{State: state, Children: children}}
}

func root(children ...Child) *Node {
	return &Node{State: Text, Children: children}
}

func TestParseNoMarkupIsIdentity(t *testing.T) {
	for _, src := range []string{
		"plain prose",
		"single ' quote and [ bracket ] and { brace }",
		"ünïcödé ✓ 日本語",
		"'[{",
	} {
		got := Parse(src)
		want := root(leaf(src))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%q: got %s want %s", src, got, want)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	got := Parse("")
	if got.State != Text || len(got.Children) != 0 {
		t.Fatalf("expected empty root, got %s", got)
	}
	if segs := ParseSegments(""); len(segs) != 0 {
		t.Fatalf("expected no segments, got %v", segs)
	}
}

func TestParseToggle(t *testing.T) {
	got := Parse("'''bold'''")
	want := root(node(Bold, leaf("bold")))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
	segs := ParseSegments("'''bold'''")
	if !reflect.DeepEqual(segs, []Segment{{State: Bold, Text: "bold"}}) {
		t.Fatalf("unexpected segments %v", segs)
	}
}

func TestParseNested(t *testing.T) {
	got := Parse("'''a''b''a'''")
	want := root(node(Bold, leaf("a"), node(Italic, leaf("b")), leaf("a")))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseMixedExample(t *testing.T) {
	src := "This is ''italic'', '''bold''', and '''''bold+italic'''''. Also a [[Link]] and a {{Template}}."
	got := Parse(src)
	want := root(
		leaf("This is "),
		node(Italic, leaf("italic")),
		leaf(", "),
		node(Bold, leaf("bold")),
		leaf(", and "),
		node(BoldItalic, leaf("bold+italic")),
		leaf(". Also a "),
		node(Link, leaf("Link")),
		leaf(" and a "),
		node(Template, leaf("Template")),
		leaf("."),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s\nwant %s", got, want)
	}
	for state, text := range map[State]string{
		Italic:     "italic",
		Bold:       "bold",
		BoldItalic: "bold+italic",
		Link:       "Link",
		Template:   "Template",
	} {
		if got := got.TextByState(state); got != text {
			t.Fatalf("%s: got %q want %q", state, got, text)
		}
	}
}

func TestParseUnterminated(t *testing.T) {
	got := Parse("'''unterminated")
	want := root(node(Bold, leaf("unterminated")))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseUnterminatedUnwindsInnermostFirst(t *testing.T) {
	got := Parse("a [[b ''c {{d")
	want := root(
		leaf("a "),
		node(Link, leaf("b "), node(Italic, leaf("c "), node(Template, leaf("d")))),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseStrayCloserDropped(t *testing.T) {
	got := Parse("a]]b")
	want := root(leaf("a"), leaf("b"))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
	if strings.Contains(got.Text(), "]]") {
		t.Fatalf("stray closer leaked into %q", got.Text())
	}
	if got := Parse("}}x"); !reflect.DeepEqual(got, root(leaf("x"))) {
		t.Fatalf("leading stray: got %s", got)
	}
}

func TestParseStrayCloserLiteral(t *testing.T) {
	got := Parse("a]]b [[c}}d]]", WithStrayPolicy(StrayLiteral))
	want := root(leaf("a]]b "), node(Link, leaf("c}}d")))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseMismatchedCloserInsideContext(t *testing.T) {
	got := Parse("[[a}}b]]")
	want := root(node(Link, leaf("a"), leaf("b")))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseEmptyContextHasNoLeaves(t *testing.T) {
	got := Parse("[[]]")
	want := root(Child{Node: &Node{State: Link}})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
	if n := got.Children[0].Node; len(n.Children) != 0 {
		t.Fatalf("expected empty link, got %d children", len(n.Children))
	}
	for _, src := range []string{"''''", "{{}}", "''''''''''"} {
		Parse(src).Walk(func(n *Node, _ int) bool {
			for _, c := range n.Children {
				if c.IsLeaf() && c.Text == "" {
					t.Fatalf("%q: empty leaf under %s", src, n.State)
				}
			}
			return true
		})
	}
}

func TestParseOpenerOnSameStateCloses(t *testing.T) {
	got := Parse("[[a[[b")
	want := root(node(Link, leaf("a")), leaf("b"))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseLongestTokenWins(t *testing.T) {
	cases := []struct {
		src  string
		want *Node
	}{
		{"''''x''''", root(node(Bold, leaf("'x")), leaf("'"))},
		{"'''''x'''''", root(node(BoldItalic, leaf("x")))},
		{"''''''x", root(node(BoldItalic, leaf("'x")))},
	}
	for _, tc := range cases {
		got := Parse(tc.src)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: got %s want %s", tc.src, got, tc.want)
		}
	}
}

func TestParseUTF8(t *testing.T) {
	got := Parse("å '''ø''' ✓[[日本]]")
	want := root(leaf("å "), node(Bold, leaf("ø")), leaf(" ✓"), node(Link, leaf("日本")))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseDeepNesting(t *testing.T) {
	depth := 200
	src := strings.Repeat("[[{{", depth) + "x"
	got := Parse(src)
	max := 0
	got.Walk(func(_ *Node, d int) bool {
		if d > max {
			max = d
		}
		return true
	})
	if max != 2*depth {
		t.Fatalf("expected depth %d, got %d", 2*depth, max)
	}
	if got.Text() != "x" {
		t.Fatalf("unexpected text %q", got.Text())
	}
}

func TestParserReuseResetsState(t *testing.T) {
	p := NewParser()
	first := p.Parse("'''open [[link")
	second := p.Parse("plain")
	if !reflect.DeepEqual(second, root(leaf("plain"))) {
		t.Fatalf("state leaked into second parse: %s", second)
	}
	if first.Text() != "open link" {
		t.Fatalf("first result changed: %s", first)
	}
}

func TestParserConcurrentPool(t *testing.T) {
	src := "This is ''italic'', '''bold''' and [[Link]]."
	want := Parse(src)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Parse(src); !reflect.DeepEqual(got, want) {
					t.Errorf("concurrent parse mismatch: %s", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseSegmentsMatchesTreeFlattening(t *testing.T) {
	for _, src := range []string{
		"",
		"a]]b",
		"'''a''b''a'''",
		"x [[y {{z}} w]] ''v",
		"This is ''italic'', '''bold''', and '''''bold+italic'''''.",
	} {
		tree := Parse(src)
		flat := ParseSegments(src)
		if !reflect.DeepEqual(flat, tree.Segments()) {
			t.Fatalf("%q: flat %v tree %v", src, flat, tree.Segments())
		}
		if JoinSegments(flat) != tree.Text() {
			t.Fatalf("%q: joined %q text %q", src, JoinSegments(flat), tree.Text())
		}
	}
}

func TestParseWithCustomRules(t *testing.T) {
	rules := Rules{Toggle("**", Bold), Toggle("*", Italic), Opener("<", Link), Closer(">", Link)}
	if err := rules.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	p := NewParser(WithRules(rules))
	got := p.Parse("**b** *i* <l> '''x'''")
	want := root(
		node(Bold, leaf("b")),
		leaf(" "),
		node(Italic, leaf("i")),
		leaf(" "),
		node(Link, leaf("l")),
		leaf(" '''x'''"),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
	if len(p.Rules()) != len(rules) {
		t.Fatalf("unexpected rule table %v", p.Rules())
	}
}

func TestParseLogsStrayAndImplicitClose(t *testing.T) {
	var buf bytes.Buffer
	logger := pslog.NewWithOptions(&buf, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.DebugLevel,
	})
	Parse("a]] '''b", WithLogger(logger))

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		payload := map[string]any{}
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		msg, _ := payload["msg"].(string)
		if msg == "" {
			msg, _ = payload["message"].(string)
		}
		messages = append(messages, msg)
	}
	want := []string{"wikimark stray closer dropped", "wikimark implicit close"}
	if !reflect.DeepEqual(messages, want) {
		t.Fatalf("unexpected log messages %v", messages)
	}
}
