package wikimark

// Token is a text segment with the style of its formatting context.
type Token struct {
	Text  string
	State State
	Style Style
}

// Tokens converts the flat form of root into styled tokens.
func Tokens(root *Node, styles Styles) []Token {
	segs := root.Segments()
	out := make([]Token, 0, len(segs))
	for _, s := range segs {
		out = append(out, Token{Text: s.Text, State: s.State, Style: styles.For(s.State)})
	}
	return out
}

// Emit writes the tokens of root to sink in document order and flushes it.
func Emit(root *Node, theme Theme, sink Sink) error {
	if theme == nil {
		theme = DefaultTheme()
	}
	for _, tok := range Tokens(root, theme.Styles()) {
		if err := sink.WriteToken(tok); err != nil {
			return err
		}
	}
	return sink.Flush()
}
