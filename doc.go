// Package wikimark parses inline wiki markup into a tree of formatting
// contexts and renders it for terminals, HTML and PDF.
//
// The recognised delimiters are table-driven (see DefaultRules):
//
//	'''''bold+italic'''''  '''bold'''  ''italic''  [[Link]]  {{Template}}
//
// Toggles open their context and close it when met again while that
// context is current. Openers and closers pair up; a closer that does not
// match the current context is a stray and is dropped unless
// WithStrayPolicy(StrayLiteral) is set. Parsing never fails: contexts still
// open at end of input are closed implicitly.
//
// The result is available as a tree (Parse) or as a flat list of
// state-tagged segments (ParseSegments), which is the tree's leaves in
// document order.
//
// Example:
//
//	root := wikimark.Parse("A '''bold''' [[Link]].")
//	fmt.Println(root.TextByState(wikimark.Bold)) // bold
//
//	err := wikimark.Render(wikimark.RenderRequest{
//		Reader: strings.NewReader("''Hello'' {{world}}\n"),
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  wikimark.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package wikimark
