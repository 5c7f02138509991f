// Package pdf renders wiki markup to PDF.
//
// Text flows with the page using the PDF core fonts; each formatting
// context picks its font style and colour from the wikimark theme, so the
// same theme drives terminal and PDF output.
//
// Example:
//
//	src := strings.NewReader("'''Report''' for {{Project}}\n")
//	cfg := pdf.DefaultConfig()
//	cfg.PageSize = "Letter"
//
//	err := pdf.Render(pdf.RenderRequest{
//		Reader: src,
//		Writer: outFile,
//		Theme:  wikimark.DefaultTheme(),
//		Config: cfg,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package pdf
