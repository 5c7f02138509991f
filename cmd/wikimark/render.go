package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/wikimark"
	"pkt.systems/wikimark/pdf"
)

func newRenderCmd(cfgPath *string) *cobra.Command {
	var pf parserFlags
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "render [inputs...]",
		Short: "Render wiki markup as ANSI, plain text, HTML or PDF",
		Long:  "Render wiki markup read from files, file:// or http(s) URLs, or stdin when no input is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgPath, &pf, &rf)
			if err != nil {
				return err
			}
			opts, err := cfg.ParserOptions()
			if err != nil {
				return err
			}
			logger := pslog.Ctx(cmd.Context())
			opts = append(opts, wikimark.WithLogger(logger))

			theme, _ := wikimark.ThemeByName(cfg.Theme)
			if rf.boring || cfg.Format == "plain" {
				theme = wikimark.BoringTheme()
			}

			in, err := openInputs(cmd.Context(), cmd.InOrStdin(), args)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer func() { _ = in.Close() }()

			out, err := openOutput(cmd, rf.output)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer out.cleanup()

			switch cfg.Format {
			case "pdf":
				if isTerminal(out.Writer) {
					return fmt.Errorf("refusing to write PDF to terminal; use -o/--output")
				}
				pcfg := cfg.PDFSettings()
				pcfg.Boring = rf.boring
				err = pdf.Render(pdf.RenderRequest{
					Reader:  in,
					Writer:  out,
					Theme:   theme,
					Config:  pcfg,
					Options: opts,
				})
			case "html":
				var doc *wikimark.Document
				doc, err = wikimark.ParseReader(wikimark.ParseRequest{Reader: in, Options: opts})
				if err == nil {
					err = wikimark.RenderHTML(out, doc.Root)
				}
			default:
				err = wikimark.Render(wikimark.RenderRequest{
					Reader:  in,
					Writer:  out,
					Width:   resolveWidth(cfg.Width),
					Theme:   theme,
					Options: opts,
				})
			}
			if err != nil {
				return err
			}
			if err := out.commit(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Debug("wikimark rendered", "format", cfg.Format, "theme", theme.Name(), "output", rf.output)
			return nil
		},
	}
	addParserFlags(cmd.Flags(), &pf)
	addRenderFlags(cmd.Flags(), &rf)
	return cmd
}
