package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pkt.systems/pslog"
	"pkt.systems/wikimark"
)

var parseFormats = []string{"tree", "segments", "json", "yaml", "pp"}

// nodeDump is the serialised form of a node. Leaves carry only Text.
type nodeDump struct {
	State    string     `json:"state,omitempty" yaml:"state,omitempty"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Children []nodeDump `json:"children,omitempty" yaml:"children,omitempty"`
}

type documentDump struct {
	Meta map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Root nodeDump       `json:"root" yaml:"root"`
}

func dumpNode(n *wikimark.Node) nodeDump {
	d := nodeDump{State: n.State.String()}
	if len(n.Children) > 0 {
		d.Children = make([]nodeDump, 0, len(n.Children))
	}
	for _, c := range n.Children {
		if c.IsLeaf() {
			d.Children = append(d.Children, nodeDump{Text: c.Text})
			continue
		}
		d.Children = append(d.Children, dumpNode(c.Node))
	}
	return d
}

func readDocument(cmd *cobra.Command, cfgPath string, pf *parserFlags, args []string) (*wikimark.Document, error) {
	cfg, err := loadConfig(cmd, cfgPath, pf, nil)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ParserOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, wikimark.WithLogger(pslog.Ctx(cmd.Context())))
	in, err := openInputs(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()
	return wikimark.ParseReader(wikimark.ParseRequest{Reader: in, Options: opts})
}

func newParseCmd(cfgPath *string) *cobra.Command {
	var pf parserFlags
	var format string
	cmd := &cobra.Command{
		Use:   "parse [inputs...]",
		Short: "Print the parse tree or segment list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(parseFormats, format) {
				return unsupportedParseFormat(format)
			}
			doc, err := readDocument(cmd, *cfgPath, &pf, args)
			if err != nil {
				return err
			}
			return writeParse(cmd.OutOrStdout(), doc, format)
		},
	}
	addParserFlags(cmd.Flags(), &pf)
	cmd.Flags().StringVarP(&format, "format", "f", "tree", "Output format: tree|segments|json|yaml|pp")
	return cmd
}

func writeParse(w io.Writer, doc *wikimark.Document, format string) error {
	switch format {
	case "tree":
		_, err := fmt.Fprintln(w, doc.Root.String())
		return err
	case "segments":
		for _, seg := range doc.Root.Segments() {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", seg.State, strconv.Quote(seg.Text)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(documentDump{Meta: doc.Meta, Root: dumpNode(doc.Root)})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(documentDump{Meta: doc.Meta, Root: dumpNode(doc.Root)}); err != nil {
			return err
		}
		return enc.Close()
	case "pp":
		pp.ColoringEnabled = isTerminal(w)
		_, err := pp.Fprintln(w, dumpNode(doc.Root))
		return err
	default:
		return unsupportedParseFormat(format)
	}
}

func unsupportedParseFormat(format string) error {
	return fmt.Errorf("unsupported parse format %q (expected %v)", format, parseFormats)
}

func newStatsCmd(cfgPath *string) *cobra.Command {
	var pf parserFlags
	cmd := &cobra.Command{
		Use:   "stats [inputs...]",
		Short: "Print node and text counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, *cfgPath, &pf, args)
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), wikimark.CollectStats(doc.Root, doc.Bytes))
		},
	}
	addParserFlags(cmd.Flags(), &pf)
	return cmd
}

func writeStats(w io.Writer, st wikimark.Stats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "input:     %s\n", humanize.Bytes(uint64(st.Bytes)))
	fmt.Fprintf(&b, "text:      %s\n", humanize.Bytes(uint64(st.TextBytes)))
	fmt.Fprintf(&b, "nodes:     %s\n", humanize.Comma(int64(st.Nodes)))
	fmt.Fprintf(&b, "leaves:    %s\n", humanize.Comma(int64(st.Leaves)))
	fmt.Fprintf(&b, "max depth: %d\n", st.MaxDepth)
	states := make([]wikimark.State, 0, len(st.ByState))
	for s := range st.ByState {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	for _, s := range states {
		fmt.Fprintf(&b, "  %-11s %s\n", s.String()+":", humanize.Comma(int64(st.ByState[s])))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
