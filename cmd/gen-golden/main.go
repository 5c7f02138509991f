package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"

	"pkt.systems/wikimark"
)

// gen-golden rewrites testdata/<name>.tree.golden and
// testdata/<name>.html.golden from every testdata/<name>.wiki.
func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".wiki") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no .wiki files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		doc, err := wikimark.ParseReader(wikimark.ParseRequest{Reader: bytes.NewReader(src)})
		if err != nil {
			fatalf("parse %s: %v", path, err)
		}
		tree := []byte(doc.Root.String() + "\n")
		writeGolden(goldenPath(root, path, "tree"), tree)

		var html bytes.Buffer
		if err := wikimark.RenderHTML(&html, doc.Root); err != nil {
			fatalf("render html %s: %v", path, err)
		}
		writeGolden(goldenPath(root, path, "html"), html.Bytes())
	}
}

func goldenPath(root, wikiPath, kind string) string {
	rel, err := filepath.Rel(root, wikiPath)
	if err != nil {
		rel = wikiPath
	}
	name := strings.TrimSuffix(rel, ".wiki")
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
	return filepath.Join(root, fmt.Sprintf("%s.%s.golden", name, kind))
}

func writeGolden(path string, data []byte) {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
