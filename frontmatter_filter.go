package wikimark

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const maxFrontMatterBytes = 64 * 1024

var frontMatterDelim = []byte("---")

// splitFrontMatter separates a leading "---" fenced YAML block from the
// body. Inputs without a plausible, terminated block come back unchanged
// with a nil meta slice.
func splitFrontMatter(src []byte) (meta, body []byte) {
	openLine, next, ok := nextLine(src, 0)
	if !ok || !bytes.Equal(bytes.TrimSpace(trimBOM(openLine)), frontMatterDelim) {
		return nil, src
	}
	secondLine, _, ok := nextLine(src, next)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return nil, src
	}
	for idx := next; idx < len(src) && idx <= maxFrontMatterBytes; {
		line, lineNext, ok := nextLine(src, idx)
		if !ok {
			break
		}
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			return src[next:idx], src[lineNext:]
		}
		idx = lineNext
	}
	return nil, src
}

func decodeFrontMatter(meta []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(bytes.TrimSpace(meta)) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(meta, &out); err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	return out, nil
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, start, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("#")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":"))
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
