package aup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads an aup2 project text into a Document. Values are not
// interpreted: everything after the first '=' is kept verbatim,
// including empty values. Blank lines are skipped.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if line == 1 {
			text = strings.TrimPrefix(text, "\uFEFF")
		}
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			name := text[1 : len(text)-1]
			if name == "" {
				return nil, fmt.Errorf("line %d: empty section header", line)
			}
			doc.Sections = append(doc.Sections, Section{Name: name})
			continue
		}

		key, value, found := strings.Cut(text, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", line, text)
		}
		if len(doc.Sections) == 0 {
			return nil, fmt.Errorf("line %d: field %q outside any section", line, key)
		}
		cur := &doc.Sections[len(doc.Sections)-1]
		cur.Fields = append(cur.Fields, Field{Key: key, Value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading project text: %w", err)
	}
	return doc, nil
}
