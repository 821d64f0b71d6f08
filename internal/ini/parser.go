package ini

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ParseError reports input that cannot be decoded as text.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ini: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("ini: line %d: invalid UTF-8 text", e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load parses data into a Document. It never fails on unexpected tokens:
// anything that is not a section header or a key=value pair is kept verbatim.
// UTF-16 input is accepted when it carries a byte-order mark.
func Load(data []byte) (*Document, error) {
	text, err := decode(data)
	if err != nil {
		return nil, err
	}

	doc := New()
	var cur *section
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)

		if name, ok := headerName(trimmed); ok {
			cur = doc.ensure(name)
			continue
		}
		if cur == nil {
			doc.preamble = append(doc.preamble, line)
			continue
		}

		key, value, ok := splitPair(trimmed)
		if !ok {
			cur.entries = append(cur.entries, entry{raw: line})
			continue
		}
		if i := cur.indexOf(key); i >= 0 {
			// Last assignment wins, as in the engine's own reader.
			cur.entries[i].value = value
			continue
		}
		cur.entries = append(cur.entries, entry{key: key, value: value, pair: true})
	}

	return doc, nil
}

func decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", &ParseError{Line: 1, Err: fmt.Errorf("decoding UTF-16: %w", err)}
		}
		data = out
	}
	data = bytes.TrimPrefix(data, bomUTF8)

	if !utf8.Valid(data) {
		return "", &ParseError{Line: invalidLine(data)}
	}
	return string(data), nil
}

// invalidLine returns the 1-based line holding the first invalid UTF-8 byte.
func invalidLine(data []byte) int {
	line := 1
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return line
		}
		if r == '\n' {
			line++
		}
		data = data[size:]
	}
	return line
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func headerName(trimmed string) (string, bool) {
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(trimmed[1 : len(trimmed)-1]), true
}

// splitPair splits a trimmed line on its first '='. Comments and Unreal array
// operators (+Key, -Key, .Key, !Key) are not managed pairs.
func splitPair(trimmed string) (string, string, bool) {
	if trimmed == "" || strings.ContainsRune(";#+-.!", rune(trimmed[0])) {
		return "", "", false
	}
	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}
