package ini

import (
	"bytes"
	"strings"
)

// Serialize renders the document as UTF-8 text with "\n" line endings: the
// preamble, then each section header followed by its entries and a single
// blank separator line. Equal documents always produce equal bytes, and
// serializing a freshly loaded serialization reproduces it exactly.
func (d *Document) Serialize() []byte {
	var buf bytes.Buffer
	for _, line := range d.preamble {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	for _, s := range d.sections {
		buf.WriteString("[" + s.name + "]\n")
		// Blank lines left at the end of a section by DeleteKey would merge
		// into the separator and be dropped on the next Load.
		for _, e := range s.entries[:s.lastContent()+1] {
			if e.pair {
				buf.WriteString(e.key + "=" + e.value + "\n")
			} else {
				buf.WriteString(e.raw + "\n")
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// lastContent returns the index of the last entry that is not a blank line,
// or -1 when the section holds only blanks.
func (s *section) lastContent() int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].pair || strings.TrimSpace(s.entries[i].raw) != "" {
			return i
		}
	}
	return -1
}
