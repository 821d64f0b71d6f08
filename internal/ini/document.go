package ini

import "strings"

// Document is an in-memory INI file: an optional preamble followed by an
// ordered list of uniquely named sections.
type Document struct {
	preamble []string
	sections []*section
}

type section struct {
	name    string
	entries []entry
}

// entry is either a managed key/value pair or a raw line kept verbatim.
type entry struct {
	key   string
	value string
	raw   string
	pair  bool
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// GetValue returns the value stored under key in section. The section name is
// matched case-insensitively, the key exactly.
func (d *Document) GetValue(sectionName, key string) (string, bool) {
	s := d.find(sectionName)
	if s == nil {
		return "", false
	}
	i := s.indexOf(key)
	if i < 0 {
		return "", false
	}
	return s.entries[i].value, true
}

// SetValue creates or overwrites key in section. A missing section is
// appended at the end of the document; an existing key keeps its position and
// a new key goes after the last non-blank line of the section.
func (d *Document) SetValue(sectionName, key, value string) {
	s := d.ensure(sectionName)
	if i := s.indexOf(key); i >= 0 {
		s.entries[i].value = value
		return
	}
	at := s.lastContent() + 1
	s.entries = append(s.entries, entry{})
	copy(s.entries[at+1:], s.entries[at:])
	s.entries[at] = entry{key: key, value: value, pair: true}
}

// DeleteKey removes key from section. Missing sections and keys are ignored.
// The section itself is kept even when it ends up empty.
func (d *Document) DeleteKey(sectionName, key string) {
	s := d.find(sectionName)
	if s == nil {
		return
	}
	i := s.indexOf(key)
	if i < 0 {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// HasSection reports whether the document contains the named section.
func (d *Document) HasSection(sectionName string) bool {
	return d.find(sectionName) != nil
}

// Sections returns the section names in document order.
func (d *Document) Sections() []string {
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// Keys returns the managed keys of a section in insertion order, or nil when
// the section does not exist.
func (d *Document) Keys(sectionName string) []string {
	s := d.find(sectionName)
	if s == nil {
		return nil
	}
	keys := []string{}
	for _, e := range s.entries {
		if e.pair {
			keys = append(keys, e.key)
		}
	}
	return keys
}

func (d *Document) find(name string) *section {
	for _, s := range d.sections {
		if strings.EqualFold(s.name, name) {
			return s
		}
	}
	return nil
}

func (d *Document) ensure(name string) *section {
	if s := d.find(name); s != nil {
		return s
	}
	s := &section{name: name}
	d.sections = append(d.sections, s)
	return s
}

func (s *section) indexOf(key string) int {
	for i, e := range s.entries {
		if e.pair && e.key == key {
			return i
		}
	}
	return -1
}

// Preamble returns the lines that precede the first section header.
func (d *Document) Preamble() []string {
	return append([]string(nil), d.preamble...)
}

// RawLines returns the non-blank passthrough lines of a section in order, or
// nil when the section does not exist.
func (d *Document) RawLines(sectionName string) []string {
	s := d.find(sectionName)
	if s == nil {
		return nil
	}
	lines := []string{}
	for _, e := range s.entries {
		if !e.pair && strings.TrimSpace(e.raw) != "" {
			lines = append(lines, e.raw)
		}
	}
	return lines
}

// EnsureLine adds a passthrough line to section unless an identical line is
// already there. An empty section name targets the preamble. A missing
// section is appended at the end of the document.
func (d *Document) EnsureLine(sectionName, line string) {
	if sectionName == "" {
		for _, l := range d.preamble {
			if l == line {
				return
			}
		}
		d.preamble = append(d.preamble, line)
		return
	}

	s := d.ensure(sectionName)
	for _, e := range s.entries {
		if !e.pair && e.raw == line {
			return
		}
	}
	at := s.lastContent() + 1
	s.entries = append(s.entries, entry{})
	copy(s.entries[at+1:], s.entries[at:])
	s.entries[at] = entry{raw: line}
}
