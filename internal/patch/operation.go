package patch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mtpbwy/enginepatch/internal/ini"
)

// Kind discriminates the operation variants.
type Kind int

const (
	KindSet Kind = iota + 1
	KindRemove
	// KindLine keeps a raw line such as "+Paths=..." or a comment in a
	// section. The line goes in Value; Key is unused.
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindRemove:
		return "remove"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation is one idempotent edit of a single key or raw line. Value holds
// the new value for KindSet and the line text for KindLine.
type Operation struct {
	Kind    Kind
	Section string
	Key     string
	Value   string
}

// Set returns an operation that writes key=value into section.
func Set(section, key, value string) Operation {
	return Operation{Kind: KindSet, Section: section, Key: key, Value: value}
}

// Remove returns an operation that deletes key from section.
func Remove(section, key string) Operation {
	return Operation{Kind: KindRemove, Section: section, Key: key}
}

// Line returns an operation that adds a raw line to section unless it is
// already there. An empty section targets the lines before the first header.
func Line(section, text string) Operation {
	return Operation{Kind: KindLine, Section: section, Value: text}
}

func (o Operation) String() string {
	switch o.Kind {
	case KindSet:
		return fmt.Sprintf("set [%s] %s=%s", o.Section, o.Key, o.Value)
	case KindLine:
		return fmt.Sprintf("line [%s] %s", o.Section, o.Value)
	}
	return fmt.Sprintf("%s [%s] %s", o.Kind, o.Section, o.Key)
}

// Validate reports whether the operation's result reads back unchanged after
// a save and reload. Keys the parser keeps as raw lines (";x", "+Paths") are
// rejected for set and remove; use a line operation for those.
func (o Operation) Validate() error {
	var err error
	switch o.Kind {
	case KindSet:
		err = errors.Join(ini.CheckSection(o.Section), ini.CheckKey(o.Key), ini.CheckValue(o.Value))
	case KindRemove:
		err = errors.Join(ini.CheckSection(o.Section), ini.CheckKey(o.Key))
	case KindLine:
		if o.Section == "" {
			err = checkPreambleLine(o.Value)
		} else {
			err = errors.Join(ini.CheckSection(o.Section), ini.CheckLine(o.Value))
		}
	default:
		err = fmt.Errorf("unknown operation kind %d", int(o.Kind))
	}
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrInvalidOperation, o, err)
	}
	return nil
}

// Before the first header any line is kept verbatim except another header.
func checkPreambleLine(line string) error {
	if err := ini.CheckValue(line); err != nil {
		return err
	}
	doc, err := ini.Load([]byte(line + "\n"))
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" || len(doc.Sections()) > 0 {
		return fmt.Errorf("%w: preamble line %q", ini.ErrInvalidName, line)
	}
	return nil
}

// Batch is an ordered list of operations. Later operations on the same
// section/key override earlier ones.
type Batch []Operation

// ApplyTo runs every operation against doc in order.
func (b Batch) ApplyTo(doc *ini.Document) {
	for _, op := range b {
		switch op.Kind {
		case KindSet:
			doc.SetValue(op.Section, op.Key, op.Value)
		case KindRemove:
			doc.DeleteKey(op.Section, op.Key)
		case KindLine:
			doc.EnsureLine(op.Section, op.Value)
		}
	}
}

// Validate checks every operation and reports the first invalid one.
func (b Batch) Validate() error {
	for i, op := range b {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

// Counts returns how many writing and removing operations the batch holds.
// Line operations count as writes.
func (b Batch) Counts() (sets, removes int) {
	for _, op := range b {
		switch op.Kind {
		case KindSet, KindLine:
			sets++
		case KindRemove:
			removes++
		}
	}
	return sets, removes
}

// FromDocument returns a batch that unions doc into a target: every key is
// set and every non-blank raw line (array entries, comments) is kept, section
// by section in document order. The target's other keys and lines are left
// alone.
func FromDocument(doc *ini.Document) Batch {
	var b Batch
	for _, line := range doc.Preamble() {
		if strings.TrimSpace(line) != "" {
			b = append(b, Line("", line))
		}
	}
	for _, section := range doc.Sections() {
		for _, key := range doc.Keys(section) {
			value, _ := doc.GetValue(section, key)
			b = append(b, Set(section, key, value))
		}
		for _, line := range doc.RawLines(section) {
			b = append(b, Line(section, line))
		}
	}
	return b
}
