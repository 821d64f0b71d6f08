package patch

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// batchFile is the YAML form of a Batch:
//
//	operations:
//	  - set: {section: SystemSettings, key: r.BloomQuality, value: "0"}
//	  - remove: {section: SystemSettings, key: r.Fog}
//	  - line: {section: Core.System, text: "+Paths=../../../Pal/Content"}
type batchFile struct {
	Operations []batchEntry `yaml:"operations"`
}

type batchEntry struct {
	Set    *keyRef  `yaml:"set,omitempty"`
	Remove *keyRef  `yaml:"remove,omitempty"`
	Line   *lineRef `yaml:"line,omitempty"`
}

type keyRef struct {
	Section string `yaml:"section"`
	Key     string `yaml:"key"`
	Value   string `yaml:"value,omitempty"`
}

type lineRef struct {
	Section string `yaml:"section"`
	Text    string `yaml:"text"`
}

// LoadBatchFile reads a YAML batch file.
func LoadBatchFile(path string) (Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file %s: %w", path, err)
	}
	b, err := ParseBatch(data)
	if err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	return b, nil
}

// ParseBatch decodes the YAML form of a batch.
func ParseBatch(data []byte) (Batch, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	batch := make(Batch, 0, len(f.Operations))
	for i, entry := range f.Operations {
		if countSet(entry.Set != nil, entry.Remove != nil, entry.Line != nil) != 1 {
			return nil, fmt.Errorf("operation %d: exactly one of set, remove or line is required", i)
		}
		var op Operation
		switch {
		case entry.Line != nil:
			op = Line(entry.Line.Section, entry.Line.Text)
		case entry.Set != nil:
			op = Operation{Kind: KindSet, Section: entry.Set.Section, Key: entry.Set.Key, Value: entry.Set.Value}
		default:
			op = Remove(entry.Remove.Section, entry.Remove.Key)
		}
		if op.Kind != KindLine && (op.Section == "" || op.Key == "") {
			return nil, fmt.Errorf("operation %d: section and key are required", i)
		}
		batch = append(batch, op)
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}
	return batch, nil
}

// MarshalBatch renders a batch in the YAML form read by ParseBatch.
func MarshalBatch(b Batch) ([]byte, error) {
	f := batchFile{Operations: make([]batchEntry, 0, len(b))}
	for _, op := range b {
		if op.Kind == KindLine {
			f.Operations = append(f.Operations, batchEntry{Line: &lineRef{Section: op.Section, Text: op.Value}})
			continue
		}
		ref := &keyRef{Section: op.Section, Key: op.Key}
		if op.Kind == KindSet {
			ref.Value = op.Value
			f.Operations = append(f.Operations, batchEntry{Set: ref})
			continue
		}
		f.Operations = append(f.Operations, batchEntry{Remove: ref})
	}
	return yaml.Marshal(f)
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
