package patch

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mtpbwy/enginepatch/internal/ini"
	"github.com/sirupsen/logrus"
)

// Engine applies batches to files. It keeps no state between calls: the file
// on disk is the only source of truth and may change between runs.
type Engine struct {
	log logrus.FieldLogger
	ops fileOps
}

// New returns an Engine that logs through log. A nil logger uses the logrus
// standard logger.
func New(log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{log: log, ops: osFileOps}
}

// Apply patches the INI file at path with batch and commits the result
// atomically. A missing file is treated as empty and created. Filesystem
// failures are returned as *IOError, undecodable content as *ini.ParseError
// and unrepresentable operations as ErrInvalidOperation; in every case the
// original file is left untouched.
func (e *Engine) Apply(path string, batch Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}
	existing, existed, err := readIfExists(path)
	if err != nil {
		return err
	}

	out, err := render(existing, batch)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	sets, removes := batch.Counts()
	log := e.log.WithFields(logrus.Fields{"file": path, "sets": sets, "removes": removes})

	if existed && bytes.Equal(existing, out) {
		log.Debug("config already up to date")
		return nil
	}
	if err := e.ops.writeAtomic(path, out, DefaultPerm); err != nil {
		log.WithError(err).Error("writing config failed")
		return err
	}
	log.Info("config patched")
	return nil
}

// Preview returns the bytes Apply would write without touching the disk.
func (e *Engine) Preview(path string, batch Batch) ([]byte, error) {
	if err := batch.Validate(); err != nil {
		return nil, err
	}
	existing, _, err := readIfExists(path)
	if err != nil {
		return nil, err
	}
	out, err := render(existing, batch)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return out, nil
}

// Read loads the document at path. A missing file yields an empty document.
func Read(path string) (*ini.Document, error) {
	data, _, err := readIfExists(path)
	if err != nil {
		return nil, err
	}
	doc, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

func render(existing []byte, batch Batch) ([]byte, error) {
	doc, err := ini.Load(existing)
	if err != nil {
		return nil, err
	}
	batch.ApplyTo(doc)
	return doc.Serialize(), nil
}

func readIfExists(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, true, nil
}
