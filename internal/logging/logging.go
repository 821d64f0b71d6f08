// Package logging configures the shared logrus logger. Entries go to a
// rotating file under ~/.enginepatch/logs by default, or to stderr, so that
// stdout stays reserved for command output.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the active log file inside the log directory.
const FileName = "enginepatch.log"

// Options controls where and how much is logged.
type Options struct {
	Level  string
	ToFile bool
	Dir    string
	// Console receives entries when ToFile is false. Defaults to os.Stderr.
	Console io.Writer
}

var (
	writerMu  sync.Mutex
	logWriter *lumberjack.Logger
)

// Formatter renders one entry per line:
//
//	[2026-01-02 15:04:05] [info ] [palworld] config patched | file=/x/Engine.ini sets=3
type Formatter struct{}

// Format renders a single log entry.
func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	buffer := entry.Buffer
	if buffer == nil {
		buffer = &bytes.Buffer{}
	}

	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}

	source := "--------"
	if p, ok := entry.Data["plugin"].(string); ok && p != "" {
		source = p
	}

	fmt.Fprintf(buffer, "[%s] [%-5s] [%s] %s",
		entry.Time.Format("2006-01-02 15:04:05"), level, source, strings.TrimRight(entry.Message, "\r\n"))

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "plugin" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i == 0 {
			buffer.WriteString(" |")
		}
		fmt.Fprintf(buffer, " %s=%v", k, entry.Data[k])
	}
	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

// Setup configures the standard logrus logger. It may be called again to
// switch destinations; a previously opened log file is closed.
func Setup(opts Options) error {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&Formatter{})

	writerMu.Lock()
	defer writerMu.Unlock()

	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}

	if !opts.ToFile {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		log.SetOutput(console)
		return nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logWriter = &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, FileName),
		MaxSize:    5,
		MaxBackups: 3,
		Compress:   false,
	}
	log.SetOutput(logWriter)
	return nil
}

// Close flushes and closes the log file, if one is open.
func Close() {
	writerMu.Lock()
	defer writerMu.Unlock()
	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}
	log.SetOutput(os.Stderr)
}

// ForPlugin returns an entry tagged with a plugin identifier.
func ForPlugin(id string) *log.Entry {
	return log.WithField("plugin", id)
}
