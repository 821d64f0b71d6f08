package ini

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is wrapped by the Check functions when a section, key, value
// or raw line would not read back unchanged after Serialize and Load.
var ErrInvalidName = errors.New("ini: not representable")

const passthroughPrefixes = ";#+-.!"

// CheckSection reports whether name can be written as a section header.
func CheckSection(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty section name", ErrInvalidName)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: section %q has surrounding whitespace", ErrInvalidName, name)
	case strings.ContainsAny(name, "[]\r\n"):
		return fmt.Errorf("%w: section %q contains a bracket or line break", ErrInvalidName, name)
	}
	return nil
}

// CheckKey reports whether key is read back by Load as the same managed key.
func CheckKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidName)
	case strings.TrimSpace(key) != key:
		return fmt.Errorf("%w: key %q has surrounding whitespace", ErrInvalidName, key)
	case strings.ContainsAny(key[:1], passthroughPrefixes+"["):
		return fmt.Errorf("%w: key %q starts with %q and would be read as a raw line", ErrInvalidName, key, key[:1])
	case strings.ContainsAny(key, "=\r\n"):
		return fmt.Errorf("%w: key %q contains '=' or a line break", ErrInvalidName, key)
	}
	return nil
}

// CheckValue reports whether value fits on a single line.
func CheckValue(value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value %q contains a line break", ErrInvalidName, value)
	}
	return nil
}

// CheckLine reports whether line is kept verbatim by Load inside a section:
// it must not be blank, a header or a key=value pair.
func CheckLine(line string) error {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: blank raw line", ErrInvalidName)
	case strings.ContainsAny(line, "\r\n"):
		return fmt.Errorf("%w: raw line %q contains a line break", ErrInvalidName, line)
	}
	if _, ok := headerName(trimmed); ok {
		return fmt.Errorf("%w: raw line %q is a section header", ErrInvalidName, line)
	}
	if _, _, ok := splitPair(trimmed); ok {
		return fmt.Errorf("%w: raw line %q is a key=value pair", ErrInvalidName, line)
	}
	return nil
}
