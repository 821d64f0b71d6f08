// Package settings holds the user-facing tweak toggles as an immutable
// snapshot, persists them as YAML, validates them against an embedded JSON
// Schema, and translates a snapshot into the patch batch that realizes it in
// Engine.ini. Translation is a pure function: it decides what to change and
// leaves how to write it to the patch package.
package settings
