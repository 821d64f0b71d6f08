// Package ini parses, edits, and renders the sectioned key/value files read
// by Unreal Engine at startup (Engine.ini, GameUserSettings.ini, ...).
//
// A Document keeps every line it does not understand (comments, blank lines,
// array-operator entries such as "+Paths=...", text before the first section
// header) as an opaque passthrough entry, so that a load/edit/serialize cycle
// only changes the keys that were explicitly edited. Section names compare
// case-insensitively; keys compare case-sensitively.
package ini
