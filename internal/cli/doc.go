// Package cli defines the Cobra command tree for the enginepatch CLI. Each file
// registers one top-level command with the root command. Commands resolve the
// active plugin and game directory, then delegate to the plugin, patch, and
// settings packages; they only handle flags and output.
package cli
