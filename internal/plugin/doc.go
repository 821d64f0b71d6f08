// Package plugin defines the contract a game integration fulfils for the
// host (install, uninstall, detect, locate, launch) and ships the built-in
// integrations. A plugin decides which file to patch and how; the patch
// engine does the writing.
package plugin
