// Package platform hides the few OS differences enginepatch cares about:
// permission bits that Windows ignores, and game paths written with
// Windows-style %VARIABLE% references.
package platform
