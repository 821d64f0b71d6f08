// Package patch applies ordered batches of Set/Remove operations to INI files
// on disk. Every Apply is a single read-modify-write: the target is parsed,
// patched in memory, rendered, written to a temporary file in the same
// directory and renamed over the target, so readers never see a partially
// written file. Apply provides no cross-process locking; concurrent callers
// on the same path race and the last rename wins.
package patch
