package patch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mtpbwy/enginepatch/internal/platform"
)

// DefaultPerm is used for files that do not exist yet.
const DefaultPerm os.FileMode = 0644

// fileOps holds the filesystem calls used by an atomic write so tests can
// inject failures.
type fileOps struct {
	write  func(f *os.File, data []byte) error
	chmod  func(path string, mode os.FileMode) error
	rename func(oldpath, newpath string) error
}

var osFileOps = fileOps{
	write: func(f *os.File, data []byte) error {
		_, err := f.Write(data)
		return err
	},
	chmod:  platform.Chmod,
	rename: os.Rename,
}

// WriteFile atomically replaces path with data. The parent directory is
// created when missing. Permissions of an existing file are preserved;
// otherwise perm is used.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return osFileOps.writeAtomic(path, data, perm)
}

func (ops fileOps) writeAtomic(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return &IOError{Op: "stat", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.NewString()))
	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return &IOError{Op: "create", Path: tempPath, Err: err}
	}

	committed := false
	defer func() {
		if !committed {
			os.Remove(tempPath)
		}
	}()

	if err := ops.write(f, data); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: tempPath, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &IOError{Op: "sync", Path: tempPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: tempPath, Err: err}
	}

	// OpenFile is subject to the umask.
	if err := ops.chmod(tempPath, perm); err != nil {
		return &IOError{Op: "chmod", Path: tempPath, Err: err}
	}

	if err := ops.rename(tempPath, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	committed = true

	syncDir(dir)
	return nil
}

// syncDir makes the rename durable where the platform supports it.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = d.Sync()
}
