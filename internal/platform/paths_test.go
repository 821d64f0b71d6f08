package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fallbacks only apply off Windows")
	}
	t.Setenv("USERPROFILE", "/home/gamer")
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("ENGINEPATCH_UNSET_VAR", "")

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"userprofile", "%USERPROFILE%/AppData/Local/Pal/Saved/Config/Windows", "/home/gamer/AppData/Local/Pal/Saved/Config/Windows"},
		{"localappdata fallback", "%LOCALAPPDATA%/Pal/Saved/SaveGames", "/home/gamer/AppData/Local/Pal/Saved/SaveGames"},
		{"unset left alone", "%ENGINEPATCH_UNSET_VAR%/x", "%ENGINEPATCH_UNSET_VAR%/x"},
		{"no variables", "relative/dir", "relative/dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandPath(tt.template)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.template, got, filepath.FromSlash(tt.want))
			}
		})
	}
}
