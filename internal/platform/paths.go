package platform

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

var windowsVar = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%`)

// ExpandPath expands %VAR% references in a path template that uses '/' as the
// separator and converts it to the native form. Unset variables are left as
// written. On non-Windows hosts LOCALAPPDATA falls back to
// $USERPROFILE/AppData/Local and USERPROFILE to the home directory, which
// matches the layout Proton/Wine prefixes use.
func ExpandPath(template string) string {
	expanded := windowsVar.ReplaceAllStringFunc(template, func(m string) string {
		name := strings.Trim(m, "%")
		if v, ok := lookupEnv(name); ok {
			return filepath.ToSlash(v)
		}
		return m
	})
	return filepath.FromSlash(expanded)
}

func lookupEnv(name string) (string, bool) {
	if v := os.Getenv(name); v != "" {
		return v, true
	}
	if runtime.GOOS == "windows" {
		return "", false
	}
	switch strings.ToUpper(name) {
	case "USERPROFILE":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return home, true
	case "LOCALAPPDATA":
		profile, ok := lookupEnv("USERPROFILE")
		if !ok {
			return "", false
		}
		return filepath.Join(profile, "AppData", "Local"), true
	}
	return "", false
}
