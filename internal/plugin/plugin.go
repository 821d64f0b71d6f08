package plugin

import (
	"errors"

	"github.com/mtpbwy/enginepatch/internal/patch"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

var (
	// ErrNoGameDir is returned when an operation needs a game config directory
	// and none was given.
	ErrNoGameDir = errors.New("no game directory given")
	// ErrUnknownPlugin is returned by Lookup for unregistered names.
	ErrUnknownPlugin = errors.New("unknown plugin")
	// ErrIncompatible is returned by Lookup when the plugin does not support
	// the running host version.
	ErrIncompatible = errors.New("plugin incompatible with host version")
)

// Info describes a plugin.
type Info struct {
	Name        string
	DisplayName string
	Version     string
	// RequiresHost is a semver constraint on the host version, e.g. ">= 1.2".
	RequiresHost string
}

// InstallRequest carries everything Install needs.
type InstallRequest struct {
	GameDir  string
	Settings settings.ModSettings
	// TemplatePath optionally names a base INI whose keys are merged into
	// the target before the settings are applied.
	TemplatePath string
	// BuildOnly applies the settings to TemplatePath and leaves the game
	// directory alone.
	BuildOnly bool
}

// Plugin is the capability set the host expects from a game integration.
type Plugin interface {
	Info() Info
	Install(req InstallRequest) error
	Uninstall(gameDir string) error
	IsModInstalled(gameDir string) bool
	GetGamePath() string
	// ConfigFile returns the INI file the plugin patches inside gameDir.
	ConfigFile(gameDir string) string
	LaunchGame(gameDir string) error
}

// Deps are the collaborators handed to plugin factories.
type Deps struct {
	Engine *patch.Engine
	Log    logrus.FieldLogger
	// Open hands a path or URL to the desktop environment.
	Open func(target string) error
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if d.Engine == nil {
		d.Engine = patch.New(d.Log)
	}
	if d.Open == nil {
		d.Open = open.Run
	}
	return d
}

// SaveLocator is implemented by plugins that know where the game keeps its
// save files.
type SaveLocator interface {
	SaveDirectory() string
	DoesSaveDirectoryExist() bool
	OpenGameSaveLocation() error
}
