package cli

import (
	"fmt"

	"github.com/mtpbwy/enginepatch/internal/config"
	"github.com/mtpbwy/enginepatch/internal/logging"
	"github.com/mtpbwy/enginepatch/internal/plugin"
	"github.com/mtpbwy/enginepatch/internal/settings"
)

// openTarget hands paths and URLs to the desktop. Nil uses the plugin default.
var openTarget func(string) error

func activePlugin() (plugin.Plugin, error) {
	name := flagPlugin
	if name == "" {
		name = config.Get(config.KeyPlugin)
	}
	p, err := plugin.Builtin().Lookup(name, buildVersion, plugin.Deps{Log: logging.ForPlugin(name), Open: openTarget})
	if err != nil {
		return nil, fmt.Errorf("loading plugin: %w", err)
	}
	return p, nil
}

// gameDir resolves the flag, then the config file, then the plugin's default.
func gameDir(p plugin.Plugin) string {
	if flagGameDir != "" {
		return flagGameDir
	}
	if dir := config.Get(config.KeyGameDir); dir != "" {
		return dir
	}
	return p.GetGamePath()
}

func settingsPath() string {
	if flagSettings != "" {
		return flagSettings
	}
	return config.Get(config.KeySettingsFile)
}

func loadSettings() (settings.ModSettings, error) {
	path := settingsPath()
	s, err := settings.Load(path)
	if err != nil {
		return settings.ModSettings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
