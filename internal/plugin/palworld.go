package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mtpbwy/enginepatch/internal/patch"
	"github.com/mtpbwy/enginepatch/internal/platform"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/sirupsen/logrus"
)

// PalworldName is the registry name of the Palworld plugin.
const PalworldName = "palworld"

const (
	engineIniName     = "Engine.ini"
	palworldSteamApp  = "1623730"
	palworldConfigDir = "%USERPROFILE%/AppData/Local/Pal/Saved/Config/Windows"
	palworldSaveDir   = "%LOCALAPPDATA%/Pal/Saved/SaveGames"
)

// Palworld writes tweaks into Palworld's user Engine.ini.
type Palworld struct {
	engine *patch.Engine
	log    logrus.FieldLogger
	open   func(string) error
}

// NewPalworld returns the Palworld plugin.
func NewPalworld(d Deps) *Palworld {
	d = d.withDefaults()
	p := &Palworld{
		engine: d.Engine,
		log:    d.Log.WithField("plugin", PalworldName),
		open:   d.Open,
	}
	p.log.Debug("initialized")
	return p
}

// Info implements Plugin.
func (p *Palworld) Info() Info {
	return Info{
		Name:         PalworldName,
		DisplayName:  "Palworld",
		Version:      "1.1.0",
		RequiresHost: ">= 0.1.0",
	}
}

// Install implements Plugin. The game's Engine.ini is reparsed and patched,
// so keys the settings do not manage are kept.
func (p *Palworld) Install(req InstallRequest) error {
	if strings.TrimSpace(req.GameDir) == "" && !req.BuildOnly {
		return ErrNoGameDir
	}

	batch := settings.Translate(req.Settings)

	if req.BuildOnly {
		if req.TemplatePath == "" {
			return fmt.Errorf("build-only install needs a template path")
		}
		if err := p.engine.Apply(req.TemplatePath, batch); err != nil {
			return fmt.Errorf("building template %s: %w", req.TemplatePath, err)
		}
		p.log.WithField("file", req.TemplatePath).Info("template built")
		return nil
	}

	if req.TemplatePath != "" {
		tmpl, err := patch.Read(req.TemplatePath)
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		batch = append(patch.FromDocument(tmpl), batch...)
	}

	target := p.ConfigFile(req.GameDir)
	if err := p.engine.Apply(target, batch); err != nil {
		return fmt.Errorf("installing into %s: %w", target, err)
	}
	p.log.WithField("file", target).Info("tweaks installed")
	return nil
}

// Uninstall implements Plugin by deleting the user Engine.ini; the game
// recreates it with defaults on the next start.
func (p *Palworld) Uninstall(gameDir string) error {
	if strings.TrimSpace(gameDir) == "" {
		return ErrNoGameDir
	}
	target := p.ConfigFile(gameDir)
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", target, err)
	}
	p.log.WithField("file", target).Info("tweaks uninstalled")
	return nil
}

// IsModInstalled implements Plugin.
func (p *Palworld) IsModInstalled(gameDir string) bool {
	if strings.TrimSpace(gameDir) == "" {
		return false
	}
	_, err := os.Stat(p.ConfigFile(gameDir))
	return err == nil
}

// GetGamePath implements Plugin.
func (p *Palworld) GetGamePath() string {
	return platform.ExpandPath(palworldConfigDir)
}

// LaunchGame implements Plugin through the Steam URL handler.
func (p *Palworld) LaunchGame(gameDir string) error {
	url := "steam://rungameid/" + palworldSteamApp
	if err := p.open(url); err != nil {
		return fmt.Errorf("launching %s: %w", url, err)
	}
	p.log.Info("game launched via Steam")
	return nil
}

// SaveDirectory returns where Palworld keeps save games.
func (p *Palworld) SaveDirectory() string {
	return platform.ExpandPath(palworldSaveDir)
}

// DoesSaveDirectoryExist reports whether the save directory is present.
func (p *Palworld) DoesSaveDirectoryExist() bool {
	info, err := os.Stat(p.SaveDirectory())
	return err == nil && info.IsDir()
}

// OpenGameSaveLocation opens the save directory in the file browser.
func (p *Palworld) OpenGameSaveLocation() error {
	dir := p.SaveDirectory()
	if !p.DoesSaveDirectoryExist() {
		return fmt.Errorf("save directory %s: %w", dir, os.ErrNotExist)
	}
	return p.open(dir)
}

// ConfigFile implements Plugin.
func (p *Palworld) ConfigFile(gameDir string) string {
	return filepath.Join(gameDir, engineIniName)
}
