package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mtpbwy/enginepatch/internal/patch"
	"go.yaml.in/yaml/v3"
)

// ModSettings is one snapshot of the user's tweak choices. Slider values use
// the UI scale: ToneMapperSharpening 0-100, ViewDistance in percent.
type ModSettings struct {
	DisableBloom              bool        `yaml:"disable_bloom"`
	DisableLensFlare          bool        `yaml:"disable_lens_flare"`
	DisableDOF                bool        `yaml:"disable_dof"`
	DisableAntiAliasing       bool        `yaml:"disable_anti_aliasing"`
	DisableFog                bool        `yaml:"disable_fog"`
	UseExperimentalStutterFix bool        `yaml:"experimental_stutter_fix"`
	PotatoTextures            bool        `yaml:"potato_textures"`
	EnablePoolSizeToVRAMLimit bool        `yaml:"limit_pool_size_to_vram"`
	ToneMapperSharpening      int         `yaml:"tonemapper_sharpening"`
	ViewDistance              int         `yaml:"view_distance"`
	PoolSizeMB                int         `yaml:"pool_size_mb"`
	TAA                       TAASettings `yaml:"taa"`
}

// TAASettings groups the temporal anti-aliasing options.
type TAASettings struct {
	Resolution int  `yaml:"resolution"`
	Gen5       bool `yaml:"gen5"`
	Upscaling  bool `yaml:"upscaling"`
}

// Default returns the snapshot that leaves the engine at its own defaults
// wherever a toggle allows it.
func Default() ModSettings {
	return ModSettings{
		TAA: TAASettings{Resolution: 100, Gen5: true, Upscaling: true},
	}
}

// InvalidError is returned by Load when the file does not match the schema.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Path == "" {
			msgs = append(msgs, is.Message)
			continue
		}
		msgs = append(msgs, is.Path+": "+is.Message)
	}
	return fmt.Sprintf("invalid settings %s: %s", e.Path, strings.Join(msgs, "; "))
}

// Load reads a settings file. A missing file yields Default(); fields the
// file omits keep their default values.
func Load(path string) (ModSettings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse validates and decodes settings YAML. path is only used in errors.
func Parse(path string, data []byte) (ModSettings, error) {
	s := Default()

	result, err := Validate(data)
	if err != nil {
		return s, fmt.Errorf("validating settings %s: %w", path, err)
	}
	if !result.Valid {
		return s, &InvalidError{Path: path, Issues: result.Issues}
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes the snapshot to path atomically.
func Save(path string, s ModSettings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := patch.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
