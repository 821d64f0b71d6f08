package plugin

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mtpbwy/enginepatch/internal/patch"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	opened []string
	err    error
}

func (r *recorder) open(target string) error {
	r.opened = append(r.opened, target)
	return r.err
}

func newTestPalworld(t *testing.T) (*Palworld, *recorder) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	rec := &recorder{}
	return NewPalworld(Deps{Engine: patch.New(l), Log: l, Open: rec.open}), rec
}

func TestPalworld_InstallCreatesEngineIni(t *testing.T) {
	p, _ := newTestPalworld(t)
	gameDir := t.TempDir()

	s := settings.Default()
	s.DisableBloom = true
	require.NoError(t, p.Install(InstallRequest{GameDir: gameDir, Settings: s}))

	assert.True(t, p.IsModInstalled(gameDir))
	doc, err := patch.Read(filepath.Join(gameDir, "Engine.ini"))
	require.NoError(t, err)
	v, ok := doc.GetValue(settings.Section, "r.BloomQuality")
	assert.True(t, ok)
	assert.Equal(t, "0", v)
}

func TestPalworld_InstallKeepsUserKeys(t *testing.T) {
	p, _ := newTestPalworld(t)
	gameDir := t.TempDir()
	target := filepath.Join(gameDir, "Engine.ini")
	require.NoError(t, os.WriteFile(target, []byte("[Core.System]\nPaths=../Content\n\n[SystemSettings]\nr.Fog=0\nuser.Key=1\n"), 0644))

	require.NoError(t, p.Install(InstallRequest{GameDir: gameDir, Settings: settings.Default()}))

	doc, err := patch.Read(target)
	require.NoError(t, err)
	_, fog := doc.GetValue(settings.Section, "r.Fog")
	assert.False(t, fog, "r.Fog should be removed when fog is enabled")
	v, _ := doc.GetValue(settings.Section, "user.Key")
	assert.Equal(t, "1", v)
	v, _ = doc.GetValue("Core.System", "Paths")
	assert.Equal(t, "../Content", v)
}

func TestPalworld_InstallMergesTemplate(t *testing.T) {
	p, _ := newTestPalworld(t)
	gameDir := t.TempDir()
	tmpl := filepath.Join(t.TempDir(), "template.ini")
	require.NoError(t, os.WriteFile(tmpl, []byte("[SystemSettings]\nr.BloomQuality=3\nr.Shadow.MaxResolution=1024\n"), 0644))

	s := settings.Default()
	s.DisableBloom = true
	require.NoError(t, p.Install(InstallRequest{GameDir: gameDir, Settings: s, TemplatePath: tmpl}))

	doc, err := patch.Read(filepath.Join(gameDir, "Engine.ini"))
	require.NoError(t, err)
	v, _ := doc.GetValue(settings.Section, "r.Shadow.MaxResolution")
	assert.Equal(t, "1024", v)
	v, _ = doc.GetValue(settings.Section, "r.BloomQuality")
	assert.Equal(t, "0", v, "settings must override the template")

	// The template itself is untouched.
	data, err := os.ReadFile(tmpl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "r.BloomQuality=3")
}

func TestPalworld_InstallKeepsTemplateArraysAndComments(t *testing.T) {
	p, _ := newTestPalworld(t)
	gameDir := t.TempDir()
	target := filepath.Join(gameDir, "Engine.ini")
	require.NoError(t, os.WriteFile(target, []byte("[Core.System]\n+Paths=../../../Engine/Content\n"), 0644))
	tmpl := filepath.Join(t.TempDir(), "template.ini")
	require.NoError(t, os.WriteFile(tmpl, []byte("[Core.System]\n+Paths=../../../Pal/Content\n[SystemSettings]\n; tuned\nr.X=1\n"), 0644))

	req := InstallRequest{GameDir: gameDir, Settings: settings.Default(), TemplatePath: tmpl}
	require.NoError(t, p.Install(req))

	doc, err := patch.Read(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"+Paths=../../../Engine/Content", "+Paths=../../../Pal/Content"}, doc.RawLines("Core.System"))
	assert.Equal(t, []string{"; tuned"}, doc.RawLines(settings.Section))
	v, _ := doc.GetValue(settings.Section, "r.X")
	assert.Equal(t, "1", v)

	first, err := os.ReadFile(target)
	require.NoError(t, err)
	require.NoError(t, p.Install(req))
	second, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "repeated install must not duplicate template lines")
}

func TestPalworld_BuildOnly(t *testing.T) {
	p, _ := newTestPalworld(t)
	tmpl := filepath.Join(t.TempDir(), "template.ini")

	s := settings.Default()
	s.DisableFog = true
	require.NoError(t, p.Install(InstallRequest{Settings: s, TemplatePath: tmpl, BuildOnly: true}))

	doc, err := patch.Read(tmpl)
	require.NoError(t, err)
	v, _ := doc.GetValue(settings.Section, "r.VolumetricFog")
	assert.Equal(t, "0", v)

	err = p.Install(InstallRequest{Settings: s, BuildOnly: true})
	assert.Error(t, err)
}

func TestPalworld_InstallWithoutGameDir(t *testing.T) {
	p, _ := newTestPalworld(t)
	err := p.Install(InstallRequest{GameDir: "  ", Settings: settings.Default()})
	assert.ErrorIs(t, err, ErrNoGameDir)
}

func TestPalworld_InstallPropagatesIOError(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("needs a non-root Unix user for permission errors")
	}
	p, _ := newTestPalworld(t)
	gameDir := t.TempDir()
	require.NoError(t, os.Chmod(gameDir, 0500))
	t.Cleanup(func() { os.Chmod(gameDir, 0755) })

	err := p.Install(InstallRequest{GameDir: gameDir, Settings: settings.Default()})
	var ioErr *patch.IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestPalworld_Uninstall(t *testing.T) {
	p, _ := newTestPalworld(t)
	gameDir := t.TempDir()
	require.NoError(t, p.Install(InstallRequest{GameDir: gameDir, Settings: settings.Default()}))
	require.True(t, p.IsModInstalled(gameDir))

	require.NoError(t, p.Uninstall(gameDir))
	assert.False(t, p.IsModInstalled(gameDir))

	// Second uninstall is a no-op.
	assert.NoError(t, p.Uninstall(gameDir))
	assert.ErrorIs(t, p.Uninstall(""), ErrNoGameDir)
}

func TestPalworld_IsModInstalledBlankDir(t *testing.T) {
	p, _ := newTestPalworld(t)
	assert.False(t, p.IsModInstalled(""))
}

func TestPalworld_GetGamePath(t *testing.T) {
	t.Setenv("USERPROFILE", filepath.FromSlash("/home/gamer"))
	p, _ := newTestPalworld(t)

	want := filepath.FromSlash("/home/gamer/AppData/Local/Pal/Saved/Config/Windows")
	assert.Equal(t, want, p.GetGamePath())
}

func TestPalworld_ConfigFile(t *testing.T) {
	p, _ := newTestPalworld(t)
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "Engine.ini"), p.ConfigFile(dir))
}

func TestPalworld_LaunchGame(t *testing.T) {
	p, rec := newTestPalworld(t)
	require.NoError(t, p.LaunchGame(""))
	assert.Equal(t, []string{"steam://rungameid/1623730"}, rec.opened)

	rec.err = errors.New("no handler")
	assert.Error(t, p.LaunchGame(""))
}

func TestPalworld_SaveLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("LOCALAPPDATA", home)
	p, rec := newTestPalworld(t)

	var _ SaveLocator = p
	assert.False(t, p.DoesSaveDirectoryExist())
	assert.ErrorIs(t, p.OpenGameSaveLocation(), os.ErrNotExist)

	require.NoError(t, os.MkdirAll(filepath.Join(home, "Pal", "Saved", "SaveGames"), 0755))
	assert.True(t, p.DoesSaveDirectoryExist())
	require.NoError(t, p.OpenGameSaveLocation())
	assert.Equal(t, []string{p.SaveDirectory()}, rec.opened)
}
