package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "enginepatch" {
		t.Errorf("CLIName() = %q", got)
	}
	if got := HomeDir(); got != ".enginepatch" {
		t.Errorf("HomeDir() = %q", got)
	}
	if got := EnvVar("game_dir"); got != "ENGINEPATCH_GAME_DIR" {
		t.Errorf("EnvVar() = %q", got)
	}
}
