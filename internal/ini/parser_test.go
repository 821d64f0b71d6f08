package ini

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoad_SectionsAndPairs(t *testing.T) {
	input := "[SystemSettings]\nr.Fog=0\n  r.ViewDistanceScale =  0.50 \n\n[/Script/Engine.RendererSettings]\nr.DefaultFeature.MotionBlur=False\n"

	doc, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	wantSections := []string{"SystemSettings", "/Script/Engine.RendererSettings"}
	if got := doc.Sections(); !reflect.DeepEqual(got, wantSections) {
		t.Errorf("Sections() = %v, want %v", got, wantSections)
	}

	tests := []struct {
		section string
		key     string
		want    string
	}{
		{"SystemSettings", "r.Fog", "0"},
		{"SystemSettings", "r.ViewDistanceScale", "0.50"},
		{"systemsettings", "r.Fog", "0"},
		{"/Script/Engine.RendererSettings", "r.DefaultFeature.MotionBlur", "False"},
	}
	for _, tt := range tests {
		got, ok := doc.GetValue(tt.section, tt.key)
		if !ok {
			t.Errorf("GetValue(%q, %q) not found", tt.section, tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("GetValue(%q, %q) = %q, want %q", tt.section, tt.key, got, tt.want)
		}
	}
}

func TestLoad_ValueKeepsEmbeddedWhitespaceAndEquals(t *testing.T) {
	doc, err := Load([]byte("[S]\nCmd = a = b  c \n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	got, _ := doc.GetValue("S", "Cmd")
	if got != "a = b  c" {
		t.Errorf("value = %q, want %q", got, "a = b  c")
	}
}

func TestLoad_KeysAreCaseSensitive(t *testing.T) {
	doc, err := Load([]byte("[S]\nr.Fog=0\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := doc.GetValue("S", "R.FOG"); ok {
		t.Error("GetValue matched a key with different case")
	}
}

func TestLoad_PassthroughLines(t *testing.T) {
	input := "; generated by hand\n\n[Core.System]\n+Paths=../../../Engine/Content\n+Paths=%GAMEDIR%Content\n; keep me\nnot a pair\nr.Fog=1\n"

	doc, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := doc.Keys("Core.System"); !reflect.DeepEqual(got, []string{"r.Fog"}) {
		t.Errorf("Keys() = %v, want [r.Fog]", got)
	}
	if got := string(doc.Serialize()); got != input+"\n" {
		t.Errorf("Serialize() =\n%q\nwant\n%q", got, input+"\n")
	}
}

func TestLoad_CRLF(t *testing.T) {
	doc, err := Load([]byte("[S]\r\na=1\r\nb=2\r\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if v, _ := doc.GetValue("S", "b"); v != "2" {
		t.Errorf("b = %q, want %q", v, "2")
	}
	if got := string(doc.Serialize()); got != "[S]\na=1\nb=2\n\n" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestLoad_DuplicateSectionsAndKeysCollapse(t *testing.T) {
	doc, err := Load([]byte("[S]\na=1\n[s]\na=2\nb=3\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := doc.Sections(); len(got) != 1 || got[0] != "S" {
		t.Fatalf("Sections() = %v, want [S]", got)
	}
	if v, _ := doc.GetValue("S", "a"); v != "2" {
		t.Errorf("a = %q, want last assignment %q", v, "2")
	}
	if got := doc.Keys("S"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
}

func TestLoad_Empty(t *testing.T) {
	doc, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(doc.Sections()) != 0 {
		t.Errorf("expected no sections, got %v", doc.Sections())
	}
	if got := doc.Serialize(); len(got) != 0 {
		t.Errorf("Serialize() = %q, want empty", got)
	}
}

func TestLoad_BOM(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"utf8", append([]byte{0xEF, 0xBB, 0xBF}, "[S]\na=1\n"...)},
		{"utf16le", []byte{0xFF, 0xFE, '[', 0, 'S', 0, ']', 0, '\n', 0, 'a', 0, '=', 0, '1', 0, '\n', 0}},
		{"utf16be", []byte{0xFE, 0xFF, 0, '[', 0, 'S', 0, ']', 0, '\n', 0, 'a', 0, '=', 0, '1', 0, '\n'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(tt.data)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if v, ok := doc.GetValue("S", "a"); !ok || v != "1" {
				t.Errorf("GetValue = %q, %v; want \"1\", true", v, ok)
			}
		})
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	_, err := Load([]byte("[S]\na=1\nb=\xff\xfe\x00\n"))
	if err == nil {
		t.Fatal("expected error for invalid UTF-8, got nil")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != 3 {
		t.Errorf("Line = %d, want 3", pe.Line)
	}
}
