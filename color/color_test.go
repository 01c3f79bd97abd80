package color

import (
	"encoding/json"
	"testing"
)

func TestAllPresetsValid(t *testing.T) {
	all := All()
	if len(all) != 21 {
		t.Fatalf("preset count = %d, want 21", len(all))
	}
	seen := map[Color]bool{}
	for _, c := range all {
		if !c.Valid() {
			t.Errorf("%q not valid", c)
		}
		if seen[c] {
			t.Errorf("%q listed twice", c)
		}
		seen[c] = true

		hsl := c.TargetHSL()
		if hsl.Hue < 0 || hsl.Hue >= 360 {
			t.Errorf("%q hue out of range: %v", c, hsl.Hue)
		}
		if hsl.Saturation < 0 || hsl.Saturation > 1 {
			t.Errorf("%q saturation out of range: %v", c, hsl.Saturation)
		}
		if hsl.Lightness < 0 || hsl.Lightness > 1 {
			t.Errorf("%q lightness out of range: %v", c, hsl.Lightness)
		}
	}
}

func TestSettings(t *testing.T) {
	s := Blue.Settings()
	if !s.Enabled {
		t.Fatal("Settings not enabled")
	}
	if s.TargetHue != 206.57 || s.TargetSaturation != 0.8974 || s.TargetLightness != 0.5412 {
		t.Fatalf("blue settings = %+v", s)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DeepPurple.DisplayName(); got != "Deep Purple" {
		t.Fatalf("DisplayName = %q", got)
	}
	if got := Color("nonesuch").DisplayName(); got != "nonesuch" {
		t.Fatalf("unknown DisplayName = %q", got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"deep-purple", DeepPurple},
		{"Deep Purple", DeepPurple},
		{"deep_purple", DeepPurple},
		{"BlueGrey", BlueGrey},
		{"blue gray", BlueGrey},
		{"gray", Grey},
		{"LIGHT-BLUE", LightBlue},
		{"teal", Teal},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := Parse("mauve"); err == nil {
		t.Fatal("Parse accepted unknown color")
	}
}

func TestMetadataJSON(t *testing.T) {
	raw, err := MetadataJSON()
	if err != nil {
		t.Fatalf("MetadataJSON: %v", err)
	}
	var back []Metadata
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != len(All()) {
		t.Fatalf("metadata len = %d", len(back))
	}
	if back[0].ID != Red || back[0].DisplayName != "Red" {
		t.Fatalf("metadata[0] = %+v", back[0])
	}

	// frontend-facing keys are stable
	var loose []map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"id", "displayName", "targetHue", "targetSaturation", "targetLightness"} {
		if _, ok := loose[0][k]; !ok {
			t.Errorf("metadata JSON missing key %q", k)
		}
	}
}
