// Package color provides named folder color presets. Each preset maps to a
// target HSL color; embedded in a profile, the renderer computes the deltas
// from the base icon's surface color to produce the target appearance.
//
// The full list, including target HSL values, can be serialized to JSON via
// MetadataJSON so a frontend can present a color picker.
package color

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/unkn0wn-root/folicon/render"
)

// Color is a named folder color preset. Values are kebab-case identifiers.
type Color string

const (
	Red        Color = "red"
	Pink       Color = "pink"
	Purple     Color = "purple"
	DeepPurple Color = "deep-purple"
	Indigo     Color = "indigo"
	Blue       Color = "blue"
	LightBlue  Color = "light-blue"
	Cyan       Color = "cyan"
	Teal       Color = "teal"
	Green      Color = "green"
	LightGreen Color = "light-green"
	Lime       Color = "lime"
	Yellow     Color = "yellow"
	Amber      Color = "amber"
	Orange     Color = "orange"
	DeepOrange Color = "deep-orange"
	Brown      Color = "brown"
	Grey       Color = "grey"
	BlueGrey   Color = "blue-grey"
	White      Color = "white"
	Black      Color = "black"
)

type preset struct {
	display string
	target  render.HSL
}

var presets = map[Color]preset{
	Red:        {"Red", render.HSL{Hue: 4.11, Saturation: 0.8962, Lightness: 0.5843}},
	Pink:       {"Pink", render.HSL{Hue: 339.61, Saturation: 0.8219, Lightness: 0.5157}},
	Purple:     {"Purple", render.HSL{Hue: 291.24, Saturation: 0.6372, Lightness: 0.4216}},
	DeepPurple: {"Deep Purple", render.HSL{Hue: 261.60, Saturation: 0.5187, Lightness: 0.4725}},
	Indigo:     {"Indigo", render.HSL{Hue: 230.85, Saturation: 0.4836, Lightness: 0.4784}},
	Blue:       {"Blue", render.HSL{Hue: 206.57, Saturation: 0.8974, Lightness: 0.5412}},
	LightBlue:  {"Light Blue", render.HSL{Hue: 198.67, Saturation: 0.9757, Lightness: 0.4843}},
	Cyan:       {"Cyan", render.HSL{Hue: 186.79, Saturation: 1, Lightness: 0.4157}},
	Teal:       {"Teal", render.HSL{Hue: 174.40, Saturation: 1, Lightness: 0.2941}},
	Green:      {"Green", render.HSL{Hue: 122.42, Saturation: 0.3944, Lightness: 0.4922}},
	LightGreen: {"Light Green", render.HSL{Hue: 87.77, Saturation: 0.5021, Lightness: 0.5275}},
	Lime:       {"Lime", render.HSL{Hue: 65.52, Saturation: 0.6996, Lightness: 0.5431}},
	Yellow:     {"Yellow", render.HSL{Hue: 53.88, Saturation: 1, Lightness: 0.6157}},
	Amber:      {"Amber", render.HSL{Hue: 45.00, Saturation: 1, Lightness: 0.5137}},
	Orange:     {"Orange", render.HSL{Hue: 35.76, Saturation: 1, Lightness: 0.5}},
	DeepOrange: {"Deep Orange", render.HSL{Hue: 14.39, Saturation: 1, Lightness: 0.5667}},
	Brown:      {"Brown", render.HSL{Hue: 15.92, Saturation: 0.2539, Lightness: 0.3784}},
	Grey:       {"Grey", render.HSL{Hue: 0, Saturation: 0, Lightness: 0.6196}},
	BlueGrey:   {"Blue Grey", render.HSL{Hue: 199.53, Saturation: 0.1830, Lightness: 0.4608}},
	White:      {"White", render.HSL{Hue: 0, Saturation: 0, Lightness: 0.9333}},
	Black:      {"Black", render.HSL{Hue: 0, Saturation: 0, Lightness: 0.2588}},
}

// All returns every preset in picker order.
func All() []Color {
	return []Color{
		Red, Pink, Purple, DeepPurple, Indigo, Blue, LightBlue, Cyan, Teal,
		Green, LightGreen, Lime, Yellow, Amber, Orange, DeepOrange, Brown,
		Grey, BlueGrey, White, Black,
	}
}

// Valid reports whether c names a known preset.
func (c Color) Valid() bool {
	_, ok := presets[c]
	return ok
}

// DisplayName returns the human-readable name, or the raw value for an
// unknown preset.
func (c Color) DisplayName() string {
	p, ok := presets[c]
	if !ok {
		return string(c)
	}
	return p.display
}

func (c Color) String() string { return c.DisplayName() }

// TargetHSL returns the preset's target color.
func (c Color) TargetHSL() render.HSL {
	return presets[c].target
}

// Settings returns the preset as enabled HSL mutation settings, ready to
// embed in a render.Profile.
func (c Color) Settings() render.HSLMutationSettings {
	t := c.TargetHSL()
	return render.HSLMutationSettings{
		TargetHue:        t.Hue,
		TargetSaturation: t.Saturation,
		TargetLightness:  t.Lightness,
		Enabled:          true,
	}
}

// Parse resolves a color name, tolerating case, spaces, dashes and
// underscores ("Deep Purple", "deep-purple" and "deep_purple" all match).
func Parse(s string) (Color, error) {
	norm := strings.ToLower(s)
	for _, r := range []string{" ", "-", "_"} {
		norm = strings.ReplaceAll(norm, r, "")
	}
	if norm == "gray" {
		norm = "grey"
	}
	if norm == "bluegray" {
		norm = "bluegrey"
	}
	for c := range presets {
		if strings.ReplaceAll(string(c), "-", "") == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("color: unknown folder color %q", s)
}

// Metadata describes one preset for frontend consumption.
type Metadata struct {
	ID               Color   `json:"id"`
	DisplayName      string  `json:"displayName"`
	TargetHue        float64 `json:"targetHue"`
	TargetSaturation float64 `json:"targetSaturation"`
	TargetLightness  float64 `json:"targetLightness"`
}

// AllMetadata returns every preset with its metadata, in picker order.
func AllMetadata() []Metadata {
	out := make([]Metadata, 0, len(presets))
	for _, c := range All() {
		t := c.TargetHSL()
		out = append(out, Metadata{
			ID:               c,
			DisplayName:      c.DisplayName(),
			TargetHue:        t.Hue,
			TargetSaturation: t.Saturation,
			TargetLightness:  t.Lightness,
		})
	}
	return out
}

// MetadataJSON serializes AllMetadata.
func MetadataJSON() ([]byte, error) {
	return json.Marshal(AllMetadata())
}

// MetadataJSONIndent is the pretty-printed variant of MetadataJSON.
func MetadataJSONIndent() ([]byte, error) {
	return json.MarshalIndent(AllMetadata(), "", "  ")
}
