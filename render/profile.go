package render

// HSLMutationSettings recolors the icon surface toward a target HSL color.
// The renderer computes the deltas from the base icon's surface color.
type HSLMutationSettings struct {
	TargetHue        float64 `json:"targetHue"`
	TargetSaturation float64 `json:"targetSaturation"`
	TargetLightness  float64 `json:"targetLightness"`
	Enabled          bool    `json:"enabled"`
}

// HueRotationSettings rotates every hue in the icon by a fixed angle.
type HueRotationSettings struct {
	Degrees float64 `json:"degrees"`
	Enabled bool    `json:"enabled"`
}

// OverlaySettings blends a flat color over the icon surface.
type OverlaySettings struct {
	Color   string  `json:"color"` // CSS hex, e.g. "#ff8800"
	Opacity float64 `json:"opacity"`
	Enabled bool    `json:"enabled"`
}

// Position is a fractional placement within the content bounds (0.0-1.0 on
// each axis).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DecalSettings stamps an SVG or emoji decal onto the icon surface.
type DecalSettings struct {
	Source   string   `json:"source"` // SVG markup or a single emoji
	Position Position `json:"position"`
	Enabled  bool     `json:"enabled"`
}

// Profile is the serializable customization profile forwarded to the
// customizer. The core never inspects it. Nil sub-settings leave the
// corresponding layer untouched.
type Profile struct {
	HSLMutation *HSLMutationSettings `json:"hslMutation,omitempty"`
	HueRotation *HueRotationSettings `json:"hueRotation,omitempty"`
	Overlay     *OverlaySettings     `json:"overlay,omitempty"`
	Decal       *DecalSettings       `json:"decal,omitempty"`
}

// Customizer is a stateful renderer handle. It holds an unrendered base
// icon set plus the currently applied profile, and mutates that state in
// place on ApplyProfile. Not safe for concurrent use.
type Customizer interface {
	ApplyProfile(Profile)
	RenderAll() (Set, error)
	ExportProfile() Profile
	BaseIcons() Set
}

// CustomizerFactory builds a fresh handle around a base set. The core calls
// it once at construction and again on every cache refresh, so refresh is a
// visible handle replacement rather than a hidden mutation.
type CustomizerFactory func(base Set) Customizer
