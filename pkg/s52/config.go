package s52

import "math"

// LayerConfig sets the chart-wide parameters a compile depends on.
//
// The three depth thresholds drive depth-area shading, contour emphasis, and
// sounding colors. They are mariner settings in a real ECDIS; here they are
// fixed per compiler so every style built by one compiler classifies depths
// identically.
//
// Reference: S-52 Section 12.2.2 (safety contour, shallow and deep contours)
type LayerConfig struct {
	// Mode is the color table used when a style build does not name one of
	// its own. StyleSet and the command line tool honor it; CreateStyle
	// takes the mode from its StyleOptions.
	Mode Mode

	// SourceID is the key under which the vector source appears in the
	// generated style, and the source every generated layer references.
	// Default "enc".
	SourceID string

	// ShallowDepthMeters separates very shallow from medium-shallow water.
	// Default 3.
	ShallowDepthMeters float64

	// SafetyDepthMeters is the safety contour depth. Water at or below it
	// is shown as unsafe; the matching depth contour is emphasized.
	// Default 6.
	SafetyDepthMeters float64

	// DeepDepthMeters separates medium-deep from deep water. Default 9.
	DeepDepthMeters float64
}

// DefaultLayerConfig returns the standard configuration: day mode, source
// "enc", and 3/6/9 meter depth thresholds.
func DefaultLayerConfig() LayerConfig {
	return LayerConfig{
		Mode:               ModeDay,
		SourceID:           "enc",
		ShallowDepthMeters: 3.0,
		SafetyDepthMeters:  6.0,
		DeepDepthMeters:    9.0,
	}
}

// withDefaults fills unset fields from DefaultLayerConfig. The thresholds are
// treated as a unit: they default together when all three are zero, so a
// deliberate single-threshold override is never silently mixed with defaults.
func (c LayerConfig) withDefaults() LayerConfig {
	def := DefaultLayerConfig()
	if c.SourceID == "" {
		c.SourceID = def.SourceID
	}
	if c.ShallowDepthMeters == 0 && c.SafetyDepthMeters == 0 && c.DeepDepthMeters == 0 {
		c.ShallowDepthMeters = def.ShallowDepthMeters
		c.SafetyDepthMeters = def.SafetyDepthMeters
		c.DeepDepthMeters = def.DeepDepthMeters
	}
	return c
}

// validate checks the configuration before any compile uses it.
//
// The thresholds must be finite and ordered shallow <= safety <= deep. Equal
// thresholds are allowed; a mariner may collapse the shallow band entirely.
func (c LayerConfig) validate() error {
	if !c.Mode.valid() {
		return &ErrInvalidConfig{Field: "Mode", Reason: "unknown display mode"}
	}
	if c.SourceID == "" {
		return &ErrInvalidConfig{Field: "SourceID", Reason: "must not be empty"}
	}
	for _, t := range []struct {
		name  string
		value float64
	}{
		{"ShallowDepthMeters", c.ShallowDepthMeters},
		{"SafetyDepthMeters", c.SafetyDepthMeters},
		{"DeepDepthMeters", c.DeepDepthMeters},
	} {
		if math.IsNaN(t.value) || math.IsInf(t.value, 0) {
			return &ErrInvalidConfig{Field: t.name, Reason: "must be a finite number"}
		}
	}
	if c.ShallowDepthMeters > c.SafetyDepthMeters {
		return &ErrInvalidConfig{Field: "ShallowDepthMeters", Reason: "must not exceed SafetyDepthMeters"}
	}
	if c.SafetyDepthMeters > c.DeepDepthMeters {
		return &ErrInvalidConfig{Field: "SafetyDepthMeters", Reason: "must not exceed DeepDepthMeters"}
	}
	return nil
}
