package s52

// StyleSet holds one precompiled style per display mode.
//
// A bridge display must switch between day, dusk, and night palettes
// instantly; compiling on demand at the moment the operator dims the bridge
// is the wrong time to do work. A StyleSet compiles all three up front so a
// mode switch is a map lookup.
//
// The three documents differ only in name, sprite path, and paint colors.
// Layer ids, filters, layout, and ordering are identical across modes, so a
// renderer can swap styles without reloading sources or re-sorting layers.
//
// Example:
//
//	set, err := s52.NewStyleSet(compiler, s52.StyleOptions{
//	    Source: s52.Source{Type: "vector", URL: "https://tiles.example.com/enc.json"},
//	    Sprite: "https://tiles.example.com/sprites",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	night := set.Style(s52.ModeNight)
type StyleSet struct {
	styles      map[Mode]*StyleDocument
	diagnostics map[Mode][]Diagnostic
	defaultMode Mode
}

// NewStyleSet compiles the full lookup table once per display mode.
//
// The Mode field of opts is ignored; all three modes are built. Name and
// sprite defaults are resolved per mode as in CreateStyle.
func NewStyleSet(c *Compiler, opts StyleOptions) (*StyleSet, error) {
	return buildStyleSet(func(modeOpts StyleOptions) (*StyleDocument, []Diagnostic, error) {
		return c.CreateStyleWithDiagnostics(modeOpts)
	}, c.Config().Mode, opts)
}

// NewStyleSetForFeatures compiles a per-feature style once per display mode.
func NewStyleSetForFeatures(c *Compiler, features []Feature, opts StyleOptions) (*StyleSet, error) {
	return buildStyleSet(func(modeOpts StyleOptions) (*StyleDocument, []Diagnostic, error) {
		return c.CreateStyleForFeatures(features, modeOpts)
	}, c.Config().Mode, opts)
}

func buildStyleSet(build func(StyleOptions) (*StyleDocument, []Diagnostic, error), defaultMode Mode, opts StyleOptions) (*StyleSet, error) {
	set := &StyleSet{
		styles:      make(map[Mode]*StyleDocument, 3),
		diagnostics: make(map[Mode][]Diagnostic, 3),
		defaultMode: defaultMode,
	}

	for _, mode := range Modes() {
		modeOpts := opts
		modeOpts.Mode = mode
		doc, diags, err := build(modeOpts)
		if err != nil {
			return nil, err
		}
		set.styles[mode] = doc
		set.diagnostics[mode] = diags
	}

	return set, nil
}

// Style returns the precompiled document for a mode, or nil for a mode the
// set does not hold.
func (s *StyleSet) Style(mode Mode) *StyleDocument {
	return s.styles[mode]
}

// DefaultMode returns the display mode the compiler's layer configuration
// named as its default.
func (s *StyleSet) DefaultMode() Mode {
	return s.defaultMode
}

// DefaultStyle returns the precompiled document for the default mode. A
// display starts on this style and switches with Style as lighting changes.
func (s *StyleSet) DefaultStyle() *StyleDocument {
	return s.styles[s.defaultMode]
}

// Diagnostics returns the diagnostics recorded while compiling a mode.
func (s *StyleSet) Diagnostics(mode Mode) []Diagnostic {
	return s.diagnostics[mode]
}

// Modes returns the modes the set holds styles for, in day, dusk, night
// order.
func (s *StyleSet) Modes() []Mode {
	var modes []Mode
	for _, mode := range Modes() {
		if _, ok := s.styles[mode]; ok {
			modes = append(modes, mode)
		}
	}
	return modes
}
