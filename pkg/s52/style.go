package s52

import (
	"strings"

	"github.com/beetlebugorg/s52/internal/symbology"
)

// lnamProperty is the S-57 feature identifier promoted to MapLibre feature
// ids, so feature state (hover, selection) keys on the chart's own LNAM.
const lnamProperty = "LNAM"

// StyleOptions configures one style build.
type StyleOptions struct {
	// Source is the vector data source the generated layers draw from.
	// Required. The compiler passes it through unchanged apart from
	// setting promoteId to LNAM.
	Source Source

	// Name is the style name. Defaults to "enc-" plus the lowercase mode,
	// e.g. "enc-day".
	Name string

	// Mode selects the color table. Defaults to ModeDay.
	Mode Mode

	// Sprite is the base sprite URL. The compiler appends the lowercase
	// mode as a path segment, so "https://example.com/sprites" becomes
	// "https://example.com/sprites/day". If empty, the sprite path is just
	// the mode segment.
	Sprite string
}

// validate rejects option sets the compiler refuses to build with.
func (o StyleOptions) validate() error {
	if o.Source.Type == "" {
		return &ErrInvalidConfig{Field: "Source", Reason: "must specify a source type"}
	}
	if !o.Mode.valid() {
		return &ErrInvalidConfig{Field: "Mode", Reason: "unknown display mode"}
	}
	return nil
}

// CreateStyle compiles the full lookup table into a style document.
//
// Every rule in the table becomes one or more layers filtered by object
// class and rule attributes, so the resulting style symbolizes any chart
// served from the source without recompilation. Layers are ordered by S-52
// display priority.
//
// Invalid options fail the build before any layer is generated. Recoverable
// conditions (missing artwork, unknown color tokens) degrade single layers
// and are reported through CreateStyleWithDiagnostics.
func (c *Compiler) CreateStyle(opts StyleOptions) (*StyleDocument, error) {
	doc, _, err := c.CreateStyleWithDiagnostics(opts)
	return doc, err
}

// CreateStyleWithDiagnostics is CreateStyle plus the diagnostics the compile
// absorbed, in order of occurrence.
func (c *Compiler) CreateStyleWithDiagnostics(opts StyleOptions) (*StyleDocument, []Diagnostic, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	pal, err := c.resolvePalette(opts.Mode)
	if err != nil {
		return nil, nil, err
	}

	diag := c.newDiagnosticList()
	fragments := symbology.BuildTable(c.table, c.symbologyConfig(opts.Mode), pal, registryAdapter{c.registry}, diag)

	return c.assemble(opts, fragments), convertDiagnostics(diag.Items()), nil
}

// CreateStyleForFeatures compiles a style for a concrete set of features.
//
// Unlike CreateStyle, conditional symbology is evaluated against each
// feature's actual attributes: a light gets the flare for its real color, a
// wreck is classified against its sounding. Features whose object class has
// no rule in the lookup table are skipped silently; that is data outside the
// table's coverage, not an error.
func (c *Compiler) CreateStyleForFeatures(features []Feature, opts StyleOptions) (*StyleDocument, []Diagnostic, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	pal, err := c.resolvePalette(opts.Mode)
	if err != nil {
		return nil, nil, err
	}

	diag := c.newDiagnosticList()
	fragments := symbology.BuildFeatures(c.table, convertFeatures(features), c.symbologyConfig(opts.Mode), pal, registryAdapter{c.registry}, diag)

	return c.assemble(opts, fragments), convertDiagnostics(diag.Items()), nil
}

// assemble wraps compiled fragments in the style document envelope.
func (c *Compiler) assemble(opts StyleOptions, fragments []symbology.Fragment) *StyleDocument {
	source := opts.Source
	source.PromoteID = lnamProperty

	name := opts.Name
	if name == "" {
		name = "enc-" + opts.Mode.pathSegment()
	}

	return &StyleDocument{
		Version: StyleVersion,
		Name:    name,
		Sprite:  spritePath(opts.Sprite, opts.Mode),
		Glyphs:  DefaultGlyphsURL,
		Sources: map[string]Source{c.config.SourceID: source},
		Layers:  layersFromFragments(fragments, c.config.SourceID),
	}
}

// spritePath joins the sprite base URL with the mode's path segment. Mode is
// always the final segment so one sprite base serves all three modes.
func spritePath(base string, mode Mode) string {
	segment := mode.pathSegment()
	if base == "" {
		return segment
	}
	return strings.TrimSuffix(base, "/") + "/" + segment
}
