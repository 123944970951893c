// Package s52 compiles IHO S-52 presentation rules into MapLibre style documents.
package s52

import (
	"fmt"
	"io"

	"github.com/beetlebugorg/s52/internal/symbology"
)

// Compiler turns S-57 chart features and S-52 lookup rules into style layers.
//
// A Compiler loads its lookup table, color palettes, and symbol registry once
// at construction and is safe for concurrent use afterwards. Create one with
// NewCompiler and reuse it for every style build; per-call inputs (mode, data
// source, feature sets) are passed to the CreateStyle family of methods.
//
// Example:
//
//	compiler, err := s52.NewCompiler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	style, err := compiler.CreateStyle(s52.StyleOptions{
//	    Source: s52.Source{Type: "vector", URL: "https://tiles.example.com/enc.json"},
//	    Mode:   s52.ModeDay,
//	})
type Compiler struct {
	table        *symbology.LookupTable
	registry     *SymbolRegistry
	palettes     map[Mode]*Palette
	config       LayerConfig
	onDiagnostic func(Diagnostic)
}

// CompilerOptions configures compiler construction.
//
// The zero value loads the built-in lookup table, the built-in symbol
// registry, and the default layer configuration.
type CompilerOptions struct {
	// Rules supplies a custom lookup table in CSV form.
	// If nil, the built-in table is used.
	Rules io.Reader

	// Registry supplies the symbol registry used to resolve SY, LC, and AP
	// instruction names. If nil, the built-in registry is used.
	//
	// The registry must not be modified while the compiler is in use.
	Registry *SymbolRegistry

	// Config sets depth thresholds, the default mode, and the source
	// identifier used for generated layers. Zero-value fields fall back to
	// DefaultLayerConfig values.
	Config LayerConfig

	// OnDiagnostic, if non-nil, is called for each diagnostic as the
	// compile records it. The full list is still returned from the
	// CreateStyle methods; the hook exists for interactive tools that
	// surface warnings while a build runs.
	//
	// The hook is called from whichever goroutine runs the compile.
	OnDiagnostic func(Diagnostic)
}

// NewCompiler creates a compiler with the built-in lookup table, palettes,
// and symbol registry.
func NewCompiler() (*Compiler, error) {
	return NewCompilerWithOptions(CompilerOptions{})
}

// NewCompilerWithOptions creates a compiler with custom rules, registry, or
// layer configuration.
//
// All assets are parsed and validated here. A defective rule file or an
// incoherent layer configuration fails construction rather than surfacing
// mid-compile.
func NewCompilerWithOptions(opts CompilerOptions) (*Compiler, error) {
	cfg := opts.Config.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	table, err := loadRules(opts.Rules)
	if err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		registry, err = DefaultSymbolRegistry()
		if err != nil {
			return nil, err
		}
	}

	palettes, err := loadPalettes()
	if err != nil {
		return nil, err
	}

	return &Compiler{
		table:        table,
		registry:     registry,
		palettes:     palettes,
		config:       cfg,
		onDiagnostic: opts.OnDiagnostic,
	}, nil
}

// newDiagnosticList creates the per-compile diagnostic collector, forwarding
// each diagnostic through the OnDiagnostic hook when one is set.
func (c *Compiler) newDiagnosticList() *symbology.DiagnosticList {
	if c.onDiagnostic == nil {
		return symbology.NewDiagnosticList(nil)
	}
	hook := c.onDiagnostic
	return symbology.NewDiagnosticList(func(d symbology.Diagnostic) {
		hook(Diagnostic{
			Kind:    convertDiagnosticKind(d.Kind),
			Subject: d.Subject,
			Message: d.Message,
		})
	})
}

func loadRules(r io.Reader) (*symbology.LookupTable, error) {
	if r == nil {
		table, err := symbology.LoadDefaultLookupTable()
		if err != nil {
			return nil, &ErrAssetLoad{Asset: "lookup table", Err: err}
		}
		return table, nil
	}

	rules, err := symbology.ParseRules(r)
	if err != nil {
		return nil, &ErrAssetLoad{Asset: "lookup table", Err: err}
	}
	return symbology.NewLookupTable(rules), nil
}

// Config returns the layer configuration the compiler was built with.
func (c *Compiler) Config() LayerConfig {
	return c.config
}

// Registry returns the symbol registry the compiler resolves artwork against.
func (c *Compiler) Registry() *SymbolRegistry {
	return c.registry
}

// Palette returns the color palette for a display mode.
//
// Returns nil for modes the compiler does not know, which cannot happen for
// the three standard modes.
func (c *Compiler) Palette(mode Mode) *Palette {
	return c.palettes[mode]
}

// RuleCount returns the number of lookup rules loaded into the compiler.
func (c *Compiler) RuleCount() int {
	return c.table.Len()
}

// ObjectClasses returns the distinct S-57 object class acronyms covered by
// the loaded lookup table, sorted alphabetically.
func (c *Compiler) ObjectClasses() []string {
	return c.table.ObjectClasses()
}

// symbologyConfig translates the layer configuration and a resolved mode into
// the form the rule interpreter consumes.
func (c *Compiler) symbologyConfig(mode Mode) symbology.Config {
	return symbology.Config{
		Mode:    mode.pathSegment(),
		Shallow: c.config.ShallowDepthMeters,
		Safety:  c.config.SafetyDepthMeters,
		Deep:    c.config.DeepDepthMeters,
	}
}

// resolvePalette returns the palette for a mode, or an error naming the mode
// if no palette is loaded for it.
func (c *Compiler) resolvePalette(mode Mode) (*Palette, error) {
	pal, ok := c.palettes[mode]
	if !ok {
		return nil, fmt.Errorf("no palette loaded for mode %s", mode)
	}
	return pal, nil
}
