package s52

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/beetlebugorg/s52/internal/symbology"
)

// symbolsJSON describes the built-in sprite sheet: one entry per symbol name
// with its pixel geometry. The sprite images themselves are served alongside
// the style; the compiler only needs the metadata to place and size them.
//
//go:embed symbols.json
var symbolsJSON []byte

// SymbolInfo describes one symbol in a sprite sheet.
//
// All values are pixels in sprite coordinates. Offset shifts the rendered
// icon relative to the feature position, Pivot is the rotation point, and
// BBox is the symbol's bounding box as [minX, minY, maxX, maxY].
type SymbolInfo struct {
	Offset [2]float64 `json:"offset"`
	Pivot  [2]float64 `json:"pivot"`
	BBox   [4]float64 `json:"bbox"`
}

// Width returns the symbol's bounding box width in pixels.
func (s SymbolInfo) Width() float64 {
	return s.BBox[2] - s.BBox[0]
}

// Height returns the symbol's bounding box height in pixels.
func (s SymbolInfo) Height() float64 {
	return s.BBox[3] - s.BBox[1]
}

// SymbolRegistry resolves symbol names from SY, LC, and AP instructions to
// sprite metadata.
//
// The registry is the compiler's record of what artwork exists. An
// instruction naming a symbol the registry does not know produces a
// diagnostic and no layer, never a broken reference in the output style.
//
// Build a custom registry with NewSymbolRegistry and Register, or load one
// from JSON with LoadSymbolRegistry. A registry must not be modified while a
// compiler is using it.
type SymbolRegistry struct {
	symbols map[string]SymbolInfo
}

// NewSymbolRegistry creates an empty registry.
func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{symbols: make(map[string]SymbolInfo)}
}

// Register adds or replaces a symbol.
func (r *SymbolRegistry) Register(name string, info SymbolInfo) {
	r.symbols[name] = info
}

// Symbol returns the metadata for a symbol name. The second return is false
// when the name is not registered.
func (r *SymbolRegistry) Symbol(name string) (SymbolInfo, bool) {
	info, ok := r.symbols[name]
	return info, ok
}

// Has reports whether a symbol name is registered.
func (r *SymbolRegistry) Has(name string) bool {
	_, ok := r.symbols[name]
	return ok
}

// Names returns all registered symbol names, sorted alphabetically.
func (r *SymbolRegistry) Names() []string {
	names := make([]string, 0, len(r.symbols))
	for name := range r.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered symbols.
func (r *SymbolRegistry) Len() int {
	return len(r.symbols)
}

// LoadSymbolRegistry reads a registry from JSON: an object keyed by symbol
// name, each value carrying offset, pivot, and bbox.
func LoadSymbolRegistry(rd io.Reader) (*SymbolRegistry, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, &ErrAssetLoad{Asset: "symbol registry", Err: err}
	}
	return parseSymbolRegistry(data)
}

// DefaultSymbolRegistry loads the built-in registry covering the symbols the
// built-in lookup table and conditional procedures reference.
func DefaultSymbolRegistry() (*SymbolRegistry, error) {
	return parseSymbolRegistry(symbolsJSON)
}

func parseSymbolRegistry(data []byte) (*SymbolRegistry, error) {
	var symbols map[string]SymbolInfo
	if err := json.Unmarshal(data, &symbols); err != nil {
		return nil, &ErrAssetLoad{Asset: "symbol registry", Err: err}
	}
	for name, info := range symbols {
		if info.BBox[2] < info.BBox[0] || info.BBox[3] < info.BBox[1] {
			return nil, &ErrAssetLoad{
				Asset: "symbol registry",
				Err:   fmt.Errorf("symbol %s has an inverted bounding box", name),
			}
		}
	}
	if symbols == nil {
		symbols = make(map[string]SymbolInfo)
	}
	return &SymbolRegistry{symbols: symbols}, nil
}

// registryAdapter exposes a SymbolRegistry to the rule interpreter.
type registryAdapter struct {
	registry *SymbolRegistry
}

func (a registryAdapter) Symbol(name string) (symbology.Symbol, bool) {
	info, ok := a.registry.Symbol(name)
	if !ok {
		return symbology.Symbol{}, false
	}
	return symbology.Symbol{
		Name:   name,
		Offset: info.Offset,
		Pivot:  info.Pivot,
		BBox:   info.BBox,
	}, true
}
