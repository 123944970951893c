package symbology

// Fragment is one partial style layer: the renderable output of a single
// symbology instruction. The assembler orders fragments by Priority and the
// public API serializes them into the style document's layer list.
//
// A fragment is never mutated after the interpreter returns it. Layout and
// paint use the MapLibre property vocabulary directly (icon-image,
// line-color, fill-pattern, ...) so assembly is a plain concatenation.
type Fragment struct {
	// ID is the layer identifier, unique within one compile. Assigned by the
	// assembler in input order, before priority sorting.
	ID string

	// Type is the MapLibre layer type: "symbol", "line" or "fill".
	Type string

	// Filter restricts the layer to matching features. Set on table-driven
	// builds, nil on per-feature builds where the rule already matched.
	Filter []interface{}

	Layout map[string]interface{}
	Paint  map[string]interface{}

	// Priority is the S-52 display priority of the originating rule, 0..9,
	// lower drawing first.
	Priority int

	ObjectClass  string
	Category     DisplayCategory
	ViewingGroup int
}

// Symbol is one symbol or pattern registry entry: the sprite-sheet geometry
// needed to place the art. Offset shifts the icon from its anchor point,
// Pivot is the rotation center, BBox is the art's bounding box on the sheet.
type Symbol struct {
	Name   string     `json:"name,omitempty"`
	Offset [2]float64 `json:"offset"`
	Pivot  [2]float64 `json:"pivot"`
	BBox   [4]float64 `json:"bbox"`
}

// Registry resolves symbol and pattern names. A missing name is a valid,
// handled state: interpreters report it and drop the fragment rather than
// failing the compile.
//
// Implementations must be safe for concurrent readers; the compiler never
// writes to the registry.
type Registry interface {
	Symbol(name string) (Symbol, bool)
}

// Palette resolves the five-letter S-52 color tokens for one display mode.
type Palette interface {
	Color(token string) (string, bool)
}
