package s52

import (
	"encoding/json"
	"io"

	"github.com/beetlebugorg/s52/internal/symbology"
)

// StyleVersion is the MapLibre style specification version the compiler
// emits. Version 8 is the only version the specification defines.
const StyleVersion = 8

// DefaultGlyphsURL is the glyph server template written into every generated
// style. Text layers reference fonts through it.
const DefaultGlyphsURL = "https://fonts.openmaptiles.org/{fontstack}/{range}.pbf"

// Metadata keys attached to every generated layer. They carry the S-52
// bookkeeping a renderer or debugger may want without affecting drawing.
const (
	// MetadataPriority is the S-52 display priority (0 to 9, drawn low to high).
	MetadataPriority = "s52:priority"

	// MetadataCategory is the display category name: DisplayBase, Base,
	// Standard, or Other.
	MetadataCategory = "s52:category"

	// MetadataViewingGroup is the S-52 viewing group number.
	MetadataViewingGroup = "s52:viewingGroup"
)

// StyleDocument is a complete MapLibre style.
//
// Layers are ordered back to front by S-52 display priority; renderers must
// not reorder them. Marshaling a document is deterministic, so equal inputs
// produce byte-identical JSON.
type StyleDocument struct {
	Version int               `json:"version"`
	Name    string            `json:"name,omitempty"`
	Sprite  string            `json:"sprite,omitempty"`
	Glyphs  string            `json:"glyphs"`
	Sources map[string]Source `json:"sources"`
	Layers  []Layer           `json:"layers"`
}

// Source is a MapLibre vector source descriptor.
//
// The compiler treats the source as opaque apart from PromoteID, which it
// sets so feature state can be keyed by the S-57 LNAM identifier.
type Source struct {
	Type        string   `json:"type"`
	URL         string   `json:"url,omitempty"`
	Tiles       []string `json:"tiles,omitempty"`
	MinZoom     int      `json:"minzoom,omitempty"`
	MaxZoom     int      `json:"maxzoom,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
	PromoteID   string   `json:"promoteId,omitempty"`
}

// Layer is one MapLibre style layer.
type Layer struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Source      string                 `json:"source"`
	SourceLayer string                 `json:"source-layer,omitempty"`
	Filter      []interface{}          `json:"filter,omitempty"`
	Layout      map[string]interface{} `json:"layout,omitempty"`
	Paint       map[string]interface{} `json:"paint,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Priority returns the layer's S-52 display priority from its metadata.
// Returns -1 if the layer carries no priority.
func (l Layer) Priority() int {
	if p, ok := l.Metadata[MetadataPriority].(int); ok {
		return p
	}
	// Priorities round-trip through JSON as float64.
	if p, ok := l.Metadata[MetadataPriority].(float64); ok {
		return int(p)
	}
	return -1
}

// Category returns the layer's display category name from its metadata, or
// an empty string if the layer carries none.
func (l Layer) Category() string {
	c, _ := l.Metadata[MetadataCategory].(string)
	return c
}

// ViewingGroup returns the layer's S-52 viewing group from its metadata.
// Returns 0 if the layer carries none.
func (l Layer) ViewingGroup() int {
	if g, ok := l.Metadata[MetadataViewingGroup].(int); ok {
		return g
	}
	if g, ok := l.Metadata[MetadataViewingGroup].(float64); ok {
		return int(g)
	}
	return 0
}

// LayerCount returns the number of layers in the document.
func (d *StyleDocument) LayerCount() int {
	return len(d.Layers)
}

// LayerIDs returns the layer identifiers in render order.
func (d *StyleDocument) LayerIDs() []string {
	ids := make([]string, len(d.Layers))
	for i, l := range d.Layers {
		ids[i] = l.ID
	}
	return ids
}

// LayersInCategory returns the layers whose display category matches name,
// preserving render order. Category names are DisplayBase, Base, Standard,
// and Other.
func (d *StyleDocument) LayersInCategory(name string) []Layer {
	var out []Layer
	for _, l := range d.Layers {
		if l.Category() == name {
			out = append(out, l)
		}
	}
	return out
}

// JSON returns the document as indented JSON.
func (d *StyleDocument) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Encode writes the document as indented JSON to w.
func (d *StyleDocument) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// layerFromFragment converts one interpreter fragment into a style layer.
func layerFromFragment(f symbology.Fragment, sourceID string) Layer {
	return Layer{
		ID:          f.ID,
		Type:        f.Type,
		Source:      sourceID,
		SourceLayer: f.ObjectClass,
		Filter:      f.Filter,
		Layout:      f.Layout,
		Paint:       f.Paint,
		Metadata: map[string]interface{}{
			MetadataPriority:     f.Priority,
			MetadataCategory:     f.Category.String(),
			MetadataViewingGroup: f.ViewingGroup,
		},
	}
}

func layersFromFragments(fragments []symbology.Fragment, sourceID string) []Layer {
	layers := make([]Layer, len(fragments))
	for i, f := range fragments {
		layers[i] = layerFromFragment(f, sourceID)
	}
	return layers
}
