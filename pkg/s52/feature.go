package s52

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/s52/internal/symbology"
)

// GeometryType represents the geometric primitive of a chart feature.
//
// S-57 encodes every feature as a point, a line, or an area, and the S-52
// lookup tables are split the same way; the geometry decides which table a
// feature's rules come from.
type GeometryType int

const (
	// GeometryTypePoint represents a single point location.
	GeometryTypePoint GeometryType = iota

	// GeometryTypeLineString represents a line composed of connected points.
	GeometryTypeLineString

	// GeometryTypePolygon represents a closed polygon area.
	GeometryTypePolygon
)

// String returns a human-readable name for the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// tableSet maps the geometry onto the lookup table it selects rules from.
func (g GeometryType) tableSet() symbology.TableSet {
	switch g {
	case GeometryTypeLineString:
		return symbology.TableSetLines
	case GeometryTypePolygon:
		return symbology.TableSetAreas
	default:
		return symbology.TableSetPoints
	}
}

// Feature is a chart feature presented for symbolization.
//
// Only the fields the presentation rules consult are carried: the object
// class acronym, the geometry primitive, and the S-57 attribute values.
// Geometry coordinates stay in the vector tiles; the compiler never sees
// them except as the Bounds used for spatial filtering.
type Feature struct {
	// ID is the feature's LNAM identifier from the source data. Optional;
	// used only to make generated per-feature layer output traceable.
	ID string

	// ObjectClass is the six-character S-57 acronym, e.g. "DEPARE", "BOYLAT".
	// May be left empty when Attributes carries a numeric OBJL object label;
	// the label is resolved through the object catalogue instead.
	ObjectClass string

	// Geometry selects the lookup table set the feature is matched against.
	Geometry GeometryType

	// Attributes holds S-57 attribute values keyed by acronym, e.g.
	// "DRVAL1", "CATLAM". Values may be numeric, string, or list-valued;
	// string forms of numbers are accepted.
	Attributes map[string]interface{}

	// Bounds is the feature's geographic extent, used by FeatureSet for
	// viewport queries. A point feature uses a degenerate box.
	Bounds Bounds
}

// convertFeature translates the public feature into the form the rule
// interpreter consumes. A feature that names no class but carries a numeric
// OBJL attribute, the shape raw S-57 records and most tile pipelines
// produce, has the label resolved to its acronym here.
func convertFeature(f Feature) symbology.Feature {
	class := f.ObjectClass
	if class == "" {
		if code, ok := objlCode(f.Attributes["OBJL"]); ok {
			class, _ = symbology.ObjectClassAcronym(code)
		}
	}
	return symbology.Feature{
		ObjectClass: class,
		TableSet:    f.Geometry.tableSet(),
		Attributes:  f.Attributes,
	}
}

// objlCode extracts a numeric object label from the attribute forms that
// show up in practice: ints and floats from decoded records, strings from
// tile metadata.
func objlCode(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		code, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return code, true
	default:
		return 0, false
	}
}

func convertFeatures(features []Feature) []symbology.Feature {
	out := make([]symbology.Feature, len(features))
	for i, f := range features {
		out[i] = convertFeature(f)
	}
	return out
}

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.MinLon < out.MinLon {
		out.MinLon = other.MinLon
	}
	if other.MaxLon > out.MaxLon {
		out.MaxLon = other.MaxLon
	}
	if other.MinLat < out.MinLat {
		out.MinLat = other.MinLat
	}
	if other.MaxLat > out.MaxLat {
		out.MaxLat = other.MaxLat
	}
	return out
}
