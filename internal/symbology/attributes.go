package symbology

import (
	"fmt"
	"strconv"
	"strings"
)

// AttributeRef provides typed access to one feature's attribute dictionary.
//
// Feature attributes arrive as the map[string]interface{} produced by S-57
// parsing: values are usually strings (the ATTF field is ASCII-encoded), but
// numeric types appear when the source has already been through tiling.
// Accessors coerce both shapes; a value that cannot be coerced resolves to
// the documented default and is reported through the diagnostic sink rather
// than aborting the compile.
//
// An AttributeRef is immutable; it never writes to the underlying map.
type AttributeRef struct {
	objectClass string
	attrs       map[string]interface{}
	diag        *DiagnosticList
}

// NewAttributeRef wraps an object class and attribute dictionary.
// The diagnostic list may be nil, in which case coercion failures are
// silently absorbed.
func NewAttributeRef(objectClass string, attrs map[string]interface{}, diag *DiagnosticList) AttributeRef {
	return AttributeRef{objectClass: objectClass, attrs: attrs, diag: diag}
}

// ObjectClass returns the S-57 object class acronym (e.g. "DEPCNT", "BOYLAT").
func (r AttributeRef) ObjectClass() string {
	return r.objectClass
}

// Has reports whether the six-character attribute code is present.
func (r AttributeRef) Has(code string) bool {
	_, ok := r.attrs[code]
	return ok
}

// Raw returns the untyped attribute value.
func (r AttributeRef) Raw(code string) (interface{}, bool) {
	v, ok := r.attrs[code]
	return v, ok
}

// Float returns the attribute as a float64.
//
// S-57 "F" (float) and "I" (integer) attribute values are both accepted.
// Returns (0, false) if the attribute is absent; a present but malformed
// value also returns (0, false) after recording a MalformedAttribute
// diagnostic, so callers fall back to their documented default.
func (r AttributeRef) Float(code string) (float64, bool) {
	v, ok := r.attrs[code]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			r.malformed(code, n, "float")
			return 0, false
		}
		return f, true
	default:
		r.malformed(code, fmt.Sprintf("%v", v), "float")
		return 0, false
	}
}

// Int returns the attribute as an int.
//
// Enumerated ("E") attribute values are integers on the wire; string-encoded
// values are parsed. Malformed values record a diagnostic and return (0, false).
func (r AttributeRef) Int(code string) (int, bool) {
	v, ok := r.attrs[code]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			// Some producers encode enumerations as "2.0"
			f, ferr := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if ferr != nil {
				r.malformed(code, n, "int")
				return 0, false
			}
			return int(f), true
		}
		return i, true
	default:
		r.malformed(code, fmt.Sprintf("%v", v), "int")
		return 0, false
	}
}

// String returns the attribute as a string.
func (r AttributeRef) String(code string) (string, bool) {
	v, ok := r.attrs[code]
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// IntList returns a list-type ("L") attribute as integers.
//
// S-57 encodes list attributes as comma-separated codes (e.g. COLOUR="3,1").
// Already-split []float64 or []interface{} values from tiled sources are
// accepted as well.
func (r AttributeRef) IntList(code string) ([]int, bool) {
	v, ok := r.attrs[code]
	if !ok {
		return nil, false
	}
	switch l := v.(type) {
	case string:
		parts := strings.Split(l, ",")
		out := make([]int, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			i, err := strconv.Atoi(p)
			if err != nil {
				r.malformed(code, l, "int list")
				return nil, false
			}
			out = append(out, i)
		}
		return out, true
	case []int:
		return l, true
	case []float64:
		out := make([]int, len(l))
		for i, f := range l {
			out[i] = int(f)
		}
		return out, true
	case []interface{}:
		out := make([]int, 0, len(l))
		for _, e := range l {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			case string:
				i, err := strconv.Atoi(strings.TrimSpace(n))
				if err != nil {
					r.malformed(code, fmt.Sprintf("%v", v), "int list")
					return nil, false
				}
				out = append(out, i)
			default:
				r.malformed(code, fmt.Sprintf("%v", v), "int list")
				return nil, false
			}
		}
		return out, true
	default:
		r.malformed(code, fmt.Sprintf("%v", v), "int list")
		return nil, false
	}
}

// Depth returns the sounding depth for this feature in meters.
//
// Tiled sounding points carry a per-point DEPTH attribute. Multipoint SOUNDG
// features straight from the parser instead expose the Z values as a DEPTHS
// list; the first entry is used. Returns (0, false) when neither is present.
func (r AttributeRef) Depth() (float64, bool) {
	if d, ok := r.Float("DEPTH"); ok {
		return d, true
	}
	if v, ok := r.attrs["DEPTHS"]; ok {
		if ds, ok := v.([]float64); ok && len(ds) > 0 {
			return ds[0], true
		}
	}
	return 0, false
}

func (r AttributeRef) malformed(code, value, want string) {
	if r.diag != nil {
		r.diag.add(Diagnostic{
			Kind:    DiagMalformedAttribute,
			Subject: r.objectClass + "." + code,
			Message: fmt.Sprintf("attribute %s value %q does not parse as %s, using default", code, value, want),
		})
	}
}
