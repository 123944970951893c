package symbology

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TableSet identifies which lookup table a rule belongs to. The table set
// is chosen by the feature's geometry: point features consult the points
// table, line features the lines table, area features the areas table.
//
// Reference: S-52 PresLib Part I, 8.2 (one look-up table per geometry type)
type TableSet int

const (
	// TableSetPoints - rules for point geometry (buoys, lights, soundings).
	TableSetPoints TableSet = iota
	// TableSetLines - rules for line geometry (contours, cables, coastline).
	TableSetLines
	// TableSetAreas - rules for area geometry (depth areas, land, zones).
	TableSetAreas
)

// String returns the table set name.
func (t TableSet) String() string {
	switch t {
	case TableSetPoints:
		return "Points"
	case TableSetLines:
		return "Lines"
	case TableSetAreas:
		return "Areas"
	default:
		return "Unknown"
	}
}

// ParseTableSet parses a table set name as it appears in the lookup CSV.
func ParseTableSet(s string) (TableSet, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "POINTS":
		return TableSetPoints, nil
	case "LINES":
		return TableSetLines, nil
	case "AREAS":
		return TableSetAreas, nil
	default:
		return 0, fmt.Errorf("unknown table set %q", s)
	}
}

// DisplayCategory is the IMO display category assigned to a rule. It governs
// whether the resulting layer is shown at a given detail setting; the
// compiler carries it through to the output, filtering is the renderer's
// concern.
//
// Reference: S-52, 3.2 (display base / standard / other)
type DisplayCategory int

const (
	// CategoryDisplayBase - always shown; cannot be turned off.
	CategoryDisplayBase DisplayCategory = iota
	// CategoryBase - shown in the base display setting.
	CategoryBase
	// CategoryStandard - shown in the standard display setting.
	CategoryStandard
	// CategoryOther - shown only when all information is requested.
	CategoryOther
)

// String returns the display category name.
func (c DisplayCategory) String() string {
	switch c {
	case CategoryDisplayBase:
		return "DisplayBase"
	case CategoryBase:
		return "Base"
	case CategoryStandard:
		return "Standard"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseDisplayCategory parses a display category as it appears in the
// lookup CSV.
func ParseDisplayCategory(s string) (DisplayCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DISPLAYBASE":
		return CategoryDisplayBase, nil
	case "BASE":
		return CategoryBase, nil
	case "STANDARD":
		return CategoryStandard, nil
	case "OTHER":
		return CategoryOther, nil
	default:
		return 0, fmt.Errorf("unknown display category %q", s)
	}
}

// AttrMatch is one conjunctive attribute constraint in a rule predicate.
//
// An empty Value is a presence test: the attribute must exist with any
// value. A non-empty Value must equal the feature's value (numerically when
// both sides parse as numbers, textually otherwise).
type AttrMatch struct {
	Code  string
	Value string
}

// Matches reports whether the feature attribute satisfies this constraint.
func (m AttrMatch) Matches(ref AttributeRef) bool {
	raw, ok := ref.Raw(m.Code)
	if !ok {
		return false
	}
	if m.Value == "" {
		return true
	}
	want := strings.TrimSpace(m.Value)
	got := strings.TrimSpace(fmt.Sprintf("%v", raw))
	if got == want {
		return true
	}
	// "2" and "2.0" (and 2.0 from tiled JSON) must compare equal.
	wf, werr := strconv.ParseFloat(want, 64)
	gf, gerr := strconv.ParseFloat(got, 64)
	if werr == nil && gerr == nil {
		return wf == gf
	}
	return false
}

// Rule is one presentation rule from the lookup tables: it binds an object
// class and attribute predicate to a parsed instruction sequence, a display
// priority, and a display category.
//
// Rules are immutable once the table loads. Many rules may share an object
// class; Select picks exactly one per feature (or none).
//
// Reference: S-52 PresLib Part I, 8.3 (look-up table fields)
type Rule struct {
	ObjectClass  string
	Predicate    []AttrMatch
	Instructions []Instruction
	Priority     int
	Category     DisplayCategory
	ViewingGroup int
	TableSet     TableSet

	// Raw preserves the instruction text for error messages and dumps.
	Raw string
}

// IsFallback reports whether this rule has an empty predicate and so
// matches any feature of its object class. Fallback rules sort last among
// their class's rules regardless of file order.
func (r *Rule) IsFallback() bool {
	return len(r.Predicate) == 0
}

// matches reports whether every predicate constraint is satisfied
// (constraints are conjunctive).
func (r *Rule) matches(ref AttributeRef) bool {
	for _, m := range r.Predicate {
		if !m.Matches(ref) {
			return false
		}
	}
	return true
}

// PredicateAttrs returns the predicate as an attribute dictionary. The
// table-driven build evaluates a rule's instructions against its own
// predicate values, so a rule for BOYLAT with CATLAM=1 sees CATLAM as 1
// when resolving deferred lookups.
func (r *Rule) PredicateAttrs() map[string]interface{} {
	if len(r.Predicate) == 0 {
		return nil
	}
	attrs := make(map[string]interface{}, len(r.Predicate))
	for _, m := range r.Predicate {
		if m.Value != "" {
			attrs[m.Code] = m.Value
		}
	}
	return attrs
}

// parsePredicate parses the ATTRIBUTES cell of a lookup row: zero or more
// CODE=VALUE pairs separated by '|', where "=VALUE" may be omitted for a
// presence test. An empty cell is the empty predicate (fallback rule).
func parsePredicate(cell string) ([]AttrMatch, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	parts := strings.Split(cell, "|")
	out := make([]AttrMatch, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		var m AttrMatch
		if i := strings.IndexByte(p, '='); i >= 0 {
			m.Code = strings.TrimSpace(p[:i])
			m.Value = strings.TrimSpace(p[i+1:])
		} else {
			m.Code = p
		}
		if !isAttrCode(m.Code) {
			return nil, fmt.Errorf("bad attribute code %q", m.Code)
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseRules reads lookup-table rows from CSV.
//
// Columns: TABLESET, OBJCLASS, ATTRIBUTES, INSTRUCTION, PRIORITY, CATEGORY,
// VIEWINGGROUP. The header row is required. Instruction strings are parsed
// here, once; any unknown instruction or procedure name aborts the load
// with an error identifying the offending rule (a defective table is a
// configuration error, not a runtime condition).
func ParseRules(r io.Reader) ([]*Rule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 7
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read lookup table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("lookup table is empty")
	}

	rules := make([]*Rule, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		line := i + 2

		tableSet, err := ParseTableSet(rec[0])
		if err != nil {
			return nil, &ErrBadLookupRow{Line: line, Reason: err.Error()}
		}
		objClass := strings.TrimSpace(rec[1])
		if objClass == "" {
			return nil, &ErrBadLookupRow{Line: line, Reason: "empty object class"}
		}
		predicate, err := parsePredicate(rec[2])
		if err != nil {
			return nil, &ErrBadLookupRow{Line: line, Reason: err.Error()}
		}
		instrText := strings.TrimSpace(rec[3])
		instructions, err := ParseInstructions(objClass, instrText)
		if err != nil {
			return nil, err
		}
		priority, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil {
			return nil, &ErrBadLookupRow{Line: line, Reason: fmt.Sprintf("bad priority %q", rec[4])}
		}
		category, err := ParseDisplayCategory(rec[5])
		if err != nil {
			return nil, &ErrBadLookupRow{Line: line, Reason: err.Error()}
		}
		viewingGroup := 0
		if vg := strings.TrimSpace(rec[6]); vg != "" {
			viewingGroup, err = strconv.Atoi(vg)
			if err != nil {
				return nil, &ErrBadLookupRow{Line: line, Reason: fmt.Sprintf("bad viewing group %q", rec[6])}
			}
		}

		rules = append(rules, &Rule{
			ObjectClass:  objClass,
			Predicate:    predicate,
			Instructions: instructions,
			Priority:     priority,
			Category:     category,
			ViewingGroup: viewingGroup,
			TableSet:     tableSet,
			Raw:          instrText,
		})
	}
	return rules, nil
}
