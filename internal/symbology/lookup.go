package symbology

import (
	_ "embed"
	"sort"
	"strings"
)

// Built-in presentation rule set covering the object classes this library
// ships symbology for. Derived from the S-52 PresLib look-up tables,
// collapsed to one table per geometry type.
//
//go:embed lookuptables.csv
var lookupTablesCSV string

// LookupTable is the static rule set: every presentation rule, indexed for
// per-feature selection. A table is immutable after Load and safe for
// concurrent use by any number of compiles.
type LookupTable struct {
	rules []*Rule
	// byClass groups rule indices by (tableSet, objectClass) in canonical
	// order: file order, except fallback (empty-predicate) rules last.
	byClass map[classKey][]*Rule
}

type classKey struct {
	set   TableSet
	class string
}

// NewLookupTable builds a table from parsed rules, establishing canonical
// order.
//
// Canonical order per object class is the table's file order with one
// adjustment: fallback rules (empty predicate) are moved after all
// attribute-specific rules for that class, preserving relative order among
// themselves. A fallback listed first in the source would otherwise shadow
// every specific rule, which is always a table-authoring mistake.
func NewLookupTable(rules []*Rule) *LookupTable {
	t := &LookupTable{
		rules:   rules,
		byClass: make(map[classKey][]*Rule),
	}
	for _, r := range rules {
		key := classKey{set: r.TableSet, class: r.ObjectClass}
		t.byClass[key] = append(t.byClass[key], r)
	}
	for key, group := range t.byClass {
		// Stable partition: specific rules first, fallbacks last.
		sort.SliceStable(group, func(i, j int) bool {
			return !group[i].IsFallback() && group[j].IsFallback()
		})
		t.byClass[key] = group
	}
	return t
}

// LoadDefaultLookupTable parses the embedded rule set.
func LoadDefaultLookupTable() (*LookupTable, error) {
	rules, err := ParseRules(strings.NewReader(lookupTablesCSV))
	if err != nil {
		return nil, err
	}
	return NewLookupTable(rules), nil
}

// Select returns the single best-matching rule for a feature, or nil when
// no rule matches.
//
// Rules for the feature's object class are scanned in canonical order and
// the first rule whose conjunctive predicate is fully satisfied wins. A nil
// result is not an error: features without presentation rules are omitted
// from output. An unknown object simply is not drawn.
func (t *LookupTable) Select(objectClass string, ref AttributeRef, set TableSet) *Rule {
	group := t.byClass[classKey{set: set, class: objectClass}]
	for _, r := range group {
		if r.matches(ref) {
			return r
		}
	}
	return nil
}

// Rules returns every rule in the table, in file order. The table-driven
// build walks this list; the slice must not be modified.
func (t *LookupTable) Rules() []*Rule {
	return t.rules
}

// RulesFor returns the canonical-order rules for one object class and
// table set; used by tests and the CLI dump.
func (t *LookupTable) RulesFor(objectClass string, set TableSet) []*Rule {
	return t.byClass[classKey{set: set, class: objectClass}]
}

// ObjectClasses returns the distinct object classes in the table, sorted.
func (t *LookupTable) ObjectClasses() []string {
	seen := make(map[string]struct{})
	for _, r := range t.rules {
		seen[r.ObjectClass] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of rules.
func (t *LookupTable) Len() int {
	return len(t.rules)
}
