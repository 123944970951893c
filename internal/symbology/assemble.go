package symbology

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Feature is the compiler's view of one chart feature: its object class,
// the lookup table its geometry selects, and its attribute dictionary.
// Geometry coordinates never reach the compiler; the style document
// describes how classes of features draw, not where they are.
type Feature struct {
	ObjectClass string
	TableSet    TableSet
	Attributes  map[string]interface{}
}

// BuildTable compiles the whole lookup table into an ordered fragment list.
//
// Every rule becomes a candidate layer carrying a filter that re-states the
// rule's predicate over the source tiles, so the renderer performs the
// feature matching. Deferred attribute lookups inside instructions compile
// to get-expressions; where a rule's own predicate pins an attribute value,
// the instruction sees that value (a BOYLAT rule for CATLAM=1 resolves
// CATLAM as 1).
//
// The pass is a single stateless transform: same table, config, palette and
// registry always produce the identical fragment list.
func BuildTable(table *LookupTable, cfg Config, pal Palette, reg Registry, diag *DiagnosticList) []Fragment {
	env := renderEnv{palette: pal, registry: reg, diag: diag, deferred: true}
	var frags []Fragment
	for _, set := range []TableSet{TableSetPoints, TableSetLines, TableSetAreas} {
		for _, class := range table.ObjectClasses() {
			for _, rule := range table.RulesFor(class, set) {
				frags = append(frags, ruleFragments(rule, cfg, env)...)
			}
		}
	}
	finish(frags)
	return frags
}

// ruleFragments compiles one rule for the table-driven build. Depth-banded
// conditional rules expand into one fragment group per band, each carrying
// the numeric range filter that selects the band's features; every other
// instruction compiles once against the rule's own predicate values.
func ruleFragments(rule *Rule, cfg Config, env renderEnv) []Fragment {
	var frags []Fragment
	base := ruleFilter(rule)
	for _, in := range rule.Instructions {
		variants := []tableVariant{{attrs: rule.PredicateAttrs()}}
		if in.Kind == InstConditional {
			if v := tableVariants(in.Proc, cfg); v != nil {
				variants = v
			}
		}
		for _, variant := range variants {
			ref := NewAttributeRef(rule.ObjectClass, variant.attrs, env.diag)
			filter := base
			if len(variant.clauses) > 0 {
				filter = append(append([]interface{}{}, base...), variant.clauses...)
			}
			for _, f := range evalInstruction(in, ref, cfg, env) {
				f.Filter = filter
				stampRule(&f, rule)
				frags = append(frags, f)
			}
		}
	}
	return frags
}

// tableVariant is one static expansion of a conditional rule: the synthetic
// attributes the procedure is evaluated with, plus the filter clauses that
// select the features the expansion covers.
type tableVariant struct {
	attrs   map[string]interface{}
	clauses []interface{}
}

// tableVariants enumerates the static expansions of a procedure. The
// depth-banded procedures vary only with a numeric threshold comparison, so
// each band becomes its own filtered layer; the range filters use the same
// boundary convention as the band functions (a value equal to a threshold
// selects the deeper band). Procedures keyed on attribute combinations
// (lights, topmarks, wrecks) return nil and compile once with their default
// rendering; the per-feature build resolves those exactly.
func tableVariants(proc Procedure, cfg Config) []tableVariant {
	switch proc {
	case ProcDepare02:
		return []tableVariant{
			band1("DRVAL1", -1, lt("DRVAL1", 0)),
			band1("DRVAL1", 0, gte("DRVAL1", 0), lt("DRVAL1", cfg.Shallow)),
			band1("DRVAL1", cfg.Shallow, gte("DRVAL1", cfg.Shallow), lt("DRVAL1", cfg.Safety)),
			band1("DRVAL1", cfg.Safety, gte("DRVAL1", cfg.Safety), lt("DRVAL1", cfg.Deep)),
			band1("DRVAL1", cfg.Deep, gte("DRVAL1", cfg.Deep)),
		}
	case ProcDepcnt03:
		return []tableVariant{
			band1("VALDCO", cfg.Safety, eq("VALDCO", cfg.Safety)),
			band1("VALDCO", cfg.Safety+1, neq("VALDCO", cfg.Safety)),
		}
	case ProcSoundg03:
		return []tableVariant{
			band1("DEPTH", 0, lt("DEPTH", cfg.Shallow)),
			band1("DEPTH", cfg.Shallow, gte("DEPTH", cfg.Shallow), lt("DEPTH", cfg.Deep)),
			band1("DEPTH", cfg.Deep, gte("DEPTH", cfg.Deep)),
		}
	default:
		return nil
	}
}

func band1(code string, value float64, clauses ...interface{}) tableVariant {
	return tableVariant{
		attrs:   map[string]interface{}{code: value},
		clauses: clauses,
	}
}

func lt(code string, v float64) interface{} {
	return []interface{}{"<", []interface{}{"get", code}, v}
}

func gte(code string, v float64) interface{} {
	return []interface{}{">=", []interface{}{"get", code}, v}
}

func eq(code string, v float64) interface{} {
	return []interface{}{"==", []interface{}{"get", code}, v}
}

func neq(code string, v float64) interface{} {
	return []interface{}{"!=", []interface{}{"get", code}, v}
}

// BuildFeatures compiles a concrete feature set: each feature is matched
// against the lookup table and symbolized with its selected rule. Features
// with no matching rule are omitted, which is the expected open-world
// outcome, not an error.
func BuildFeatures(table *LookupTable, features []Feature, cfg Config, pal Palette, reg Registry, diag *DiagnosticList) []Fragment {
	env := renderEnv{palette: pal, registry: reg, diag: diag}
	var frags []Fragment
	for _, feat := range features {
		ref := NewAttributeRef(feat.ObjectClass, feat.Attributes, diag)
		rule := table.Select(feat.ObjectClass, ref, feat.TableSet)
		if rule == nil {
			continue
		}
		for _, in := range rule.Instructions {
			for _, f := range evalInstruction(in, ref, cfg, env) {
				stampRule(&f, rule)
				frags = append(frags, f)
			}
		}
	}
	finish(frags)
	return frags
}

func stampRule(f *Fragment, r *Rule) {
	f.ObjectClass = r.ObjectClass
	f.Priority = r.Priority
	f.Category = r.Category
	f.ViewingGroup = r.ViewingGroup
}

// finish assigns layer identifiers and establishes draw order. Identifiers
// are assigned in input order, before sorting, so they depend only on the
// inputs and never on sort internals. The priority sort is stable: equal
// priorities keep their input order, because draw order within a priority
// is defined by data arrival, not by the compiler.
func finish(frags []Fragment) {
	for i := range frags {
		frags[i].ID = fmt.Sprintf("%s-%s-%03d",
			strings.ToLower(frags[i].ObjectClass), frags[i].Type, i)
	}
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].Priority < frags[j].Priority
	})
}

// ruleFilter renders a rule's predicate as a renderer filter expression.
// Features match on their OBJL class tag plus every predicate constraint;
// a presence-only constraint becomes a has-expression. Numeric constraint
// values are emitted as numbers so they compare against tiled attributes.
//
// Tiled sources disagree on the OBJL encoding: some tilers copy the numeric
// object label straight from the S-57 record, others resolve it to the
// acronym. When the catalogue knows the class the filter accepts either
// form, so the same style works over both kinds of source.
func ruleFilter(r *Rule) []interface{} {
	classMatch := []interface{}{"==", []interface{}{"get", "OBJL"}, r.ObjectClass}
	if code, ok := ObjectClassCode(r.ObjectClass); ok {
		classMatch = []interface{}{
			"any",
			classMatch,
			[]interface{}{"==", []interface{}{"get", "OBJL"}, float64(code)},
		}
	}
	filter := []interface{}{"all", classMatch}
	for _, m := range r.Predicate {
		if m.Value == "" {
			filter = append(filter, []interface{}{"has", m.Code})
			continue
		}
		var val interface{} = m.Value
		if f, err := strconv.ParseFloat(m.Value, 64); err == nil {
			val = f
		}
		filter = append(filter, []interface{}{"==", []interface{}{"get", m.Code}, val})
	}
	return filter
}
