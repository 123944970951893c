package symbology

import (
	"strings"
	"testing"
)

const testRulesCSV = `TABLESET,OBJCLASS,ATTRIBUTES,INSTRUCTION,PRIORITY,CATEGORY,VIEWINGGROUP
POINTS,BOYLAT,,SY(BOYDEF03),5,Base,27010
POINTS,BOYLAT,CATLAM=1,SY(BOYLAT12),5,Base,27010
POINTS,BOYLAT,CATLAM=2,SY(BOYLAT13),5,Base,27010
LINES,DEPCNT,,CS(DEPCNT03),3,Standard,33020
AREAS,RESARE,CATREA=14|OBJNAM,"LS(DASH,2,CHMGD)",3,Standard,26040
`

func loadTestTable(t *testing.T) *LookupTable {
	t.Helper()
	rules, err := ParseRules(strings.NewReader(testRulesCSV))
	if err != nil {
		t.Fatalf("parse rules: %v", err)
	}
	return NewLookupTable(rules)
}

func TestSelectFirstMatch(t *testing.T) {
	table := loadTestTable(t)

	ref := NewAttributeRef("BOYLAT", map[string]interface{}{"CATLAM": "1"}, nil)
	rule := table.Select("BOYLAT", ref, TableSetPoints)
	if rule == nil {
		t.Fatal("expected a match")
	}
	if rule.Raw != "SY(BOYLAT12)" {
		t.Errorf("expected CATLAM=1 rule, got %q", rule.Raw)
	}
}

func TestSelectFallbackOrderedLast(t *testing.T) {
	table := loadTestTable(t)

	// The fallback row appears first in the source but must not shadow the
	// attribute-specific rules.
	ref := NewAttributeRef("BOYLAT", map[string]interface{}{"CATLAM": "2"}, nil)
	rule := table.Select("BOYLAT", ref, TableSetPoints)
	if rule == nil {
		t.Fatal("expected a match")
	}
	if rule.Raw != "SY(BOYLAT13)" {
		t.Errorf("fallback shadowed specific rule, got %q", rule.Raw)
	}

	// A buoy with no CATLAM still matches, via the fallback.
	ref = NewAttributeRef("BOYLAT", nil, nil)
	rule = table.Select("BOYLAT", ref, TableSetPoints)
	if rule == nil {
		t.Fatal("expected fallback match")
	}
	if rule.Raw != "SY(BOYDEF03)" {
		t.Errorf("expected fallback rule, got %q", rule.Raw)
	}
}

func TestSelectNumericEquivalence(t *testing.T) {
	table := loadTestTable(t)

	// Tiled sources deliver CATLAM as a number; the predicate value "1"
	// must still match.
	ref := NewAttributeRef("BOYLAT", map[string]interface{}{"CATLAM": 1.0}, nil)
	rule := table.Select("BOYLAT", ref, TableSetPoints)
	if rule == nil || rule.Raw != "SY(BOYLAT12)" {
		t.Fatalf("numeric CATLAM did not match: %+v", rule)
	}
}

func TestSelectNoMatchIsNil(t *testing.T) {
	table := loadTestTable(t)

	// Unknown object class: no rules at all.
	ref := NewAttributeRef("MAGVAR", nil, nil)
	if rule := table.Select("MAGVAR", ref, TableSetPoints); rule != nil {
		t.Errorf("expected nil for unknown class, got %+v", rule)
	}

	// Known class, wrong table set.
	ref = NewAttributeRef("BOYLAT", map[string]interface{}{"CATLAM": "1"}, nil)
	if rule := table.Select("BOYLAT", ref, TableSetAreas); rule != nil {
		t.Errorf("expected nil for wrong table set, got %+v", rule)
	}
}

func TestConjunctivePredicate(t *testing.T) {
	table := loadTestTable(t)

	// The RESARE rule needs CATREA=14 and OBJNAM present.
	ref := NewAttributeRef("RESARE", map[string]interface{}{"CATREA": "14"}, nil)
	if rule := table.Select("RESARE", ref, TableSetAreas); rule != nil {
		t.Errorf("partial predicate must not match, got %+v", rule)
	}

	ref = NewAttributeRef("RESARE", map[string]interface{}{
		"CATREA": "14",
		"OBJNAM": "Exercise Area D-123",
	}, nil)
	if rule := table.Select("RESARE", ref, TableSetAreas); rule == nil {
		t.Error("full predicate should match")
	}
}

func TestParseRulesRejectsDefects(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			"unknown instruction",
			"TABLESET,OBJCLASS,ATTRIBUTES,INSTRUCTION,PRIORITY,CATEGORY,VIEWINGGROUP\nPOINTS,BOYLAT,,ZZ(X),5,Base,27010\n",
		},
		{
			"unknown procedure",
			"TABLESET,OBJCLASS,ATTRIBUTES,INSTRUCTION,PRIORITY,CATEGORY,VIEWINGGROUP\nPOINTS,BOYLAT,,CS(NOPROC99),5,Base,27010\n",
		},
		{
			"bad table set",
			"TABLESET,OBJCLASS,ATTRIBUTES,INSTRUCTION,PRIORITY,CATEGORY,VIEWINGGROUP\nSURFACES,BOYLAT,,SY(BOYLAT12),5,Base,27010\n",
		},
		{
			"bad priority",
			"TABLESET,OBJCLASS,ATTRIBUTES,INSTRUCTION,PRIORITY,CATEGORY,VIEWINGGROUP\nPOINTS,BOYLAT,,SY(BOYLAT12),high,Base,27010\n",
		},
		{
			"bad attribute code",
			"TABLESET,OBJCLASS,ATTRIBUTES,INSTRUCTION,PRIORITY,CATEGORY,VIEWINGGROUP\nPOINTS,BOYLAT,cat=1,SY(BOYLAT12),5,Base,27010\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRules(strings.NewReader(tt.csv)); err == nil {
				t.Error("expected load to fail")
			}
		})
	}
}

func TestLoadDefaultLookupTable(t *testing.T) {
	table, err := LoadDefaultLookupTable()
	if err != nil {
		t.Fatalf("embedded table failed to load: %v", err)
	}
	if table.Len() == 0 {
		t.Fatal("embedded table is empty")
	}

	// Spot-check the rows the rest of the pipeline leans on.
	ref := NewAttributeRef("BOYLAT", map[string]interface{}{"CATLAM": "1"}, nil)
	rule := table.Select("BOYLAT", ref, TableSetPoints)
	if rule == nil {
		t.Fatal("no BOYLAT rule in embedded table")
	}
	if rule.Raw != "SY(BOYLAT12)" || rule.Priority != 5 {
		t.Errorf("unexpected BOYLAT rule: %q prio %d", rule.Raw, rule.Priority)
	}

	ref = NewAttributeRef("DEPCNT", map[string]interface{}{"VALDCO": "6"}, nil)
	rule = table.Select("DEPCNT", ref, TableSetLines)
	if rule == nil {
		t.Fatal("no DEPCNT rule in embedded table")
	}
	if rule.Priority != 3 {
		t.Errorf("DEPCNT priority = %d, want 3", rule.Priority)
	}
	if len(rule.Instructions) != 1 || rule.Instructions[0].Proc != ProcDepcnt03 {
		t.Errorf("DEPCNT should dispatch to DEPCNT03: %q", rule.Raw)
	}
}

func TestObjectClassesSorted(t *testing.T) {
	table := loadTestTable(t)
	classes := table.ObjectClasses()
	for i := 1; i < len(classes); i++ {
		if classes[i-1] >= classes[i] {
			t.Fatalf("classes not sorted: %v", classes)
		}
	}
}
