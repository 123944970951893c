package symbology

// DiagnosticKind classifies a recoverable condition encountered during a
// compile. Fatal conditions are errors, not diagnostics (see errors.go).
type DiagnosticKind int

const (
	// DiagMissingSymbol: a SY instruction referenced a symbol name with no
	// registry entry. The instruction contributed no fragment.
	DiagMissingSymbol DiagnosticKind = iota

	// DiagMissingPattern: an AP instruction referenced a pattern name with no
	// registry entry. The instruction contributed no fragment.
	DiagMissingPattern

	// DiagMalformedAttribute: an attribute value failed to parse as its
	// expected type. The deferred lookup resolved to its documented default.
	DiagMalformedAttribute

	// DiagMissingColorToken: a color token is absent from the active palette.
	// The fallback color was used.
	DiagMissingColorToken
)

// String returns the diagnostic kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagMissingSymbol:
		return "missing-symbol"
	case DiagMissingPattern:
		return "missing-pattern"
	case DiagMalformedAttribute:
		return "malformed-attribute"
	case DiagMissingColorToken:
		return "missing-color-token"
	default:
		return "unknown"
	}
}

// Diagnostic describes one recoverable condition absorbed during a compile.
//
// The compile itself always completes; diagnostics let non-interactive
// callers (tests, batch tools) assert on degraded output instead of
// scraping console logs.
type Diagnostic struct {
	Kind    DiagnosticKind
	Subject string // what was affected: symbol name, "OBJCLS.ATTR", color token
	Message string
}

// DiagnosticList collects diagnostics for a single compile pass.
//
// A list is created per Build call and never shared between compiles, so no
// locking is needed (the compiler is a single-pass transform).
type DiagnosticList struct {
	items []Diagnostic
	sink  func(Diagnostic)
}

// NewDiagnosticList returns an empty list. The sink, if non-nil, is invoked
// for every diagnostic as it is recorded (interactive callers use this to
// surface warnings immediately).
func NewDiagnosticList(sink func(Diagnostic)) *DiagnosticList {
	return &DiagnosticList{sink: sink}
}

func (l *DiagnosticList) add(d Diagnostic) {
	if l == nil {
		return
	}
	l.items = append(l.items, d)
	if l.sink != nil {
		l.sink(d)
	}
}

// Items returns the recorded diagnostics in order of occurrence.
func (l *DiagnosticList) Items() []Diagnostic {
	if l == nil {
		return nil
	}
	return l.items
}

// Len returns the number of recorded diagnostics.
func (l *DiagnosticList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}
