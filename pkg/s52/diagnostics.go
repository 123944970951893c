package s52

import (
	"fmt"

	"github.com/beetlebugorg/s52/internal/symbology"
)

// DiagnosticKind classifies a recoverable condition a compile absorbed.
type DiagnosticKind int

const (
	// DiagnosticMissingSymbol reports a symbol name with no registry entry.
	// The referencing instruction contributed no layer.
	DiagnosticMissingSymbol DiagnosticKind = iota

	// DiagnosticMissingPattern reports a fill or line pattern name with no
	// registry entry. The referencing instruction contributed no layer.
	DiagnosticMissingPattern

	// DiagnosticMalformedAttribute reports an attribute value that failed to
	// parse as its expected type. The documented default was used instead.
	DiagnosticMalformedAttribute

	// DiagnosticMissingColorToken reports a color token absent from the
	// active palette. The fallback color was used.
	DiagnosticMissingColorToken

	// DiagnosticUnknown covers kinds added by newer rule interpreters.
	DiagnosticUnknown
)

// String returns the diagnostic kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticMissingSymbol:
		return "missing-symbol"
	case DiagnosticMissingPattern:
		return "missing-pattern"
	case DiagnosticMalformedAttribute:
		return "malformed-attribute"
	case DiagnosticMissingColorToken:
		return "missing-color-token"
	default:
		return "unknown"
	}
}

// Diagnostic describes one recoverable condition from a compile.
//
// Diagnostics never abort a build: a missing symbol or color degrades the
// affected layer and is reported here, so batch pipelines can assert on
// output quality without scraping logs.
type Diagnostic struct {
	// Kind classifies the condition.
	Kind DiagnosticKind

	// Subject names what was affected: a symbol name, a color token, or an
	// "OBJCLS.ATTR" attribute reference.
	Subject string

	// Message is a human-readable description.
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Kind, d.Subject, d.Message)
}

func convertDiagnosticKind(k symbology.DiagnosticKind) DiagnosticKind {
	switch k {
	case symbology.DiagMissingSymbol:
		return DiagnosticMissingSymbol
	case symbology.DiagMissingPattern:
		return DiagnosticMissingPattern
	case symbology.DiagMalformedAttribute:
		return DiagnosticMalformedAttribute
	case symbology.DiagMissingColorToken:
		return DiagnosticMissingColorToken
	default:
		return DiagnosticUnknown
	}
}

func convertDiagnostics(items []symbology.Diagnostic) []Diagnostic {
	if len(items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(items))
	for i, d := range items {
		out[i] = Diagnostic{
			Kind:    convertDiagnosticKind(d.Kind),
			Subject: d.Subject,
			Message: d.Message,
		}
	}
	return out
}
