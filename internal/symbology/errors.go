package symbology

import (
	"fmt"
)

// ErrUnknownInstruction indicates a lookup-table instruction string names a
// primitive outside the closed S-52 instruction set. This is a static data
// defect: it fails the table load, never a per-feature compile.
type ErrUnknownInstruction struct {
	Name        string // the unrecognized mnemonic
	ObjectClass string // object class of the offending rule
	Instruction string // full instruction text for the diagnostic
}

func (e *ErrUnknownInstruction) Error() string {
	return fmt.Sprintf("rule %s: unknown symbology instruction %q in %q",
		e.ObjectClass, e.Name, e.Instruction)
}

// ErrUnknownProcedure indicates a CS call names a conditional symbology
// procedure this library does not implement. Like unknown instructions, this
// is detected when the table loads.
type ErrUnknownProcedure struct {
	Name        string
	ObjectClass string
}

func (e *ErrUnknownProcedure) Error() string {
	return fmt.Sprintf("rule %s: unknown conditional symbology procedure %q",
		e.ObjectClass, e.Name)
}

// ErrMalformedInstruction indicates an instruction string that does not
// scan as the NAME(arg,...) micro-language.
type ErrMalformedInstruction struct {
	ObjectClass string
	Instruction string
	Reason      string
}

func (e *ErrMalformedInstruction) Error() string {
	return fmt.Sprintf("rule %s: malformed instruction %q: %s",
		e.ObjectClass, e.Instruction, e.Reason)
}

// ErrBadLookupRow indicates a lookup-table row that cannot be interpreted
// (wrong column count, unparsable priority, unknown table set).
type ErrBadLookupRow struct {
	Line   int
	Reason string
}

func (e *ErrBadLookupRow) Error() string {
	return fmt.Sprintf("lookup table line %d: %s", e.Line, e.Reason)
}
