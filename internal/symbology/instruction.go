package symbology

import (
	"strconv"
	"strings"
)

// InstructionKind identifies one of the seven S-52 symbology instruction
// types. The set is closed: an instruction string naming anything else is
// rejected when the lookup table is loaded, not at evaluation time.
//
// Reference: S-52 PresLib Part I, 7 (symbology instructions)
type InstructionKind int

const (
	// InstSymbol - SY(SYMBOL[,ROTATION]): show a point symbol.
	InstSymbol InstructionKind = iota
	// InstLineSimple - LS(PSTYLE,WIDTH,COLOUR): show a simple line.
	InstLineSimple
	// InstLineComplex - LC(LINNAM): show a complex (symbolized) line.
	InstLineComplex
	// InstAreaColor - AC(COLOUR[,TRANSPARENCY]): fill an area with a color.
	InstAreaColor
	// InstAreaPattern - AP(PATNAM): fill an area with a tiled pattern.
	InstAreaPattern
	// InstText - TX(STRING|ATTRIB[,HJUST,VJUST,SPACE,CHARS,XOFFS,YOFFS,COLOUR,DISPLAY]): show text.
	InstText
	// InstConditional - CS(PROCNAME): run a conditional symbology procedure
	// and symbolize with the instructions it returns.
	InstConditional
)

// String returns the two-letter S-52 instruction mnemonic.
func (k InstructionKind) String() string {
	switch k {
	case InstSymbol:
		return "SY"
	case InstLineSimple:
		return "LS"
	case InstLineComplex:
		return "LC"
	case InstAreaColor:
		return "AC"
	case InstAreaPattern:
		return "AP"
	case InstText:
		return "TX"
	case InstConditional:
		return "CS"
	default:
		return "??"
	}
}

// instructionKinds maps wire mnemonics to kinds. Used only at parse time;
// evaluation dispatches on the enum.
var instructionKinds = map[string]InstructionKind{
	"SY": InstSymbol,
	"LS": InstLineSimple,
	"LC": InstLineComplex,
	"AC": InstAreaColor,
	"AP": InstAreaPattern,
	"TX": InstText,
	"CS": InstConditional,
}

// Procedure identifies a conditional symbology procedure. Like instruction
// kinds, the set is closed and checked at table load: a CS call naming an
// unlisted procedure is a static data defect and fails the load.
//
// Reference: S-52 PresLib Part I, 10 (conditional symbology procedures)
type Procedure int

const (
	// ProcDepare02 symbolizes depth areas: fill band chosen from DRVAL1
	// against the shallow/safety/deep contour settings.
	ProcDepare02 Procedure = iota
	// ProcDepcnt03 symbolizes depth contours: the contour matching the
	// safety depth is emphasized as the safety contour.
	ProcDepcnt03
	// ProcSoundg03 symbolizes spot soundings: numeral color chosen from the
	// depth band.
	ProcSoundg03
	// ProcLights06 symbolizes lights: flare color from COLOUR, rotation from
	// ORIENT; a sector light (SECTR1/SECTR2 present) draws dashed sector
	// legs instead of a flare.
	ProcLights06
	// ProcTopmar01 symbolizes topmarks: symbol chosen from TOPSHP.
	ProcTopmar01
	// ProcWrecks02 symbolizes wrecks: a wreck shallower than the safety
	// depth renders as an isolated danger.
	ProcWrecks02
)

// String returns the PresLib procedure name.
func (p Procedure) String() string {
	switch p {
	case ProcDepare02:
		return "DEPARE02"
	case ProcDepcnt03:
		return "DEPCNT03"
	case ProcSoundg03:
		return "SOUNDG03"
	case ProcLights06:
		return "LIGHTS06"
	case ProcTopmar01:
		return "TOPMAR01"
	case ProcWrecks02:
		return "WRECKS02"
	default:
		return "UNKNOWN"
	}
}

var procedureNames = map[string]Procedure{
	"DEPARE02": ProcDepare02,
	"DEPCNT03": ProcDepcnt03,
	"SOUNDG03": ProcSoundg03,
	"LIGHTS06": ProcLights06,
	"TOPMAR01": ProcTopmar01,
	"WRECKS02": ProcWrecks02,
}

// ArgKind discriminates instruction argument variants.
type ArgKind int

const (
	// ArgLiteral is a numeric or string constant from the instruction text.
	ArgLiteral ArgKind = iota
	// ArgAttrLookup is a deferred attribute lookup: the six-character
	// attribute code is resolved against the feature at evaluation time,
	// never at parse time.
	ArgAttrLookup
)

// Arg is one instruction argument: either a literal or a deferred attribute
// lookup. The two variants are explicit so the "parse once, evaluate per
// feature" split is visible in the type system rather than encoded in a
// loosely-typed value.
type Arg struct {
	Kind ArgKind

	// Literal value, valid when Kind == ArgLiteral. Number reports whether
	// the literal was numeric on the wire.
	Str    string
	Num    float64
	Number bool

	// Attribute code, valid when Kind == ArgAttrLookup.
	Attr string
}

// LiteralArg returns a string literal argument.
func LiteralArg(s string) Arg {
	return Arg{Kind: ArgLiteral, Str: s}
}

// NumberArg returns a numeric literal argument.
func NumberArg(n float64) Arg {
	return Arg{Kind: ArgLiteral, Num: n, Number: true, Str: strconv.FormatFloat(n, 'f', -1, 64)}
}

// AttrArg returns a deferred attribute lookup argument.
func AttrArg(code string) Arg {
	return Arg{Kind: ArgAttrLookup, Attr: code}
}

// Instruction is one parsed symbology instruction call. Instruction values
// are created once when the lookup table loads and are re-evaluated for
// every feature; they are never mutated after construction.
type Instruction struct {
	Kind InstructionKind
	Args []Arg

	// Proc is set when Kind == InstConditional.
	Proc Procedure
}

// String reassembles the instruction in wire form, for error messages and
// debug dumps.
func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Kind.String())
	b.WriteByte('(')
	if in.Kind == InstConditional {
		b.WriteString(in.Proc.String())
	} else {
		for i, a := range in.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			switch a.Kind {
			case ArgAttrLookup:
				b.WriteString(a.Attr)
			default:
				b.WriteString(a.Str)
			}
		}
	}
	b.WriteByte(')')
	return b.String()
}
