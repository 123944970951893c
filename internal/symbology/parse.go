package symbology

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseInstructions parses a lookup-table instruction string into its
// instruction calls.
//
// The wire format is a semicolon-separated sequence of NAME(arg,...) calls:
//
//	AC(DEPVS);LS(SOLD,1,CHBLK)
//	SY(BOYLAT12);TX(OBJNAM,1,2,3,'15110',1,0,CHBLK)
//	CS(DEPARE02)
//
// Arguments are numeric literals, quoted string literals, or bare tokens.
// A bare token of exactly six characters matching the S-57 attribute
// acronym shape (uppercase letter followed by five uppercase letters,
// digits, or underscores) is a deferred attribute lookup; every other bare
// token is a string literal (symbol names are eight characters, color and
// line-style tokens four or five, so the shapes never collide).
//
// Parsing happens once, when the lookup table loads. Unknown instruction
// mnemonics and unknown CS procedure names are rejected here so that a
// defective rule table can never reach per-feature evaluation.
//
// objectClass is used only for error reporting.
func ParseInstructions(objectClass, text string) ([]Instruction, error) {
	var out []Instruction
	s := newInstScanner(text)

	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		name := s.readName()
		if name == "" {
			return nil, &ErrMalformedInstruction{
				ObjectClass: objectClass,
				Instruction: text,
				Reason:      fmt.Sprintf("expected instruction name at offset %d", s.pos),
			}
		}
		kind, ok := instructionKinds[name]
		if !ok {
			return nil, &ErrUnknownInstruction{
				Name:        name,
				ObjectClass: objectClass,
				Instruction: text,
			}
		}
		args, err := s.readArgs()
		if err != nil {
			return nil, &ErrMalformedInstruction{
				ObjectClass: objectClass,
				Instruction: text,
				Reason:      err.Error(),
			}
		}

		inst := Instruction{Kind: kind, Args: args}
		if kind == InstConditional {
			// CS takes exactly one literal naming the procedure.
			if len(args) != 1 || args[0].Kind != ArgLiteral || args[0].Number {
				return nil, &ErrMalformedInstruction{
					ObjectClass: objectClass,
					Instruction: text,
					Reason:      "CS requires exactly one procedure name",
				}
			}
			proc, ok := procedureNames[args[0].Str]
			if !ok {
				return nil, &ErrUnknownProcedure{
					Name:        args[0].Str,
					ObjectClass: objectClass,
				}
			}
			inst.Proc = proc
		}
		out = append(out, inst)

		s.skipSpace()
		if s.eof() {
			break
		}
		if !s.consume(';') {
			return nil, &ErrMalformedInstruction{
				ObjectClass: objectClass,
				Instruction: text,
				Reason:      fmt.Sprintf("expected ';' at offset %d", s.pos),
			}
		}
	}
	return out, nil
}

// isAttrCode reports whether a bare token has the S-57 attribute acronym
// shape: exactly six characters, uppercase letter first.
// Reference: S-57 Appendix A, Chapter 2 (attribute acronyms)
func isAttrCode(tok string) bool {
	if len(tok) != 6 {
		return false
	}
	if tok[0] < 'A' || tok[0] > 'Z' {
		return false
	}
	for i := 1; i < len(tok); i++ {
		c := tok[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

// instScanner walks an instruction string. It is a throwaway value used for
// a single ParseInstructions call.
type instScanner struct {
	input string
	pos   int
}

func newInstScanner(input string) *instScanner {
	return &instScanner{input: input}
}

func (s *instScanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *instScanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

func (s *instScanner) consume(c byte) bool {
	if !s.eof() && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *instScanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(rune(s.input[s.pos])) {
		s.pos++
	}
}

// readName reads an instruction mnemonic (letters only).
func (s *instScanner) readName() string {
	start := s.pos
	for !s.eof() {
		c := s.input[s.pos]
		if c < 'A' || c > 'Z' {
			break
		}
		s.pos++
	}
	return s.input[start:s.pos]
}

// readArgs reads the parenthesized argument list following a name.
func (s *instScanner) readArgs() ([]Arg, error) {
	s.skipSpace()
	if !s.consume('(') {
		return nil, fmt.Errorf("expected '(' at offset %d", s.pos)
	}
	var args []Arg
	s.skipSpace()
	if s.consume(')') {
		return args, nil
	}
	for {
		s.skipSpace()
		arg, err := s.readArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		s.skipSpace()
		if s.consume(',') {
			continue
		}
		if s.consume(')') {
			return args, nil
		}
		return nil, fmt.Errorf("expected ',' or ')' at offset %d", s.pos)
	}
}

// readArg reads one argument: quoted string, number, or bare token.
func (s *instScanner) readArg() (Arg, error) {
	c := s.peek()
	switch {
	case c == '\'' || c == '"':
		return s.readQuoted(c)
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return s.readNumber()
	default:
		return s.readToken()
	}
}

func (s *instScanner) readQuoted(quote byte) (Arg, error) {
	s.pos++ // opening quote
	start := s.pos
	for !s.eof() && s.input[s.pos] != quote {
		s.pos++
	}
	if s.eof() {
		return Arg{}, fmt.Errorf("unterminated string starting at offset %d", start-1)
	}
	val := s.input[start:s.pos]
	s.pos++ // closing quote
	return LiteralArg(val), nil
}

func (s *instScanner) readNumber() (Arg, error) {
	start := s.pos
	if c := s.peek(); c == '-' || c == '+' {
		s.pos++
	}
	for !s.eof() {
		c := s.input[s.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		s.pos++
	}
	text := s.input[start:s.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Arg{}, fmt.Errorf("bad number %q at offset %d", text, start)
	}
	return NumberArg(n), nil
}

func (s *instScanner) readToken() (Arg, error) {
	start := s.pos
	for !s.eof() {
		c := s.input[s.pos]
		if c == ',' || c == ')' || c == ';' || unicode.IsSpace(rune(c)) {
			break
		}
		s.pos++
	}
	tok := strings.TrimSpace(s.input[start:s.pos])
	if tok == "" {
		return Arg{}, fmt.Errorf("empty argument at offset %d", start)
	}
	if isAttrCode(tok) {
		return AttrArg(tok), nil
	}
	return LiteralArg(tok), nil
}
