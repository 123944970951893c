package symbology

import (
	"fmt"
	"math"
)

// renderEnv is the read-only context shared by the primitive interpreters
// during one compile: the active mode's palette, the symbol registry, the
// diagnostic list, and whether attribute lookups compile to data expressions
// (table-driven build) or resolve against the feature at hand.
type renderEnv struct {
	palette  Palette
	registry Registry
	diag     *DiagnosticList
	deferred bool
}

// lineWidths maps the S-52 width category to pixels. Category 1 is the
// standard 0.32 mm pen at nominal screen resolution.
var lineWidths = map[int]float64{
	1: 1.2,
	2: 2.4,
	3: 3.6,
}

func widthPixels(category float64) float64 {
	c := int(category)
	if w, ok := lineWidths[c]; ok {
		return w
	}
	if c < 1 {
		return lineWidths[1]
	}
	return float64(c) * 1.2
}

// dashPatterns maps line style tokens to dash arrays in multiples of the
// line width. SOLD has no entry: solid is the renderer default.
var dashPatterns = map[string][]float64{
	"DASH": {4, 2},
	"DOTT": {1, 2},
}

// color resolves a color token through the active palette. An unknown token
// records a diagnostic and falls back to magenta, the conventional marker
// for missing chart colors, so the defect is visible on screen too.
func (env renderEnv) color(token string) string {
	if c, ok := env.palette.Color(token); ok {
		return c
	}
	env.diag.add(Diagnostic{
		Kind:    DiagMissingColorToken,
		Subject: token,
		Message: fmt.Sprintf("color token %s has no palette entry, using magenta", token),
	})
	return "#FF00FF"
}

// evalInstruction interprets one parsed instruction, returning zero or more
// fragments. Every interpreter is a pure function of the instruction, the
// attribute reference and the environment; re-running one yields an
// identical result.
//
// Conditional instructions dispatch through the procedure evaluator and
// re-feed the resolved calls back through this same interpreter set.
// Procedures only ever return drawing instructions, so the recursion is at
// most one level deep.
func evalInstruction(in Instruction, ref AttributeRef, cfg Config, env renderEnv) []Fragment {
	switch in.Kind {
	case InstSymbol:
		return symbolFragments(in, ref, env)
	case InstLineSimple:
		return lineFragments(in, env)
	case InstLineComplex:
		return lineComplexFragments(in, env)
	case InstAreaColor:
		return areaColorFragments(in, env)
	case InstAreaPattern:
		return areaPatternFragments(in, env)
	case InstText:
		return textFragments(in, ref, env)
	case InstConditional:
		var out []Fragment
		for _, resolved := range evalProcedure(in.Proc, ref, cfg) {
			out = append(out, evalInstruction(resolved, ref, cfg, env)...)
		}
		return out
	default:
		return nil
	}
}

// symbolFragments interprets SY(SYMBOL[,ROTATION]).
//
// The symbol name must resolve through the registry; a missing entry records
// a diagnostic and contributes nothing, leaving the rest of the compile
// untouched. The rotation layout property is omitted when the resolved
// rotation is exactly zero. A rotation taken from a feature attribute is
// aligned to the map (the attribute carries a true bearing); literal
// rotations stay screen-aligned.
func symbolFragments(in Instruction, ref AttributeRef, env renderEnv) []Fragment {
	if len(in.Args) == 0 {
		return nil
	}
	name, ok := resolveName(in.Args[0], ref)
	if !ok {
		return nil
	}
	sym, ok := env.registry.Symbol(name)
	if !ok {
		env.diag.add(Diagnostic{
			Kind:    DiagMissingSymbol,
			Subject: name,
			Message: fmt.Sprintf("symbol %s has no registry entry, omitting", name),
		})
		return nil
	}

	layout := map[string]interface{}{
		"icon-image":         name,
		"icon-allow-overlap": true,
	}
	if sym.Offset != [2]float64{} {
		layout["icon-offset"] = []float64{sym.Offset[0], sym.Offset[1]}
	}
	if rot, fromAttr, ok := resolveRotation(in.Args, ref, env); ok {
		layout["icon-rotate"] = rot
		if fromAttr {
			layout["icon-rotation-alignment"] = "map"
		}
	}
	return []Fragment{{Type: "symbol", Layout: layout}}
}

// lineFragments interprets LS(PSTYLE,WIDTH,COLOUR).
func lineFragments(in Instruction, env renderEnv) []Fragment {
	if len(in.Args) < 3 {
		return nil
	}
	style := in.Args[0].Str
	width := widthPixels(in.Args[1].Num)
	paint := map[string]interface{}{
		"line-color": env.color(in.Args[2].Str),
		"line-width": width,
	}
	layout := map[string]interface{}{
		"line-join": "round",
		"line-cap":  "round",
	}
	if dash, ok := dashPatterns[style]; ok {
		paint["line-dasharray"] = dash
		layout["line-cap"] = "butt"
	}
	return []Fragment{{Type: "line", Layout: layout, Paint: paint}}
}

// lineComplexFragments interprets LC(LINNAM): a line symbolized by tiling a
// pattern image along it. The pattern's bounding-box height sets the line
// width so the art renders at its drawn size.
func lineComplexFragments(in Instruction, env renderEnv) []Fragment {
	if len(in.Args) == 0 {
		return nil
	}
	name := in.Args[0].Str
	sym, ok := env.registry.Symbol(name)
	if !ok {
		env.diag.add(Diagnostic{
			Kind:    DiagMissingPattern,
			Subject: name,
			Message: fmt.Sprintf("linestyle %s has no registry entry, omitting", name),
		})
		return nil
	}
	width := sym.BBox[3] - sym.BBox[1]
	if width <= 0 {
		width = lineWidths[1]
	}
	paint := map[string]interface{}{
		"line-pattern": name,
		"line-width":   width,
	}
	return []Fragment{{Type: "line", Paint: paint}}
}

// areaColorFragments interprets AC(COLOUR[,TRANSPARENCY]). Transparency is
// the S-52 quarter scale: 0 opaque through 3 (75% transparent); the opacity
// property is omitted for opaque fills.
func areaColorFragments(in Instruction, env renderEnv) []Fragment {
	if len(in.Args) == 0 {
		return nil
	}
	paint := map[string]interface{}{
		"fill-color": env.color(in.Args[0].Str),
	}
	if op, ok := fillOpacity(in.Args); ok {
		paint["fill-opacity"] = op
	}
	return []Fragment{{Type: "fill", Paint: paint}}
}

// areaPatternFragments interprets AP(PATNAM[,TRANSPARENCY]).
func areaPatternFragments(in Instruction, env renderEnv) []Fragment {
	if len(in.Args) == 0 {
		return nil
	}
	name := in.Args[0].Str
	if _, ok := env.registry.Symbol(name); !ok {
		env.diag.add(Diagnostic{
			Kind:    DiagMissingPattern,
			Subject: name,
			Message: fmt.Sprintf("pattern %s has no registry entry, omitting", name),
		})
		return nil
	}
	paint := map[string]interface{}{
		"fill-pattern": name,
	}
	if op, ok := fillOpacity(in.Args); ok {
		paint["fill-opacity"] = op
	}
	return []Fragment{{Type: "fill", Paint: paint}}
}

func fillOpacity(args []Arg) (float64, bool) {
	if len(args) < 2 || !args[1].Number {
		return 0, false
	}
	t := args[1].Num
	if t <= 0 {
		return 0, false
	}
	if t > 3 {
		t = 3
	}
	return 1 - 0.25*t, true
}

// textFragments interprets TX in its positional form
// (content, HJUST, VJUST, SPACE, CHARS, XOFFS, YOFFS, COLOUR, DISPLAY);
// everything after the content argument is optional. SPACE and DISPLAY are
// accepted and ignored. A content attribute that resolves to nothing draws
// no text.
func textFragments(in Instruction, ref AttributeRef, env renderEnv) []Fragment {
	if len(in.Args) == 0 {
		return nil
	}
	content, ok := resolveText(in.Args[0], ref, env)
	if !ok {
		return nil
	}

	layout := map[string]interface{}{
		"text-field": content,
		"text-font":  []string{"Noto Sans Regular"},
		"text-size":  textSize(in.Args),
	}
	if anchor := textAnchor(in.Args); anchor != "" {
		layout["text-anchor"] = anchor
	}
	if xoffs, yoffs := textOffset(in.Args); xoffs != 0 || yoffs != 0 {
		layout["text-offset"] = []float64{xoffs, yoffs}
	}

	colorToken := "CHBLK"
	if len(in.Args) > 7 && in.Args[7].Kind == ArgLiteral && !in.Args[7].Number {
		colorToken = in.Args[7].Str
	}
	paint := map[string]interface{}{
		"text-color":      env.color(colorToken),
		"text-halo-color": env.color("CHWHT"),
		"text-halo-width": 1.5,
	}
	return []Fragment{{Type: "symbol", Layout: layout, Paint: paint}}
}

// textSize derives the pixel size from the CHARS argument, whose last two
// digits are the point size (e.g. "15110" is a 10 pt medium upright face).
// Reference: S-52 PresLib Part I, 7.1.1 (CHARS encoding)
func textSize(args []Arg) float64 {
	size := 10.0
	if len(args) > 4 {
		if s := args[4].Str; len(s) >= 2 {
			var pts int
			if _, err := fmt.Sscanf(s[len(s)-2:], "%d", &pts); err == nil && pts > 0 {
				size = float64(pts)
			}
		}
	}
	return math.Round(size * 96.0 / 72.0)
}

// textAnchor maps the HJUST/VJUST pair to a renderer anchor. The anchor
// names which part of the text sits at the feature point, so S-52 "right
// justified" pins the text's right edge, i.e. anchor right.
func textAnchor(args []Arg) string {
	h, v := 1.0, 2.0
	if len(args) > 1 && args[1].Number {
		h = args[1].Num
	}
	if len(args) > 2 && args[2].Number {
		v = args[2].Num
	}
	var hs, vs string
	switch h {
	case 2:
		hs = "right"
	case 3:
		hs = "left"
	}
	switch v {
	case 1:
		vs = "bottom"
	case 3:
		vs = "top"
	}
	switch {
	case hs == "" && vs == "":
		return "center"
	case hs == "":
		return vs
	case vs == "":
		return hs
	default:
		return vs + "-" + hs
	}
}

func textOffset(args []Arg) (x, y float64) {
	if len(args) > 5 && args[5].Number {
		x = args[5].Num
	}
	if len(args) > 6 && args[6].Number {
		y = args[6].Num
	}
	return x, y
}

// resolveName resolves a symbol or pattern name argument to a concrete
// string. Names are almost always literals; an attribute-driven name is
// resolved against the reference and yields nothing when absent.
func resolveName(a Arg, ref AttributeRef) (string, bool) {
	if a.Kind == ArgAttrLookup {
		return ref.String(a.Attr)
	}
	return a.Str, true
}

// resolveText resolves a TX content argument. Literals pass through. An
// attribute lookup compiles to a get-expression on table-driven builds and
// resolves against the feature otherwise; a missing or empty value reports
// not-ok so the caller draws nothing.
func resolveText(a Arg, ref AttributeRef, env renderEnv) (interface{}, bool) {
	if a.Kind != ArgAttrLookup {
		return a.Str, true
	}
	if env.deferred {
		return []interface{}{"get", a.Attr}, true
	}
	s, ok := ref.String(a.Attr)
	if !ok || s == "" {
		return nil, false
	}
	return s, true
}

// resolveRotation resolves the optional rotation argument of a symbol call.
// ok is false when the property should be omitted: no argument, or a
// rotation that resolved to exactly zero. fromAttr reports that the value
// came from a feature attribute (a true bearing rather than a screen angle).
func resolveRotation(args []Arg, ref AttributeRef, env renderEnv) (val interface{}, fromAttr, ok bool) {
	if len(args) < 2 {
		return nil, false, false
	}
	a := args[1]
	if a.Kind == ArgAttrLookup {
		if env.deferred {
			return []interface{}{"get", a.Attr}, true, true
		}
		deg, present := ref.Float(a.Attr)
		if !present || deg == 0 {
			return nil, false, false
		}
		return deg, true, true
	}
	if !a.Number || a.Num == 0 {
		return nil, false, false
	}
	return a.Num, false, true
}
