package symbology

import "strconv"

// evalProcedure runs one conditional symbology procedure against a feature
// and returns the concrete instructions to draw it with. Procedures are pure:
// the same feature, configuration and procedure always produce the same
// instructions, and every returned argument is a literal. An empty result
// means the feature draws nothing for this rule, which is valid (a topmark
// record without a shape, for example).
//
// Unknown procedures cannot reach this switch: CS calls are resolved against
// the closed procedure set when the lookup table loads.
func evalProcedure(proc Procedure, ref AttributeRef, cfg Config) []Instruction {
	switch proc {
	case ProcDepare02:
		return depare02(ref, cfg)
	case ProcDepcnt03:
		return depcnt03(ref, cfg)
	case ProcSoundg03:
		return soundg03(ref, cfg)
	case ProcLights06:
		return lights06(ref)
	case ProcTopmar01:
		return topmar01(ref)
	case ProcWrecks02:
		return wrecks02(ref, cfg)
	default:
		return nil
	}
}

// depare02 selects the depth-area fill shade.
//
// DRVAL1, the shallow limit of the area's depth range, is banded against the
// shallow, safety and deep contour settings. An absent or malformed DRVAL1
// is treated as drying so questionable areas render with the most cautious
// shade. Dredged areas additionally carry the dredged-area pattern and a
// dashed limit.
//
// Reference: S-52 PresLib Part I, 10, DEPARE02
func depare02(ref AttributeRef, cfg Config) []Instruction {
	drval1, ok := ref.Float("DRVAL1")
	if !ok {
		drval1 = -1
	}
	var fill string
	switch areaBandFor(drval1, cfg) {
	case areaIntertidal:
		fill = "DEPIT"
	case areaVeryShallow:
		fill = "DEPVS"
	case areaMidShallow:
		fill = "DEPMS"
	case areaMidDeep:
		fill = "DEPMD"
	default:
		fill = "DEPDW"
	}
	out := []Instruction{acInst(fill)}
	if ref.ObjectClass() == "DRGARE" {
		out = append(out, apInst("DRGARE01"), lsInst("DASH", 1, "CHGRF"))
	}
	return out
}

// depcnt03 symbolizes a depth contour. The contour whose value equals the
// safety depth is promoted to the emphasized safety contour; contours with a
// low-accuracy position (QUAPOS 2..9) draw dashed.
//
// Reference: S-52 PresLib Part I, 10, DEPCNT03
func depcnt03(ref AttributeRef, cfg Config) []Instruction {
	valdco, _ := ref.Float("VALDCO") // absent means the zero-meter contour
	style := "SOLD"
	if q, ok := ref.Int("QUAPOS"); ok && q > 1 && q < 10 {
		style = "DASH"
	}
	if valdco == cfg.Safety {
		return []Instruction{lsInst(style, 2, "DEPSC")}
	}
	return []Instruction{lsInst(style, 1, "DEPCN")}
}

// soundg03 symbolizes a spot sounding as a depth numeral. The numeral color
// tracks the depth band so shallow soundings stand out: black in shallow
// water, dark grey between the safety and deep contours, light grey beyond.
// Soundings without a usable depth draw nothing.
func soundg03(ref AttributeRef, cfg Config) []Instruction {
	d, ok := ref.Depth()
	if !ok {
		return nil
	}
	var color string
	switch bandFor(d, cfg) {
	case BandShallow:
		color = "CHBLK"
	case BandMid:
		color = "CHGRD"
	default:
		color = "CHGRF"
	}
	return []Instruction{txInst(strconv.FormatFloat(d, 'f', -1, 64), color)}
}

// lights06 symbolizes a light. Sector lights, recognized by the presence of
// both sector limits, draw dashed sector legs. All-round lights draw a flare
// whose color follows the light's COLOUR list and whose rotation follows
// ORIENT, falling back to the conventional 135 degree flare angle.
//
// Reference: S-52 PresLib Part I, 10, LIGHTS06
func lights06(ref AttributeRef) []Instruction {
	if ref.Has("SECTR1") && ref.Has("SECTR2") {
		return []Instruction{lsInst("DASH", 1, "CHBLK")}
	}
	flare := "LITDEF11"
	if colors, ok := ref.IntList("COLOUR"); ok {
		flare = flareSymbol(colors)
	}
	rot := 135.0
	if o, ok := ref.Float("ORIENT"); ok {
		rot = o
	}
	return []Instruction{syRotInst(flare, rot)}
}

// flareSymbol picks the light flare for a COLOUR list: 3 red, 4 green, and
// the white/yellow/orange group (1, 6, 11) share the white flare. Colored
// flares take precedence over white for multi-colored lights; lights showing
// none of these draw the default flare.
func flareSymbol(colors []int) string {
	has := func(want int) bool {
		for _, c := range colors {
			if c == want {
				return true
			}
		}
		return false
	}
	switch {
	case has(3):
		return "LIGHTS11"
	case has(4):
		return "LIGHTS12"
	case has(1), has(6), has(11):
		return "LIGHTS13"
	default:
		return "LITDEF11"
	}
}

// topmarkSymbols maps TOPSHP (topmark/daymark shape) values to the rigid
// topmark symbols. Shapes not listed here draw the question mark.
var topmarkSymbols = map[int]string{
	1:  "TOPMAR02", // cone, point up
	2:  "TOPMAR04", // cone, point down
	3:  "TOPMAR10", // sphere
	4:  "TOPMAR12", // 2 spheres
	5:  "TOPMAR13", // cylinder
	6:  "TOPMAR14", // board
	7:  "TOPMAR65", // x-shape
	8:  "TOPMAR17", // upright cross
	9:  "TOPMAR16", // cube, point up
	10: "TOPMAR08", // 2 cones point to point
	11: "TOPMAR07", // 2 cones base to base
	13: "TOPMAR05", // 2 cones, points up
	14: "TOPMAR06", // 2 cones, points down
	18: "TOPMAR10", // cylinder over sphere
	20: "TOPMAR13", // cylinder over cone
}

// topmar01 symbolizes a topmark from its TOPSHP shape. A topmark record
// without a shape draws nothing.
func topmar01(ref AttributeRef) []Instruction {
	shape, ok := ref.Int("TOPSHP")
	if !ok {
		return nil
	}
	sym, ok := topmarkSymbols[shape]
	if !ok {
		sym = "QUESMRK1"
	}
	return []Instruction{syInst(sym)}
}

// wrecks02 symbolizes a wreck. A wreck whose sounding is not deeper than the
// safety depth is an isolated danger; a deeper sounding makes it safe to pass
// over. Without a sounding the wreck category decides: CATWRK 1 is
// non-dangerous, anything else draws as dangerous.
//
// Reference: S-52 PresLib Part I, 10, WRECKS02
func wrecks02(ref AttributeRef, cfg Config) []Instruction {
	if valsou, ok := ref.Float("VALSOU"); ok {
		if valsou <= cfg.Safety {
			return []Instruction{syInst("ISODGR01")}
		}
		return []Instruction{syInst("WRECKS04")}
	}
	if cat, ok := ref.Int("CATWRK"); ok && cat == 1 {
		return []Instruction{syInst("WRECKS04")}
	}
	return []Instruction{syInst("WRECKS05")}
}

// Instruction constructors used by procedure results.

func syInst(name string) Instruction {
	return Instruction{Kind: InstSymbol, Args: []Arg{LiteralArg(name)}}
}

func syRotInst(name string, deg float64) Instruction {
	return Instruction{Kind: InstSymbol, Args: []Arg{LiteralArg(name), NumberArg(deg)}}
}

func lsInst(style string, width float64, color string) Instruction {
	return Instruction{Kind: InstLineSimple, Args: []Arg{LiteralArg(style), NumberArg(width), LiteralArg(color)}}
}

func acInst(color string) Instruction {
	return Instruction{Kind: InstAreaColor, Args: []Arg{LiteralArg(color)}}
}

func apInst(name string) Instruction {
	return Instruction{Kind: InstAreaPattern, Args: []Arg{LiteralArg(name)}}
}

// txInst builds a centered, offset-free TX call in the full positional form
// (content, HJUST, VJUST, SPACE, CHARS, XOFFS, YOFFS, COLOUR).
func txInst(text, color string) Instruction {
	return Instruction{Kind: InstText, Args: []Arg{
		LiteralArg(text),
		NumberArg(1), NumberArg(2), NumberArg(3),
		LiteralArg("15110"),
		NumberArg(0), NumberArg(0),
		LiteralArg(color),
	}}
}
