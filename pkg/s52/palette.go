package s52

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	hsluv "github.com/hsluv/hsluv-go"
	"gopkg.in/yaml.v2"
)

// palettesYAML holds the built-in S-52 color tables. The day table is
// authoritative; dusk and night are derived from it by dimming, with explicit
// overrides for tokens where dimming gives the wrong result (black ink must
// turn light on a dark background, not darker still).
//
//go:embed palettes.yaml
var palettesYAML []byte

// Palette maps S-52 five-letter color tokens to hex colors for one display
// mode.
//
// Tokens follow the Presentation Library naming: CHBLK is chart black, LANDA
// is land area fill, DEPVS is very shallow water, and so on. A palette is
// immutable once loaded.
type Palette struct {
	mode   Mode
	colors map[string]string
}

// Mode returns the display mode this palette serves.
func (p *Palette) Mode() Mode {
	return p.mode
}

// Color returns the hex color ("#RRGGBB") for a token. The second return is
// false when the token is not in the palette.
func (p *Palette) Color(token string) (string, bool) {
	c, ok := p.colors[token]
	return c, ok
}

// Tokens returns all color tokens in the palette, sorted alphabetically.
func (p *Palette) Tokens() []string {
	tokens := make([]string, 0, len(p.colors))
	for t := range p.colors {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Len returns the number of tokens in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// paletteFile is the YAML schema of the embedded color tables.
type paletteFile struct {
	Day       map[string]string            `yaml:"day"`
	Derive    map[string]paletteDerive     `yaml:"derive"`
	Overrides map[string]map[string]string `yaml:"overrides"`
}

// paletteDerive describes how a mode's table is derived from the day table.
type paletteDerive struct {
	// Lightness scales the HSLuv lightness of every day color, 0 to 1.
	Lightness float64 `yaml:"lightness"`
}

// loadPalettes parses the embedded color tables and builds one palette per
// display mode.
func loadPalettes() (map[Mode]*Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(palettesYAML, &file); err != nil {
		return nil, &ErrAssetLoad{Asset: "color palettes", Err: err}
	}
	if len(file.Day) == 0 {
		return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("day table is empty")}
	}

	day := make(map[string]string, len(file.Day))
	for token, hex := range file.Day {
		normalized, err := normalizeHex(hex)
		if err != nil {
			return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("day %s: %w", token, err)}
		}
		day[token] = normalized
	}

	palettes := map[Mode]*Palette{
		ModeDay: {mode: ModeDay, colors: day},
	}

	for _, mode := range []Mode{ModeDusk, ModeNight} {
		key := mode.pathSegment()
		derive, ok := file.Derive[key]
		if !ok {
			return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("no derivation for %s table", key)}
		}
		if derive.Lightness <= 0 || derive.Lightness > 1 {
			return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("%s lightness %v out of range (0, 1]", key, derive.Lightness)}
		}

		colors := make(map[string]string, len(day))
		for token, hex := range day {
			dimmed, err := dimColor(hex, derive.Lightness)
			if err != nil {
				return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("%s %s: %w", key, token, err)}
			}
			colors[token] = dimmed
		}
		for token, hex := range file.Overrides[key] {
			if _, known := day[token]; !known {
				return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("%s override %s has no day entry", key, token)}
			}
			normalized, err := normalizeHex(hex)
			if err != nil {
				return nil, &ErrAssetLoad{Asset: "color palettes", Err: fmt.Errorf("%s override %s: %w", key, token, err)}
			}
			colors[token] = normalized
		}

		palettes[mode] = &Palette{mode: mode, colors: colors}
	}

	return palettes, nil
}

// dimColor scales a color's perceptual lightness. HSLuv keeps hue and
// saturation stable under lightness changes, so a dimmed palette stays
// recognizably the same set of colors.
func dimColor(hex string, factor float64) (string, error) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return "", err
	}
	h, s, l := hsluv.HsluvFromRGB(r, g, b)
	return strings.ToUpper(hsluv.HsluvToHex(h, s, l*factor)), nil
}

// parseHexColor parses "#RRGGBB" into RGB components in [0, 1].
func parseHexColor(hex string) (r, g, b float64, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q", hex)
	}
	var ri, gi, bi int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q", hex)
	}
	return float64(ri) / 255, float64(gi) / 255, float64(bi) / 255, nil
}

// normalizeHex validates a "#RRGGBB" color and returns it uppercased.
func normalizeHex(hex string) (string, error) {
	if _, _, _, err := parseHexColor(hex); err != nil {
		return "", err
	}
	return strings.ToUpper(hex), nil
}
