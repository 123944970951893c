package s52

import "strings"

// Mode selects the S-52 color table used for a style build.
//
// S-52 defines three display modes so a chart remains readable from bright
// sunlight down to a darkened bridge at night. Switching modes changes paint
// colors and the sprite sheet; layer structure, filters, and ordering are
// identical across modes.
//
// Reference: S-52 Section 4 (Colours), Presentation Library Part I 13.1
type Mode int

const (
	// ModeDay is the standard daylight color table.
	ModeDay Mode = iota

	// ModeDusk dims colors for twilight viewing.
	ModeDusk

	// ModeNight uses a dark background with low-intensity colors to
	// preserve the operator's night vision.
	ModeNight
)

// String returns the S-52 color table name: "DAY", "DUSK", or "NIGHT".
func (m Mode) String() string {
	switch m {
	case ModeDay:
		return "DAY"
	case ModeDusk:
		return "DUSK"
	case ModeNight:
		return "NIGHT"
	default:
		return "UNKNOWN"
	}
}

// pathSegment returns the lowercase form used in sprite paths and palette keys.
func (m Mode) pathSegment() string {
	return strings.ToLower(m.String())
}

// valid reports whether the mode is one of the three standard color tables.
func (m Mode) valid() bool {
	switch m {
	case ModeDay, ModeDusk, ModeNight:
		return true
	}
	return false
}

// ParseMode converts a mode name to a Mode. Matching is case-insensitive,
// so "day", "Day", and "DAY" all parse to ModeDay.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DAY":
		return ModeDay, nil
	case "DUSK":
		return ModeDusk, nil
	case "NIGHT":
		return ModeNight, nil
	default:
		return ModeDay, &ErrUnknownMode{Name: s}
	}
}

// Modes returns the three standard display modes in day, dusk, night order.
func Modes() []Mode {
	return []Mode{ModeDay, ModeDusk, ModeNight}
}
