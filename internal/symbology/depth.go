package symbology

// Config carries the chart display settings a compile runs under: the
// active color mode and the mariner's depth thresholds.
//
// The thresholds drive every depth-dependent conditional procedure. They
// must satisfy Shallow <= Safety <= Deep for the banding to be coherent;
// the public API validates this before a compile starts.
//
// Reference: S-52, 3.2.3 (mariner's safety contour and safety depth)
type Config struct {
	Mode    string  // palette mode name, lowercased ("day", "dusk", "night")
	Shallow float64 // shallow contour, meters
	Safety  float64 // safety contour / safety depth, meters
	Deep    float64 // deep contour, meters
}

// DepthBand classifies a depth value against the configured thresholds.
type DepthBand int

const (
	// BandShallow - shallower than the shallow contour.
	BandShallow DepthBand = iota
	// BandMid - between the shallow and deep contours.
	BandMid
	// BandDeep - at or beyond the deep contour.
	BandDeep
)

// String returns the band name.
func (b DepthBand) String() string {
	switch b {
	case BandShallow:
		return "shallow"
	case BandMid:
		return "mid"
	case BandDeep:
		return "deep"
	default:
		return "unknown"
	}
}

// bandFor assigns a depth value to its band.
//
// Boundary contract: a value exactly equal to a threshold belongs to the
// DEEPER of the two adjacent bands. With thresholds (3, 6, 9): 2.9 is
// shallow, 3.0 is mid, 8.9 is mid, 9.0 is deep. The deeper-band choice is
// the safe reading for navigation (a sounding equal to the shallow contour
// is not flagged as dangerously shallow) and is pinned by tests.
func bandFor(depth float64, cfg Config) DepthBand {
	switch {
	case depth < cfg.Shallow:
		return BandShallow
	case depth < cfg.Deep:
		return BandMid
	default:
		return BandDeep
	}
}

// areaBand classifies a depth-area minimum depth for the five-shade area
// fill. Depth areas distinguish the intertidal zone (drying heights) and
// split the water column at all three configured contours.
//
// Reference: S-52 PresLib Part I, 10 (DEPARE: depth shade selection)
type areaBand int

const (
	areaIntertidal areaBand = iota // DEPIT
	areaVeryShallow                // DEPVS
	areaMidShallow                 // DEPMS
	areaMidDeep                    // DEPMD
	areaDeep                       // DEPDW
)

// areaBandFor assigns a depth-area minimum depth (DRVAL1) to its fill band,
// using the same deeper-band boundary contract as bandFor.
func areaBandFor(drval1 float64, cfg Config) areaBand {
	switch {
	case drval1 < 0:
		return areaIntertidal
	case drval1 < cfg.Shallow:
		return areaVeryShallow
	case drval1 < cfg.Safety:
		return areaMidShallow
	case drval1 < cfg.Deep:
		return areaMidDeep
	default:
		return areaDeep
	}
}
