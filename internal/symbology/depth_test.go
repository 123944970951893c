package symbology

import "testing"

var testConfig = Config{Mode: "day", Shallow: 3.0, Safety: 6.0, Deep: 9.0}

func TestBandFor(t *testing.T) {
	tests := []struct {
		depth float64
		want  DepthBand
	}{
		{2.0, BandShallow},
		{5.0, BandMid},
		{9.5, BandDeep},
		{0.0, BandShallow},
		{-0.5, BandShallow}, // drying height
		{8.9, BandMid},
		{100.0, BandDeep},
	}
	for _, tt := range tests {
		if got := bandFor(tt.depth, testConfig); got != tt.want {
			t.Errorf("bandFor(%v) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

// A depth exactly equal to a threshold belongs to the deeper adjacent band.
func TestBandForBoundaries(t *testing.T) {
	if got := bandFor(3.0, testConfig); got != BandMid {
		t.Errorf("bandFor(3.0) = %v, want mid", got)
	}
	if got := bandFor(9.0, testConfig); got != BandDeep {
		t.Errorf("bandFor(9.0) = %v, want deep", got)
	}
	if got := bandFor(6.0, testConfig); got != BandMid {
		t.Errorf("bandFor(6.0) = %v, want mid", got)
	}
}

func TestAreaBandFor(t *testing.T) {
	tests := []struct {
		drval1 float64
		want   areaBand
	}{
		{-2.0, areaIntertidal},
		{0.0, areaVeryShallow},
		{2.9, areaVeryShallow},
		{3.0, areaMidShallow}, // threshold goes to the deeper shade
		{5.9, areaMidShallow},
		{6.0, areaMidDeep},
		{8.9, areaMidDeep},
		{9.0, areaDeep},
		{50.0, areaDeep},
	}
	for _, tt := range tests {
		if got := areaBandFor(tt.drval1, testConfig); got != tt.want {
			t.Errorf("areaBandFor(%v) = %v, want %v", tt.drval1, got, tt.want)
		}
	}
}
