package s52

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// FeatureSet holds chart features under an R-tree spatial index, so a style
// can be compiled for just the features visible in a viewport.
//
// Spatial queries are O(log N) with the R-tree, compared to O(N) with a
// linear scan. Query results come back in insertion order, which keeps
// region compiles deterministic.
//
// A FeatureSet is not safe for concurrent mutation; populate it first, then
// share it read-only across compiles.
//
// Example:
//
//	set := s52.NewFeatureSet()
//	for _, f := range chartFeatures {
//	    set.Add(f)
//	}
//	visible := set.InBounds(s52.Bounds{
//	    MinLon: -122.5, MaxLon: -122.0,
//	    MinLat: 37.5, MaxLat: 38.0,
//	})
type FeatureSet struct {
	features []Feature
	rtree    *rtreego.Rtree
}

// featureEntry ties an R-tree rectangle back to its insertion position.
type featureEntry struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e featureEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewFeatureSet creates an empty feature set.
func NewFeatureSet() *FeatureSet {
	return &FeatureSet{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// Add inserts features into the set.
func (s *FeatureSet) Add(features ...Feature) {
	for _, f := range features {
		s.features = append(s.features, f)
		s.rtree.Insert(featureEntry{
			index: len(s.features) - 1,
			rect:  boundsRect(f.Bounds),
		})
	}
}

// Len returns the number of features in the set.
func (s *FeatureSet) Len() int {
	return len(s.features)
}

// Features returns all features in insertion order.
func (s *FeatureSet) Features() []Feature {
	return s.features
}

// Bounds returns the union of all feature bounds. Returns the zero Bounds
// for an empty set.
func (s *FeatureSet) Bounds() Bounds {
	if len(s.features) == 0 {
		return Bounds{}
	}
	bounds := s.features[0].Bounds
	for _, f := range s.features[1:] {
		bounds = bounds.Union(f.Bounds)
	}
	return bounds
}

// InBounds returns the features whose bounds intersect the viewport, in
// insertion order.
func (s *FeatureSet) InBounds(viewport Bounds) []Feature {
	spatials := s.rtree.SearchIntersect(boundsRect(viewport))

	indices := make([]int, 0, len(spatials))
	for _, spatial := range spatials {
		indices = append(indices, spatial.(featureEntry).index)
	}
	sort.Ints(indices)

	result := make([]Feature, len(indices))
	for i, idx := range indices {
		result[i] = s.features[idx]
	}
	return result
}

// boundsRect converts geographic bounds to an R-tree rectangle.
//
// rtreego requires strictly positive extents, so point features and
// zero-width viewports are padded by a sliver far below coordinate
// precision.
func boundsRect(b Bounds) rtreego.Rect {
	const sliver = 1e-9

	point := rtreego.Point{b.MinLon, b.MinLat}
	width := b.MaxLon - b.MinLon
	if width <= 0 {
		width = sliver
	}
	height := b.MaxLat - b.MinLat
	if height <= 0 {
		height = sliver
	}

	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// CreateStyleForRegion compiles a per-feature style for the features visible
// in a viewport.
//
// This is the viewport-limited variant of CreateStyleForFeatures: the
// feature set's R-tree picks the features intersecting the viewport, and
// only those are symbolized.
func (c *Compiler) CreateStyleForRegion(set *FeatureSet, viewport Bounds, opts StyleOptions) (*StyleDocument, []Diagnostic, error) {
	return c.CreateStyleForFeatures(set.InBounds(viewport), opts)
}
