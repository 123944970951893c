package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func buoy(id string, catlam int, lon, lat float64) s52.Feature {
	return s52.Feature{
		ID:          id,
		ObjectClass: "BOYLAT",
		Geometry:    s52.GeometryTypePoint,
		Attributes:  map[string]interface{}{"CATLAM": catlam},
		Bounds: s52.Bounds{
			MinLon: lon, MaxLon: lon,
			MinLat: lat, MaxLat: lat,
		},
	}
}

func main() {
	compiler, err := s52.NewCompiler()
	if err != nil {
		log.Fatal(err)
	}

	// Index features by bounding box (Boston Harbor area)
	set := s52.NewFeatureSet()
	set.Add(
		buoy("buoy-1", 1, -71.05, 42.35),
		buoy("buoy-2", 2, -71.03, 42.36),
		buoy("buoy-3", 1, -70.60, 42.10),
	)

	// Query R-tree index for features in the viewport
	viewport := s52.Bounds{
		MinLon: -71.1, MaxLon: -71.0,
		MinLat: 42.3, MaxLat: 42.4,
	}
	visible := set.InBounds(viewport)
	fmt.Printf("Visible features: %d of %d\n", len(visible), set.Len())

	// Compile a style covering only the visible features
	style, _, err := compiler.CreateStyleForRegion(set, viewport, s52.StyleOptions{
		Source: s52.Source{
			Type: "vector",
			URL:  "https://tiles.example.com/enc.json",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range style.LayerIDs() {
		fmt.Printf("  %s\n", id)
	}
}
