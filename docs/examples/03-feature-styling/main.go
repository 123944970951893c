package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func main() {
	compiler, err := s52.NewCompiler()
	if err != nil {
		log.Fatal(err)
	}

	// Features with attributes, as decoded from a chart cell
	features := []s52.Feature{
		{
			ID:          "buoy-1",
			ObjectClass: "BOYLAT",
			Geometry:    s52.GeometryTypePoint,
			Attributes:  map[string]interface{}{"CATLAM": 1},
		},
		{
			ID:          "light-1",
			ObjectClass: "LIGHTS",
			Geometry:    s52.GeometryTypePoint,
			Attributes:  map[string]interface{}{"COLOUR": "3", "ORIENT": 45.0},
		},
		{
			ID:          "sounding-1",
			ObjectClass: "SOUNDG",
			Geometry:    s52.GeometryTypePoint,
			Attributes:  map[string]interface{}{"DEPTH": 2.5},
		},
	}

	// Each feature gets concrete layers with its attributes already
	// evaluated, so no filter expressions are emitted.
	style, diags, err := compiler.CreateStyleForFeatures(features, s52.StyleOptions{
		Source: s52.Source{
			Type: "vector",
			URL:  "https://tiles.example.com/enc.json",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, layer := range style.Layers {
		fmt.Printf("%s (%s)\n", layer.ID, layer.Type)
		if icon, ok := layer.Layout["icon-image"]; ok {
			fmt.Printf("  icon: %v\n", icon)
		}
		if text, ok := layer.Layout["text-field"]; ok {
			fmt.Printf("  text: %v\n", text)
		}
	}

	for _, d := range diags {
		fmt.Printf("warning: %s\n", d)
	}
}
