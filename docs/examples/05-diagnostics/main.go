package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func main() {
	// Sparse registry standing in for an incomplete sprite sheet
	registry := s52.NewSymbolRegistry()
	registry.Register("BOYLAT12", s52.SymbolInfo{
		Pivot: [2]float64{8, 16},
		BBox:  [4]float64{0, 0, 16, 16},
	})

	compiler, err := s52.NewCompilerWithOptions(s52.CompilerOptions{
		Registry: registry,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Diagnostics report every symbol the registry is missing;
	// affected layers are dropped, everything else still compiles.
	style, diags, err := compiler.CreateStyleWithDiagnostics(s52.StyleOptions{
		Source: s52.Source{
			Type: "vector",
			URL:  "https://tiles.example.com/enc.json",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Layers: %d\n", style.LayerCount())
	fmt.Printf("Diagnostics: %d\n", len(diags))
	for _, d := range diags {
		fmt.Printf("  %s\n", d)
	}

	// Configuration errors carry the offending field
	_, err = s52.NewCompilerWithOptions(s52.CompilerOptions{
		Config: s52.LayerConfig{
			SourceID:           "enc",
			ShallowDepthMeters: 9,
			SafetyDepthMeters:  6,
			DeepDepthMeters:    3,
		},
	})

	var cfgErr *s52.ErrInvalidConfig
	if errors.As(err, &cfgErr) {
		fmt.Printf("config error on %s: %v\n", cfgErr.Field, err)
	}
}
