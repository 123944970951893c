package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func main() {
	// Create compiler with the built-in lookup tables
	compiler, err := s52.NewCompiler()
	if err != nil {
		log.Fatal(err)
	}

	// Compile a day style for a vector tile source
	style, err := compiler.CreateStyle(s52.StyleOptions{
		Source: s52.Source{
			Type: "vector",
			URL:  "https://tiles.example.com/enc.json",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Print style info
	fmt.Printf("Style: %s\n", style.Name)
	fmt.Printf("Rules: %d\n", compiler.RuleCount())
	fmt.Printf("Layers: %d\n", style.LayerCount())

	// First few layers in draw order
	for i, id := range style.LayerIDs() {
		if i == 5 {
			break
		}
		fmt.Printf("  %s\n", id)
	}
}
