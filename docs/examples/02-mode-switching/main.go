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

	// Compile day, dusk and night styles in one pass
	set, err := s52.NewStyleSet(compiler, s52.StyleOptions{
		Source: s52.Source{
			Type: "vector",
			URL:  "https://tiles.example.com/enc.json",
		},
		Sprite: "https://tiles.example.com/sprites",
	})
	if err != nil {
		log.Fatal(err)
	}

	// Layer structure is identical across modes; only colors and
	// sprite paths change, so a viewer can swap styles instantly.
	for _, mode := range set.Modes() {
		style := set.Style(mode)
		land, _ := compiler.Palette(mode).Color("LANDA")
		depth, _ := compiler.Palette(mode).Color("DEPDW")

		fmt.Printf("%s\n", mode)
		fmt.Printf("  sprite: %s\n", style.Sprite)
		fmt.Printf("  land:   %s\n", land)
		fmt.Printf("  water:  %s\n", depth)
	}
}
