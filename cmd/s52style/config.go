package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/beetlebugorg/s52/pkg/s52"
)

// compileConfig is the TOML schema for a compile job.
//
// Example:
//
//	name = "harbor-chart"
//	sprite = "https://charts.example.com/sprites"
//	mode = "day"
//
//	[source]
//	type = "vector"
//	url = "https://tiles.example.com/enc.json"
//	attribution = "NOAA ENC"
//
//	[depths]
//	shallow = 3.0
//	safety = 6.0
//	deep = 9.0
//
// The rules and symbols keys name override files for the built-in lookup
// table CSV and sprite-index JSON.
type compileConfig struct {
	Name     string       `toml:"name"`
	Sprite   string       `toml:"sprite"`
	Mode     string       `toml:"mode"`
	SourceID string       `toml:"source-id"`
	Rules    string       `toml:"rules"`
	Symbols  string       `toml:"symbols"`
	Source   sourceConfig `toml:"source"`
	Depths   depthConfig  `toml:"depths"`
}

type sourceConfig struct {
	Type        string   `toml:"type"`
	URL         string   `toml:"url"`
	Tiles       []string `toml:"tiles"`
	MinZoom     int      `toml:"minzoom"`
	MaxZoom     int      `toml:"maxzoom"`
	Attribution string   `toml:"attribution"`
}

type depthConfig struct {
	Shallow float64 `toml:"shallow"`
	Safety  float64 `toml:"safety"`
	Deep    float64 `toml:"deep"`
}

// loadCompileConfig reads a TOML config file.
func loadCompileConfig(path string) (compileConfig, error) {
	var cfg compileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return compileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// parseCompileConfig decodes TOML config text.
func parseCompileConfig(text string) (compileConfig, error) {
	var cfg compileConfig
	if _, err := toml.Decode(text, &cfg); err != nil {
		return compileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// styleOptions translates the config into compiler style options.
func (c compileConfig) styleOptions() (s52.StyleOptions, error) {
	mode := s52.ModeDay
	if c.Mode != "" {
		var err error
		mode, err = s52.ParseMode(c.Mode)
		if err != nil {
			return s52.StyleOptions{}, err
		}
	}

	return s52.StyleOptions{
		Source: s52.Source{
			Type:        c.Source.Type,
			URL:         c.Source.URL,
			Tiles:       c.Source.Tiles,
			MinZoom:     c.Source.MinZoom,
			MaxZoom:     c.Source.MaxZoom,
			Attribution: c.Source.Attribution,
		},
		Name:   c.Name,
		Mode:   mode,
		Sprite: c.Sprite,
	}, nil
}

// layerConfig translates the config into the compiler's layer configuration.
// Zero values defer to the compiler defaults.
func (c compileConfig) layerConfig() s52.LayerConfig {
	return s52.LayerConfig{
		SourceID:           c.SourceID,
		ShallowDepthMeters: c.Depths.Shallow,
		SafetyDepthMeters:  c.Depths.Safety,
		DeepDepthMeters:    c.Depths.Deep,
	}
}
