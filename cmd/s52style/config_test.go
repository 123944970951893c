package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/s52/pkg/s52"
)

const sampleConfig = `
name = "harbor-chart"
sprite = "https://charts.example.com/sprites"
mode = "night"
source-id = "noaa"
symbols = "sprites/index.json"

[source]
type = "vector"
url = "https://tiles.example.com/enc.json"
attribution = "NOAA ENC"
minzoom = 2
maxzoom = 14

[depths]
shallow = 2.0
safety = 5.0
deep = 10.0
`

func TestParseCompileConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := parseCompileConfig(sampleConfig)
	require.NoError(err)
	require.Equal("harbor-chart", cfg.Name)
	require.Equal("night", cfg.Mode)
	require.Equal("noaa", cfg.SourceID)
	require.Equal("sprites/index.json", cfg.Symbols)
	require.Equal("", cfg.Rules, "rules falls back to the built-in table")
	require.Equal("https://tiles.example.com/enc.json", cfg.Source.URL)
	require.Equal(2, cfg.Source.MinZoom)
	require.Equal(14, cfg.Source.MaxZoom)
	require.Equal(5.0, cfg.Depths.Safety)
}

func TestCompileConfigStyleOptions(t *testing.T) {
	require := require.New(t)

	cfg, err := parseCompileConfig(sampleConfig)
	require.NoError(err)

	opts, err := cfg.styleOptions()
	require.NoError(err)
	require.Equal(s52.ModeNight, opts.Mode)
	require.Equal("harbor-chart", opts.Name)
	require.Equal("vector", opts.Source.Type)
	require.Equal("NOAA ENC", opts.Source.Attribution)

	layerCfg := cfg.layerConfig()
	require.Equal("noaa", layerCfg.SourceID)
	require.Equal(2.0, layerCfg.ShallowDepthMeters)
	require.Equal(5.0, layerCfg.SafetyDepthMeters)
	require.Equal(10.0, layerCfg.DeepDepthMeters)
}

func TestCompileConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := parseCompileConfig(`
[source]
type = "vector"
url = "https://tiles.example.com/enc.json"
`)
	require.NoError(err)

	opts, err := cfg.styleOptions()
	require.NoError(err)
	require.Equal(s52.ModeDay, opts.Mode, "mode defaults to day")
	require.Equal("", opts.Name, "name default is resolved by the compiler")
}

func TestCompileConfigBadMode(t *testing.T) {
	cfg := compileConfig{Mode: "twilight"}
	_, err := cfg.styleOptions()
	require.Error(t, err)
}

// End to end through the compiler: a config file is everything a compile
// job needs.
func TestCompileConfigDrivesCompiler(t *testing.T) {
	require := require.New(t)

	cfg, err := parseCompileConfig(sampleConfig)
	require.NoError(err)

	compiler, err := s52.NewCompilerWithOptions(s52.CompilerOptions{Config: cfg.layerConfig()})
	require.NoError(err)

	opts, err := cfg.styleOptions()
	require.NoError(err)

	doc, err := compiler.CreateStyle(opts)
	require.NoError(err)
	require.Equal("harbor-chart", doc.Name)
	require.Equal("https://charts.example.com/sprites/night", doc.Sprite)

	_, ok := doc.Sources["noaa"]
	require.True(ok, "layers draw from the configured source id")
}
