package s52

import (
	"sort"
	"strings"
	"testing"

	"github.com/beetlebugorg/s52/internal/symbology"
	"github.com/stretchr/testify/require"
)

func TestDefaultSymbolRegistry(t *testing.T) {
	require := require.New(t)

	reg, err := DefaultSymbolRegistry()
	require.NoError(err)
	require.Greater(reg.Len(), 0)

	// A sample of names the built-in lookup table and conditional
	// procedures depend on.
	for _, name := range []string{
		"BOYLAT12", "BOYDEF03", "BCNLAT15", "TOPMAR65",
		"LIGHTS11", "LITDEF11", "ISODGR01", "WRECKS05",
		"NODATA03", "FOULAR01", "CBLSUB06", "PIPSOL05",
	} {
		require.True(reg.Has(name), "registry missing %s", name)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	require := require.New(t)

	reg, err := DefaultSymbolRegistry()
	require.NoError(err)

	names := reg.Names()
	require.Len(names, reg.Len())
	require.True(sort.StringsAreSorted(names))
}

func TestLoadSymbolRegistry(t *testing.T) {
	require := require.New(t)

	reg, err := LoadSymbolRegistry(strings.NewReader(`{
		"CUSTOM01": {"offset": [1, 2], "pivot": [3, 4], "bbox": [0, 0, 10, 20]}
	}`))
	require.NoError(err)
	require.Equal(1, reg.Len())

	info, ok := reg.Symbol("CUSTOM01")
	require.True(ok)
	require.Equal([2]float64{1, 2}, info.Offset)
	require.Equal([2]float64{3, 4}, info.Pivot)
	require.Equal(10.0, info.Width())
	require.Equal(20.0, info.Height())
}

func TestLoadSymbolRegistryRejectsInvertedBBox(t *testing.T) {
	require := require.New(t)

	_, err := LoadSymbolRegistry(strings.NewReader(`{
		"BROKEN01": {"offset": [0, 0], "pivot": [0, 0], "bbox": [10, 0, 0, 20]}
	}`))
	require.Error(err)

	var assetErr *ErrAssetLoad
	require.ErrorAs(err, &assetErr)
	require.Equal("symbol registry", assetErr.Asset)
}

func TestLoadSymbolRegistryRejectsMalformedJSON(t *testing.T) {
	_, err := LoadSymbolRegistry(strings.NewReader(`{"X": `))
	require.Error(t, err)
}

func TestRegistryRegister(t *testing.T) {
	require := require.New(t)

	reg := NewSymbolRegistry()
	require.Equal(0, reg.Len())
	require.False(reg.Has("DANGER01"))

	reg.Register("DANGER01", SymbolInfo{BBox: [4]float64{0, 0, 16, 16}})
	require.True(reg.Has("DANGER01"))

	// Registering again replaces the entry.
	reg.Register("DANGER01", SymbolInfo{BBox: [4]float64{0, 0, 32, 32}})
	info, _ := reg.Symbol("DANGER01")
	require.Equal(32.0, info.Width())
	require.Equal(1, reg.Len())
}

func TestRegistryAdapter(t *testing.T) {
	require := require.New(t)

	reg := NewSymbolRegistry()
	reg.Register("FLARE01", SymbolInfo{
		Offset: [2]float64{0, -10},
		Pivot:  [2]float64{4, 18},
		BBox:   [4]float64{0, 0, 8, 20},
	})

	adapter := registryAdapter{registry: reg}

	sym, ok := adapter.Symbol("FLARE01")
	require.True(ok)
	require.Equal(symbology.Symbol{
		Name:   "FLARE01",
		Offset: [2]float64{0, -10},
		Pivot:  [2]float64{4, 18},
		BBox:   [4]float64{0, 0, 8, 20},
	}, sym)

	_, ok = adapter.Symbol("ABSENT01")
	require.False(ok)
}
