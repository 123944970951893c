package s52

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateStyleForFeaturesBuoy(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	features := []Feature{{
		ID:          "US5MA22M1234",
		ObjectClass: "BOYLAT",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"CATLAM": 1},
	}}

	doc, diags, err := c.CreateStyleForFeatures(features, testOptions())
	require.NoError(err)
	require.Empty(diags)
	require.Equal(1, doc.LayerCount())

	layer := doc.Layers[0]
	require.Equal("boylat-symbol-000", layer.ID)
	require.Equal("symbol", layer.Type)
	require.Equal("BOYLAT", layer.SourceLayer)
	require.Equal("BOYLAT12", layer.Layout["icon-image"])
	require.Nil(layer.Filter, "per-feature layers carry no filter")
}

func TestCreateStyleForFeaturesCardinalBuoy(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)

	east, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "BOYCAR",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"CATCAM": "2"},
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, east.LayerCount())
	require.Equal("BOYCAR02", east.Layers[0].Layout["icon-image"])

	// Without a cardinal category the generic buoy is drawn.
	unknown, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "BOYCAR",
		Geometry:    GeometryTypePoint,
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, unknown.LayerCount())
	require.Equal("BOYDEF03", unknown.Layers[0].Layout["icon-image"])
}

func TestCreateStyleForFeaturesUnderwaterRock(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)

	awash, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "UWTROC",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"WATLEV": 5},
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, awash.LayerCount())
	require.Equal("UWTROC03", awash.Layers[0].Layout["icon-image"])

	submerged, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "UWTROC",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"WATLEV": 3},
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, submerged.LayerCount())
	require.Equal("UWTROC04", submerged.Layers[0].Layout["icon-image"])
}

// Records coming straight off a tile pipeline name their class with the
// numeric OBJL label rather than the acronym; the catalogue bridges them.
func TestCreateStyleForFeaturesNumericOBJL(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	features := []Feature{{
		Geometry:   GeometryTypePoint,
		Attributes: map[string]interface{}{"OBJL": 17, "CATLAM": 1},
	}}

	doc, diags, err := c.CreateStyleForFeatures(features, testOptions())
	require.NoError(err)
	require.Empty(diags)
	require.Equal(1, doc.LayerCount())
	require.Equal("BOYLAT12", doc.Layers[0].Layout["icon-image"])
	require.Equal("BOYLAT", doc.Layers[0].SourceLayer)
}

// Per-feature builds resolve conditional symbology against real attributes:
// a red light (COLOUR 3) gets the red flare, not the generic one.
func TestCreateStyleForFeaturesLight(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	features := []Feature{{
		ObjectClass: "LIGHTS",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"COLOUR": "3"},
	}}

	doc, diags, err := c.CreateStyleForFeatures(features, testOptions())
	require.NoError(err)
	require.Empty(diags)
	require.Equal(1, doc.LayerCount())

	layout := doc.Layers[0].Layout
	require.Equal("LIGHTS11", layout["icon-image"])
	require.Equal(135.0, layout["icon-rotate"], "flare defaults to the conventional angle")
}

func TestCreateStyleForFeaturesLightOrientation(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	features := []Feature{{
		ObjectClass: "LIGHTS",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"COLOUR": "4", "ORIENT": 45.0},
	}}

	doc, _, err := c.CreateStyleForFeatures(features, testOptions())
	require.NoError(err)
	require.Equal(1, doc.LayerCount())

	layout := doc.Layers[0].Layout
	require.Equal("LIGHTS12", layout["icon-image"])
	require.Equal(45.0, layout["icon-rotate"])
}

func TestCreateStyleForFeaturesSounding(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	features := []Feature{{
		ObjectClass: "SOUNDG",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"DEPTH": 2.5},
	}}

	doc, diags, err := c.CreateStyleForFeatures(features, testOptions())
	require.NoError(err)
	require.Empty(diags)
	require.Equal(1, doc.LayerCount())

	layer := doc.Layers[0]
	require.Equal("symbol", layer.Type)
	require.Equal("2.5", layer.Layout["text-field"])
	require.Equal(13.0, layer.Layout["text-size"])
	require.Equal("#070707", layer.Paint["text-color"], "shallow soundings draw in chart black")
}

func TestCreateStyleForFeaturesDepthArea(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	features := []Feature{{
		ObjectClass: "DEPARE",
		Geometry:    GeometryTypePolygon,
		Attributes:  map[string]interface{}{"DRVAL1": 7.5},
	}}

	doc, diags, err := c.CreateStyleForFeatures(features, testOptions())
	require.NoError(err)
	require.Empty(diags)
	require.Equal(1, doc.LayerCount())

	layer := doc.Layers[0]
	require.Equal("fill", layer.Type)
	require.Equal("#D9EBF7", layer.Paint["fill-color"], "7.5 m lies in the medium-deep band")
}

func TestCreateStyleForFeaturesWreck(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)

	dangerous, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "WRECKS",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"VALSOU": 4.0},
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, dangerous.LayerCount())
	require.Equal("ISODGR01", dangerous.Layers[0].Layout["icon-image"],
		"a wreck shoaler than the safety depth is an isolated danger")

	safe, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "WRECKS",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"VALSOU": 20.0},
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, safe.LayerCount())
	require.Equal("WRECKS04", safe.Layers[0].Layout["icon-image"])
}

func TestCreateStyleForFeaturesUnmatchedClassSkipped(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	doc, diags, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "M_NSYS",
		Geometry:    GeometryTypePoint,
	}}, testOptions())
	require.NoError(err)
	require.Empty(diags, "data outside the table's coverage is not an error")
	require.Equal(0, doc.LayerCount())
}

func TestCreateStyleForFeaturesMissingArtwork(t *testing.T) {
	require := require.New(t)

	c, err := NewCompilerWithOptions(CompilerOptions{
		Registry: NewSymbolRegistry(),
	})
	require.NoError(err)

	doc, diags, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "BOYLAT",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"CATLAM": 1},
	}}, testOptions())
	require.NoError(err, "missing artwork degrades the layer, never the build")
	require.Equal(0, doc.LayerCount())
	require.Len(diags, 1)
	require.Equal(DiagnosticMissingSymbol, diags[0].Kind)
	require.Equal("BOYLAT12", diags[0].Subject)
}

func TestCreateStyleForFeaturesOnDiagnosticHook(t *testing.T) {
	require := require.New(t)

	var seen []Diagnostic
	c, err := NewCompilerWithOptions(CompilerOptions{
		Registry: NewSymbolRegistry(),
		OnDiagnostic: func(d Diagnostic) {
			seen = append(seen, d)
		},
	})
	require.NoError(err)

	_, diags, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "BOYLAT",
		Geometry:    GeometryTypePoint,
		Attributes:  map[string]interface{}{"CATLAM": 1},
	}}, testOptions())
	require.NoError(err)
	require.Equal(diags, seen, "the hook sees exactly what the call returns")
	require.Len(seen, 1)
	require.Equal(DiagnosticMissingSymbol, seen[0].Kind)
}

func TestCreateStyleForFeaturesGeometrySelectsTable(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)

	// OBSTRN has both an area rule and a point rule; the geometry decides.
	area, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "OBSTRN",
		Geometry:    GeometryTypePolygon,
	}}, testOptions())
	require.NoError(err)
	types := make(map[string]bool)
	for _, layer := range area.Layers {
		types[layer.Type] = true
	}
	require.True(types["fill"], "area obstruction draws a fill")

	point, _, err := c.CreateStyleForFeatures([]Feature{{
		ObjectClass: "OBSTRN",
		Geometry:    GeometryTypePoint,
	}}, testOptions())
	require.NoError(err)
	require.Equal(1, point.LayerCount())
	require.Equal("ISODGR01", point.Layers[0].Layout["icon-image"])
}
