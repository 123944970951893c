package s52

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayerMetadataAccessors(t *testing.T) {
	require := require.New(t)

	layer := Layer{
		Metadata: map[string]interface{}{
			MetadataPriority:     4,
			MetadataCategory:     "Standard",
			MetadataViewingGroup: 34050,
		},
	}
	require.Equal(4, layer.Priority())
	require.Equal("Standard", layer.Category())
	require.Equal(34050, layer.ViewingGroup())

	// After a JSON round trip the numbers come back as float64.
	data, err := json.Marshal(layer)
	require.NoError(err)
	var decoded Layer
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal(4, decoded.Priority())
	require.Equal("Standard", decoded.Category())
	require.Equal(34050, decoded.ViewingGroup())
}

func TestLayerMetadataAbsent(t *testing.T) {
	require := require.New(t)

	layer := Layer{}
	require.Equal(-1, layer.Priority())
	require.Equal("", layer.Category())
	require.Equal(0, layer.ViewingGroup())
}

func TestStyleDocumentRoundTrip(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	doc, err := c.CreateStyle(testOptions())
	require.NoError(err)

	data, err := doc.JSON()
	require.NoError(err)

	var decoded StyleDocument
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal(StyleVersion, decoded.Version)
	require.Equal(doc.Name, decoded.Name)
	require.Equal(doc.LayerCount(), decoded.LayerCount())
	require.Equal(doc.LayerIDs(), decoded.LayerIDs())
	require.Equal("LNAM", decoded.Sources["enc"].PromoteID)
}

func TestStyleDocumentEncode(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	doc, err := c.CreateStyle(testOptions())
	require.NoError(err)

	var buf bytes.Buffer
	require.NoError(doc.Encode(&buf))
	require.True(json.Valid(buf.Bytes()))

	direct, err := doc.JSON()
	require.NoError(err)
	// Encoder output matches MarshalIndent plus a trailing newline.
	require.Equal(string(direct)+"\n", buf.String())
}

func TestLayersInCategory(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	doc, err := c.CreateStyle(testOptions())
	require.NoError(err)

	base := doc.LayersInCategory("DisplayBase")
	require.NotEmpty(base, "depth areas and land are display base")
	for _, layer := range base {
		require.Equal("DisplayBase", layer.Category())
	}

	require.Empty(doc.LayersInCategory("Imaginary"))
}

func TestLayerIDsUnique(t *testing.T) {
	require := require.New(t)

	c := testCompiler(t)
	doc, err := c.CreateStyle(testOptions())
	require.NoError(err)

	seen := make(map[string]bool)
	for _, id := range doc.LayerIDs() {
		require.False(seen[id], "duplicate layer id %s", id)
		seen[id] = true
	}
}
