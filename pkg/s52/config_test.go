package s52

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLayerConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultLayerConfig()
	require.Equal(ModeDay, cfg.Mode)
	require.Equal("enc", cfg.SourceID)
	require.Equal(3.0, cfg.ShallowDepthMeters)
	require.Equal(6.0, cfg.SafetyDepthMeters)
	require.Equal(9.0, cfg.DeepDepthMeters)
	require.NoError(cfg.validate())
}

func TestLayerConfigWithDefaults(t *testing.T) {
	require := require.New(t)

	// The zero value fills in completely.
	cfg := LayerConfig{}.withDefaults()
	require.Equal(DefaultLayerConfig(), cfg)

	// Thresholds default as a unit: setting one keeps the others as given,
	// rather than mixing a custom safety contour with default neighbors.
	partial := LayerConfig{SafetyDepthMeters: 10}.withDefaults()
	require.Equal(0.0, partial.ShallowDepthMeters)
	require.Equal(10.0, partial.SafetyDepthMeters)
	require.Equal(0.0, partial.DeepDepthMeters)
	require.Equal("enc", partial.SourceID)
}

func TestLayerConfigValidate(t *testing.T) {
	base := DefaultLayerConfig()

	cases := []struct {
		name   string
		mutate func(*LayerConfig)
		field  string
	}{
		{
			name:   "shallow exceeds safety",
			mutate: func(c *LayerConfig) { c.ShallowDepthMeters = 8 },
			field:  "ShallowDepthMeters",
		},
		{
			name:   "safety exceeds deep",
			mutate: func(c *LayerConfig) { c.SafetyDepthMeters = 20 },
			field:  "SafetyDepthMeters",
		},
		{
			name:   "NaN threshold",
			mutate: func(c *LayerConfig) { c.SafetyDepthMeters = math.NaN() },
			field:  "SafetyDepthMeters",
		},
		{
			name:   "infinite threshold",
			mutate: func(c *LayerConfig) { c.DeepDepthMeters = math.Inf(1) },
			field:  "DeepDepthMeters",
		},
		{
			name:   "empty source id",
			mutate: func(c *LayerConfig) { c.SourceID = "" },
			field:  "SourceID",
		},
		{
			name:   "unknown mode",
			mutate: func(c *LayerConfig) { c.Mode = Mode(7) },
			field:  "Mode",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.validate()
			require.Error(t, err)

			var cfgErr *ErrInvalidConfig
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestLayerConfigEqualThresholdsAllowed(t *testing.T) {
	cfg := DefaultLayerConfig()
	cfg.ShallowDepthMeters = 6
	cfg.SafetyDepthMeters = 6
	require.NoError(t, cfg.validate())
}
