package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drift-lottie/pkg/errors"
)

func TestParseManifestPath(t *testing.T) {
	cfg, err := ParseManifest([]byte(`
name: spinner
path: animations/spinner.json
renderer: canvas
loop: true
loops: 3
autoplay: false
segment: [0, 30]
rendererSettings:
  clearCanvas: true
`))
	require.NoError(t, err)

	assert.Equal(t, "spinner", cfg.Name)
	assert.Equal(t, PathSource{Path: "animations/spinner.json"}, cfg.Source)
	assert.Equal(t, RendererCanvas, cfg.Renderer)
	assert.True(t, cfg.Looping())
	assert.Equal(t, 3, cfg.LoopCount)
	assert.False(t, cfg.Autoplaying())
	require.NotNil(t, cfg.InitialSegment)
	assert.Equal(t, Segment{0, 30}, *cfg.InitialSegment)
	assert.Equal(t, true, cfg.RendererSettings["clearCanvas"])
	assert.Nil(t, cfg.Container)
}

func TestParseManifestInlineData(t *testing.T) {
	cfg, err := ParseManifest([]byte(`
data: {"v": "5.7.4", "nm": "dot", "fr": 24, "ip": 0, "op": 48, "w": 10, "h": 10, "layers": []}
`))
	require.NoError(t, err)

	src, ok := cfg.Source.(DataSource)
	require.True(t, ok, "got %T", cfg.Source)
	assert.Equal(t, "dot", src.Data.Name)
	assert.Equal(t, 24.0, src.Data.FrameRate)
	assert.Equal(t, 48.0, src.Data.TotalFrames())
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"both sources", "path: a.json\ndata: {fr: 30, ip: 0, op: 10}\n", "Source"},
		{"bad inline data", "data: {fr: 0}\n", "data"},
		{"short segment", "path: a.json\nsegment: [1]\n", "segment"},
		{"unknown renderer", "path: a.json\nrenderer: webgl\n", "renderer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			var cfgErr *errors.ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseManifestSyntaxError(t *testing.T) {
	_, err := ParseManifest([]byte("path: [unclosed"))
	var e *errors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errors.KindConfig, e.Kind)
}
