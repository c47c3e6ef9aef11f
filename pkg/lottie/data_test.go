package lottie

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drift-lottie/pkg/errors"
)

func TestLoadFile(t *testing.T) {
	a, err := LoadFile("testdata/spinner.json")
	require.NoError(t, err)

	assert.Equal(t, "spinner", a.Name)
	assert.Equal(t, 30.0, a.FrameRate)
	assert.Equal(t, 60.0, a.TotalFrames())
	assert.Equal(t, 2*time.Second, a.Duration())
	assert.Len(t, a.Layers, 1)

	m, ok := a.Marker("spin")
	require.True(t, ok)
	assert.Equal(t, Segment{20, 60}, m.Segment())
	_, ok = a.Marker("outro")
	assert.False(t, ok)
}

func TestLoadRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"no frame rate", `{"ip":0,"op":10}`},
		{"inverted points", `{"fr":30,"ip":10,"op":5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.data))
			var lerr *errors.Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, errors.KindLoad, lerr.Kind)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.json")
	assert.Error(t, err)
}

func TestFileLoaderRoot(t *testing.T) {
	a, err := FileLoader{Root: "testdata"}.Load("spinner.json")
	require.NoError(t, err)
	assert.Equal(t, "spinner", a.Name)
}
