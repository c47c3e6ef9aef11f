package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drift-lottie/pkg/animation"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Execute(args, &out)
	return out.String(), err
}

func TestExecuteVersionAndHelp(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "lottie version "+Version)

	out, err = run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "inspect")
	assert.Contains(t, out, "play")

	out, err = run(t, "play", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--marker NAME")
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, err := run(t, "render")
	assert.EqualError(t, err, "unknown command: render")
}

func TestInspectJSON(t *testing.T) {
	out, err := run(t, "inspect", "testdata/spin.json")
	require.NoError(t, err)

	for _, want := range []string{
		"Name:      spin",
		"Frames:    0-60 (60 at 30 fps)",
		"Duration:  2s",
		"Size:      120x80",
		"Layers:    2",
		"intro        0-20",
		"outro        40-60",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Renderer:")
}

func TestInspectManifest(t *testing.T) {
	out, err := run(t, "inspect", "testdata/spin.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Name:      spinner")
	assert.Contains(t, out, "Renderer:  canvas")
	assert.Contains(t, out, "Segment:   10-50")
}

func TestInspectErrors(t *testing.T) {
	_, err := run(t, "inspect")
	assert.Error(t, err)

	_, err = run(t, "inspect", "testdata/spin.txt")
	assert.ErrorContains(t, err, "unsupported file")

	_, err = run(t, "inspect", "testdata/missing.json")
	assert.Error(t, err)
}

func TestPlayRunsToCompletion(t *testing.T) {
	before := animation.Now()
	out, err := run(t, "play", "testdata/spin.json", "--frames", "30", "--fps", "10")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "complete"))
	assert.NotContains(t, out, "loopComplete")
	assert.Contains(t, out, "stopped at frame 60.00 of segment 0-60 after 30 frames")
	assert.False(t, animation.HasActiveTickers())
	assert.False(t, animation.Now().Before(before), "system clock restored")
}

func TestPlayLoop(t *testing.T) {
	out, err := run(t, "play", "testdata/spin.json", "--frames", "30", "--fps", "10", "--loop")
	require.NoError(t, err)

	assert.Contains(t, out, "loopComplete")
	assert.Contains(t, out, "stopped at frame 30.00 of segment 0-60")
}

func TestPlayMarker(t *testing.T) {
	out, err := run(t, "play", "testdata/spin.json", "--frames", "10", "--fps", "10", "--marker", "intro")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "segmentStart"))
	assert.True(t, strings.HasPrefix(lines[1], "complete"))
	assert.Contains(t, lines[2], "of segment 0-20")
}

func TestPlayUnknownMarker(t *testing.T) {
	_, err := run(t, "play", "testdata/spin.json", "--marker", "middle")
	assert.ErrorContains(t, err, `no marker "middle"`)
}

func TestParsePlayOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    playOptions
		wantErr bool
	}{
		{"defaults", nil, playOptions{frames: 60, fps: 60, speed: 1}, false},
		{"all flags", []string{"--frames", "5", "--fps", "24", "--speed", "0.5", "--reverse", "--loop", "--marker", "a"},
			playOptions{frames: 5, fps: 24, speed: 0.5, reverse: true, loop: true, marker: "a"}, false},
		{"missing value", []string{"--frames"}, playOptions{}, true},
		{"bad number", []string{"--speed", "fast"}, playOptions{}, true},
		{"zero fps", []string{"--fps", "0"}, playOptions{}, true},
		{"unknown flag", []string{"--verbose"}, playOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePlayOptions(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
