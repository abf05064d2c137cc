package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_Engine(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "d12.eng")
	require.NoError(t, os.WriteFile(input, []byte(raspFixture), 0644))

	out, _, err := execute(t, "inspect", input)
	require.NoError(t, err)

	assert.Contains(t, out, "Engine: D12 (Estes)")
	assert.Contains(t, out, "Impulse class:  D")
	assert.Contains(t, out, "Total impulse:  11.75 N*s")
	assert.Contains(t, out, "Burn time:      1.00 s")
}

func TestInspect_Design(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "alpha.ork")
	require.NoError(t, os.WriteFile(input, []byte(orkFixture), 0644))

	out, _, err := execute(t, "inspect", input)
	require.NoError(t, err)

	assert.Contains(t, out, "Rocket: Alpha")
	assert.Contains(t, out, "Stages:       1")
	assert.Contains(t, out, "Length:       0.370 m")
	assert.Contains(t, out, `nosecone "Nose"`)
	assert.Contains(t, out, `bodytube "Tube"`)
}

func TestRender_WritesSVG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "alpha.ork")
	output := filepath.Join(dir, "alpha.svg")
	require.NoError(t, os.WriteFile(input, []byte(orkFixture), 0644))

	_, _, err := execute(t, "render", input, output, "--width", "500", "--height", "250")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="500"`)
	assert.Contains(t, string(data), `height="250"`)
}

func TestConfig_SetAndShow(t *testing.T) {
	configDir := t.TempDir()

	run := func(args ...string) (string, error) {
		out, _, err := executeIn(t, configDir, args...)
		return out, err
	}

	out, err := run("config", "set", "--precision", "2", "--canvas-width", "640")
	require.NoError(t, err)
	assert.Contains(t, out, "precision:     2")
	assert.Contains(t, out, "canvas width:  640 px")

	out, err = run("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "precision:     2")
}
