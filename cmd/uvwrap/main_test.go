package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/objio"
	"github.com/lvlath-labs/uvwrap/testmesh"
)

func TestParseOptionsRequiresInAndOut(t *testing.T) {
	_, err := parseOptions([]string{"-in", "a.obj"})
	assert.Error(t, err)

	_, err = parseOptions(nil)
	assert.Error(t, err)
}

func TestParseOptionsDefaults(t *testing.T) {
	o, err := parseOptions([]string{"-in", "a.obj", "-out", "b.obj"})
	require.NoError(t, err)
	assert.Equal(t, 1, o.parallel)
	assert.False(t, o.verbose)
	assert.Equal(t, "", o.configPath)
}

func TestParseOptionsAllFlags(t *testing.T) {
	o, err := parseOptions([]string{
		"-in", "a.obj", "-out", "b.obj", "-config", "c.yaml", "-parallel", "4", "-v",
	})
	require.NoError(t, err)
	assert.Equal(t, "a.obj", o.inPath)
	assert.Equal(t, "b.obj", o.outPath)
	assert.Equal(t, "c.yaml", o.configPath)
	assert.Equal(t, 4, o.parallel)
	assert.True(t, o.verbose)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cube.obj")
	out := filepath.Join(dir, "cube_uv.obj")

	require.NoError(t, objio.Save(in, testmesh.Cube()))

	var logBuf bytes.Buffer
	logger := log.New(&logBuf, "", 0)

	err := run(options{inPath: in, outPath: out, parallel: 1}, logger)
	require.NoError(t, err)

	_, err = os.Stat(out)
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "islands=6")
}

func TestRunMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	var logBuf bytes.Buffer
	logger := log.New(&logBuf, "", 0)

	err := run(options{
		inPath:  filepath.Join(dir, "missing.obj"),
		outPath: filepath.Join(dir, "out.obj"),
	}, logger)
	assert.Error(t, err)
}

func TestRunBadConfigPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tri.obj")
	require.NoError(t, objio.Save(in, testmesh.PlanarTriangle()))

	var logBuf bytes.Buffer
	logger := log.New(&logBuf, "", 0)

	err := run(options{
		inPath:     in,
		outPath:    filepath.Join(dir, "out.obj"),
		configPath: filepath.Join(dir, "nope.yaml"),
	}, logger)
	assert.Error(t, err)
}
