package lox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "glox.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadOptions(t *testing.T) {
	cases := []struct {
		content string
		expect  Options
	}{
		{"", DefaultOptions()},
		{"trace: true\n", Options{MaxCallDepth: 1024, Color: true, Trace: true}},
		{"max_call_depth: 50\ncolor: false\n", Options{MaxCallDepth: 50}},
		{"max_call_depth: 0\n", DefaultOptions()},
		{"max_call_depth: -3\ntrace: true\n", Options{MaxCallDepth: 1024, Color: true, Trace: true}},
		{"max_call_depth: 10000\n", Options{MaxCallDepth: 10000, Color: true}},
	}

	for _, c := range cases {
		opts, err := LoadOptions(writeOptions(t, c.content))

		require.NoError(t, err, c.content)
		assert.Equal(t, c.expect, opts, c.content)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(writeOptions(t, "max_depth: 10\n"))
	assert.ErrorContains(t, err, "max_depth")

	_, err = LoadOptions(writeOptions(t, "trace: [1, 2]\n"))
	assert.Error(t, err)

	_, err = LoadOptions(writeOptions(t, "max_call_depth: 10001\n"))
	assert.ErrorContains(t, err, "exceeds the limit of 10000")

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsNormalize(t *testing.T) {
	var nilOpts *Options
	assert.Equal(t, DefaultOptions(), nilOpts.normalize())

	opts := &Options{MaxCallDepth: 7}
	assert.Equal(t, Options{MaxCallDepth: 7}, opts.normalize())

	opts = &Options{Color: true}
	assert.Equal(t, DefaultOptions(), opts.normalize())

	opts = &Options{MaxCallDepth: 10000000}
	assert.Equal(t, MaxCallDepthLimit, opts.normalize().MaxCallDepth)

	opts = &Options{MaxCallDepth: MaxCallDepthLimit}
	assert.Equal(t, MaxCallDepthLimit, opts.normalize().MaxCallDepth)
}
