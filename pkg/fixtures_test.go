package lox

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// fixture is a whole program together with everything it should produce.
type fixture struct {
	Name         string   `yaml:"name"`
	Source       string   `yaml:"source"`
	Output       string   `yaml:"output"`
	Errors       []string `yaml:"errors"`
	RuntimeError string   `yaml:"runtime_error"`
}

func loadFixtures(t *testing.T, path string) []fixture {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var fixtures []fixture

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	require.NoError(t, decoder.Decode(&fixtures), path)

	return fixtures
}

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		for _, f := range loadFixtures(t, path) {
			t.Run(filepath.Base(path)+"/"+f.Name, func(t *testing.T) {
				var out bytes.Buffer
				err := NewRunner(&out, nil).RunSource(f.Source)

				assert.Equal(t, f.Output, out.String())

				var compileErrs CompileErrors
				var runtimeErr *RuntimeError

				switch {
				case len(f.Errors) != 0:
					require.True(t, errors.As(err, &compileErrs), "expected compile errors, got %v", err)

					var msgs []string
					for _, e := range compileErrs {
						msgs = append(msgs, e.Error())
					}
					assert.Equal(t, f.Errors, msgs)
				case f.RuntimeError != "":
					require.True(t, errors.As(err, &runtimeErr), "expected a runtime error, got %v", err)
					assert.Equal(t, f.RuntimeError, runtimeErr.Error())
				default:
					assert.NoError(t, err)
				}
			})
		}
	}
}
