package lox

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultMaxCallDepth = 1024

// MaxCallDepthLimit is the deepest call stack the interpreter accepts. Each
// Lox call nests several evaluator frames on the goroutine stack, and going
// past the runtime's stack limit kills the process instead of failing the
// run.
const MaxCallDepthLimit = 10000

// Options controls a run of the interpreter.
type Options struct {
	// MaxCallDepth is the number of nested calls allowed before a run fails
	// with a stack overflow.
	MaxCallDepth int `yaml:"max_call_depth"`
	// Color enables colored diagnostics.
	Color bool `yaml:"color"`
	// Trace attaches the active call frames to runtime errors.
	Trace bool `yaml:"trace"`
}

func DefaultOptions() Options {
	return Options{
		MaxCallDepth: defaultMaxCallDepth,
		Color:        true,
	}
}

// LoadOptions reads options from a YAML file. Keys missing from the file
// keep their default value.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	file, err := os.Open(path)
	if err != nil {
		return opts, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("options %s: %w", path, err)
	}

	if opts.MaxCallDepth > MaxCallDepthLimit {
		return opts, fmt.Errorf("options %s: max_call_depth %d exceeds the limit of %d",
			path, opts.MaxCallDepth, MaxCallDepthLimit)
	}

	return opts.normalize(), nil
}

// normalize fills in defaults for unset values and clamps the call depth.
func (o *Options) normalize() Options {
	if o == nil {
		return DefaultOptions()
	}

	opts := *o
	switch {
	case opts.MaxCallDepth <= 0:
		opts.MaxCallDepth = defaultMaxCallDepth
	case opts.MaxCallDepth > MaxCallDepthLimit:
		opts.MaxCallDepth = MaxCallDepthLimit
	}

	return opts
}
