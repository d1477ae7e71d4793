package main

import (
	"context"
	"io"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jcorbin/goslices/internal/flushio"
	"github.com/jcorbin/goslices/internal/panicerr"
)

// Demos runs a sequence of demonstrations, rendering their output.
type Demos struct {
	out        flushio.WriteFlusher
	log        *zap.Logger
	demos      []Demo
	only       map[string]bool
	noBuiltins bool
}

// New creates a runner for the built-in demonstrations, plus any added by
// options.
func New(opts ...Option) *Demos {
	var d Demos
	defaultOptions.apply(&d)
	Options(opts...).apply(&d)
	return &d
}

// Run runs every selected demonstration in order. A failing demonstration
// is logged and does not stop the rest; Run returns the first failure.
// Cancelling ctx stops before the next demonstration.
func (d *Demos) Run(ctx context.Context) error {
	demos, err := d.selected()
	if err != nil {
		return err
	}

	var firstErr error
	for _, demo := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.run(demo); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (d *Demos) run(demo Demo) error {
	log := d.log.With(zap.String("demo", demo.Name))
	log.Debug("running")

	out := renderer{out: d.out}
	out.printf("# %v\n", demo.Name)
	err := panicerr.Recover(demo.Name, func() error {
		return demo.Run(&out)
	})
	if err == nil {
		err = out.err
	}
	if ferr := d.out.Flush(); err == nil {
		err = ferr
	}

	if err != nil {
		log.Error("failed", zap.Error(err))
		return errors.Wrapf(err, "demo %q", demo.Name)
	}
	log.Debug("done")
	return nil
}

func (d *Demos) selected() ([]Demo, error) {
	var all []Demo
	if !d.noBuiltins {
		all = append(all, builtinDemos...)
	}
	all = append(all, d.demos...)
	if len(d.only) == 0 {
		return all, nil
	}

	found := make(map[string]bool, len(d.only))
	var demos []Demo
	for _, demo := range all {
		if d.only[demo.Name] {
			found[demo.Name] = true
			demos = append(demos, demo)
		}
	}
	var unknown []string
	for name := range d.only {
		if !found[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.Errorf("unknown demos: %q", unknown)
	}
	return demos, nil
}

func WithOutput(w io.Writer) Option     { return outputOption{w} }
func WithTee(w io.Writer) Option        { return teeOption{w} }
func WithLogger(log *zap.Logger) Option { return loggerOption{log} }
func WithDemos(demos ...Demo) Option    { return demosOption(demos) }
func WithOnly(names ...string) Option   { return onlyOption(names) }
func WithoutBuiltins() Option           { return noBuiltinsOption{} }
