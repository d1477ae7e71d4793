package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/jcorbin/goslices/internal/flushio"
)

// Option configures a Demos runner.
type Option interface{ apply(d *Demos) }

var defaultOptions = Options(
	WithOutput(io.Discard),
	WithLogger(zap.NewNop()),
)

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		if many, ok := opt.(options); ok {
			all = append(all, many...)
		} else if opt != nil {
			all = append(all, opt)
		}
	}
	return all
}

type options []Option

func (opts options) apply(d *Demos) {
	for _, opt := range opts {
		opt.apply(d)
	}
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type loggerOption struct{ *zap.Logger }
type demosOption []Demo
type onlyOption []string
type noBuiltinsOption struct{}

func (o outputOption) apply(d *Demos) {
	if d.out != nil {
		d.out.Flush()
	}
	d.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(d *Demos) {
	d.out = flushio.Tee(d.out, flushio.NewWriteFlusher(o.Writer))
}

func (o loggerOption) apply(d *Demos) {
	if o.Logger == nil {
		d.log = zap.NewNop()
	} else {
		d.log = o.Logger
	}
}

func (demos demosOption) apply(d *Demos) { d.demos = append(d.demos, demos...) }

func (names onlyOption) apply(d *Demos) {
	if d.only == nil {
		d.only = make(map[string]bool, len(names))
	}
	for _, name := range names {
		d.only[name] = true
	}
}

func (noBuiltinsOption) apply(d *Demos) { d.noBuiltins = true }
