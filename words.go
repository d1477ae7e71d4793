package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jcorbin/goslices/internal/fileinput"
	"github.com/jcorbin/goslices/internal/flushio"
	"github.com/jcorbin/goslices/internal/scan"
	"github.com/jcorbin/goslices/internal/text"
)

// FirstWords writes "name:line<TAB>word" for every line read from inputs,
// where word is the line's first word under sc.
func FirstWords(ctx context.Context, w io.Writer, sc scan.Scanner, log *zap.Logger, inputs ...io.Reader) (rerr error) {
	out := flushio.NewWriteFlusher(w)
	defer func() {
		if ferr := out.Flush(); rerr == nil {
			rerr = ferr
		}
	}()

	in := fileinput.Input{Queue: inputs}
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		loc, line, err := in.ReadLine()
		if err == io.EOF {
			log.Debug("read all input", zap.Int("lines", n))
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "reading %v", loc)
		}

		word, err := sc.FirstWord(text.New(line))
		if err != nil {
			return errors.Wrapf(err, "scanning %v", loc)
		}
		if _, err := io.WriteString(out, loc.String()+"\t"+text.MustString(word)+"\n"); err != nil {
			return errors.WithStack(err)
		}
	}
}
