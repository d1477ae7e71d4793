package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jcorbin/goslices/internal/runeio"
	"github.com/jcorbin/goslices/internal/scan"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var demoFile string
	var only string
	var words bool
	var sep string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&demoFile, "demos", "", "load additional demonstrations from a YAML file")
	flag.StringVar(&only, "only", "", "comma separated demonstrations to run; built in: "+strings.Join(BuiltinDemoNames(), ","))
	flag.BoolVar(&words, "words", false, "print the first word of every line of the named files, or stdin")
	flag.StringVar(&sep, "sep", "<SP>", "word separator for -words, like <SP> <HT> ^I or ','")
	flag.Parse()

	log := zap.NewNop()
	if trace {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var err error
	if words {
		err = runWords(ctx, log, sep, flag.Args())
	} else {
		err = runDemos(ctx, log, demoFile, only)
	}
	if err != nil {
		log.Sync()
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func runDemos(ctx context.Context, log *zap.Logger, demoFile, only string) error {
	var opts = []Option{
		WithOutput(os.Stdout),
		WithLogger(log),
	}
	if demoFile != "" {
		demos, err := LoadDemoFile(demoFile)
		if err != nil {
			return err
		}
		opts = append(opts, WithDemos(demos...))
	}
	if only != "" {
		opts = append(opts, WithOnly(strings.Split(only, ",")...))
	}
	return New(opts...).Run(ctx)
}

func runWords(ctx context.Context, log *zap.Logger, sep string, names []string) error {
	b, err := runeio.ParseByte(sep)
	if err != nil {
		return err
	}

	var inputs []io.Reader
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			for _, in := range inputs {
				in.(io.Closer).Close()
			}
			return err
		}
		inputs = append(inputs, f)
	}
	if len(inputs) == 0 {
		inputs = append(inputs, os.Stdin)
	}
	return FirstWords(ctx, os.Stdout, scan.WithSeparator(b), log, inputs...)
}
