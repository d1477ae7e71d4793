package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/goslices/internal/scan"
	"github.com/jcorbin/goslices/internal/text"
	"github.com/jcorbin/goslices/internal/view"
)

// demoFile is the YAML form of additional demonstrations, e.g.:
//
//	demos:
//	  - name: tail
//	    text: "Francesco"
//	    ranges: ["4..", "..3"]
//	    first_word: true
//	  - name: accents
//	    text: "e\u0301x"
//	    graphemes: true
//	    ranges: ["..3"]
//	  - name: numbers
//	    ints: [10, 20, 30]
//	    ranges: ["1..2"]
type demoFile struct {
	Demos []demoDef `yaml:"demos"`
}

type demoDef struct {
	Name      string   `yaml:"name"`
	Text      *string  `yaml:"text"`
	Chars     *string  `yaml:"chars"`
	Ints      []int32  `yaml:"ints"`
	Ranges    []string `yaml:"ranges"`
	FirstWord bool     `yaml:"first_word"`
	Graphemes bool     `yaml:"graphemes"`
}

// LoadDemoFile reads demonstrations from the named YAML file.
func LoadDemoFile(name string) ([]Demo, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	demos, err := LoadDemos(f)
	return demos, errors.Wrapf(err, "loading %v", name)
}

// LoadDemos reads demonstrations from a YAML stream. Unknown fields are
// rejected; all ranges are parsed up front.
func LoadDemos(r io.Reader) ([]Demo, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file demoFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding demos")
	}
	demos := make([]Demo, 0, len(file.Demos))
	for i, def := range file.Demos {
		demo, err := def.demo()
		if err != nil {
			return nil, errors.Wrapf(err, "demo #%v %q", i+1, def.Name)
		}
		demos = append(demos, demo)
	}
	return demos, nil
}

func (def demoDef) demo() (Demo, error) {
	if def.Name == "" {
		return Demo{}, errors.New("missing name")
	}

	kinds := 0
	for _, set := range []bool{def.Text != nil, def.Chars != nil, def.Ints != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return Demo{}, errors.New("must set exactly one of text, chars, or ints")
	}
	if def.FirstWord && def.Text == nil {
		return Demo{}, errors.New("first_word only applies to text")
	}
	if def.Graphemes && def.Text == nil {
		return Demo{}, errors.New("graphemes only applies to text")
	}

	ranges := make([]view.Range, len(def.Ranges))
	for i, s := range def.Ranges {
		r, err := view.ParseRange(s)
		if err != nil {
			return Demo{}, err
		}
		ranges[i] = r
	}

	demo := Demo{Name: def.Name}
	switch {
	case def.Text != nil:
		src, newText := *def.Text, text.New
		if def.Graphemes {
			newText = text.NewGraphemes
		}
		demo.Run = func(out *renderer) error {
			s := newText(src)
			if err := renderRanges(out, s, ranges, debugText); err != nil {
				return err
			}
			if def.FirstWord {
				return renderFirstWord(out, s)
			}
			return nil
		}
	case def.Chars != nil:
		src := []rune(*def.Chars)
		demo.Run = func(out *renderer) error {
			return renderRanges(out, view.New(src...), ranges, debugRunes)
		}
	default:
		src := def.Ints
		demo.Run = func(out *renderer) error {
			return renderRanges(out, view.New(src...), ranges, debugInts)
		}
	}
	return demo, nil
}

func renderRanges[T any](out *renderer, s *view.Seq[T], ranges []view.Range, debug func(view.View[T]) string) error {
	for _, r := range ranges {
		v, err := s.Range(r)
		if err != nil {
			return err
		}
		out.printf("[%v] %v\n", r, debug(v))
	}
	return nil
}

func renderFirstWord(out *renderer, s *text.Buffer) error {
	offset, err := scan.FirstWordOffset(s)
	if err != nil {
		return err
	}
	word, err := scan.FirstWord(s)
	if err != nil {
		return err
	}
	out.printf("The first word ends at %v: %v\n", offset, debugText(word))
	return nil
}
