package main

import (
	"github.com/pkg/errors"

	"github.com/jcorbin/goslices/internal/scan"
	"github.com/jcorbin/goslices/internal/text"
	"github.com/jcorbin/goslices/internal/view"
)

// Demo is a named demonstration, rendering its results as text.
// An error, or panic, aborts only that demonstration.
type Demo struct {
	Name string
	Run  func(out *renderer) error
}

var builtinDemos = []Demo{
	{"array", demoArray},
	{"vector", demoVector},
	{"string", demoString},
	{"shortcuts", demoShortcuts},
	{"first-word-offset", demoFirstWordOffset},
	{"first-word", demoFirstWord},
	{"first-word-clear", demoFirstWordClear},
}

// BuiltinDemoNames returns the names of the built-in demonstrations, in
// their run order.
func BuiltinDemoNames() []string {
	names := make([]string, len(builtinDemos))
	for i, demo := range builtinDemos {
		names[i] = demo.Name
	}
	return names
}

func demoArray(out *renderer) error {
	s := view.New('h', 'e', 'l', 'l', 'o')
	out.println(debugRunes(s.MustExtract(1, 3)))
	return nil
}

func demoVector(out *renderer) error {
	vec := view.New[int32](10, 20, 30, 40, 50)
	out.println(debugInts(vec.MustExtract(3, 4)))
	return nil
}

func demoString(out *renderer) error {
	s := text.New("hello world")
	out.println(debugText(s.MustExtract(0, 5)))
	out.println(debugText(s.MustExtract(6, 11)))
	return nil
}

func demoShortcuts(out *renderer) error {
	s := text.New("Francesco")
	n := s.Len()
	for _, pair := range [][2]view.Range{
		{view.Span(0, 3), view.Range{End: 3}},
		{view.Span(4, n), view.ToEnd(4)},
		{view.Span(0, n), view.ToEnd(0)},
	} {
		for _, r := range pair {
			v, err := s.Range(r)
			if err != nil {
				return err
			}
			out.println(displayText(v))
		}
	}
	return nil
}

func demoFirstWordOffset(out *renderer) error {
	s := text.New("hello world")
	word, err := scan.FirstWordOffset(s)
	if err != nil {
		return err
	}
	out.printf("The string is %v\n", displayText(s.Full()))
	out.printf("The first word is %v\n", word)
	return nil
}

func demoFirstWord(out *renderer) error {
	s := text.New("hello world")
	word, err := scan.FirstWord(s)
	if err != nil {
		return err
	}
	out.printf("The string is %v\n", displayText(s.Full()))
	out.printf("The first word is %v\n", displayText(word))

	// the same helper over a borrowed view of a literal
	s2 := text.New("second world").Full()
	word2, err := scan.FirstWord(s2)
	if err != nil {
		return err
	}
	out.printf("The string is %v\n", displayText(s2))
	out.printf("The first word is %v\n", displayText(word2))
	return nil
}

func demoFirstWordClear(out *renderer) error {
	s := text.New("hello world")
	word, err := scan.FirstWord(s)
	if err != nil {
		return err
	}
	if err := s.Truncate(0); err != nil {
		return err
	}
	_, err = text.String(word)
	if !errors.Is(err, view.ErrInvalidated) {
		return errors.Errorf("expected the first word to be invalidated by clearing, got %v", err)
	}
	out.printf("The first word is no longer readable after clearing the string\n")
	return nil
}
