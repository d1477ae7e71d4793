package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/goslices/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads lines sequentially through a Queue of one or more input
// streams. Streams that implement io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader

	cur io.Reader
	br  io.ByteReader
	loc Location
	buf bytes.Buffer
}

// ReadLine returns the next line, without its line ending, along with its
// location. Lines are returned byte for byte; invalid UTF-8 is not replaced.
// A final line lacking a line feed is still returned. Returns io.EOF once
// every queued stream is exhausted.
func (in *Input) ReadLine() (Location, string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return in.loc, "", io.EOF
		}

		c, err := in.br.ReadByte()
		if err == nil {
			if c == '\n' {
				loc, line := in.takeLine()
				return loc, line, nil
			}
			in.buf.WriteByte(c)
			continue
		}

		if err != io.EOF {
			return in.loc, "", err
		}
		partial := in.buf.Len() > 0
		loc, line := in.takeLine()
		in.closeIn()
		if partial {
			return loc, line, nil
		}
	}
}

func (in *Input) takeLine() (Location, string) {
	loc := in.loc
	line := bytes.TrimSuffix(in.buf.Bytes(), []byte{'\r'})
	s := string(line)
	in.buf.Reset()
	in.loc.Line++
	return loc, s
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.br = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = runeio.NewReader(r)
	in.loc = Location{Name: nameOf(r), Line: 1}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
