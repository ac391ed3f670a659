package ox

import (
	"bytes"
	"io"
	"runtime"
	"strings"
)

var memstats runtime.MemStats

func allocs() uint64 {
	runtime.ReadMemStats(&memstats)
	return memstats.Mallocs
}

type Null struct{}

func (w Null) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type DodgyWriter struct {
	writer     io.Writer
	shouldFail func(b []byte) (fail bool, len int, err error)
}

func (d *DodgyWriter) Write(b []byte) (len int, err error) {
	if fail, len, err := d.shouldFail(b); fail {
		return len, err
	}
	return d.writer.Write(b)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// open returns an in-memory builder producing compact output; tests
// exercising indentation opt back in with WithIndent.
func open(o ...Option) *Builder {
	return New(append([]Option{WithIndent(0)}, o...)...)
}

func openStream(o ...Option) (*bytes.Buffer, *Builder) {
	b := &bytes.Buffer{}
	return b, Open(b, append([]Option{WithIndent(0)}, o...)...)
}

func openNull(o ...Option) *Builder {
	return Open(Null{}, o...)
}

// str returns the document so far with String's trailing newline
// chopped, so expectations can be written without it. Tests covering
// the newline guarantee itself call String directly.
func str(b *Builder) string {
	s, err := b.String()
	must(err)
	return strings.TrimSuffix(s, "\n")
}
