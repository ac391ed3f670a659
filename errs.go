package ox

import (
	"fmt"
	"runtime"
)

// UsageError reports a call that is not valid in the builder's current
// state: popping with no element open, asking a stream-backed builder
// for its string, writing attributes after the opening tag has been
// completed, or passing an empty element name or instruct target.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "ox: " + e.Msg }

// EncodingError reports a byte that can never appear in well-formed XML
// content, escaped or not. Byte is the offending input byte.
type EncodingError struct {
	Byte byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ox: byte 0x%02x is not a valid XML character", e.Byte)
}

// DepthError reports an attempt to open an element below MaxDepth
// levels of nesting. Depth is the number of elements that were already
// open; the rejected element is not counted and nothing is written.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("ox: elements nested too deeply (limit %d)", MaxDepth)
}

// ResourceError reports a failure to bind the builder's output sink,
// such as Create being unable to open its file.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string { return "ox: " + e.Err.Error() }

func (e *ResourceError) Unwrap() error { return e.Err }

/*
ErrCollector allows you to defer raising or accumulating an error
until after a series of procedural calls.

ErrCollector is intended to help cut down on boilerplate like this:

	if err := b.Element("library"); err != nil {
		return err
	}
	if err := b.Element("book", ox.Attr{Name: "id", Value: "b1"}); err != nil {
		return err
	}
	if err := b.Text("Leaves of Grass"); err != nil {
		return err
	}
	if err := b.Pop(); err != nil {
		return err
	}

For any sufficiently complex procedural XML assembly, this is patently
ridiculous. ErrCollector allows you to assume that it's ok to keep writing
until the end of a controlled block, then fail with the first error that
occurred. In complex procedures, ErrCollector is far more succinct and mirrors
an idiom used internally in the library, which was itself cribbed from the
stdlib's xml package (see cachedWriteError).

For functions that return an error:

	func books(b *ox.Builder) (err error) {
		ec := &ox.ErrCollector{}
		defer ec.Set(&err)
		ec.Do(
			b.Element("library"),
			b.Element("book", ox.Attr{Name: "id", Value: "b1"}),
			b.Text("Leaves of Grass"),
			b.Pop(),
		)
		return
	}

If you want to panic instead, just substitute `defer ec.Set(&err)` with `defer
ec.Panic()`

It is entirely the responsibility of the library's user to remember to call
either `ec.Set()` or `ec.Panic()`. If you don't, you'll be swallowing errors.
*/
type ErrCollector struct {
	File  string
	Line  int
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ErrCollector) Error() string {
	return fmt.Sprintf("error at %s:%d #%d - %v", e.File, e.Line, e.Index, e.Err)
}

// Unwrap returns the collected error so errors.Is and errors.As see
// through the collector.
func (e *ErrCollector) Unwrap() error {
	return e.Err
}

// Panic causes the collector to panic if any error has been collected.
//
// This should be called in a defer:
//
//	func pants() {
//		ec := &ox.ErrCollector{}
//		defer ec.Panic()
//		ec.Do(fmt.Errorf("this will panic at the end"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Panic() {
	if e.Err != nil {
		panic(e)
	}
}

// Set assigns the collector's internal error to an external error variable.
//
// This should be called in a defer with a named return to allow an error
// to be easily returned if one is collected:
//
//	func pants() (err error) {
//		ec := &ox.ErrCollector{}
//		defer ec.Set(&err)
//		ec.Do(fmt.Errorf("this error will be returned by the pants function"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Set(err *error) {
	if e.Err != nil {
		*err = e
	}
}

// Do collects the first error in a list of errors and holds on to it.
//
// If you pass the result of multiple functions to Do, they will not be
// short circuited on failure - the first error is retained by the collector
// and the rest are discarded. It is only intended to be used when you know
// that subsequent calls after the first error are safe to make.
func (e *ErrCollector) Do(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			return
		}
	}
}

// Must collects the first error in a list of errors and panics with it.
func (e *ErrCollector) Must(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			panic(e)
		}
	}
}
