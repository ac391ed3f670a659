package ox

import (
	"io"
	"os"

	"golang.org/x/text/encoding"
)

// Builder assembles an XML document one call per node, streaming bytes
// to its sink as it goes. Nothing is buffered beyond the output buffer
// itself: there is no tree, only a stack of open elements.
//
// Opening tags are completed lazily. Element writes everything up to
// but not including the closing '>' of the opening tag, so attributes
// can still be added with Attr; whichever child arrives first writes
// the '>', and an element popped with no children collapses to
// "<name/>".
//
// A Builder is not safe for concurrent use; give each goroutine its
// own.
type Builder struct {
	buf      buf
	indent   int
	size     int
	encoding string
	depth    int
	closed   bool
	stack    [MaxDepth]element
}

// Option is an option to the Builder.
type Option func(b *Builder)

// WithIndent sets the number of spaces each nesting level adds to a
// structural node's line. The default is 2; 0 produces fully compact
// output with no newlines between nodes:
//
//	b := ox.New(ox.WithIndent(0))
//
// Negative widths are treated as 0. Indentation runs are capped at 128
// spaces however deep the document gets, so widths beyond that clamp
// to the cap.
func WithIndent(width int) Option {
	return func(b *Builder) {
		if width < 0 {
			width = 0
		} else if width > maxIndent {
			width = maxIndent
		}
		b.indent = width
	}
}

// WithInitialSize sets the initial capacity of the output buffer in
// bytes. Set it to the expected document size to avoid regrowth, or
// leave it alone for the default of 1024.
func WithInitialSize(size int) Option {
	return func(b *Builder) {
		b.size = size
	}
}

func newBuilder(w io.Writer, closer io.Closer, options ...Option) *Builder {
	b := &Builder{indent: 2, depth: -1}
	for _, o := range options {
		o(b)
	}
	b.buf.init(b.size, w, closer)
	return b
}

// New returns an in-memory Builder. The document is retrieved with
// String at any point during construction, or after Close.
func New(options ...Option) *Builder {
	return newBuilder(nil, nil, options...)
}

// Open returns a Builder that streams to w. Bytes are handed to w
// whenever the buffer fills and on Flush and Close, but w itself is
// never closed: it belongs to the caller.
func Open(w io.Writer, options ...Option) *Builder {
	return newBuilder(w, nil, options...)
}

// OpenEncoding returns a Builder that streams to w through the
// supplied encoding.
//
// This example opens a builder using the utf-16be encoding:
//
//	enc := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewEncoder()
//	b := ox.OpenEncoding(w, "utf-16be", enc)
//
// You should still write UTF-8 strings to the builder - they are
// converted on the fly to the target encoding, with characters the
// target cannot represent emitted as numeric references. The name is
// recorded as the declared encoding, so an Instruct("xml", ...) call
// without an explicit encoding attribute will declare it.
func OpenEncoding(w io.Writer, name string, encoder *encoding.Encoder, options ...Option) *Builder {
	enc := encoding.HTMLEscapeUnsupported(encoder).Writer(w)
	closer, _ := enc.(io.Closer)
	b := newBuilder(enc, closer, options...)
	b.encoding = name
	return b
}

// Create returns a Builder writing to a newly created file at path.
// The builder owns the file and closes it on Close. A failure to open
// the file is returned as a *ResourceError.
func Create(path string, options ...Option) (*Builder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return newBuilder(f, f, options...), nil
}

// Depth returns the number of elements currently open.
func (b *Builder) Depth() int {
	return b.depth + 1
}

// Encoding returns the declared document encoding: the name given to
// OpenEncoding, or the value of the last encoding attribute passed to
// Instruct. Empty until one of those happens.
func (b *Builder) Encoding() string {
	return b.encoding
}

// Instruct writes a processing instruction. The usual target is "xml":
//
//	b.Instruct("xml", ox.Attr{Name: "version", Value: "1.0"})
//
// Only the version, encoding and standalone attributes are written,
// always in that order and with their values untouched; anything else
// is ignored. An encoding value is recorded as the declared document
// encoding. With no attributes at all the bare form "<?target?>" is
// emitted.
func (b *Builder) Instruct(target string, attrs ...Attr) error {
	if target == "" {
		return &UsageError{Msg: "missing instruct target"}
	}
	b.markChild(false)
	b.appendIndent()
	b.buf.appendString("<?")
	if err := b.buf.appendEscaped(target); err != nil {
		return err
	}
	var version, enc, standalone string
	var hasVersion, hasEnc, hasStandalone bool
	for _, a := range attrs {
		switch a.Name {
		case "version":
			version, hasVersion = a.Value, true
		case "encoding":
			enc, hasEnc = a.Value, true
		case "standalone":
			standalone, hasStandalone = a.Value, true
		}
	}
	if hasEnc {
		b.encoding = enc
	} else if target == "xml" && b.encoding != "" {
		enc, hasEnc = b.encoding, true
	}
	if hasVersion {
		b.appendRawAttr("version", version)
	}
	if hasEnc {
		b.appendRawAttr("encoding", enc)
	}
	if hasStandalone {
		b.appendRawAttr("standalone", standalone)
	}
	b.buf.appendString("?>")
	return b.buf.cachedWriteError()
}

// Element opens an element, writing its opening tag up to but not
// including the terminating '>'. The element stays open until Pop or
// Close. The name is written byte for byte; attribute names and values
// are escaped. Opening a 129th nested element fails with *DepthError
// before anything is written.
func (b *Builder) Element(name string, attrs ...Attr) error {
	if name == "" {
		return &UsageError{Msg: "missing element name"}
	}
	if b.depth+1 >= MaxDepth {
		return &DepthError{Depth: b.depth + 1}
	}
	b.markChild(false)
	b.appendIndent()
	b.push(name)
	b.buf.append('<')
	b.buf.appendString(name)
	if err := b.appendAttrs(attrs); err != nil {
		return err
	}
	return b.buf.cachedWriteError()
}

// Attr adds attributes to the element most recently opened. It fails
// with *UsageError once the opening tag has been completed by a child
// of any kind, or when no element is open at all.
func (b *Builder) Attr(attrs ...Attr) error {
	if b.depth < 0 {
		return &UsageError{Msg: "no open element for attributes"}
	}
	if b.stack[b.depth].hasChild {
		return &UsageError{Msg: "element " + b.stack[b.depth].name + " already has children"}
	}
	if err := b.appendAttrs(attrs); err != nil {
		return err
	}
	return b.buf.cachedWriteError()
}

// Comment writes "<!-- text -->". The text is not inspected or
// escaped; the caller keeps "--" out of it.
func (b *Builder) Comment(text string) error {
	b.markChild(false)
	b.appendIndent()
	b.buf.appendString("<!-- ")
	b.buf.appendString(text)
	b.buf.appendString(" -->")
	return b.buf.cachedWriteError()
}

// Doctype writes "<!DOCTYPE text>" with the text verbatim.
func (b *Builder) Doctype(text string) error {
	b.markChild(false)
	b.appendIndent()
	b.buf.appendString("<!DOCTYPE ")
	b.buf.appendString(text)
	b.buf.append('>')
	return b.buf.cachedWriteError()
}

// Text writes character content with the five XML special characters
// escaped as named entities. Text is never indented, and an element
// holding only text closes on the same line. A byte that cannot appear
// in XML at all fails with *EncodingError.
func (b *Builder) Text(text string) error {
	b.markChild(true)
	if err := b.buf.appendEscaped(text); err != nil {
		return err
	}
	return b.buf.cachedWriteError()
}

// CData writes "<![CDATA[data]]>" with the data verbatim. The caller
// keeps "]]>" out of it.
func (b *Builder) CData(data string) error {
	b.markChild(false)
	b.appendIndent()
	b.buf.appendString("<![CDATA[")
	b.buf.appendString(data)
	b.buf.appendString("]]>")
	return b.buf.cachedWriteError()
}

// Raw writes text to the document completely unmodified. Like Text it
// counts as text content for layout, so no indentation is added around
// it.
func (b *Builder) Raw(text string) error {
	b.markChild(true)
	b.buf.appendString(text)
	return b.buf.cachedWriteError()
}

// Pop closes the most recently opened element.
func (b *Builder) Pop() error {
	if b.depth < 0 {
		return &UsageError{Msg: "no open element to pop"}
	}
	b.pop()
	return b.buf.cachedWriteError()
}

// Flush writes anything buffered to a stream sink without closing it.
// In-memory builders ignore it.
func (b *Builder) Flush() error {
	if b.buf.w != nil {
		b.buf.flush()
	}
	return b.buf.cachedWriteError()
}

// Close pops every open element, newest first, terminates the document
// with a newline and flushes the sink. A file opened by Create and the
// encoder wrapper added by OpenEncoding are closed; a caller-supplied
// io.Writer is not. Calling Close again does nothing.
func (b *Builder) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	for b.depth >= 0 {
		b.pop()
	}
	b.buf.append('\n')
	return b.buf.finish()
}

// String returns the document built so far, guaranteeing a trailing
// newline when it is non-empty. The buffer itself is left alone, so
// calling String mid-build never changes the final document. It fails
// with *UsageError on builders bound to a stream or file: their bytes
// may already be gone.
func (b *Builder) String() (string, error) {
	if b.buf.w != nil {
		return "", &UsageError{Msg: "cannot build a string from a stream or file builder"}
	}
	n := len(b.buf.data)
	if n > 0 && b.buf.data[n-1] != '\n' {
		return string(b.buf.data) + "\n", nil
	}
	return string(b.buf.data), nil
}

func (b *Builder) appendAttrs(attrs []Attr) error {
	for _, a := range attrs {
		b.buf.append(' ')
		if err := b.buf.appendEscaped(a.Name); err != nil {
			return err
		}
		b.buf.appendString(`="`)
		if err := b.buf.appendEscaped(a.Value); err != nil {
			return err
		}
		b.buf.append('"')
	}
	return nil
}

// appendRawAttr writes an attribute with its value untouched. Instruct
// declares its values are already literal text.
func (b *Builder) appendRawAttr(name, value string) {
	b.buf.append(' ')
	b.buf.appendString(name)
	b.buf.appendString(`="`)
	b.buf.appendString(value)
	b.buf.append('"')
}
