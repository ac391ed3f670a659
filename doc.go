/*
Package ox provides a fast, forward-only builder for XML documents.

The API is based on the Builder from Ruby's Ox gem [1]: one call per
node, an explicit element stack, and bytes streamed out as they are
produced. There is no tree and nothing is retained but the stack of
open element names, so memory use is flat no matter how large the
document gets.

	[1] https://github.com/ohler55/ox

Creating

A Builder writes either to memory, to any io.Writer, or to a file it
creates itself:

	b := ox.New()                     // in-memory, read back with String()
	b := ox.Open(w)                   // streams to w, w stays yours
	b, err := ox.Create("out.xml")    // streams to a file owned by the builder

Options use the functional options pattern
(https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis):

	b := ox.New(ox.WithIndent(0), ox.WithInitialSize(16384))

Provided options are:
  - WithIndent(width)
  - WithInitialSize(bytes)

Overview

A small document, built procedurally with an ErrCollector so the error
handling doesn't drown the structure:

	ec := &ox.ErrCollector{}
	defer ec.Panic()

	b := ox.New()
	ec.Do(
		b.Instruct("xml", ox.Attr{Name: "version", Value: "1.0"}),
		b.Element("library", ox.Attr{Name: "shelves", Value: "3"}),
		b.Element("book", ox.Attr{Name: "id"}.Int(1)),
		b.Text("Leaves of Grass"),
		b.Pop(),
		b.Close(),
	)
	s, _ := b.String()

Which produces:

	<?xml version="1.0"?>
	<library shelves="3">
	  <book id="1">Leaves of Grass</book>
	</library>

Open Tags

Element writes an opening tag up to but not including its final '>'.
The tag is completed by whichever child arrives first, so attributes
can still be added after the fact with Attr:

	b.Element("truck")
	b.Attr(ox.Attr{Name: "wheels"}.Int(6))
	b.Pop()

An element popped before any child arrives collapses to "<truck/>".
Pop closes the newest element; Close pops everything that remains,
terminates the document with a newline and flushes.

Indentation

Each structural node (element, comment, doctype, cdata, instruct)
starts a new line indented by the configured width times the nesting
depth, two spaces per level by default. WithIndent(0) switches all of
that off and produces compact output. Text and Raw are never indented
and never force a new line, so an element containing only character
data opens, fills and closes on a single line.

Escaping

Text, attribute names and attribute values have the five XML special
characters replaced with named entities: &quot; &amp; &apos; &lt; and
&gt;. All other bytes pass through untouched, including multi-byte
UTF-8 sequences, with one exception: control bytes that can never
appear in XML (0x00-0x1F other than tab, newline and carriage return)
fail with *EncodingError. Element names, comments, doctypes, cdata and
raw content are written exactly as given; keeping those valid is the
caller's job.

Errors

Everything returns error, and the kinds are concrete so they can be
picked apart with errors.As: *UsageError for calls the builder's state
does not allow, *EncodingError for invalid bytes, *DepthError when
elements nest more than 128 deep, *ResourceError when Create cannot
open its file. Write failures on a stream sink are cached internally
and returned by whichever call observes them first, the same way
encoding/xml's printer handles it.

Encodings

ox supports encoders from the golang.org/x/text/encoding package.
UTF-8 strings written to the builder are converted on the fly and the
document declaration picks the encoding up automatically.

To write your XML using the windows-1252 encoder:

	b := &bytes.Buffer{}
	enc := charmap.Windows1252.NewEncoder()
	x := ox.OpenEncoding(b, "windows-1252", enc)
	ec.Do(
		x.Instruct("xml", ox.Attr{Name: "version", Value: "1.0"}),
		x.Element("hello"),
		x.Text("Résumé"),
		x.Close(),
	)
	os.Stdout.Write(b.Bytes())

The document line will look like this:

	<?xml version="1.0" encoding="windows-1252"?>

A Builder is not safe for concurrent use. Builders are independent of
each other, so use one per goroutine.
*/
package ox
