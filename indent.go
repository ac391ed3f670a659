package ox

import "strings"

// maxIndent caps the spaces in a single indentation run.
const maxIndent = 128

var indentSpaces = "\n" + strings.Repeat(" ", maxIndent)

// appendIndent writes a newline plus the current nesting's worth of
// spaces by slicing the static run above, so indentation never
// allocates. Nothing is written in compact mode or while the document
// is still empty, which keeps the very first token flush left.
func (b *Builder) appendIndent() {
	if b.indent == 0 {
		return
	}
	if b.buf.len() > 0 {
		cnt := b.indent*(b.depth+1) + 1
		if cnt > len(indentSpaces) {
			cnt = len(indentSpaces)
		}
		b.buf.appendString(indentSpaces[:cnt])
	}
}
