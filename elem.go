package ox

// MaxDepth is the number of elements that may be open at once.
const MaxDepth = 128

// element is one frame of the open-element stack. An opening tag is
// written without its final '>' so attributes can still be appended;
// whichever child arrives first completes it. nonTextChild decides
// whether the closing tag gets its own indented line: elements holding
// only text or raw content close on the same line.
type element struct {
	name         string
	hasChild     bool
	nonTextChild bool
}

// markChild records that a child of some kind is being written at the
// current position, completing the enclosing element's opening tag if
// it is still pending. No-op at the document level.
func (b *Builder) markChild(isText bool) {
	if b.depth < 0 {
		return
	}
	e := &b.stack[b.depth]
	if !e.hasChild {
		e.hasChild = true
		b.buf.append('>')
	}
	if !isText {
		e.nonTextChild = true
	}
}

func (b *Builder) push(name string) {
	b.depth++
	e := &b.stack[b.depth]
	e.name = name
	e.hasChild = false
	e.nonTextChild = false
}

// pop closes the top frame: "/>" when it never had children, otherwise
// a closing tag reproducing the stored name exactly, indented onto its
// own line only when a non-text child was recorded. The caller checks
// that a frame is open.
func (b *Builder) pop() {
	e := &b.stack[b.depth]
	b.depth--
	if e.hasChild {
		if e.nonTextChild {
			b.appendIndent()
		}
		b.buf.appendString("</")
		b.buf.appendString(e.name)
		b.buf.append('>')
	} else {
		b.buf.appendString("/>")
	}
	e.name = ""
}
