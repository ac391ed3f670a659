package ox

import "io"

const defaultBufSize = 1024

// buf accumulates document bytes. With no sink attached it grows
// geometrically; with a stream sink it flushes what it holds and reuses
// its space instead of growing past capacity. Writes never return
// errors: the first sink error is cached and surfaced by whichever
// builder call observes it, the same trick encoding/xml's printer uses.
//
// Positions inside the buffer are meaningless to callers because a
// flush may reset them at any time; only the logical length is stable.
type buf struct {
	data    []byte
	w       io.Writer // nil for in-memory builders
	closer  io.Closer // what the builder itself opened, released by finish
	flushed int
	err     error

	// stage holds runs of verbatim bytes between entity writes in
	// appendEscaped. It lives here rather than on that method's stack
	// so slices of it passed through write's interface call do not
	// force a heap allocation per escape.
	stage [256]byte
}

func (b *buf) init(size int, w io.Writer, closer io.Closer) {
	if size <= 0 {
		size = defaultBufSize
	}
	b.data = make([]byte, 0, size)
	b.w = w
	b.closer = closer
}

// len reports the logical document length: bytes already handed to the
// sink plus bytes still buffered. Flushing does not change it.
func (b *buf) len() int {
	return b.flushed + len(b.data)
}

func (b *buf) append(c byte) {
	if cap(b.data)-len(b.data) < 1 {
		if b.w != nil {
			b.flush()
		} else {
			b.grow(1)
		}
	}
	b.data = append(b.data, c)
}

func (b *buf) appendString(s string) {
	if len(s) > cap(b.data)-len(b.data) {
		if b.w != nil {
			b.flush()
			if len(s) > cap(b.data) {
				// Too big to ever fit: skip the staging copy and
				// hand the run straight to the sink.
				b.writeString(s)
				return
			}
		} else {
			b.grow(len(s))
		}
	}
	b.data = append(b.data, s...)
}

func (b *buf) appendBytes(p []byte) {
	if len(p) > cap(b.data)-len(b.data) {
		if b.w != nil {
			b.flush()
			if len(p) > cap(b.data) {
				b.write(p)
				return
			}
		} else {
			b.grow(len(p))
		}
	}
	b.data = append(b.data, p...)
}

// grow makes room for at least n more bytes, at least doubling the
// capacity so append cost stays amortized-constant.
func (b *buf) grow(n int) {
	need := len(b.data) + n
	newCap := cap(b.data) * 2
	if newCap < need {
		newCap = need
	}
	nd := make([]byte, len(b.data), newCap)
	copy(nd, b.data)
	b.data = nd
}

// flush hands buffered bytes to the sink and resets the buffer. Only
// called when a sink is attached.
func (b *buf) flush() {
	if len(b.data) == 0 {
		return
	}
	b.write(b.data)
	b.data = b.data[:0]
}

func (b *buf) write(p []byte) {
	if b.err == nil {
		if _, err := b.w.Write(p); err != nil {
			b.err = err
		}
	}
	b.flushed += len(p)
}

func (b *buf) writeString(s string) {
	if b.err == nil {
		if _, err := io.WriteString(b.w, s); err != nil {
			b.err = err
		}
	}
	b.flushed += len(s)
}

// finish flushes anything buffered and releases whatever the builder
// itself opened. A caller-owned sink is left untouched.
func (b *buf) finish() error {
	if b.w != nil {
		b.flush()
	}
	if b.closer != nil {
		if err := b.closer.Close(); err != nil && b.err == nil {
			b.err = err
		}
		b.closer = nil
	}
	return b.err
}

func (b *buf) cachedWriteError() error {
	return b.err
}
