package ox

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tt "github.com/artemshein/ox/testtool"
)

func TestBufGrowInMemory(t *testing.T) {
	var b buf
	b.init(2, nil, nil)
	for i := 0; i < 10; i++ {
		b.appendString("abcdefg")
	}
	tt.Equals(t, 70, b.len())
	tt.Equals(t, strings.Repeat("abcdefg", 10), string(b.data))
	tt.OK(t, b.cachedWriteError())
}

func TestBufByteAppendGrow(t *testing.T) {
	var b buf
	b.init(1, nil, nil)
	for i := 0; i < 100; i++ {
		b.append(byte('a' + i%26))
	}
	tt.Equals(t, 100, b.len())
}

func TestBufSinkFlushAndReuse(t *testing.T) {
	var out bytes.Buffer
	var b buf
	b.init(4, &out, nil)
	b.appendString("ab")
	tt.Equals(t, "", out.String())
	tt.Equals(t, 2, b.len())

	// does not fit alongside "ab": the buffer flushes and reuses its
	// space rather than growing
	b.appendString("cdef")
	tt.Equals(t, "ab", out.String())
	tt.Equals(t, 4, cap(b.data))
	tt.Equals(t, 6, b.len())

	// larger than the buffer will ever hold: straight to the sink
	b.appendString("ghijklmnop")
	tt.Equals(t, "abcdefghijklmnop", out.String())
	tt.Equals(t, 16, b.len())

	b.flush()
	tt.Equals(t, "abcdefghijklmnop", out.String())
	tt.Equals(t, 16, b.len())
	tt.OK(t, b.cachedWriteError())
}

func TestBufAppendBytes(t *testing.T) {
	var out bytes.Buffer
	var b buf
	b.init(4, &out, nil)
	b.appendBytes([]byte("abc"))
	b.append('d')
	b.appendBytes([]byte("efghij"))
	b.flush()
	tt.Equals(t, "abcdefghij", out.String())
	tt.Equals(t, 10, b.len())
}

func TestBufSinkErrorSticky(t *testing.T) {
	fail := errors.New("nope")
	d := &DodgyWriter{
		writer:     &bytes.Buffer{},
		shouldFail: func([]byte) (bool, int, error) { return true, 0, fail },
	}
	var b buf
	b.init(2, d, nil)
	b.appendString("abcdef")
	tt.Assert(t, errors.Is(b.cachedWriteError(), fail))
	tt.Equals(t, 6, b.len())

	// later writes are skipped but the logical length keeps counting
	b.appendString("xyzxyz")
	tt.Equals(t, 12, b.len())
	tt.Assert(t, errors.Is(b.finish(), fail))
}

func TestBufFinishClosesOnce(t *testing.T) {
	rc := &closableBuffer{}
	var b buf
	b.init(4, rc, rc)
	b.appendString("hello")
	tt.OK(t, b.finish())
	tt.Equals(t, true, rc.closed)
	tt.Equals(t, "hello", rc.String())

	rc.closed = false
	tt.OK(t, b.finish())
	tt.Equals(t, false, rc.closed)
}
