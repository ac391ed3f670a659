package ox

// Per-byte encoded output length for content run through the escaper:
// 1 for bytes copied verbatim, the entity length for the five escaped
// characters, and 10 for bytes that cannot appear in XML at all
// (control bytes other than tab, newline and carriage return). The 10
// exceeds every entity length, so a sum equal to the input length
// proves every byte is plain; no mix of invalid bytes and entities can
// fake it. Bytes >= 0x80 are UTF-8 lead or continuation bytes and pass
// through untouched; the escaper never inspects multi-byte sequences.
var xmlByteLen = [256]byte{
	'\t': 1, '\n': 1, '\r': 1,
	'"': 6, '&': 5, '\'': 6, '<': 4, '>': 4,
}

func init() {
	for i := 0; i < 0x20; i++ {
		if xmlByteLen[i] == 0 {
			xmlByteLen[i] = 10
		}
	}
	for i := 0x20; i < 0x100; i++ {
		if xmlByteLen[i] == 0 {
			xmlByteLen[i] = 1
		}
	}
}

var (
	escQuot = []byte("&quot;")
	escAmp  = []byte("&amp;")
	escApos = []byte("&apos;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
)

// escapedLen returns the total encoded length of s. A string holding
// anything but plain bytes always sums past len(s), forcing the escape
// pass that either substitutes entities or reports the invalid byte.
func escapedLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n += int(xmlByteLen[s[i]])
	}
	return n
}

// appendEscaped writes s with the five XML special characters replaced
// by their named entities. When the precomputed length shows nothing
// needs escaping the whole run is appended in one call; otherwise runs
// of verbatim bytes are staged in the buffer's small staging array
// between entity writes. An invalid byte aborts with EncodingError, leaving whatever
// preceded it in the buffer.
func (b *buf) appendEscaped(s string) error {
	if escapedLen(s) == len(s) {
		b.appendString(s)
		return nil
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if xmlByteLen[c] == 1 {
			if n == len(b.stage) {
				b.appendBytes(b.stage[:n])
				n = 0
			}
			b.stage[n] = c
			n++
			continue
		}
		if n > 0 {
			b.appendBytes(b.stage[:n])
			n = 0
		}
		switch c {
		case '"':
			b.appendBytes(escQuot)
		case '&':
			b.appendBytes(escAmp)
		case '\'':
			b.appendBytes(escApos)
		case '<':
			b.appendBytes(escLt)
		case '>':
			b.appendBytes(escGt)
		default:
			return &EncodingError{Byte: c}
		}
	}
	if n > 0 {
		b.appendBytes(b.stage[:n])
	}
	return nil
}
