package ox

import "strconv"

// Attr is one attribute pair. Values are always strings; the typed
// constructors convert explicitly so nothing is coerced behind the
// caller's back:
//
//	b.Element("truck", ox.Attr{Name: "wheels"}.Int(6))
type Attr struct {
	Name  string
	Value string
}

func (a Attr) Bool(v bool) Attr     { a.Value = strconv.FormatBool(v); return a }
func (a Attr) Int(v int) Attr       { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int8(v int8) Attr     { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int16(v int16) Attr   { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int32(v int32) Attr   { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int64(v int64) Attr   { a.Value = strconv.FormatInt(v, 10); return a }
func (a Attr) Uint(v uint) Attr     { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint8(v uint8) Attr   { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint16(v uint16) Attr { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint32(v uint32) Attr { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint64(v uint64) Attr { a.Value = strconv.FormatUint(v, 10); return a }
func (a Attr) Float32(v float32) Attr {
	a.Value = strconv.FormatFloat(float64(v), 'g', -1, 32)
	return a
}
func (a Attr) Float64(v float64) Attr { a.Value = strconv.FormatFloat(v, 'g', -1, 64); return a }
