// Package scratch is a reusable byte buffer for per-frame text such as window
// titles and HUD lines. A Buffer is not safe for concurrent use.
package scratch

import (
	"strconv"
	"unicode/utf8"
)

// Buffer appends formatted values into memory that is kept across Reset.
type Buffer struct {
	buf []byte
}

// New returns a buffer with capacity bytes reserved.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the contents without freeing memory. Call once per frame.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark bookmarks the current length for StringFrom.
func (b *Buffer) Mark() int { return len(b.buf) }

// StringFrom copies everything written since mark.
func (b *Buffer) StringFrom(mark int) string { return string(b.buf[mark:]) }

func (b *Buffer) Bytes() []byte  { return b.buf }
func (b *Buffer) String() string { return string(b.buf) }

// Grow makes room for n more bytes.
func (b *Buffer) Grow(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	nb := make([]byte, len(b.buf), max(2*cap(b.buf), len(b.buf)+n))
	copy(nb, b.buf)
	b.buf = nb
}

func (b *Buffer) Str(s string) *Buffer { b.buf = append(b.buf, s...); return b }
func (b *Buffer) Byte(c byte) *Buffer  { b.buf = append(b.buf, c); return b }
func (b *Buffer) Rune(r rune) *Buffer  { b.buf = utf8.AppendRune(b.buf, r); return b }
func (b *Buffer) Int(v int) *Buffer    { b.buf = strconv.AppendInt(b.buf, int64(v), 10); return b }
func (b *Buffer) Bool(v bool) *Buffer  { b.buf = strconv.AppendBool(b.buf, v); return b }

// Float appends v with prec digits after the point.
func (b *Buffer) Float(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Sprintf appends a formatted string and returns a copy of what it wrote.
// Only %s %d %f (with optional .prec, default 2) %t and %% are understood;
// anything else is written literally.
func (b *Buffer) Sprintf(format string, args ...any) string {
	mark := len(b.buf)
	ai := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.buf = append(b.buf, ch)
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b.buf = append(b.buf, '%')
			continue
		}
		prec := 2
		if i < len(format) && format[i] == '.' {
			j := i + 1
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
			if n, err := strconv.Atoi(format[i+1 : j]); err == nil {
				prec = n
			}
			i = j
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		b.appendArg(format[i], prec, args[ai])
		ai++
	}
	return string(b.buf[mark:])
}

func (b *Buffer) appendArg(verb byte, prec int, arg any) {
	switch verb {
	case 's':
		switch x := arg.(type) {
		case string:
			b.buf = append(b.buf, x...)
		case []byte:
			b.buf = append(b.buf, x...)
		case interface{ String() string }:
			b.buf = append(b.buf, x.String()...)
		default:
			b.buf = append(b.buf, "%!s"...)
		}
	case 'd':
		if v, ok := toInt64(arg); ok {
			b.buf = strconv.AppendInt(b.buf, v, 10)
		} else {
			b.buf = append(b.buf, "%!d"...)
		}
	case 'f':
		switch x := arg.(type) {
		case float32:
			b.buf = strconv.AppendFloat(b.buf, float64(x), 'f', prec, 32)
		case float64:
			b.buf = strconv.AppendFloat(b.buf, x, 'f', prec, 64)
		default:
			b.buf = append(b.buf, "%!f"...)
		}
	case 't':
		v, _ := arg.(bool)
		b.buf = strconv.AppendBool(b.buf, v)
	default:
		b.buf = append(b.buf, '%', verb)
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}
	return 0, false
}
