package scratch

import "testing"

func TestSprintf(t *testing.T) {
	b := New(8)
	got := b.Sprintf("planar | %d faces | fov %.1f | %s %t 100%%", 32, float32(45), "fx", true)
	want := "planar | 32 faces | fov 45.0 | fx true 100%"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if b.String() != want {
		t.Fatalf("buffer=%q", b.String())
	}
}

func TestSprintfDefaultPrecisionAndBadArgs(t *testing.T) {
	b := New(0)
	if got := b.Sprintf("%f %d %q", 1.5, "x"); got != "1.50 %!d " {
		t.Fatalf("got %q", got)
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	b := New(16)
	b.Str("depth ").Float(2.41421, 3).Byte(' ').Int(-7).Rune('é').Bool(false)
	if b.String() != "depth 2.414 -7éfalse" {
		t.Fatalf("got %q", b.String())
	}
	c := b.Cap()
	b.Reset()
	if b.Len() != 0 || b.Cap() != c {
		t.Fatalf("len=%d cap=%d want 0,%d", b.Len(), b.Cap(), c)
	}
	m := b.Mark()
	b.Str("a")
	m2 := b.Mark()
	b.Str("bc")
	if b.StringFrom(m) != "abc" || b.StringFrom(m2) != "bc" {
		t.Fatalf("marks %q %q", b.StringFrom(m), b.StringFrom(m2))
	}
}

func TestGrow(t *testing.T) {
	b := New(4)
	b.Str("abc")
	b.Grow(10)
	if b.Cap() < 13 || b.String() != "abc" {
		t.Fatalf("cap=%d s=%q", b.Cap(), b.String())
	}
}
