package colors

import "testing"

func TestHex(t *testing.T) {
	if got := Hex(0xffffff); got != White {
		t.Fatalf("Hex(white)=%v", got)
	}
	if got := Hex(0x0000ff); got != Blue {
		t.Fatalf("Hex(blue)=%v", got)
	}
}

func TestRGBA8Clamps(t *testing.T) {
	got := Color{-1, 0.5, 2, 1}.RGBA8()
	if got != [4]uint8{0, 128, 255, 255} {
		t.Fatalf("RGBA8=%v", got)
	}
	if Blue.RGBA8() != [4]uint8{0, 0, 255, 255} {
		t.Fatalf("blue=%v", Blue.RGBA8())
	}
}
