//go:build !profile

package profiler

import "testing"

func TestDisabledIsNoop(t *testing.T) {
	Init(8)
	end := Start("x")
	if end == nil {
		t.Fatalf("nil end func")
	}
	end()
	if Enabled {
		t.Fatalf("Enabled in a build without the profile tag")
	}
	if err := Dump("unused"); err != nil {
		t.Fatalf("Dump: %v", err)
	}
}

func TestReadMemory(t *testing.T) {
	if m := ReadMemory(); m.Alloc == 0 {
		t.Fatalf("alloc=0")
	}
}
