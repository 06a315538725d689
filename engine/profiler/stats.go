package profiler

import "runtime"

// Memory is a snapshot of heap counters for the debug title.
type Memory struct {
	Alloc   uint64 // live heap bytes
	Mallocs uint64
	NumGC   uint32
}

func ReadMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{Alloc: m.Alloc, Mallocs: m.Mallocs, NumGC: m.NumGC}
}
