//go:build profile

// Package profiler records named scopes into a ring buffer and exports them
// as a speedscope evented profile. Without the "profile" build tag every
// call is a no-op.
package profiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init must be called once with the number of scope events to keep.
// Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start begins a scope and returns the func that ends it.
//
//	defer profiler.Start("plane.GenerateGrid")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	begin := time.Now().UnixNano()
	ring.push(event{at: begin, frame: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), begin)
		ring.push(event{at: end, frame: id})
	}
}

// Dump writes the recorded scopes to path as a speedscope file.
func Dump(path string) error {
	doc, err := build(ring.snapshot(), frameNames(), "planar capture")
	if err != nil {
		return err
	}
	return writeJSON(doc, path)
}

// OpenGraph dumps into the temp dir and launches the speedscope viewer on it.
func OpenGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "planar.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	hideConsole(cmd)
	if err := cmd.Start(); err != nil {
		return path, fmt.Errorf("profiler: launch speedscope: %w", err)
	}
	return path, nil
}

type event struct {
	at    int64 // unix ns
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

var (
	framesMu sync.Mutex
	frames   []string
	frameIDs = map[string]int{}
)

func intern(name string) int {
	framesMu.Lock()
	defer framesMu.Unlock()
	if id, ok := frameIDs[name]; ok {
		return id
	}
	id := len(frames)
	frameIDs[name] = id
	frames = append(frames, name)
	return id
}

func frameNames() []string {
	framesMu.Lock()
	defer framesMu.Unlock()
	return append([]string(nil), frames...)
}
