// Package perftest provides a deterministic, in-memory implementation of
// the Performance capability for unit tests. The Recorder captures every
// mark and measure in order, runs on a manually-advanced clock, and can
// snapshot the captured timeline as YAML for comparison against "golden"
// testdata files.
package perftest

import (
	"sync"

	yaml "gopkg.in/yaml.v2"
)

// Entry is one captured timeline entry. For marks, Start holds the clock
// reading at emission and End stays zero.
type Entry struct {
	Kind   string  `yaml:"kind"`
	Name   string  `yaml:"name"`
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end,omitempty"`
	Detail string  `yaml:"detail,omitempty"`
}

// NewRecorder returns a Recorder whose clock starts at zero and only moves
// when Advance or SetNow is called.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Recorder implements the tracingweb Performance interface by appending
// entries to an in-memory list. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	now     float64
	entries []Entry
}

// Now returns the current manual-clock reading in milliseconds.
func (r *Recorder) Now() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

// Advance moves the manual clock forward by d milliseconds.
func (r *Recorder) Advance(d float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now += d
}

// SetNow moves the manual clock to an absolute reading.
func (r *Recorder) SetNow(t float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = t
}

// Mark captures a mark at the current clock reading.
func (r *Recorder) Mark(name, detail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Kind:   "mark",
		Name:   name,
		Start:  r.now,
		Detail: detail,
	})
	return nil
}

// Measure captures a measure spanning [start, end].
func (r *Recorder) Measure(name string, start, end float64, detail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Kind:   "measure",
		Name:   name,
		Start:  start,
		End:    end,
		Detail: detail,
	})
	return nil
}

// Entries returns a copy of the captured entries in emission order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset drops all captured entries but keeps the clock.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Snapshot renders the captured timeline as YAML, suitable for golden-file
// assertions with e.g. goldie.
func (r *Recorder) Snapshot() ([]byte, error) {
	return yaml.Marshal(r.Entries())
}
