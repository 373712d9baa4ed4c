package perftest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Clock(t *testing.T) {
	r := NewRecorder()
	assert.Zero(t, r.Now())

	r.Advance(12.5)
	assert.Equal(t, 12.5, r.Now())

	r.SetNow(100)
	assert.Equal(t, float64(100), r.Now())
}

func TestRecorder_CapturesInOrder(t *testing.T) {
	r := NewRecorder()

	require.NoError(t, r.Mark("a", ""))
	r.Advance(5)
	require.NoError(t, r.Mark("b", "k=v"))
	require.NoError(t, r.Measure("m", 0, 5, ""))

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Kind: "mark", Name: "a"}, entries[0])
	assert.Equal(t, Entry{Kind: "mark", Name: "b", Start: 5, Detail: "k=v"}, entries[1])
	assert.Equal(t, Entry{Kind: "measure", Name: "m", Start: 0, End: 5}, entries[2])
}

func TestRecorder_EntriesIsACopy(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Mark("a", ""))

	entries := r.Entries()
	entries[0].Name = "mutated"

	assert.Equal(t, "a", r.Entries()[0].Name)
}

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Mark("load", "url=/"))
	require.NoError(t, r.Measure("load", 0, 50, ""))

	out, err := r.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, `- kind: mark
  name: load
  start: 0
  detail: url=/
- kind: measure
  name: load
  start: 0
  end: 50
`, string(out))
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder()
	r.Advance(10)
	require.NoError(t, r.Mark("a", ""))

	r.Reset()

	assert.Empty(t, r.Entries())
	// The clock is intentionally left alone.
	assert.Equal(t, float64(10), r.Now())
}
