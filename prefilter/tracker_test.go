package prefilter

import (
	"bytes"
	"testing"
)

// scriptedPrefilter reports candidates from a fixed list of positions.
type scriptedPrefilter struct {
	positions []int
}

func (s *scriptedPrefilter) Find(_ []byte, start int) int {
	for _, pos := range s.positions {
		if pos >= start {
			return pos
		}
	}
	return -1
}

func (s *scriptedPrefilter) IsComplete() bool { return false }
func (s *scriptedPrefilter) LiteralLen() int  { return 0 }
func (s *scriptedPrefilter) HeapBytes() int   { return 0 }
func (s *scriptedPrefilter) Name() string     { return "scripted" }

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTrackerBasic(t *testing.T) {
	tracker := NewTracker(&scriptedPrefilter{positions: []int{5, 10, 15, 20}})

	if !tracker.IsActive() {
		t.Error("Tracker should be active initially")
	}

	if pos := tracker.Find([]byte("test input"), 0); pos != 5 {
		t.Errorf("Find() = %d, want 5", pos)
	}
	tracker.ConfirmMatch()
	if pos := tracker.Find([]byte("test input"), 6); pos != 10 {
		t.Errorf("Find() = %d, want 10", pos)
	}
	if pos := tracker.Find([]byte("test input"), 21); pos != -1 {
		t.Errorf("Find() = %d past the last candidate, want -1", pos)
	}
	if !tracker.IsActive() {
		t.Error("Tracker should stay active before the warmup period ends")
	}
}

func TestTrackerDisablesOnLowEfficiency(t *testing.T) {
	tracker := NewTrackerWithConfig(&scriptedPrefilter{positions: sequence(200)}, TrackerConfig{
		CheckInterval: 10,
		MinEfficiency: 0.1,
		WarmupPeriod:  50,
	})
	haystack := make([]byte, 300)

	for i := 0; i < 200; i++ {
		if tracker.Find(haystack, i) == -1 {
			break
		}
	}

	if tracker.IsActive() {
		t.Error("Tracker should be disabled after 0% efficiency")
	}
	if pos := tracker.Find(haystack, 0); pos != -1 {
		t.Errorf("Find() = %d when disabled, want -1", pos)
	}
}

func TestTrackerStaysActiveOnHighEfficiency(t *testing.T) {
	tracker := NewTrackerWithConfig(&scriptedPrefilter{positions: sequence(200)}, TrackerConfig{
		CheckInterval: 10,
		MinEfficiency: 0.1,
		WarmupPeriod:  50,
	})
	haystack := make([]byte, 300)

	for i := 0; i < 200; i++ {
		if tracker.Find(haystack, i) == -1 {
			break
		}
		if i%2 == 0 {
			tracker.ConfirmMatch()
		}
	}

	if !tracker.IsActive() {
		t.Error("Tracker should still be active with 50% efficiency")
	}
}

func TestTrackerWarmupPeriod(t *testing.T) {
	tracker := NewTrackerWithConfig(&scriptedPrefilter{positions: sequence(100)}, TrackerConfig{
		CheckInterval: 1,
		MinEfficiency: 0.5,
		WarmupPeriod:  50,
	})
	haystack := make([]byte, 200)

	for i := 0; i < 40; i++ {
		tracker.Find(haystack, i)
	}
	if !tracker.IsActive() {
		t.Error("Tracker should still be active during warmup")
	}

	for i := 40; i < 100; i++ {
		tracker.Find(haystack, i)
	}
	if tracker.IsActive() {
		t.Error("Tracker should be disabled after warmup with 0% efficiency")
	}
}

// TestTrackerMinEfficiency feeds the same 50% confirm rate through
// trackers with thresholds on either side of it.
func TestTrackerMinEfficiency(t *testing.T) {
	tests := []struct {
		minEfficiency float64
		wantActive    bool
	}{
		{0.0, true},
		{0.25, true},
		{0.49, true},
		{0.51, false},
		{0.9, false},
	}

	haystack := make([]byte, 300)
	for _, tt := range tests {
		tracker := NewTrackerWithConfig(&scriptedPrefilter{positions: sequence(200)}, TrackerConfig{
			CheckInterval: 16,
			MinEfficiency: tt.minEfficiency,
			WarmupPeriod:  32,
		})

		for i := 0; i < 200 && tracker.IsActive(); i++ {
			if tracker.Find(haystack, i) == -1 {
				break
			}
			if i%2 == 0 {
				tracker.ConfirmMatch()
			}
		}

		if tracker.IsActive() != tt.wantActive {
			t.Errorf("MinEfficiency %.2f: IsActive() = %v, want %v",
				tt.minEfficiency, tracker.IsActive(), tt.wantActive)
		}
	}
}

func TestTrackerNilPrefilter(t *testing.T) {
	if tracker := NewTracker(nil); tracker != nil {
		t.Error("NewTracker(nil) should return nil")
	}
}

// TestTrackerDenseHaystack drives a real prefilter over input where the
// candidate byte is everywhere but a match almost never follows.
func TestTrackerDenseHaystack(t *testing.T) {
	pf := newMemmemPrefilter([]byte("a"), false)
	tracker := NewTracker(pf)
	haystack := bytes.Repeat([]byte("a"), 1000)

	start := 0
	for tracker.IsActive() {
		pos := tracker.Find(haystack, start)
		if pos == -1 {
			break
		}
		start = pos + 1
	}

	if tracker.IsActive() {
		t.Error("Tracker should retire a prefilter that never confirms")
	}
	if start >= len(haystack) {
		t.Errorf("retired at %d, want retirement before the end of the haystack", start)
	}
}

func TestDefaultTrackerConfig(t *testing.T) {
	config := DefaultTrackerConfig()

	if config.CheckInterval == 0 {
		t.Error("CheckInterval should not be 0")
	}
	if config.MinEfficiency <= 0 || config.MinEfficiency >= 1 {
		t.Errorf("MinEfficiency = %f, should be between 0 and 1", config.MinEfficiency)
	}
	if config.WarmupPeriod == 0 {
		t.Error("WarmupPeriod should not be 0")
	}
}

func BenchmarkTrackerOverhead(b *testing.B) {
	pf := newMemchrPrefilter([]byte{'x'}, false)
	tracker := NewTracker(pf)

	haystack := bytes.Repeat([]byte("a"), 1000)
	haystack[100] = 'x'
	haystack[500] = 'x'
	haystack[900] = 'x'

	b.Run("direct", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			pf.Find(haystack, 0)
		}
	})

	b.Run("tracked", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tracker.Find(haystack, 0)
			tracker.ConfirmMatch()
		}
	})
}
