package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("test.op")
	time.Sleep(2 * time.Millisecond)
	stop()

	snap := Snapshot()
	if snap["test.op"] < 2*time.Millisecond {
		t.Fatalf("tracked %v, want at least 2ms", snap["test.op"])
	}

	stop = Track("test.op")
	stop()
	if got := Snapshot()["test.op"]; got < snap["test.op"] {
		t.Fatalf("second sample shrank the total: %v -> %v", snap["test.op"], got)
	}
}

func TestResetFrameClears(t *testing.T) {
	Track("test.reset")()
	ResetFrame()
	if snap := Snapshot(); len(snap) != 0 {
		t.Fatalf("snapshot after reset has %d entries", len(snap))
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["render.Frame"] = 3 * time.Millisecond
	frameTotals["render.Overlay"] = 1 * time.Millisecond
	frameTotals["viewer.Update"] = 5 * time.Millisecond
	mu.Unlock()

	if got, want := SumWithPrefix("render."), 4*time.Millisecond; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := SumWithPrefix("nothing."); got != 0 {
		t.Fatalf("got %v for an unknown prefix, want 0", got)
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["slow"] = 10 * time.Millisecond
	frameTotals["fast"] = 1 * time.Millisecond
	frameTotals["medium"] = 5 * time.Millisecond
	mu.Unlock()

	got := TopN(2)
	if !strings.HasPrefix(got, "slow:") {
		t.Fatalf("TopN(2) = %q, want the slowest bucket first", got)
	}
	if strings.Contains(got, "fast") {
		t.Fatalf("TopN(2) = %q, must cut the fastest bucket", got)
	}
	if !strings.Contains(got, "medium:") {
		t.Fatalf("TopN(2) = %q, missing the second bucket", got)
	}

	if got := TopN(10); !strings.Contains(got, "fast:1ms") {
		t.Fatalf("TopN(10) = %q, want all buckets with trimmed decimals", got)
	}
}
