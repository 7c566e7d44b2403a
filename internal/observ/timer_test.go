package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	clock := time.Unix(0, 0)
	tm := NewTimer()
	tm.now = func() time.Time { return clock }

	walk := tm.Begin("walk")
	clock = clock.Add(30 * time.Millisecond)
	tm.End(walk, "120 nodes")

	done := tm.Track("render")
	clock = clock.Add(5 * time.Millisecond)
	done("")

	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d", len(report.Phases))
	}
	if report.Phases[0].DurationMS != 30 || report.Phases[1].DurationMS != 5 || report.TotalMS != 35 {
		t.Fatalf("unexpected report: %+v", report)
	}

	summary := tm.Summary()
	for _, want := range []string{"walk", "// 120 nodes", "render", "total", "35.00 ms"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("expected empty report, got %+v", r)
	}
}
