package feed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

type sent struct {
	stream string
	data   []byte
}

func newRecordingServer(interval time.Duration) (*Server, *[]sent) {
	var out []sent
	s := New("run-1", interval, zerolog.Nop())
	s.publish = func(stream string, data []byte) {
		out = append(out, sent{stream: stream, data: data})
	}
	return s, &out
}

func TestPublishMarkersRateLimited(t *testing.T) {
	s, out := newRecordingServer(100 * time.Millisecond)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := []MarkerState{{ID: "a", Label: "Train A", X: 50, Y: 300, Curve: "main", Fraction: 0.1}}

	for ms := 0; ms <= 250; ms += 16 {
		s.PublishMarkers(base.Add(time.Duration(ms)*time.Millisecond), "phase-1", m)
	}

	// Sent at 0, 112 and 224 ms.
	if len(*out) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(*out))
	}
	var snap Snapshot
	if err := json.Unmarshal((*out)[0].data, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	want := Snapshot{Run: "run-1", Phase: "phase-1", At: base, Markers: m}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if (*out)[0].stream != MarkersStream {
		t.Fatalf("published on %q", (*out)[0].stream)
	}
}

func TestPublishPhaseAlwaysSent(t *testing.T) {
	s, out := newRecordingServer(time.Hour)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.PublishPhase(PhaseChange{From: "idle", To: "phase-1", Name: "Phase 1", Count: 1, At: at})
	s.PublishPhase(PhaseChange{From: "phase-1", To: "phase-2", Name: "Phase 2", Count: 2, At: at})

	if len(*out) != 2 {
		t.Fatalf("expected 2 phase events, got %d", len(*out))
	}
	var got PhaseChange
	if err := json.Unmarshal((*out)[1].data, &got); err != nil {
		t.Fatalf("unmarshal phase: %v", err)
	}
	want := PhaseChange{Run: "run-1", From: "phase-1", To: "phase-2", Name: "Phase 2", Count: 2, At: at}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("phase mismatch (-want +got):\n%s", diff)
	}
	if (*out)[1].stream != PhaseStream {
		t.Fatalf("published on %q", (*out)[1].stream)
	}
}
