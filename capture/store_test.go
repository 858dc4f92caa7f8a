package capture

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestRecordAndRuns tests the journal round trip.
func TestRecordAndRuns(t *testing.T) {
	s := openStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := s.Record("orbits", 42, base); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Record("orbits", 99, base.Add(time.Minute)); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Record("walker", 7, base.Add(2*time.Minute)); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	runs, err := s.Runs("orbits")
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Runs(orbits) returned %d runs, want 2", len(runs))
	}
	// Most recent first.
	if runs[0].Seed != 99 || runs[1].Seed != 42 {
		t.Errorf("run order = [%d, %d], want [99, 42]", runs[0].Seed, runs[1].Seed)
	}
	if !runs[1].Started.Equal(base) {
		t.Errorf("Started = %v, want %v", runs[1].Started, base)
	}
}

// TestRunsAll tests that an empty name lists every sketch.
func TestRunsAll(t *testing.T) {
	s := openStore(t)

	now := time.Now()
	if err := s.Record("a", 1, now); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Record("b", 2, now.Add(time.Second)); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	runs, err := s.Runs("")
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Runs(\"\") returned %d runs, want 2", len(runs))
	}
}

// TestLargeSeed tests that seeds above the signed 64-bit range survive.
func TestLargeSeed(t *testing.T) {
	s := openStore(t)

	seed := uint64(math.MaxUint64)
	if err := s.Record("orbits", seed, time.Now()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	runs, err := s.Runs("orbits")
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 1 || runs[0].Seed != seed {
		t.Errorf("round-tripped seed = %d, want %d", runs[0].Seed, seed)
	}
}

// TestReopen tests that the journal persists across opens.
func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Record("orbits", 5, time.Now()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	runs, err := s.Runs("orbits")
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("reopened journal has %d runs, want 1", len(runs))
	}
}

// TestOpenEmptyPath tests the required-path guard.
func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") error = nil, want error")
	}
}
