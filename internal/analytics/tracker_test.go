package analytics

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()

	tr, err := NewTracker(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("creating tracker: %v", err)
	}
	t.Cleanup(func() { _ = tr.Close() })

	return tr
}

func TestTracker_TrackAndExport(t *testing.T) {
	tr := testTracker(t)
	tr.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	err := tr.Track("", "app_loaded", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = tr.Track("session-1", "flow_start", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = tr.Track("session-1", "region_started", map[string]any{"region": "family"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := tr.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	testutil.AssertEqual(t, "event count", len(events), 3)

	// Emission order is preserved
	testutil.AssertEqual(t, "first event", events[0].Event, "app_loaded")
	testutil.AssertEqual(t, "second event", events[1].Event, "flow_start")
	testutil.AssertEqual(t, "third event", events[2].Event, "region_started")

	testutil.AssertEqual(t, "second session", events[1].SessionID, "session-1")
	testutil.AssertEqual(t, "timestamp", events[0].Timestamp, "2026-03-01T12:00:00Z")

	// Nil properties come back as an empty object
	testutil.AssertEqual(t, "empty properties", string(events[0].Properties), "{}")

	var props map[string]any
	if err := json.Unmarshal(events[2].Properties, &props); err != nil {
		t.Fatalf("properties are not valid JSON: %v", err)
	}
	testutil.AssertEqual(t, "region property", props["region"], any("family"))
}

func TestTracker_ExportEmpty(t *testing.T) {
	tr := testTracker(t)

	data, err := tr.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	testutil.AssertEqual(t, "event count", len(events), 0)
}

func TestTracker_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.db")

	tr, err := NewTracker(path)
	if err != nil {
		t.Fatalf("creating tracker: %v", err)
	}
	if err := tr.Track("session-1", "flow_start", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("closing tracker: %v", err)
	}

	reopened, err := NewTracker(path)
	if err != nil {
		t.Fatalf("reopening tracker: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	data, err := reopened.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	testutil.AssertEqual(t, "event count", len(events), 1)
}
