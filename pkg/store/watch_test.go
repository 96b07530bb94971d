package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	path    string
	backend string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Backend() string {
	return t.backend
}

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	kv, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	w, ok := kv.(Watcher)
	if !ok {
		t.Fatalf("expected diskv store to implement Watcher")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := kv.Write(KeyTasks, []byte(`["Read"]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key != KeyTasks {
				t.Fatalf("expected key %q, got %q", KeyTasks, evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestDiskvWatchClosesOnCancel(t *testing.T) {
	kv, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := kv.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// Drain anything that raced the cancel.
			for range ch {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}

func TestKeyForPath(t *testing.T) {
	p := &Diskv{basePath: "/data"}
	for path, want := range map[string]string{
		"/data/calendarTrackerData": "calendarTrackerData",
		"/data/.tmp":                "",
		"/data/.tmp/diskv-123":      "",
		"/data":                     "",
		"/elsewhere/file":           "",
	} {
		if got := p.keyForPath(path); got != want {
			t.Errorf("keyForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
