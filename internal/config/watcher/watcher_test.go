package watcher

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_WithOptions(t *testing.T) {
	w, err := New(WithDebounce(50 * time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if w.debounce != 50*time.Millisecond {
		t.Errorf("debounce = %v, want 50ms", w.debounce)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_Watch(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "qsynth.toml")
	if err := os.WriteFile(existing, []byte("[Options]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(existing); err != nil {
		t.Errorf("Watch() error = %v", err)
	}
	// Not created yet: its directory is enough.
	if err := w.Watch(filepath.Join(tmpDir, "later.toml")); err != nil {
		t.Errorf("Watch(missing file) error = %v", err)
	}
	if err := w.Watch(existing); err != nil {
		t.Errorf("second Watch() error = %v", err)
	}
	if got := len(w.files); got != 2 {
		t.Errorf("watched files = %d, want 2", got)
	}
	if got := len(w.dirs); got != 1 || !w.dirs[tmpDir] {
		t.Errorf("watched dirs = %v, want [%s]", w.dirs, tmpDir)
	}

	if err := w.Watch(filepath.Join(tmpDir, "missing", "x.toml")); err == nil {
		t.Error("Watch() in a missing directory should fail")
	}
}

func TestWatcher_Closed(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "a.toml")); err != ErrWatcherClosed {
		t.Errorf("Watch after Close = %v, want ErrWatcherClosed", err)
	}
}

func TestWatcher_QueueEventCoalesce(t *testing.T) {
	w := &Watcher{
		debounce:     10 * time.Millisecond,
		pendingFiles: make(map[string]pendingEvent),
	}
	now := time.Now()

	tests := []struct {
		name string
		ops  []Operation
		want Operation
	}{
		{"create then write", []Operation{OpCreate, OpWrite}, OpCreate},
		{"write then write", []Operation{OpWrite, OpWrite}, OpWrite},
		{"write then remove", []Operation{OpWrite, OpRemove}, OpRemove},
		{"rename then create", []Operation{OpRename, OpCreate}, OpCreate},
		{"remove then write", []Operation{OpRemove, OpWrite}, OpRemove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/settings/" + tt.name
			for i, op := range tt.ops {
				w.queueEvent(Event{Path: path, Op: op, Time: now.Add(time.Duration(i) * time.Millisecond)})
			}
			if got := w.pendingFiles[path].Op; got != tt.want {
				t.Errorf("coalesced op = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcher_ProcessPendingEvents(t *testing.T) {
	w := &Watcher{
		debounce:     50 * time.Millisecond,
		pendingFiles: make(map[string]pendingEvent),
	}

	var got []Event
	w.OnChange(func(e Event) { got = append(got, e) })

	now := time.Now()
	w.queueEvent(Event{Path: "/a.toml", Op: OpWrite, Time: now.Add(-time.Second)})
	w.queueEvent(Event{Path: "/b.toml", Op: OpWrite, Time: now})

	w.processPendingEvents(now)

	if len(got) != 1 || got[0].Path != "/a.toml" {
		t.Fatalf("emitted %v, want only /a.toml", got)
	}
	if _, pending := w.pendingFiles["/b.toml"]; !pending {
		t.Error("/b.toml should still be pending")
	}
}

func TestWatcher_HandlerPanicRecovered(t *testing.T) {
	w := &Watcher{pendingFiles: make(map[string]pendingEvent)}
	w.logger = discardLogger()

	var called atomic.Bool
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(Event) { called.Store(true) })

	w.emitEvent(Event{Path: "/a.toml", Op: OpWrite})

	if !called.Load() {
		t.Error("second handler should run after the first panicked")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type reloadCounter struct{ n atomic.Int32 }

func (r *reloadCounter) Reload() error {
	r.n.Add(1)
	return nil
}

func TestWatcher_ReloadOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "qsynth.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(10*time.Millisecond), WithLogger(discardLogger()))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	r := &reloadCounter{}
	done := make(chan Event, 8)
	w.Reload(r, func(e Event, err error) {
		if err != nil {
			return
		}
		select {
		case done <- e:
		default:
		}
	})

	// Changes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(tmpDir, "other.toml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("a = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-done:
		if e.Path != path {
			t.Errorf("event path = %s, want %s", e.Path, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	if r.n.Load() < 1 {
		t.Error("Reload was not called")
	}
}
