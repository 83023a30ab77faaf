package backup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeBackuper struct {
	mu       sync.Mutex
	names    []string
	cleanups []int
	fail     bool
	created  chan string
}

func newFakeBackuper(fail bool) *fakeBackuper {
	return &fakeBackuper{fail: fail, created: make(chan string, 64)}
}

func (f *fakeBackuper) CreateBackup(name string) (*Info, error) {
	f.mu.Lock()
	f.names = append(f.names, name)
	f.mu.Unlock()
	select {
	case f.created <- name:
	default:
	}
	if f.fail {
		return nil, errors.New("disk full")
	}
	return &Info{FileName: name + ".db"}, nil
}

func (f *fakeBackuper) Cleanup(keep int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleanups = append(f.cleanups, keep)
	return 0, nil
}

func waitForPrefix(t *testing.T, ch <-chan string, prefix string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case name := <-ch:
			if strings.HasPrefix(name, prefix) {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for a %s backup", prefix)
		}
	}
}

func runWorker(t *testing.T, w *Worker) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return cancel, done
}

func TestWorkerLifecycle(t *testing.T) {
	fake := newFakeBackuper(false)
	w := NewWorker(fake, 10*time.Millisecond, time.Hour, 20)

	cancel, done := runWorker(t, w)
	waitForPrefix(t, fake.created, "startup_")
	waitForPrefix(t, fake.created, "auto_")
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if last := fake.names[len(fake.names)-1]; !strings.HasPrefix(last, "shutdown_") {
		t.Errorf("expected a final shutdown backup, got %s", last)
	}
	if len(fake.cleanups) == 0 || fake.cleanups[0] != 20 {
		t.Errorf("expected cleanup keeping 20, got %v", fake.cleanups)
	}
}

func TestWorkerRetriesAfterFailure(t *testing.T) {
	fake := newFakeBackuper(true)
	w := NewWorker(fake, time.Hour, 10*time.Millisecond, 20)

	cancel, done := runWorker(t, w)
	waitForPrefix(t, fake.created, "auto_")
	cancel()
	<-done

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.cleanups) != 0 {
		t.Errorf("expected no cleanup after failed backups, got %v", fake.cleanups)
	}
}
