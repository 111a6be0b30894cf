package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/aroma/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s := storage.New(kv.NewMemoryRepository())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type notification struct {
	Level Level
	Msg   string
}

// recordingNotifier keeps every notification for later assertions.
type recordingNotifier struct {
	mu  sync.Mutex
	got []notification
}

func (r *recordingNotifier) Notify(_ context.Context, level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, notification{Level: level, Msg: msg})
}

func (r *recordingNotifier) all() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification(nil), r.got...)
}
