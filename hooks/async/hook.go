// Package asynchook decouples hook sinks from the hot path. Events are
// queued and delivered by worker goroutines; when the queue is full the
// event is dropped rather than blocking a batch.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SelfHealEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	ctx, _ := folicon.New(ctx0, folicon.Options{..., Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/folicon"
)

type Hooks struct {
	inner folicon.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ folicon.Hooks = (*Hooks)(nil)

func New(inner folicon.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CacheSelfHeal(path, reason string) {
	h.try(func() { h.inner.CacheSelfHeal(path, reason) })
}
func (h *Hooks) CacheRepopulated(n int)     { h.try(func() { h.inner.CacheRepopulated(n) }) }
func (h *Hooks) RenderMemoHit(fp string)    { h.try(func() { h.inner.RenderMemoHit(fp) }) }
func (h *Hooks) RenderMemoCorrupt(fp string) {
	h.try(func() { h.inner.RenderMemoCorrupt(fp) })
}
func (h *Hooks) ProgressDropped(kind string) { h.try(func() { h.inner.ProgressDropped(kind) }) }
