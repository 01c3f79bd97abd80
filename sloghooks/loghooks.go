// Package sloghooks implements folicon.Hooks on top of log/slog, with
// sampling for the events that can flood (self-heals during a bad disk
// episode, dropped progress events on an undersized channel).
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/folicon"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery        uint64
	ProgressDroppedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	droppedCtr  atomic.Uint64
}

var _ folicon.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CacheSelfHeal(path, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Warn("folicon.cache_self_heal",
		"path", path,
		"reason", reason)
}

func (h *Hooks) CacheRepopulated(n int) {
	if h.l == nil {
		return
	}
	h.l.Info("folicon.cache_repopulated",
		"icons", n)
}

func (h *Hooks) RenderMemoHit(fp string) {
	if h.l == nil {
		return
	}
	h.l.Debug("folicon.render_memo_hit",
		"fingerprint", fp)
}

func (h *Hooks) RenderMemoCorrupt(fp string) {
	if h.l == nil {
		return
	}
	h.l.Warn("folicon.render_memo_corrupt",
		"fingerprint", fp)
}

func (h *Hooks) ProgressDropped(kind string) {
	if h.l == nil || !sample(h.opts.ProgressDroppedEvery, &h.droppedCtr) {
		return
	}
	h.l.Debug("folicon.progress_dropped",
		"kind", kind)
}
