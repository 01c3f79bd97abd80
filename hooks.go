package folicon

// Hooks are lightweight callbacks for high-signal cache and batch events.
// Implementations MUST be cheap and non-blocking; the core calls them
// inline. Wrap with hooks/async when the sink can stall.
type Hooks interface {
	// The disk cache was found structurally invalid during load and a full
	// repopulation was triggered.
	// reason is one of "missing_file", "count_mismatch", "empty_manifest".
	CacheSelfHeal(path, reason string)

	// A population finished; n images were written.
	CacheRepopulated(n int)

	// A rendered set was served from the memo store.
	RenderMemoHit(fingerprint string)

	// A memo entry failed frame or codec validation and was deleted.
	RenderMemoCorrupt(fingerprint string)

	// A progress event could not be delivered (channel full or closed)
	// and was dropped. kind is progress.Kind of the event.
	ProgressDropped(kind string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) CacheSelfHeal(string, string) {}
func (NopHooks) CacheRepopulated(int)         {}
func (NopHooks) RenderMemoHit(string)         {}
func (NopHooks) RenderMemoCorrupt(string)     {}
func (NopHooks) ProgressDropped(string)       {}
