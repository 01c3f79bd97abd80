package folicon

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unkn0wn-root/folicon/icon"
)

type fakeIconProvider struct {
	sizes []int
	calls int
	err   error
}

func (p *fakeIconProvider) DumpDefaultIconSet(_ context.Context) (icon.Set, error) {
	p.calls++
	if p.err != nil {
		return icon.Set{}, p.err
	}
	images := make([]icon.Image, 0, len(p.sizes))
	for _, s := range p.sizes {
		images = append(images, icon.Image{Data: image.NewRGBA(image.Rect(0, 0, s, s))})
	}
	return icon.Set{Images: images}, nil
}

type recHooks struct {
	selfHeals   []string
	repopulated []int
	memoHits    []string
	memoCorrupt []string
	dropped     []string
}

func (h *recHooks) CacheSelfHeal(_, reason string) { h.selfHeals = append(h.selfHeals, reason) }
func (h *recHooks) CacheRepopulated(n int)         { h.repopulated = append(h.repopulated, n) }
func (h *recHooks) RenderMemoHit(fp string)        { h.memoHits = append(h.memoHits, fp) }
func (h *recHooks) RenderMemoCorrupt(fp string)    { h.memoCorrupt = append(h.memoCorrupt, fp) }
func (h *recHooks) ProgressDropped(kind string)    { h.dropped = append(h.dropped, kind) }

func newTestCache(t *testing.T, p *fakeIconProvider, cfg CacheConfig, hooks Hooks) *IconCache {
	t.Helper()
	if cfg.Dir == "" {
		cfg.Dir = filepath.Join(t.TempDir(), "icon_cache")
	}
	c, err := NewIconCache(cfg, p, nil, hooks)
	if err != nil {
		t.Fatalf("NewIconCache: %v", err)
	}
	return c
}

// TestCachePopulate verifies the empty-dir scenario: first Get populates,
// the manifest and every image land on disk, later Gets load from disk.
func TestCachePopulate(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16, 32, 256}}
	c := newTestCache(t, p, CacheConfig{}, nil)

	if c.IsCached() {
		t.Fatal("IsCached true before population")
	}

	set, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.Len() != 3 || p.calls != 1 {
		t.Fatalf("Get: len=%d calls=%d", set.Len(), p.calls)
	}
	if !c.IsCached() {
		t.Fatal("IsCached false after population")
	}

	raw, err := os.ReadFile(filepath.Join(c.Dir(), "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m struct {
		Version   int `json:"version"`
		IconCount int `json:"icon_count"`
		Icons     []struct {
			Size  int    `json:"size"`
			Index int    `json:"index"`
			Path  string `json:"path"`
		} `json:"icons"`
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if m.Version != 1 || m.IconCount != 3 || len(m.Icons) != 3 {
		t.Fatalf("manifest: %+v", m)
	}
	for i, info := range m.Icons {
		if info.Index != i {
			t.Fatalf("icons[%d].index = %d", i, info.Index)
		}
		if !strings.HasSuffix(info.Path, ".png") {
			t.Fatalf("icons[%d].path = %q", i, info.Path)
		}
		if _, err := os.Stat(info.Path); err != nil {
			t.Fatalf("icons[%d] file missing: %v", i, err)
		}
	}

	// second Get must load from disk, not the provider
	set2, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if p.calls != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls)
	}
	if set2.Len() != 3 {
		t.Fatalf("loaded set len = %d", set2.Len())
	}
	for i, im := range set2.Images {
		if im.Width() != p.sizes[i] {
			t.Fatalf("loaded image %d: width %d, want %d (order lost?)", i, im.Width(), p.sizes[i])
		}
	}
}

// TestCacheSelfHealMissingFile deletes a referenced image and expects Get
// to transparently repopulate instead of failing.
func TestCacheSelfHealMissingFile(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16, 32}}
	hooks := &recHooks{}
	c := newTestCache(t, p, CacheConfig{}, hooks)

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if err := os.Remove(filepath.Join(c.Dir(), "folder_icon_16_0.png")); err != nil {
		t.Fatalf("remove cached image: %v", err)
	}

	set, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get after deletion: %v", err)
	}
	if set.Len() != 2 || p.calls != 2 {
		t.Fatalf("self-heal: len=%d calls=%d", set.Len(), p.calls)
	}
	if len(hooks.selfHeals) != 1 || hooks.selfHeals[0] != "missing_file" {
		t.Fatalf("self-heal hooks: %v", hooks.selfHeals)
	}
	if _, err := os.Stat(filepath.Join(c.Dir(), "folder_icon_16_0.png")); err != nil {
		t.Fatalf("image not restored: %v", err)
	}
}

// TestCacheEmptyManifest treats icon_count == 0 as corruption and heals.
func TestCacheEmptyManifest(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{48}}
	hooks := &recHooks{}
	c := newTestCache(t, p, CacheConfig{}, hooks)

	if err := os.MkdirAll(c.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	empty := `{"version":1,"icon_count":0,"icons":[]}`
	if err := os.WriteFile(filepath.Join(c.Dir(), "manifest.json"), []byte(empty), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.Len() != 1 || p.calls != 1 {
		t.Fatalf("heal from empty manifest: len=%d calls=%d", set.Len(), p.calls)
	}
	if len(hooks.selfHeals) != 1 || hooks.selfHeals[0] != "empty_manifest" {
		t.Fatalf("hooks: %v", hooks.selfHeals)
	}
}

// TestCacheCountMismatch treats icon_count != len(icons) as corruption.
func TestCacheCountMismatch(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{48}}
	hooks := &recHooks{}
	c := newTestCache(t, p, CacheConfig{}, hooks)

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("populate: %v", err)
	}
	mp := filepath.Join(c.Dir(), "manifest.json")
	raw, err := os.ReadFile(mp)
	if err != nil {
		t.Fatal(err)
	}
	tampered := strings.Replace(string(raw), `"icon_count": 1`, `"icon_count": 5`, 1)
	if tampered == string(raw) {
		t.Fatal("tamper failed; manifest layout changed?")
	}
	if err := os.WriteFile(mp, []byte(tampered), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("Get after tamper: %v", err)
	}
	if p.calls != 2 {
		t.Fatalf("provider calls = %d, want 2", p.calls)
	}
	if len(hooks.selfHeals) != 1 || hooks.selfHeals[0] != "count_mismatch" {
		t.Fatalf("hooks: %v", hooks.selfHeals)
	}
}

func TestCacheManifestParseFailure(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16}}
	c := newTestCache(t, p, CacheConfig{}, nil)

	if err := os.MkdirAll(c.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(c.Dir(), "manifest.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := c.Get(ctx)
	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("Get: %v, want ErrSerialization", err)
	}
	if p.calls != 0 {
		t.Fatalf("provider called for unparseable manifest")
	}
}

func TestCacheDecodeFailure(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16}}
	c := newTestCache(t, p, CacheConfig{}, nil)

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("populate: %v", err)
	}
	// corrupt the file in place; it still exists, so no self-heal applies
	if err := os.WriteFile(filepath.Join(c.Dir(), "folder_icon_16_0.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := c.Get(ctx)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Get: %v, want ErrDecode", err)
	}
}

func TestCacheProviderFailure(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{err: errors.New("shell32 unavailable")}
	c := newTestCache(t, p, CacheConfig{}, nil)

	_, err := c.Get(ctx)
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("Get: %v, want ErrProvider", err)
	}
	if c.IsCached() {
		t.Fatal("IsCached true after failed population")
	}
}

func TestCacheForceRefresh(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16}}
	c := newTestCache(t, p, CacheConfig{}, nil)

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("populate: %v", err)
	}

	forced, err := NewIconCache(CacheConfig{Dir: c.Dir(), ForceRefresh: true}, p, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if forced.IsCached() {
		t.Fatal("IsCached true with ForceRefresh")
	}
	if _, err := forced.Get(ctx); err != nil {
		t.Fatalf("forced Get: %v", err)
	}
	if p.calls != 2 {
		t.Fatalf("provider calls = %d, want 2", p.calls)
	}
}

func TestCacheClearIdempotent(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16}}
	c := newTestCache(t, p, CacheConfig{}, nil)

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if c.IsCached() {
		t.Fatal("IsCached true after Clear")
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear on absent dir: %v", err)
	}
}

func TestCacheRefresh(t *testing.T) {
	ctx := context.Background()
	p := &fakeIconProvider{sizes: []int{16, 32}}
	c := newTestCache(t, p, CacheConfig{}, nil)

	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("populate: %v", err)
	}
	set, err := c.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if set.Len() != 2 || p.calls != 2 {
		t.Fatalf("Refresh: len=%d calls=%d", set.Len(), p.calls)
	}
	if !c.IsCached() {
		t.Fatal("IsCached false after Refresh")
	}
}

func TestCacheConfigFromEnv(t *testing.T) {
	t.Setenv("FOLICON_CACHE_DIR", "/tmp/folicon-test")
	t.Setenv("FOLICON_FORCE_REFRESH", "true")

	cfg, err := CacheConfigFromEnv()
	if err != nil {
		t.Fatalf("CacheConfigFromEnv: %v", err)
	}
	if cfg.Dir != "/tmp/folicon-test" || !cfg.ForceRefresh {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestCacheConfigFromAppInfo(t *testing.T) {
	cfg, err := CacheConfigFromAppInfo(AppInfo{Qualifier: "com", Organization: "example", Application: "folicon"})
	if err != nil {
		t.Fatalf("CacheConfigFromAppInfo: %v", err)
	}
	if !strings.HasSuffix(cfg.Dir, filepath.Join("com.example.folicon", "icon_cache")) {
		t.Fatalf("Dir = %q", cfg.Dir)
	}

	if _, err := CacheConfigFromAppInfo(AppInfo{}); !errors.Is(err, ErrAppDataDir) {
		t.Fatalf("empty app info: %v, want ErrAppDataDir", err)
	}
}
