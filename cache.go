package folicon

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/unkn0wn-root/folicon/icon"
)

const manifestVersion = 1

// CacheConfig locates the on-disk icon cache. Immutable per IconCache.
type CacheConfig struct {
	// Dir is the cache directory. It owns manifest.json and the cached
	// PNGs and is removed wholesale by Clear.
	Dir string `env:"FOLICON_CACHE_DIR"`
	// ForceRefresh pins IsCached to false so the next Get repopulates.
	ForceRefresh bool `env:"FOLICON_FORCE_REFRESH"`
}

// CacheConfigFromEnv reads FOLICON_CACHE_DIR and FOLICON_FORCE_REFRESH.
func CacheConfigFromEnv() (CacheConfig, error) {
	var cfg CacheConfig
	if err := env.Parse(&cfg); err != nil {
		return CacheConfig{}, err
	}
	return cfg, nil
}

// AppInfo identifies the application for data-directory resolution, e.g.
// {"com", "example", "folico"}.
type AppInfo struct {
	Qualifier    string
	Organization string
	Application  string
}

// CacheConfigFromAppInfo resolves the cache directory under the user cache
// dir for the given application identity.
func CacheConfigFromAppInfo(info AppInfo) (CacheConfig, error) {
	if info.Application == "" {
		return CacheConfig{}, fmt.Errorf("%w: empty application name", ErrAppDataDir)
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return CacheConfig{}, fmt.Errorf("%w: %v", ErrAppDataDir, err)
	}
	id := info.Application
	if info.Organization != "" {
		id = info.Organization + "." + id
	}
	if info.Qualifier != "" {
		id = info.Qualifier + "." + id
	}
	return CacheConfig{Dir: filepath.Join(base, id, "icon_cache")}, nil
}

// Manifest layout on disk. IconCount always equals len(Icons); a violation
// is treated as corruption and heals via repopulation.
type cacheManifest struct {
	Version   int              `json:"version"`
	IconCount int              `json:"icon_count"`
	Icons     []cachedIconInfo `json:"icons"`
}

type cachedIconInfo struct {
	Size  int    `json:"size"`
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// IconCache manages the on-disk cache of the platform's default folder
// icon set. Extraction is expensive (notably on Windows), so the set is
// dumped once and reloaded from disk afterwards.
//
// The cache directory is assumed exclusive to one process; concurrent
// external mutation is not guarded against.
type IconCache struct {
	cfg      CacheConfig
	provider icon.Provider
	log      Logger
	hooks    Hooks
}

// NewIconCache builds a cache over cfg.Dir backed by p.
func NewIconCache(cfg CacheConfig, p icon.Provider, log Logger, hooks Hooks) (*IconCache, error) {
	if p == nil {
		return nil, fmt.Errorf("folicon: icon provider is required")
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("folicon: cache dir is required")
	}
	return &IconCache{
		cfg:      cfg,
		provider: p,
		log:      coalesce[Logger](log, NopLogger{}),
		hooks:    coalesce[Hooks](hooks, NopHooks{}),
	}, nil
}

// Dir returns the cache directory path.
func (c *IconCache) Dir() string { return c.cfg.Dir }

func (c *IconCache) manifestPath() string { return filepath.Join(c.cfg.Dir, "manifest.json") }

func (c *IconCache) iconPath(size, index int) string {
	return filepath.Join(c.cfg.Dir, fmt.Sprintf("folder_icon_%d_%d.png", size, index))
}

// IsCached reports whether a populated cache exists. ForceRefresh pins it
// to false so the next Get repopulates.
func (c *IconCache) IsCached() bool {
	if c.cfg.ForceRefresh {
		return false
	}
	_, err := os.Stat(c.manifestPath())
	return err == nil
}

// Get returns the cached icon set, populating the cache first if needed.
func (c *IconCache) Get(ctx context.Context) (icon.Set, error) {
	if c.IsCached() {
		return c.load(ctx)
	}
	return c.fetchAndPopulate(ctx)
}

// load reads the manifest and decodes every referenced image in manifest
// order. Structural staleness (missing file, count mismatch, empty
// manifest) is not an error: it triggers exactly one transparent
// repopulation. An unreadable manifest or an undecodable existing file is.
func (c *IconCache) load(ctx context.Context) (icon.Set, error) {
	raw, err := os.ReadFile(c.manifestPath())
	if err != nil {
		return icon.Set{}, fmt.Errorf("%w: read manifest: %v", ErrCacheIO, err)
	}
	var m cacheManifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return icon.Set{}, fmt.Errorf("%w: parse manifest: %v", ErrSerialization, err)
	}

	if m.IconCount == 0 || m.IconCount != len(m.Icons) {
		reason := "count_mismatch"
		if m.IconCount == 0 {
			reason = "empty_manifest"
		}
		c.hooks.CacheSelfHeal(c.manifestPath(), reason)
		c.log.Warn("cache manifest invalid; repopulating", Fields{"reason": reason})
		return c.fetchAndPopulate(ctx)
	}

	images := make([]icon.Image, 0, m.IconCount)
	for _, info := range m.Icons {
		if _, err := os.Stat(info.Path); err != nil {
			c.hooks.CacheSelfHeal(info.Path, "missing_file")
			c.log.Warn("cached image missing; repopulating", Fields{"path": info.Path})
			return c.fetchAndPopulate(ctx)
		}
		img, err := readPNG(info.Path)
		if err != nil {
			return icon.Set{}, fmt.Errorf("%w: %s: %v", ErrDecode, info.Path, err)
		}
		images = append(images, icon.Image{Data: img})
	}
	return icon.Set{Images: images}, nil
}

// fetchAndPopulate dumps a fresh set from the provider and persists it:
// every image first, the manifest last, so a manifest on disk always
// references fully written files.
func (c *IconCache) fetchAndPopulate(ctx context.Context) (icon.Set, error) {
	if err := os.MkdirAll(c.cfg.Dir, 0o755); err != nil {
		return icon.Set{}, fmt.Errorf("%w: create cache dir: %v", ErrCacheIO, err)
	}
	set, err := c.provider.DumpDefaultIconSet(ctx)
	if err != nil {
		return icon.Set{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	m := cacheManifest{
		Version:   manifestVersion,
		IconCount: set.Len(),
		Icons:     make([]cachedIconInfo, 0, set.Len()),
	}
	for index, im := range set.Images {
		size := im.Width()
		path := c.iconPath(size, index)
		if err := writePNG(path, im.Data); err != nil {
			return icon.Set{}, fmt.Errorf("%w: write %s: %v", ErrCacheIO, path, err)
		}
		m.Icons = append(m.Icons, cachedIconInfo{Size: size, Index: index, Path: path})
	}
	if err := c.writeManifest(m); err != nil {
		return icon.Set{}, err
	}

	c.hooks.CacheRepopulated(set.Len())
	c.log.Debug("cache populated", Fields{"icons": set.Len(), "dir": c.cfg.Dir})
	return set, nil
}

// writeManifest persists via temp file + rename so a crash mid-write never
// leaves a partially written manifest behind.
func (c *IconCache) writeManifest(m cacheManifest) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	tmp := c.manifestPath() + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write manifest: %v", ErrCacheIO, err)
	}
	if err := os.Rename(tmp, c.manifestPath()); err != nil {
		return fmt.Errorf("%w: commit manifest: %v", ErrCacheIO, err)
	}
	return nil
}

// Clear removes the cache directory. Idempotent when already absent.
func (c *IconCache) Clear() error {
	if err := os.RemoveAll(c.cfg.Dir); err != nil {
		return fmt.Errorf("%w: clear cache: %v", ErrCacheIO, err)
	}
	return nil
}

// Refresh clears and repopulates, returning the freshly fetched set.
func (c *IconCache) Refresh(ctx context.Context) (icon.Set, error) {
	if err := c.Clear(); err != nil {
		return icon.Set{}, err
	}
	return c.fetchAndPopulate(ctx)
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
