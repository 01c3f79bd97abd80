// Package folicon maintains a disk-backed cache of the platform's default
// folder icon set and orchestrates applying a customized rendition of it
// across batches of folders.
//
// Components:
//   - IconCache: on-disk store (manifest.json + per-size PNGs) with
//     transparent self-healing repopulation when the cache goes stale.
//   - Conversion: structural mapping between the system representation
//     (icon.Set) and the renderer representation (render.Set) using the
//     per-platform content-bounds lookup.
//   - Context: composes the cache, a renderer handle and a per-folder
//     applier into fail-soft batch operations, with optional render
//     memoization through a provider byte store.
//   - progress.Channel: bounded best-effort event stream for the
//     *Progress batch variants.
//
// Cache layout (one directory per cache instance):
//
//	manifest.json                  - {version, icon_count, icons: [...]}
//	folder_icon_<size>_<index>.png - one PNG per cached image
//
// Batch contract:
//
//	results, err := ctx.CustomizeMany(ctx0, folders, profile)
//	// err != nil => render/convert failed; nothing was applied
//	// results[i] => nil on success, *ApplyError for that folder only
package folicon
