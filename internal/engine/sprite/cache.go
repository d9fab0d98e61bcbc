package sprite

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/sprite/internal/core/domain"
)

// entryKey identifies the contribution of one source file through one root.
// Overlapping roots each keep their own entry for a shared file.
type entryKey struct {
	root int
	path string
}

// Cache holds the symbols of one target, keyed by root and normalized source
// path. It is not safe for concurrent use; the Manager serializes access.
type Cache struct {
	target  domain.Target
	deps    Deps
	entries map[entryKey]domain.Symbol
}

// NewCache creates an empty cache for target. Call Initialize to scan its roots.
func NewCache(target domain.Target, deps Deps) *Cache {
	return &Cache{
		target:  target,
		deps:    deps,
		entries: make(map[entryKey]domain.Symbol),
	}
}

// Target returns the target this cache aggregates.
func (c *Cache) Target() domain.Target {
	return c.target
}

// Initialize builds a symbol for every source document below every root.
// Documents that fail to build are logged and left out.
func (c *Cache) Initialize() {
	for i, root := range c.target.Input {
		for path := range c.deps.Walker.WalkFiles(root.Path, domain.SVGExtension) {
			c.add(i, domain.NormalizePath(path))
		}
	}
}

// AssignedRoots returns every root whose path is a prefix of path, in
// configuration order.
func (c *Cache) AssignedRoots(path string) []domain.SourceRoot {
	var roots []domain.SourceRoot
	for _, root := range c.target.Input {
		if root.Contains(path) {
			roots = append(roots, root)
		}
	}
	return roots
}

// Add builds the symbol for path under root and stores it, replacing any
// previous entry of root for path. On failure the error is logged and the
// entry is absent.
func (c *Cache) Add(root domain.SourceRoot, path string) {
	c.add(c.rootIndex(root), path)
}

// Update rebuilds the symbol of root for path.
func (c *Cache) Update(root domain.SourceRoot, path string) {
	c.Remove(root, path)
	c.Add(root, path)
}

// Remove drops the entry of root for path. When path is not a cached source
// but a directory holding sources of root, every entry below it is dropped.
// It reports whether any entry was dropped.
func (c *Cache) Remove(root domain.SourceRoot, path string) bool {
	idx := c.rootIndex(root)

	key := entryKey{root: idx, path: path}
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}

	before := len(c.entries)
	maps.DeleteFunc(c.entries, func(k entryKey, _ domain.Symbol) bool {
		return k.root == idx && isBelow(k.path, path)
	})
	return len(c.entries) != before
}

// Holds reports whether path is a cached source, or a directory holding one,
// under any root.
func (c *Cache) Holds(path string) bool {
	for k := range c.entries {
		if k.path == path || isBelow(k.path, path) {
			return true
		}
	}
	return false
}

// Len returns the number of cached symbols.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Symbols returns the cached symbols ordered by id. Symbols sharing an id
// are ordered by source path, then by root.
func (c *Cache) Symbols() []domain.Symbol {
	keys := slices.Collect(maps.Keys(c.entries))
	slices.SortFunc(keys, func(a, b entryKey) int {
		return cmp.Or(
			strings.Compare(c.entries[a].ID, c.entries[b].ID),
			strings.Compare(a.path, b.path),
			cmp.Compare(a.root, b.root),
		)
	})

	symbols := make([]domain.Symbol, len(keys))
	for i, k := range keys {
		symbols[i] = c.entries[k]
	}
	return symbols
}

// Emit serializes the current symbols and replaces the output file. When the
// target has a declaration, it is written as well. In-memory state is not
// affected by failures.
func (c *Cache) Emit(ctx context.Context) error {
	_, span := c.deps.tracer().Start(ctx, "sprite.emit")
	defer span.End()

	symbols := c.Symbols()
	span.SetAttribute("output", c.target.Output)
	span.SetAttribute("symbols", len(symbols))

	if err := c.emit(symbols); err != nil {
		span.RecordError(err)
		return err
	}

	c.deps.Logger.Info(fmt.Sprintf("wrote %s (%d symbols)", c.target.Output, len(symbols)))
	return nil
}

func (c *Cache) emit(symbols []domain.Symbol) error {
	data, err := c.deps.Encoder.Encode(symbols)
	if err != nil {
		return err
	}
	if err := c.deps.Files.WriteFile(c.target.Output, data); err != nil {
		return err
	}

	decl := c.target.Declaration
	if decl == nil || decl.Path == "" {
		return nil
	}

	ids := make([]string, len(symbols))
	for i, s := range symbols {
		ids[i] = s.ID
	}
	src, err := c.deps.Declarations.Render(*decl, ids)
	if err != nil {
		return err
	}
	return c.deps.Files.WriteFile(decl.Path, src)
}

// Destroy drops every entry without touching the file system.
func (c *Cache) Destroy() {
	clear(c.entries)
}

func (c *Cache) add(root int, path string) {
	src := domain.SourceRoot{}
	if root < len(c.target.Input) {
		src = c.target.Input[root]
	}

	key := entryKey{root: root, path: path}
	symbol, err := c.deps.Builder.Build(path, src)
	if err != nil {
		delete(c.entries, key)
		c.deps.Logger.Error(err)
		return
	}
	c.entries[key] = symbol
}

// rootIndex returns the configuration position of root, or len(Input) for a
// root that is not part of the target.
func (c *Cache) rootIndex(root domain.SourceRoot) int {
	for i, r := range c.target.Input {
		if r.Path == root.Path {
			return i
		}
	}
	return len(c.target.Input)
}

func isBelow(path, dir string) bool {
	return dir != "" && strings.HasPrefix(path, strings.TrimSuffix(dir, "/")+"/")
}
