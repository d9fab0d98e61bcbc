package sprite_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/engine/sprite"
)

func singleRootTarget() domain.Target {
	return domain.Target{
		Input:  []domain.SourceRoot{{Path: "icons"}},
		Output: "public/sprite.svg",
	}
}

func TestCache_Initialize(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg", "icons/nested/close.svg", "./icons/arrow.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"arrow", "close", "home"}, ids(c.Symbols()))
	assert.Equal(t, "icons/arrow.svg", c.Symbols()[0].Source, "walked paths are normalized")
}

func TestCache_Initialize_SkipsBrokenSources(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg", "icons/broken.svg"}
	h.builder.setBroken("icons/broken.svg", true)

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	assert.Equal(t, []string{"home"}, ids(c.Symbols()))
	require.Equal(t, 1, h.logger.errorCount())
	assert.ErrorIs(t, h.logger.errors[0], domain.ErrSourceParse)
}

func TestCache_AssignedRoots(t *testing.T) {
	target := domain.Target{
		Input: []domain.SourceRoot{
			{Path: "icons"},
			{Path: "icons/plain", Color: "currentColor"},
			{Path: "logos"},
		},
		Output: "sprite.svg",
	}
	c := sprite.NewCache(target, newHarness().deps())

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "outer root only", path: "icons/home.svg", want: []string{"icons"}},
		{name: "overlapping roots in order", path: "icons/plain/home.svg", want: []string{"icons", "icons/plain"}},
		{name: "other root", path: "logos/brand.svg", want: []string{"logos"}},
		{name: "no root", path: "src/app.svg", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range c.AssignedRoots(tt.path) {
				got = append(got, r.Path)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCache_AddRemove_Incremental(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()
	root := domain.SourceRoot{Path: "icons"}

	before := c.Symbols()

	c.Add(root, "icons/close.svg")
	assert.Equal(t, []string{"close", "home"}, ids(c.Symbols()))

	c.Remove(root, "icons/close.svg")
	after := c.Symbols()

	if diff := cmp.Diff(ids(before), ids(after)); diff != "" {
		t.Errorf("mapping changed after add+remove (-before +after):\n%s", diff)
	}
	assert.Same(t, before[0].Element, after[0].Element, "untouched entries are kept as is")
}

func TestCache_Remove_Absent(t *testing.T) {
	h := newHarness()
	c := sprite.NewCache(singleRootTarget(), h.deps())

	require.NotPanics(t, func() {
		assert.False(t, c.Remove(domain.SourceRoot{Path: "icons"}, "icons/missing.svg"))
	})
	assert.Zero(t, c.Len())
}

func TestCache_Remove_Directory(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/a/one.svg", "icons/a/two.svg", "icons/ab.svg", "icons/b/three.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	assert.True(t, c.Holds("icons/a"))
	assert.True(t, c.Remove(domain.SourceRoot{Path: "icons"}, "icons/a"))

	assert.Equal(t, []string{"ab", "three"}, ids(c.Symbols()))
	assert.False(t, c.Remove(domain.SourceRoot{Path: "icons"}, "icons/a"), "nothing left below icons/a")
	assert.False(t, c.Holds("icons/a"))
}

func TestCache_Update_ReplacesEntry(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()
	first := c.Symbols()[0].Element

	c.Update(domain.SourceRoot{Path: "icons"}, "icons/home.svg")

	symbols := c.Symbols()
	require.Len(t, symbols, 1, "update must not duplicate the entry")
	assert.NotSame(t, first, symbols[0].Element)
}

func TestCache_Update_BrokenSourceDisappears(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg", "icons/close.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	h.builder.setBroken("icons/home.svg", true)
	c.Update(domain.SourceRoot{Path: "icons"}, "icons/home.svg")
	assert.Equal(t, []string{"close"}, ids(c.Symbols()))

	h.builder.setBroken("icons/home.svg", false)
	c.Update(domain.SourceRoot{Path: "icons"}, "icons/home.svg")
	assert.Equal(t, []string{"close", "home"}, ids(c.Symbols()))
}

func TestCache_OverlappingRoots_KeepBothEntries(t *testing.T) {
	h := newHarness()
	target := domain.Target{
		Input: []domain.SourceRoot{
			{Path: "icons"},
			{Path: "icons/plain", Color: "currentColor"},
		},
		Output: "sprite.svg",
	}
	h.walker["icons"] = []string{"icons/plain/home.svg"}
	h.walker["icons/plain"] = []string{"icons/plain/home.svg"}

	c := sprite.NewCache(target, h.deps())
	c.Initialize()

	symbols := c.Symbols()
	require.Len(t, symbols, 2, "duplicate ids are emitted as-is")
	assert.Equal(t, "", symbols[0].Element.SelectAttrValue("fill", ""), "first configured root sorts first")
	assert.Equal(t, "currentColor", symbols[1].Element.SelectAttrValue("fill", ""))

	for _, root := range c.AssignedRoots("icons/plain/home.svg") {
		c.Remove(root, "icons/plain/home.svg")
	}
	assert.Zero(t, c.Len())
}

func TestCache_Symbols_DuplicateIDsOrderedBySource(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/z/home.svg", "icons/a/home.svg", "icons/close.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	var sources []string
	for _, s := range c.Symbols() {
		sources = append(sources, s.Source)
	}
	assert.Equal(t, []string{"icons/close.svg", "icons/a/home.svg", "icons/z/home.svg"}, sources)
}

func TestCache_Emit_Idempotent(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg", "icons/close.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	require.NoError(t, c.Emit(t.Context()))
	first := h.writer.content("public/sprite.svg")
	require.NoError(t, c.Emit(t.Context()))
	second := h.writer.content("public/sprite.svg")

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"close", "home"}, symbolIDs(first))
	assert.Equal(t, 2, h.writer.count("public/sprite.svg"))
}

func TestCache_Emit_Empty(t *testing.T) {
	h := newHarness()
	c := sprite.NewCache(singleRootTarget(), h.deps())

	require.NoError(t, c.Emit(t.Context()))
	assert.Equal(t, "<svg xmlns=\"http://www.w3.org/2000/svg\"/>\n", h.writer.content("public/sprite.svg"))
}

func TestCache_Emit_Declaration(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg", "icons/close.svg"}
	target := singleRootTarget()
	target.Declaration = &domain.Declaration{Path: "src/sprite.d.ts", Export: "IconName"}

	c := sprite.NewCache(target, h.deps())
	c.Initialize()
	require.NoError(t, c.Emit(t.Context()))

	assert.Equal(t, "// Code generated by sprite. DO NOT EDIT.\n\n"+
		"export type IconName =\n"+
		"  | \"close\"\n"+
		"  | \"home\";\n", h.writer.content("src/sprite.d.ts"))
}

func TestCache_Emit_WriteFailureKeepsState(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg"}
	h.writer.setFail("public/sprite.svg", errors.New("read-only file system"))

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()

	err := c.Emit(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
	assert.Equal(t, 1, c.Len())

	h.writer.setFail("public/sprite.svg", nil)
	require.NoError(t, c.Emit(t.Context()))
	assert.Equal(t, []string{"home"}, symbolIDs(h.writer.content("public/sprite.svg")))
}

func TestCache_Destroy(t *testing.T) {
	h := newHarness()
	h.walker["icons"] = []string{"icons/home.svg"}

	c := sprite.NewCache(singleRootTarget(), h.deps())
	c.Initialize()
	c.Destroy()

	assert.Zero(t, c.Len())
	assert.Zero(t, h.writer.count("public/sprite.svg"), "destroy performs no I/O")
}
