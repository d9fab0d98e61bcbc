package sprite_test

import (
	"iter"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"go.trai.ch/sprite/internal/adapters/declaration"
	"go.trai.ch/sprite/internal/adapters/svg"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/engine/sprite"
	"go.trai.ch/zerr"
)

// fakeBuilder builds symbols from the path alone. The root's color is
// recorded as a fill attribute so tests can tell roots apart.
type fakeBuilder struct {
	mu     sync.Mutex
	broken map[string]bool
	calls  []string
}

func newFakeBuilder() *fakeBuilder {
	return &fakeBuilder{broken: make(map[string]bool)}
}

func (b *fakeBuilder) Build(p string, root domain.SourceRoot) (domain.Symbol, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, root.Path+":"+p)
	if b.broken[p] {
		return domain.Symbol{}, zerr.With(zerr.Wrap(domain.ErrSourceParse, "unexpected EOF"), "path", p)
	}

	id := strings.TrimSuffix(path.Base(p), path.Ext(p))
	el := etree.NewElement("symbol")
	el.CreateAttr("id", id)
	if root.Color != "" {
		el.CreateAttr("fill", root.Color)
	}
	return domain.Symbol{ID: id, Source: p, Element: el}, nil
}

func (b *fakeBuilder) setBroken(p string, broken bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broken[p] = broken
}

// staticWalker maps a root path to the files below it.
type staticWalker map[string][]string

func (w staticWalker) WalkFiles(root, _ string) iter.Seq[string] {
	return slices.Values(w[root])
}

// memWriter stores outputs in memory and counts writes per path.
type memWriter struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes map[string]int
	fail   map[string]error
}

func newMemWriter() *memWriter {
	return &memWriter{
		files:  make(map[string][]byte),
		writes: make(map[string]int),
		fail:   make(map[string]error),
	}
}

func (w *memWriter) WriteFile(p string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fail[p]; err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWrite, err.Error()), "path", p)
	}
	w.files[p] = slices.Clone(data)
	w.writes[p]++
	return nil
}

func (w *memWriter) setFail(p string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fail[p] = err
}

func (w *memWriter) content(p string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.files[p])
}

func (w *memWriter) count(p string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes[p]
}

// recordingLogger collects log output.
type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []error
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, err)
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

type harness struct {
	builder *fakeBuilder
	walker  staticWalker
	writer  *memWriter
	logger  *recordingLogger
}

func newHarness() *harness {
	return &harness{
		builder: newFakeBuilder(),
		walker:  staticWalker{},
		writer:  newMemWriter(),
		logger:  &recordingLogger{},
	}
}

func (h *harness) deps() sprite.Deps {
	return sprite.Deps{
		Builder:      h.builder,
		Encoder:      svg.NewEncoder(),
		Declarations: declaration.NewRenderer(),
		Walker:       h.walker,
		Files:        h.writer,
		Logger:       h.logger,
	}
}

// symbolIDs extracts the id of every <symbol> of an emitted document, in order.
func symbolIDs(doc string) []string {
	d := etree.NewDocument()
	if err := d.ReadFromString(doc); err != nil || d.Root() == nil {
		return nil
	}
	var ids []string
	for _, s := range d.Root().SelectElements("symbol") {
		ids = append(ids, s.SelectAttrValue("id", ""))
	}
	return ids
}

func ids(symbols []domain.Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.ID
	}
	return out
}
