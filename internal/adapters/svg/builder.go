// Package svg implements the symbol builder and sprite encoder on top of
// the beevik/etree element tree.
package svg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builder implements ports.SymbolBuilder by reading source documents from disk.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build reads the document at path and turns its root into a <symbol>
// decorated according to the attribute toggles of root. The symbol owns the
// children of the parsed document; nothing else references them.
func (b *Builder) Build(path string, root domain.SourceRoot) (domain.Symbol, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the configured source roots
	if err != nil {
		return domain.Symbol{}, zerr.With(zerr.Wrap(domain.ErrSourceRead, err.Error()), "path", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return domain.Symbol{}, zerr.With(zerr.Wrap(domain.ErrSourceParse, err.Error()), "path", path)
	}

	src := doc.Root()
	if src == nil {
		return domain.Symbol{}, zerr.With(zerr.Wrap(domain.ErrSourceParse, "document has no root element"), "path", path)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	width := src.SelectAttr("width")
	height := src.SelectAttr("height")

	symbol := etree.NewElement("symbol")
	symbol.CreateAttr("id", id)

	attrs := root.Attributes
	if attrs.IncludeWidth() && width != nil {
		symbol.CreateAttr("width", width.Value)
	}
	if attrs.IncludeHeight() && height != nil {
		symbol.CreateAttr("height", height.Value)
	}
	if attrs.IncludeViewBox() && width != nil && height != nil {
		symbol.CreateAttr("viewBox", "0 0 "+width.Value+" "+height.Value)
	}
	if attrs.IncludeFill() {
		symbol.CreateAttr("fill", "none")
	}

	// Prefixed namespace declarations stay with the content that uses them.
	for _, a := range src.Attr {
		if a.Space == "xmlns" {
			symbol.CreateAttr(a.FullKey(), a.Value)
		}
	}

	// AddChild detaches each token from src, so iterate over a snapshot.
	children := append([]etree.Token(nil), src.Child...)
	for _, child := range children {
		symbol.AddChild(RewriteColor(child, root.Color))
	}

	return domain.Symbol{ID: id, Source: path, Element: symbol}, nil
}
