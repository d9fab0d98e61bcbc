package ports

import "go.trai.ch/sprite/internal/core/domain"

// SymbolBuilder turns one source document into a symbol.
//
//go:generate go run go.uber.org/mock/mockgen -source=svg.go -destination=mocks/mock_svg.go -package=mocks
type SymbolBuilder interface {
	// Build reads and parses the document at path and decorates it according to root.
	// It fails with domain.ErrSourceRead or domain.ErrSourceParse.
	Build(path string, root domain.SourceRoot) (domain.Symbol, error)
}

// SpriteEncoder serializes an ordered symbol set into a merged sprite document.
type SpriteEncoder interface {
	// Encode appends copies of the symbols, in order, to a fresh root container
	// and returns the indented document. The given elements are left untouched.
	Encode(symbols []domain.Symbol) ([]byte, error)
}

// DeclarationRenderer renders the type declaration listing the ids of a sprite.
type DeclarationRenderer interface {
	// Render returns the declaration source listing ids.
	Render(decl domain.Declaration, ids []string) ([]byte, error)
}
