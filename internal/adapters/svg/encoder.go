package svg

import (
	"bytes"

	"github.com/beevik/etree"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/zerr"
)

const indentSpaces = 2

// Encoder implements ports.SpriteEncoder.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode serializes symbols, in the given order, into a fresh
// <svg xmlns="http://www.w3.org/2000/svg"> document indented by two spaces.
// The encoder works on copies; the callers' elements are left untouched.
func (e *Encoder) Encode(symbols []domain.Symbol) ([]byte, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", domain.SVGNamespace)

	for _, s := range symbols {
		if s.Element == nil {
			continue
		}
		root.AddChild(s.Element.Copy())
	}

	doc.Indent(indentSpaces)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, zerr.Wrap(domain.ErrOutputEncode, err.Error())
	}
	return buf.Bytes(), nil
}
