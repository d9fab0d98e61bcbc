package domain

import "github.com/beevik/etree"

// Symbol is the cached contribution of one source document to a merged sprite.
// Element is owned by the cache entry holding the symbol.
type Symbol struct {
	ID      string
	Source  string
	Element *etree.Element
}
