package svg

import "github.com/beevik/etree"

// RewriteColor overwrites the unprefixed fill and stroke attributes of token
// and of every element below it with color. Attributes are only replaced,
// never added. Non-element tokens and an empty color leave the tree as is.
// The same token is returned so calls can be chained into AddChild.
func RewriteColor(token etree.Token, color string) etree.Token {
	if color == "" {
		return token
	}

	el, ok := token.(*etree.Element)
	if !ok {
		return token
	}

	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Space == "" && (a.Key == "fill" || a.Key == "stroke") {
			a.Value = color
		}
	}

	for _, child := range el.ChildElements() {
		RewriteColor(child, color)
	}

	return token
}
