package domain

import (
	"strings"
	"time"
)

// Config is a loaded sprite configuration.
type Config struct {
	// BatchWindow is the trailing-edge delay applied before dirty sprites are written.
	BatchWindow time.Duration
	// Targets are the aggregation targets, in declaration order.
	Targets []Target
}

// Target is one aggregation target: a set of source roots merged into one output.
type Target struct {
	Input       []SourceRoot
	Output      string
	Declaration *Declaration
	// Reload is an optional command run after the output changed on disk.
	Reload []string
}

// SourceRoot is a configured path prefix scanned for source documents.
type SourceRoot struct {
	// Path is the normalized path prefix.
	Path string
	// Color, when set, replaces every existing fill and stroke value.
	Color      string
	Attributes SymbolAttributes
}

// Contains reports whether the normalized path falls under the root.
// A root at the working directory contains every path.
func (r SourceRoot) Contains(path string) bool {
	if r.Path == "." {
		return true
	}
	return strings.HasPrefix(path, r.Path)
}

// SymbolAttributes toggles the generated attributes of a symbol.
// A nil toggle selects the default.
type SymbolAttributes struct {
	Width   *bool
	Height  *bool
	ViewBox *bool
	Fill    *bool
}

// IncludeWidth reports whether width is copied onto the symbol. Defaults to false.
func (a SymbolAttributes) IncludeWidth() bool {
	return a.Width != nil && *a.Width
}

// IncludeHeight reports whether height is copied onto the symbol. Defaults to false.
func (a SymbolAttributes) IncludeHeight() bool {
	return a.Height != nil && *a.Height
}

// IncludeViewBox reports whether a viewBox is derived from width and height. Defaults to true.
func (a SymbolAttributes) IncludeViewBox() bool {
	return a.ViewBox == nil || *a.ViewBox
}

// IncludeFill reports whether fill="none" is set on the symbol. Defaults to true.
func (a SymbolAttributes) IncludeFill() bool {
	return a.Fill == nil || *a.Fill
}

// Declaration describes a generated type declaration listing the symbol ids of a target.
type Declaration struct {
	Path      string
	Export    string
	Namespace string
}
