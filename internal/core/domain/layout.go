package domain

import "time"

const (
	// SVGExtension is the file extension of source documents.
	SVGExtension = ".svg"

	// SVGNamespace is the namespace declared on the merged sprite root.
	SVGNamespace = "http://www.w3.org/2000/svg"

	// DefaultBatchWindow is the trailing-edge delay before dirty sprites are written.
	DefaultBatchWindow = 200 * time.Millisecond

	// DefaultDeclarationExport is the type name used when a declaration omits one.
	DefaultDeclarationExport = "SpriteId"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ignoredDirs are never scanned or watched for sources.
var ignoredDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// IsIgnoredDir reports whether a directory with the given base name is skipped
// when looking for sources.
func IsIgnoredDir(name string) bool {
	return ignoredDirs[name]
}

// ConfigFileNames lists the config files looked up in the working directory, in order.
var ConfigFileNames = []string{
	"sprite.yaml",
	"sprite.yml",
	"sprite.jsonc",
	"sprite.json",
}
