package ports

import "iter"

// SourceWalker enumerates source documents below a root.
//
//go:generate go run go.uber.org/mock/mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type SourceWalker interface {
	// WalkFiles yields every regular file below root whose name ends in ext.
	WalkFiles(root, ext string) iter.Seq[string]
}

// OutputWriter writes generated artifacts.
type OutputWriter interface {
	// WriteFile replaces the content of path with data, creating parent directories.
	WriteFile(path string, data []byte) error
}

// ContentHasher digests file contents.
type ContentHasher interface {
	// ComputeFileHash returns the XXHash of the file content at path.
	ComputeFileHash(path string) (uint64, error)
}
