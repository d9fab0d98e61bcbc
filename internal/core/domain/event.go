package domain

// ChangeKind classifies a file system change reported for a source document.
type ChangeKind uint8

const (
	// ChangeAdded indicates a file appeared.
	ChangeAdded ChangeKind = iota
	// ChangeModified indicates a file's content changed.
	ChangeModified
	// ChangeRemoved indicates a file (or directory) disappeared.
	ChangeRemoved
)

// String returns the name used in logs and span attributes.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Merge folds a later change for the same path into k.
// A file created and then written within one burst is still new to its consumers.
func (k ChangeKind) Merge(next ChangeKind) ChangeKind {
	if k == ChangeAdded && next == ChangeModified {
		return ChangeAdded
	}
	return next
}

// ChangeEvent is a single change reported for a path.
type ChangeEvent struct {
	Kind ChangeKind
	Path string
}
