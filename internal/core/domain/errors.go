package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceRead is returned when a source document cannot be read from disk.
	ErrSourceRead = zerr.New("failed to read source document")

	// ErrSourceParse is returned when a source document is not a well-formed SVG document.
	ErrSourceParse = zerr.New("failed to parse source document")

	// ErrOutputWrite is returned when a merged sprite or its declaration cannot be written.
	ErrOutputWrite = zerr.New("failed to write output")

	// ErrOutputEncode is returned when the merged sprite cannot be serialized.
	ErrOutputEncode = zerr.New("failed to encode output")

	// ErrConfigRead is returned when the config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file exists in the working directory.
	ErrConfigNotFound = zerr.New("could not find sprite config file")

	// ErrNoTargets is returned when a config declares no targets.
	ErrNoTargets = zerr.New("no targets configured")

	// ErrMissingOutput is returned when a target has no output path.
	ErrMissingOutput = zerr.New("target has no output path")

	// ErrNoSourceRoots is returned when a target has no input roots.
	ErrNoSourceRoots = zerr.New("target has no input roots")

	// ErrMissingSourcePath is returned when an input root has an empty path.
	ErrMissingSourcePath = zerr.New("input root has no path")

	// ErrDuplicateSourceRoot is returned when two input roots of one target normalize to the same path.
	ErrDuplicateSourceRoot = zerr.New("duplicate input root")

	// ErrInvalidBatchWindow is returned when the batch window is not a positive duration.
	ErrInvalidBatchWindow = zerr.New("invalid batch window, expected a positive duration such as '200ms'")

	// ErrWatcherStartFailed is returned when the file system watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrBuildFailed is returned when at least one target could not be written.
	// The individual failures have been logged already.
	ErrBuildFailed = zerr.New("sprite build failed")

	// ErrReloadFailed is returned when a reload hook command fails.
	ErrReloadFailed = zerr.New("reload command failed")
)
