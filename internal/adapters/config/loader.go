// Package config provides the configuration loader for sprite.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only config file version understood by the loader.
const CurrentVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML, JSON and JSONC files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	// Getwd returns the directory searched when no path is given
	// and the base that configured paths are normalized against.
	Getwd func() (string, error)
}

// NewLoader creates a new Loader reading from the local filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS(), Getwd: os.Getwd}
}

// Load reads the configuration at path. An empty path searches the working
// directory for one of domain.ConfigFileNames.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cwd, err := l.Getwd()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrConfigRead, err.Error())
	}

	if path == "" {
		path, err = Discover(l.FS, cwd)
		if err != nil {
			return nil, err
		}
	}

	spritefile, err := l.decode(path)
	if err != nil {
		return nil, err
	}

	if spritefile.Version != CurrentVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, spritefile.Version, CurrentVersion))
	}

	cfg, err := buildConfig(cwd, spritefile)
	if err != nil {
		return nil, zerr.With(err, "config", path)
	}
	return cfg, nil
}

// Discover returns the first of domain.ConfigFileNames present in dir.
func Discover(fsys FileSystem, dir string) (string, error) {
	for _, name := range domain.ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", invalid(domain.ErrConfigNotFound, "cwd", dir)
}

func (l *Loader) decode(path string) (*Spritefile, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigRead, err.Error()), "path", path)
	}

	var spritefile Spritefile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &spritefile)
	default:
		err = yaml.Unmarshal(data, &spritefile)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParse, err.Error()), "path", path)
	}

	return &spritefile, nil
}

func buildConfig(cwd string, spritefile *Spritefile) (*domain.Config, error) {
	window, err := parseBatchWindow(spritefile.BatchWindow)
	if err != nil {
		return nil, err
	}

	if len(spritefile.Targets) == 0 {
		return nil, zerr.Wrap(domain.ErrNoTargets, "")
	}

	cfg := &domain.Config{
		BatchWindow: window,
		Targets:     make([]domain.Target, 0, len(spritefile.Targets)),
	}
	for i := range spritefile.Targets {
		target, err := buildTarget(cwd, &spritefile.Targets[i])
		if err != nil {
			return nil, zerr.With(err, "target", i)
		}
		cfg.Targets = append(cfg.Targets, target)
	}
	return cfg, nil
}

func parseBatchWindow(raw string) (time.Duration, error) {
	if raw == "" {
		return domain.DefaultBatchWindow, nil
	}
	window, err := time.ParseDuration(raw)
	if err != nil || window <= 0 {
		return 0, invalid(domain.ErrInvalidBatchWindow, "batch_window", raw)
	}
	return window, nil
}

func buildTarget(cwd string, dto *TargetDTO) (domain.Target, error) {
	if strings.TrimSpace(dto.Output) == "" {
		return domain.Target{}, zerr.Wrap(domain.ErrMissingOutput, "")
	}
	if len(dto.Input) == 0 {
		return domain.Target{}, invalid(domain.ErrNoSourceRoots, "output", dto.Output)
	}

	target := domain.Target{
		Output: domain.NormalizePathFrom(cwd, dto.Output),
		Input:  make([]domain.SourceRoot, 0, len(dto.Input)),
		Reload: dto.Reload,
	}

	if dto.Declaration != nil {
		if strings.TrimSpace(dto.Declaration.Path) == "" {
			return domain.Target{}, invalid(domain.ErrMissingOutput, "field", "declaration.path")
		}
		export := dto.Declaration.Export
		if export == "" {
			export = domain.DefaultDeclarationExport
		}
		target.Declaration = &domain.Declaration{
			Path:      domain.NormalizePathFrom(cwd, dto.Declaration.Path),
			Export:    export,
			Namespace: dto.Declaration.Namespace,
		}
	}

	seen := make(map[string]int, len(dto.Input))
	for i, input := range dto.Input {
		if strings.TrimSpace(input.Path) == "" {
			return domain.Target{}, invalid(domain.ErrMissingSourcePath, "input", i)
		}
		path := domain.NormalizePathFrom(cwd, input.Path)
		if first, ok := seen[path]; ok {
			err := invalid(domain.ErrDuplicateSourceRoot, "path", path)
			err = zerr.With(err, "first_occurrence", first)
			return domain.Target{}, zerr.With(err, "duplicate_at", i)
		}
		seen[path] = i

		target.Input = append(target.Input, domain.SourceRoot{
			Path:  path,
			Color: input.Color,
			Attributes: domain.SymbolAttributes{
				Width:   input.SymbolAttributes.Width,
				Height:  input.SymbolAttributes.Height,
				ViewBox: input.SymbolAttributes.ViewBox,
				Fill:    input.SymbolAttributes.Fill,
			},
		})
	}

	return target, nil
}

// invalid attaches metadata to a sentinel without hiding it from errors.Is.
func invalid(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
