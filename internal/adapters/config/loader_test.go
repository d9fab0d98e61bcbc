package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sprite/internal/adapters/config"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const workDir = "/work"

func newLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter(workDir, files)
	loader.Getwd = func() (string, error) { return workDir, nil }
	return loader, mockLogger
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func ptr(b bool) *bool {
	return &b
}

func TestLoader_Load_YAML(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"sprite.yaml": file(`
version: "1"
batchWindow: 350ms
targets:
  - output: public/sprite.svg
    declaration:
      path: src/sprite.d.ts
      namespace: Icons
    reload: ["touch", "tmp/reload"]
    input:
      - path: ./icons/plain/
        color: currentColor
        symbolAttributes: { width: true, viewBox: false }
      - path: icons/brand
`),
	})

	cfg, err := loader.Load("")
	require.NoError(t, err)

	want := &domain.Config{
		BatchWindow: 350 * time.Millisecond,
		Targets: []domain.Target{{
			Output: "public/sprite.svg",
			Declaration: &domain.Declaration{
				Path:      "src/sprite.d.ts",
				Export:    domain.DefaultDeclarationExport,
				Namespace: "Icons",
			},
			Reload: []string{"touch", "tmp/reload"},
			Input: []domain.SourceRoot{
				{
					Path:       "icons/plain",
					Color:      "currentColor",
					Attributes: domain.SymbolAttributes{Width: ptr(true), ViewBox: ptr(false)},
				},
				{Path: "icons/brand"},
			},
		}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_JSONC(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"sprite.jsonc": file(`{
  // comments and trailing commas are allowed
  "version": "1",
  "targets": [
    {
      "output": "dist/icons.svg",
      "input": [{ "path": "assets/icons", "symbolAttributes": { "fill": false } },],
    },
  ],
}`),
	})

	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBatchWindow, cfg.BatchWindow)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "dist/icons.svg", cfg.Targets[0].Output)
	assert.Nil(t, cfg.Targets[0].Declaration)
	require.Len(t, cfg.Targets[0].Input, 1)
	assert.False(t, cfg.Targets[0].Input[0].Attributes.IncludeFill())
	assert.True(t, cfg.Targets[0].Input[0].Attributes.IncludeViewBox())
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"sprite.yaml": file(`version: "1"`),
		"conf/icons.json": file(`{"version": "1", "targets": [{"output": "out.svg", "input": [{"path": "icons"}]}]}`),
	})

	cfg, err := loader.Load(filepath.Join(workDir, "conf", "icons.json"))
	require.NoError(t, err)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "out.svg", cfg.Targets[0].Output)
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	loader, mockLogger := newLoader(t, fstest.MapFS{
		"sprite.yaml": file(`
targets:
  - output: out.svg
    input:
      - path: icons
`),
	})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load("")
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "targets: [",
			wantErr: domain.ErrConfigParse,
		},
		{
			name:    "no targets",
			content: `version: "1"`,
			wantErr: domain.ErrNoTargets,
		},
		{
			name: "missing output",
			content: `
version: "1"
targets:
  - input: [{ path: icons }]
`,
			wantErr: domain.ErrMissingOutput,
		},
		{
			name: "declaration without path",
			content: `
version: "1"
targets:
  - output: out.svg
    declaration: { export: Icon }
    input: [{ path: icons }]
`,
			wantErr: domain.ErrMissingOutput,
		},
		{
			name: "no input roots",
			content: `
version: "1"
targets:
  - output: out.svg
`,
			wantErr: domain.ErrNoSourceRoots,
		},
		{
			name: "empty input path",
			content: `
version: "1"
targets:
  - output: out.svg
    input: [{ color: red }]
`,
			wantErr: domain.ErrMissingSourcePath,
		},
		{
			name: "duplicate root after normalization",
			content: `
version: "1"
targets:
  - output: out.svg
    input: [{ path: ./icons/ }, { path: icons }]
`,
			wantErr: domain.ErrDuplicateSourceRoot,
		},
		{
			name: "unparsable batch window",
			content: `
version: "1"
batchWindow: soon
targets:
  - output: out.svg
    input: [{ path: icons }]
`,
			wantErr: domain.ErrInvalidBatchWindow,
		},
		{
			name: "negative batch window",
			content: `
version: "1"
batchWindow: -5ms
targets:
  - output: out.svg
    input: [{ path: icons }]
`,
			wantErr: domain.ErrInvalidBatchWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, fstest.MapFS{"sprite.yaml": file(tt.content)})

			_, err := loader.Load("")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MalformedJSON(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{"sprite.json": file(`{"targets": [}`)})

	_, err := loader.Load("")
	assert.ErrorIs(t, err, domain.ErrConfigParse)
}

func TestLoader_Load_ReadError(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{})

	_, err := loader.Load(filepath.Join(workDir, "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrConfigRead)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{"README.md": file("# icons")})

	_, err := loader.Load("")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestDiscover_Order(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"yaml wins over everything", []string{"sprite.json", "sprite.jsonc", "sprite.yml", "sprite.yaml"}, "sprite.yaml"},
		{"yml before json", []string{"sprite.json", "sprite.yml"}, "sprite.yml"},
		{"jsonc before json", []string{"sprite.json", "sprite.jsonc"}, "sprite.jsonc"},
		{"json alone", []string{"sprite.json"}, "sprite.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := fstest.MapFS{}
			for _, name := range tt.files {
				files[name] = file("{}")
			}

			got, err := config.Discover(config.NewMapFSAdapter(workDir, files), workDir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(workDir, tt.want), got)
		})
	}
}

func TestDiscover_IgnoresDirectories(t *testing.T) {
	files := fstest.MapFS{
		"sprite.yaml/keep": file(""),
		"sprite.json":      file("{}"),
	}

	got, err := config.Discover(config.NewMapFSAdapter(workDir, files), workDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "sprite.json"), got)
}

func TestLoader_Load_OSFS(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
version: "1"
targets:
  - output: ` + filepath.Join(dir, "public", "sprite.svg") + `
    input:
      - path: icons
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sprite.yml"), []byte(content), domain.FilePerm))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cfg, err := loader.Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "public/sprite.svg", cfg.Targets[0].Output, "absolute paths inside the working directory become relative")
	assert.Equal(t, "icons", cfg.Targets[0].Input[0].Path)
}
