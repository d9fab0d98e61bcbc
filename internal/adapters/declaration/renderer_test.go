package declaration_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sprite/internal/adapters/declaration"
	"go.trai.ch/sprite/internal/core/domain"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name       string
		decl       domain.Declaration
		ids        []string
		goldenName string
	}{
		{
			name:       "default export",
			decl:       domain.Declaration{Path: "src/sprite.d.ts"},
			ids:        []string{"home", "close"},
			goldenName: "default_export",
		},
		{
			name:       "namespace",
			decl:       domain.Declaration{Path: "src/sprite.d.ts", Export: "IconName", Namespace: "Icons"},
			ids:        []string{"close", "home", "arrow-left"},
			goldenName: "namespace",
		},
		{
			name:       "empty id set",
			decl:       domain.Declaration{Path: "src/sprite.d.ts"},
			ids:        nil,
			goldenName: "empty",
		},
		{
			name:       "empty id set in namespace",
			decl:       domain.Declaration{Path: "src/sprite.d.ts", Namespace: "Icons"},
			ids:        []string{},
			goldenName: "empty_namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := declaration.NewRenderer().Render(tt.decl, tt.ids)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, out)
		})
	}
}

func TestRenderer_Render_Deduplicates(t *testing.T) {
	out, err := declaration.NewRenderer().Render(domain.Declaration{}, []string{"b", "a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "// Code generated by sprite. DO NOT EDIT.\n\n"+
		"export type SpriteId =\n"+
		"  | \"a\"\n"+
		"  | \"b\";\n", string(out))
}

func TestRenderer_Render_DoesNotReorderInput(t *testing.T) {
	ids := []string{"b", "a"}
	_, err := declaration.NewRenderer().Render(domain.Declaration{}, ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)
}

func TestRenderer_Render_QuotesIDs(t *testing.T) {
	out, err := declaration.NewRenderer().Render(domain.Declaration{}, []string{`say"hi`})
	require.NoError(t, err)
	assert.Contains(t, string(out), `| "say\"hi";`)
}
