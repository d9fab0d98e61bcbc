// Package declaration renders TypeScript type declarations that list the
// symbol ids of a sprite.
package declaration

import (
	"bytes"
	"slices"
	"strconv"
	"text/template"

	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/zerr"
)

const source = `// Code generated by sprite. DO NOT EDIT.
{{ if .Namespace }}
export declare namespace {{ .Namespace }} {
{{ template "type" . }}
}
{{ else }}
{{ template "type" . }}
{{ end }}`

const typeSource = `{{ define "type" -}}
{{ .Indent }}export type {{ .Export }} =
{{- if .IDs }}
{{- range $i, $id := .IDs }}
{{ $.Indent }}  | {{ $id }}{{ if last $i $.IDs }};{{ end }}
{{- end }}
{{- else }} never;
{{- end }}
{{- end }}`

var tmpl = template.Must(template.Must(template.New("declaration").Funcs(template.FuncMap{
	"last": func(i int, ids []string) bool { return i == len(ids)-1 },
}).Parse(source)).Parse(typeSource))

type view struct {
	Namespace string
	Export    string
	Indent    string
	IDs       []string
}

// Renderer implements ports.DeclarationRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the declaration for ids. Ids are sorted, de-duplicated and
// quoted; an empty set renders as never.
func (r *Renderer) Render(decl domain.Declaration, ids []string) ([]byte, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	quoted := make([]string, len(sorted))
	for i, id := range sorted {
		quoted[i] = strconv.Quote(id)
	}

	v := view{
		Namespace: decl.Namespace,
		Export:    decl.Export,
		IDs:       quoted,
	}
	if v.Export == "" {
		v.Export = domain.DefaultDeclarationExport
	}
	if v.Namespace != "" {
		v.Indent = "  "
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputEncode, err.Error()), "path", decl.Path)
	}
	return buf.Bytes(), nil
}
