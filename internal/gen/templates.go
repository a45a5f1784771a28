package gen

import "text/template"

// fileData holds everything the file template needs.
type fileData struct {
	PackageName string
	Imports     []importSpec
	Loaders     []loaderData
}

// loaderData describes one loader function in a generated file.
type loaderData struct {
	// TypeName is the consumer struct the loader fills.
	TypeName string
	// FuncName is the unexported per-struct loader name.
	FuncName string
	// Prefix is the root prefix literal, used by the exported wrapper only.
	Prefix string
	// Root marks the loader that also gets an exported wrapper.
	Root bool
	// Body is the pre-rendered load sequence.
	Body string
}

var fileTemplate = template.Must(template.New("loader").Parse(`// Code generated by envgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{.Alias}} "{{.Path}}"
{{end}})

{{range .Loaders}}{{if .Root}}// Load{{.TypeName}} reads {{.TypeName}} from src. On failure it reports every
// missing and invalid value at once.
func Load{{.TypeName}}(src envgen_source.Source) ({{.TypeName}}, error) {
	out, errs := {{.FuncName}}(src, {{printf "%q" .Prefix}})
	if err := errs.Err(); err != nil {
		return {{.TypeName}}{}, err
	}

	return out, nil
}

{{end}}func {{.FuncName}}(src envgen_source.Source, prefix string) ({{.TypeName}}, envgen_source.ErrorList) {
	var out {{.TypeName}}

	var errs envgen_source.ErrorList

{{.Body}}
	return out, errs
}

{{end}}`))
