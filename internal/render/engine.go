// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names accepted by Render.
const (
	PageIndex  = "index"
	PageFeed   = "feed"
	PageLookup = "lookup"
	PageError  = "error"
)

var pageNames = []string{PageIndex, PageFeed, PageLookup, PageError}

// ErrUnknownTemplate is returned by Render for a page that was never parsed.
var ErrUnknownTemplate = errors.New("unknown template")

// Engine holds one parsed template set per page. It is safe for concurrent use.
type Engine struct {
	pages map[string]*template.Template
}

// New parses every embedded page. A parse failure is a build defect, so
// callers usually treat it as fatal.
func New() (*Engine, error) {
	funcs := buildFuncMap()

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Engine{pages: pages}, nil
}

// Execute renders page name with data and returns the HTML body.
func (e *Engine) Execute(name string, data interface{}) ([]byte, error) {
	tmpl, ok := e.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Render writes page name with the given status. On error nothing is written.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	body, err := e.Execute(name, data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}
