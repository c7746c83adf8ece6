// Package web provides infrastructure for serving the application shell with
// Go templates. Templates are parsed once at startup and every view is
// rendered through a shared layout.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef describes a renderable view: the template it is drawn with, the
// document title, and the script bundle the layout loads for it.
type ViewDef struct {
	Name     string
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	View     string
	Path     string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by view template file.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them for
// each view, parsing the view template from viewSubdir. Any missing or
// malformed template fails construction.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := viewTemplates[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in every ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Has reports whether viewPath was parsed into the set.
func (ts *TemplateSet) Has(viewPath string) bool {
	_, ok := ts.views[viewPath]
	return ok
}

// ErrorHandler returns an HTTP handler that renders view with the given status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.viewData(view, r)
		if err := ts.RenderStatus(w, layout, view.Template, status, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler returns an HTTP handler that renders view with status 200.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, layout, view.Template, ts.viewData(view, r)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout for the view template with status 200.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewPath string, data ViewData) error {
	return ts.RenderStatus(w, layoutName, viewPath, http.StatusOK, data)
}

// RenderStatus executes the named layout for the view template. The status
// is written only after a template is found, so a missing template still
// allows the caller to write its own error response.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, layoutName, viewPath string, status int, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.ExecuteTemplate(w, layoutName, data)
}

func (ts *TemplateSet) viewData(view ViewDef, r *http.Request) ViewData {
	return ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		View:     view.Name,
		Path:     r.URL.Path,
	}
}
