package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/parkease/pkg/routing"
)

// ViewLister is implemented by matchers that can enumerate the view
// identifiers they resolve to, allowing dispatch targets to be checked at
// startup.
type ViewLister interface {
	Views() []string
}

// Dispatcher serves requests by resolving the path through a routing.Matcher.
// Redirect outcomes become 302 responses, view outcomes render the view's
// template, and unmatched paths are handed to the fallback handler.
type Dispatcher struct {
	matcher   routing.Matcher
	templates *TemplateSet
	layout    string
	views     map[string]ViewDef
	fallback  http.HandlerFunc
	logger    *slog.Logger
}

// NewDispatcher binds matcher outcomes to the given views. When matcher
// implements ViewLister, every view it references must have a ViewDef.
func NewDispatcher(
	matcher routing.Matcher,
	templates *TemplateSet,
	layout string,
	views []ViewDef,
	fallback http.HandlerFunc,
	logger *slog.Logger,
) (*Dispatcher, error) {
	byName := make(map[string]ViewDef, len(views))
	for _, v := range views {
		if !templates.Has(v.Template) {
			return nil, fmt.Errorf("view %q: template %s not parsed", v.Name, v.Template)
		}
		byName[v.Name] = v
	}

	if lister, ok := matcher.(ViewLister); ok {
		for _, name := range lister.Views() {
			if _, ok := byName[name]; !ok {
				return nil, fmt.Errorf("view %q has no definition", name)
			}
		}
	}

	if fallback == nil {
		fallback = http.NotFound
	}

	return &Dispatcher{
		matcher:   matcher,
		templates: templates,
		layout:    layout,
		views:     byName,
		fallback:  fallback,
		logger:    logger.With("system", "dispatcher"),
	}, nil
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	out := d.matcher.Match(r.URL.Path)

	switch out.Kind {
	case routing.KindRedirect:
		target := out.Entry.Redirect
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, d.templates.BasePath()+target, http.StatusFound)

	case routing.KindView:
		view, ok := d.views[out.Entry.View]
		if !ok {
			d.logger.Error("view not defined", "view", out.Entry.View, "path", r.URL.Path)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		data := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: d.templates.BasePath(),
			View:     view.Name,
			Path:     r.URL.Path,
		}
		if err := d.templates.Render(w, d.layout, view.Template, data); err != nil {
			d.logger.Error("render failed", "view", view.Name, "error", err)
		}

	default:
		d.fallback(w, r)
	}
}
