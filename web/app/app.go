// Package app provides the ParkEase web shell: the client route table, the
// views it resolves to, and the embedded templates and assets that render
// them.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/parkease/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"robots.txt",
	"site.webmanifest",
}

// NewHandler builds the shell handler. Asset and public file routes are
// served directly; every other request is dispatched through the route
// table. basePath is the external prefix the shell is served under, empty
// at the origin root.
func NewHandler(basePath string, logger *slog.Logger) (http.Handler, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		append(Views(), notFoundView),
	)
	if err != nil {
		return nil, err
	}

	notFound := ts.ErrorHandler(layout, notFoundView, http.StatusNotFound)

	dispatcher, err := web.NewDispatcher(Routes(), ts, layout, Views(), notFound, logger)
	if err != nil {
		return nil, err
	}

	r := web.NewRouter()
	r.SetFallback(dispatcher.ServeHTTP)

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r, nil
}
