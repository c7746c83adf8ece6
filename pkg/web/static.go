package web

import (
	"io/fs"
	"net/http"
	"path"

	"github.com/JaimeStill/parkease/pkg/routes"
)

// DistServer serves files from subdir of fsys under the URL prefix.
// Missing files produce a 404.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFileRoutes returns one GET route per file, serving files from subdir
// of fsys at the site root (for example /favicon.ico).
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []routes.Route {
	out := make([]routes.Route, 0, len(files))
	for _, name := range files {
		filePath := path.Join(subdir, name)
		out = append(out, routes.Route{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: func(w http.ResponseWriter, r *http.Request) {
				http.ServeFileFS(w, r, fsys, filePath)
			},
		})
	}
	return out
}
