package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/JaimeStill/parkease/pkg/handlers"
)

// newProxy forwards requests to upstream with the module prefix restored,
// so /api/auth/profile reaches {upstream}/api/auth/profile.
func newProxy(upstream *url.URL, prefix string, logger *slog.Logger) http.Handler {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = prefix
			if pr.In.URL.Path != "/" {
				pr.Out.URL.Path += pr.In.URL.Path
			}
			pr.Out.URL.RawPath = ""
			pr.SetURL(upstream)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			err = fmt.Errorf("%w: %w", ErrUpstream, err)
			handlers.RespondError(w, logger, MapHTTPStatus(err), err)
		},
	}
}

func notFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fmt.Errorf("%w: %s %s", ErrNotFound, r.Method, r.URL.Path)
		handlers.RespondError(w, logger, MapHTTPStatus(err), err)
	}
}
