package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/parkease/pkg/handlers"
	"github.com/JaimeStill/parkease/pkg/routes"
	"github.com/JaimeStill/parkease/pkg/routing"
)

// Resolution is the response body of a resolve request.
type Resolution struct {
	routing.Outcome
	Hops []string `json:"hops"`
}

// Handler exposes the route table over HTTP.
type Handler struct {
	table   *routing.Table
	maxHops int
	logger  *slog.Logger
}

func NewHandler(table *routing.Table, maxHops int, logger *slog.Logger) *Handler {
	return &Handler{
		table:   table,
		maxHops: maxHops,
		logger:  logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/routes",
		Description: "Client route table introspection",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve},
			{Method: "GET", Pattern: "/shadowed", Handler: h.Shadowed},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.table.Entries())
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrPathRequired)
		return
	}

	out, hops, err := h.table.Resolve(path, h.maxHops)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Resolution{Outcome: out, Hops: hops})
}

func (h *Handler) Shadowed(w http.ResponseWriter, r *http.Request) {
	shadowed := h.table.Shadowed()
	if shadowed == nil {
		shadowed = []routing.Entry{}
	}
	handlers.RespondJSON(w, http.StatusOK, shadowed)
}
