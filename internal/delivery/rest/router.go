package rest

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed static
var assets embed.FS

// idPattern: id — целое без знака, "01" тоже означает 1. Ноль отсекает employeeID.
const idPattern = "{id:[0-9]+}"

func NewRouter(h *Handler, logger *zap.Logger) (http.Handler, error) {
	index, err := fs.ReadFile(assets, "static/index.html")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(index)
	})
	r.Handle("/static/*", http.FileServer(http.FS(assets)))

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.ListEmployees)
		r.Post("/", h.AddEmployee)
		r.Put("/"+idPattern, h.UpdateEmployee)
		r.Delete("/"+idPattern, h.DeleteEmployee)
	})
	return r, nil
}
