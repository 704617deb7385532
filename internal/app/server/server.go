// Package server wires the handlers and middleware into the chi router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/app/handler"
	"github.com/ddegtyarev/linkpulse/internal/app/service"
	"github.com/ddegtyarev/linkpulse/internal/middleware"
)

// Init builds the HTTP router. The short-code route pattern is wider
// than generated codes on purpose: manually assigned codes between 3 and
// 32 characters stay routable.
func Init(svc service.LinkServiceIface, auth service.AuthIface, trustedSubnet string, logger *zap.Logger) *chi.Mux {
	post := handler.NewPost(svc, logger)
	get := handler.NewGet(svc, logger)
	edit := handler.NewEdit(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))

	r.Get(`/{code:[A-Za-z0-9_-]{3,32}}`, get.Redirect)
	r.Get("/ping", get.PingDB)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.WithJWT(auth), middleware.WithGZIPPost).
			Post("/shorten", post.HandleShorten)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireJWT(auth), middleware.WithGZIPGet)

			r.Get("/urls", get.LinksByUser)
			r.Patch("/urls/{id}", edit.Update)
			r.Delete("/urls/{id}", edit.Delete)
			r.Get("/analytics/{id}", get.Analytics)
		})

		r.With(middleware.WithSubnet(trustedSubnet)).
			Get("/internal/stats", get.InternalStats)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short URL is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
