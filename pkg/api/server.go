/*
bptreedb admin API

An HTTP surface over a registry of named B+Trees: CRUD against tree
keys, per-tree stats, and a Prometheus scrape endpoint. Every route
under /v1 requires the X-API-Key header; /healthz and /metrics do not,
so a load balancer or Prometheus can reach them without a key.
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/bptreedb/pkg/registry"
)

// NewRouter builds the admin HTTP surface backed by reg.
func NewRouter(reg *registry.Registry, apiKey string) http.Handler {
	server := NewServer(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(recoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", server.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(apiKey))

		r.Get("/trees", instrument("GET", "/v1/trees", server.handleListTrees))
		r.Put("/trees/{tree}", instrument("PUT", "/v1/trees/{tree}", server.handleCreateTree))
		r.Get("/trees/{tree}", instrument("GET", "/v1/trees/{tree}", server.handleTreeStats))
		r.Delete("/trees/{tree}", instrument("DELETE", "/v1/trees/{tree}", server.handlePurge))
		r.Get("/trees/{tree}/keys", instrument("GET", "/v1/trees/{tree}/keys", server.handleRange))
		r.Put("/trees/{tree}/keys/{key}", instrument("PUT", "/v1/trees/{tree}/keys/{key}", server.handleInsert))
		r.Get("/trees/{tree}/keys/{key}", instrument("GET", "/v1/trees/{tree}/keys/{key}", server.handleFind))
		r.Delete("/trees/{tree}/keys/{key}", instrument("DELETE", "/v1/trees/{tree}/keys/{key}", server.handleDelete))
	})

	return r
}

// ListenAndServe starts the admin HTTP surface on the given port and
// blocks until it exits. The Sentry client reads its DSN from
// SENTRY_DSN; with none set, panic reports are dropped.
func ListenAndServe(port int, reg *registry.Registry, apiKey string) error {
	if err := sentry.Init(sentry.ClientOptions{}); err != nil {
		return fmt.Errorf("initializing sentry: %w", err)
	}
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("bptreedb admin API listening on %s\n", addr)
	return http.ListenAndServe(addr, NewRouter(reg, apiKey))
}
