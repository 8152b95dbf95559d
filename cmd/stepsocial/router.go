package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"stepsocial/internal/common"
	"stepsocial/internal/metrics"
	"stepsocial/internal/wire"
)

// setupRouter wraps the router itself so preflight requests that match no
// route still get CORS headers.
func setupRouter(app *wire.Application, startedAt time.Time) http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", healthHandler(app, startedAt)).Methods(http.MethodGet)
	api.HandleFunc("/db-health", dbHealthHandler(app)).Methods(http.MethodGet)

	authed := func(prefix string) *mux.Router {
		r := api.PathPrefix(prefix).Subrouter()
		r.Use(common.AuthMiddleware(app.Verifier, app.Logger))
		r.Use(app.RateLimiter.Handler)
		return r
	}

	app.UserHandler.RegisterRoutes(authed("/users"))
	app.ActivityHandler.RegisterRoutes(authed("/steps"))
	app.SocialHandler.RegisterRoutes(authed("/social"))

	var handler http.Handler = router
	handler = common.CORSMiddleware(handler)
	handler = metrics.InstrumentHandler(handler, metrics.RouteTemplate(router))
	handler = common.LoggingMiddleware(app.Logger)(handler)
	handler = common.RequestIDMiddleware(handler)
	return handler
}

func healthHandler(app *wire.Application, startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":      "OK",
			"timestamp":   time.Now().UTC(),
			"uptime":      time.Since(startedAt).Seconds(),
			"environment": app.Config.Server.Environment,
		})
	}
}

func dbHealthHandler(app *wire.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := app.Ping(ctx); err != nil {
			app.Logger.WithError(err).Error("Database health check failed")
			common.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"status":    "ERROR",
				"database":  "Disconnected",
				"timestamp": time.Now().UTC(),
			})
			return
		}
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "OK",
			"database":  "Connected",
			"timestamp": time.Now().UTC(),
		})
	}
}
