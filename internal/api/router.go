package api

import (
	"net/http"
	"time"

	"webhook-cache-api/internal/api/handlers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires HTTP routes to handlers.
func NewRouter(rh *handlers.ReceiverHandler, dh *handlers.DataHandler, start time.Time) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.Health(start))
	mux.Handle("/webhook/", rh)
	mux.Handle("/api/webhook-data", dh)

	// Swagger UI at /swagger/index.html
	mux.HandleFunc("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}
