package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS abierto: cualquier origen, sin credenciales.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		ExposedHeaders: []string{"Content-Disposition", "X-Document-ID", "X-Page-Count", RequestIDHeader},
		MaxAge:         300,
	})
}
