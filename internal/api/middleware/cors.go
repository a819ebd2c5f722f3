package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
)

// CORS middleware allows the browser frontend to call the API.
// CORS_ORIGINS is a comma-separated allowlist; empty means allow all
// (development default).
func CORS() gin.HandlerFunc {
	origins := splitOrigins(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
