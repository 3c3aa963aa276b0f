package middleware

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// CORS allows every origin, method and header. It wraps the whole router so
// preflight requests are answered before route matching.
func CORS(next http.Handler, log *logrus.Logger) http.Handler {
	opts := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
	if log.IsLevelEnabled(logrus.TraceLevel) {
		opts.Logger = log
	}
	return cors.New(opts).Handler(next)
}
