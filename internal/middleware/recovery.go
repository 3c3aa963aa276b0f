package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Recovery turns a handler panic into a 500 response
func Recovery(log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}
					log.WithFields(logrus.Fields{
						"request_id": RequestID(r.Context()),
						"panic":      p,
						"stack":      string(debug.Stack()),
					}).Error("Handler panicked")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "Internal Server Error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
