package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/danakita/expense-tracker/pkg/logger"
)

// RequestID propagates an inbound X-Trace-ID or mints a fresh one, scoping the
// context logger to it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)

		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
