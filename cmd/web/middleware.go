package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"microsite/internal/logger"
)

// requestLogger emits one application-log line per completed request.
func (app *application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		app.log.Info("request completed",
			logger.F("request_id", middleware.GetReqID(r.Context())),
			logger.F("method", r.Method),
			logger.F("path", r.URL.Path),
			logger.F("status", ww.Status()),
			logger.F("bytes", ww.BytesWritten()),
			logger.F("duration_ms", time.Since(start).Milliseconds()))
	})
}

// recoverer turns a handler panic into a 500 response and records it
// in the error log, keeping the server loop alive.
func (app *application) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				app.log.Error("handler panic",
					logger.F("request_id", middleware.GetReqID(r.Context())),
					logger.F("method", r.Method),
					logger.F("path", r.URL.Path),
					logger.F("panic", fmt.Sprint(rec)))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
