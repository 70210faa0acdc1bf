package main

import (
	"bytes"
	"net/http"

	"microsite/internal/logger"
	"microsite/internal/response"
)

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "home.tmpl", map[string]any{
		"Title":   "Home",
		"Message": "Welcome.",
	})
}

func (app *application) aboutHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "about.tmpl", map[string]any{
		"Title":   "About",
		"Message": "A small site that takes its logs seriously.",
	})
}

// render executes the named view with the injected variables. The page
// is built in memory first so a template failure can still become a
// clean 500 instead of a half-written response.
func (app *application) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	var buf bytes.Buffer
	if err := app.views.Render(&buf, name, data); err != nil {
		app.log.Error("view render failed",
			logger.F("template", name),
			logger.F("path", r.URL.Path),
			logger.F("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := response.APIResponse[map[string]string]{
		Success: true,
		Data: map[string]string{
			"status":  "available",
			"version": "0.0.1",
		},
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
