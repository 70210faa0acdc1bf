package main

import (
	"log"

	"github.com/joho/godotenv"

	"microsite/internal/env"
	"microsite/internal/logger"
	"microsite/internal/view"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := config{
		addr:    env.GetString("ADDR", ":8080"),
		logRoot: env.GetString("LOG_ROOT", "."),
		debug:   env.GetBool("APP_DEBUG", false),
	}

	appLog, err := logger.New(cfg.logRoot, cfg.debug)
	if err != nil {
		log.Panic(err)
	}

	views, err := view.New()
	if err != nil {
		log.Panic(err)
	}

	app := &application{
		config: cfg,
		log:    appLog,
		views:  views,
	}

	mux := app.mount()

	err = app.run(mux)
	appLog.Error("server stopped", logger.F("error", err))
	appLog.Close()
	log.Fatal(err)
}
