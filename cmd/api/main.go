package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"maxitask/config"
	_ "maxitask/docs" // Swagger docs
	assistantHTTP "maxitask/internal/assistant/delivery/http"
	assistantUC "maxitask/internal/assistant/usecase"
	calendarHTTP "maxitask/internal/calendar/delivery/http"
	calendarUC "maxitask/internal/calendar/usecase"
	categoryHTTP "maxitask/internal/category/delivery/http"
	categoryUC "maxitask/internal/category/usecase"
	"maxitask/internal/extraction"
	extractionUC "maxitask/internal/extraction/usecase"
	"maxitask/internal/httpserver"
	"maxitask/internal/middleware"
	noteHTTP "maxitask/internal/note/delivery/http"
	noteSqlite "maxitask/internal/note/repository/sqlite"
	noteUC "maxitask/internal/note/usecase"
	settingsHTTP "maxitask/internal/settings/delivery/http"
	settingsUC "maxitask/internal/settings/usecase"
	"maxitask/internal/storage"
	taskHTTP "maxitask/internal/task/delivery/http"
	taskSqlite "maxitask/internal/task/repository/sqlite"
	taskUC "maxitask/internal/task/usecase"
	"maxitask/pkg/datemath"
	"maxitask/pkg/gcalendar"
	"maxitask/pkg/gemini"
	"maxitask/pkg/log"
)

// @title       Maxitask API
// @description Personal productivity service: tasks, notes, calendar, and a Gemini-backed assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Maxitask...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Storage ready at %s", cfg.Storage.Path)

	// 4. DateMath parser
	timezone := cfg.Gemini.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Repositories
	taskRepo, err := taskSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load task repository: ", err)
		return
	}
	noteRepo, err := noteSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load note repository: ", err)
		return
	}

	// 6. Category + settings (kv-backed)
	categoryUseCase, err := categoryUC.New(logger, db, cfg.Seed.Categories)
	if err != nil {
		logger.Error(ctx, "Failed to load categories: ", err)
		return
	}
	settingsUseCase, err := settingsUC.New(logger, db)
	if err != nil {
		logger.Error(ctx, "Failed to load settings: ", err)
		return
	}

	// 7. Extraction: Gemini clients are built per call because the credential
	// is user-supplied and changes at runtime.
	newGenerator := func(apiKey string) extraction.Generator {
		client := gemini.NewClient(apiKey)
		if cfg.Gemini.APIURL != "" {
			client.SetAPIURL(cfg.Gemini.APIURL)
		}
		if cfg.Gemini.Model != "" {
			client.SetModel(cfg.Gemini.Model)
		}
		return client
	}
	extractor := extractionUC.New(logger, newGenerator, cfg.Assistant.CacheSize)

	// 8. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 9. Domain use cases
	taskUseCase := taskUC.New(logger, taskRepo, extractor, categoryUseCase, settingsUseCase, dateMathParser)
	noteUseCase := noteUC.New(logger, noteRepo, categoryUseCase)
	assistantUseCase := assistantUC.New(logger, extractor, taskRepo, noteRepo, categoryUseCase, settingsUseCase, dateMathParser)
	calendarUseCase := calendarUC.New(logger, taskRepo, noteRepo, dateMathParser, calendarClient, cfg.GoogleCalendar.CalendarID, timezone)

	// 10. HTTP Server
	mw := middleware.New(logger)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		TaskHandler:      taskHTTP.New(logger, taskUseCase),
		NoteHandler:      noteHTTP.New(logger, noteUseCase),
		AssistantHandler: assistantHTTP.New(logger, assistantUseCase),
		CategoryHandler:  categoryHTTP.New(logger, categoryUseCase),
		SettingsHandler:  settingsHTTP.New(logger, settingsUseCase),
		CalendarHandler:  calendarHTTP.New(logger, calendarUseCase),

		Middleware:          mw,
		AssistantRatePerMin: cfg.Assistant.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
