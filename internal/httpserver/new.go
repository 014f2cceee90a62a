package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "maxitask/internal/assistant/delivery/http"
	calendarHTTP "maxitask/internal/calendar/delivery/http"
	categoryHTTP "maxitask/internal/category/delivery/http"
	"maxitask/internal/middleware"
	noteHTTP "maxitask/internal/note/delivery/http"
	settingsHTTP "maxitask/internal/settings/delivery/http"
	taskHTTP "maxitask/internal/task/delivery/http"
	"maxitask/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain handlers
	taskHandler      taskHTTP.Handler
	noteHandler      noteHTTP.Handler
	assistantHandler assistantHTTP.Handler
	categoryHandler  categoryHTTP.Handler
	settingsHandler  settingsHTTP.Handler
	calendarHandler  calendarHTTP.Handler

	middleware          middleware.Middleware
	assistantRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskHandler      taskHTTP.Handler
	NoteHandler      noteHTTP.Handler
	AssistantHandler assistantHTTP.Handler
	CategoryHandler  categoryHTTP.Handler
	SettingsHandler  settingsHTTP.Handler
	CalendarHandler  calendarHTTP.Handler

	Middleware          middleware.Middleware
	AssistantRatePerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		taskHandler:         cfg.TaskHandler,
		noteHandler:         cfg.NoteHandler,
		assistantHandler:    cfg.AssistantHandler,
		categoryHandler:     cfg.CategoryHandler,
		settingsHandler:     cfg.SettingsHandler,
		calendarHandler:     cfg.CalendarHandler,
		middleware:          cfg.Middleware,
		assistantRatePerMin: cfg.AssistantRatePerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.noteHandler == nil {
		return errors.New("note handler is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	if srv.categoryHandler == nil {
		return errors.New("category handler is required")
	}
	if srv.settingsHandler == nil {
		return errors.New("settings handler is required")
	}
	if srv.calendarHandler == nil {
		return errors.New("calendar handler is required")
	}
	return nil
}
