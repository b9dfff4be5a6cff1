package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/interview-coach/internal/auth"
	"github.com/saulo-duarte/interview-coach/internal/config"
	_ "github.com/saulo-duarte/interview-coach/internal/docs"
	"github.com/saulo-duarte/interview-coach/internal/middlewares"
	"github.com/saulo-duarte/interview-coach/internal/progress"
	"github.com/saulo-duarte/interview-coach/internal/question"
)

type RouterConfig struct {
	QuestionHandler *question.Handler
	ProgressHandler *progress.Handler
	AuthHandler     *auth.Handler
	AllowedOrigins  []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
	})
	return r
}
