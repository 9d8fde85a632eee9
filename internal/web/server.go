package web

import (
	"context"
	"net/http"
	"time"

	"github.com/example/branch-scheduler/internal/auth"
	"github.com/example/branch-scheduler/internal/branches"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Server struct {
	Auth     *auth.Store
	Branches *branches.Service
	Repo     branches.Repository
	Log      *zap.Logger

	validate *validator.Validate
}

func NewServer(a *auth.Store, svc *branches.Service, repo branches.Repository, log *zap.Logger) *Server {
	return &Server{
		Auth:     a,
		Branches: svc,
		Repo:     repo,
		Log:      log,
		validate: validator.New(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/login", s.handleLogin)
	})
	r.Post("/logout", s.handleLogout)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.Auth.RequireAuth)

		r.Get("/branches", s.handleBranchList)
		r.Post("/branches", s.handleBranchCreate)

		r.Route("/branches/{id}", func(r chi.Router) {
			r.Get("/", s.handleBranchGet)
			r.Put("/duration", s.handleSetDuration)
			r.Put("/enabled", s.handleSetEnabled)

			r.Route("/draft", func(r chi.Router) {
				r.Post("/", s.handleDraftOpen)
				r.Delete("/", s.handleDraftDiscard)
				r.Post("/publish", s.handleDraftPublish)
				r.Get("/validity", s.handleDraftValidity)
				r.Post("/apply-to-all", s.handleDraftApplyToAll)

				r.Post("/days/{day}/slots", s.handleSlotAdd)
				r.Patch("/days/{day}/slots/{index}", s.handleSlotUpdate)
				r.Delete("/days/{day}/slots/{index}", s.handleSlotRemove)
			})
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func Start(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
