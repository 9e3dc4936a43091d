package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blogforge/apiserver/config"
	"github.com/blogforge/apiserver/internal/db"
	"github.com/blogforge/apiserver/internal/handlers"
	"github.com/blogforge/apiserver/internal/mq"
	"github.com/blogforge/apiserver/internal/services"
	"github.com/blogforge/apiserver/internal/storage"
	"github.com/blogforge/apiserver/internal/store"
	"github.com/blogforge/apiserver/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	events     *mq.MQ
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := token.NewService(strings.TrimSpace(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	assets, err := newAssetStorage(ctx, cfg.Storage)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	events, err := newEventBroker(ctx, cfg.MQ)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	categoryRepo := store.NewCategoryRepository(dbConn)
	postRepo := store.NewPostRepository(dbConn)

	accountService := services.NewAccountService(userRepo, tokens, assets, events)
	categoryService := services.NewCategoryService(categoryRepo)
	postService := services.NewPostService(postRepo)

	authMiddleware := handlers.RequireAuth(tokens)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			handlers.AccountRouter(r, accountService, tokens)
		})
		r.Route("/categories", func(r chi.Router) {
			handlers.CategoryRouter(r, categoryService, authMiddleware)
		})
		r.Route("/posts", func(r chi.Router) {
			handlers.PostRouter(r, postService)
		})
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		events:     events,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.events != nil {
		_ = s.events.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}

func newAssetStorage(ctx context.Context, cfg config.StorageConfig) (*storage.Storage, error) {
	var backend storage.ObjectStorage
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "minio":
		client, err := storage.NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		backend = client
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		backend = client
	default:
		return nil, errors.New("unknown storage backend: " + cfg.Backend)
	}

	wrapped := storage.NewStorage(backend, cfg.PublicBaseURL)
	if err := wrapped.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return wrapped, nil
}

// newEventBroker builds the optional event broker. An empty backend
// disables event publishing.
func newEventBroker(ctx context.Context, cfg config.MQConfig) (*mq.MQ, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "":
		return nil, nil
	case "rabbitmq":
		client, err := mq.NewRabbitMQClient(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		return mq.New(client), nil
	case "pubsub":
		client, err := mq.NewPubSubClient(ctx, cfg.PubSub)
		if err != nil {
			return nil, err
		}
		return mq.New(client), nil
	default:
		return nil, errors.New("unknown mq backend: " + cfg.Backend)
	}
}
