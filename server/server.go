package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/manifold"
	"github.com/umputun/manifold/pkg/metrics"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/use_cases.go -pkg mocks -skip-ensure -fmt goimports . UseCases
//go:generate moq -out mocks/tokens.go -pkg mocks -skip-ensure -fmt goimports . TokenResolver

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	app     UseCases
	tokens  TokenResolver
	metrics prometheus.Gatherer
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// UseCases is the application layer the server exposes
type UseCases interface {
	ListServiceTypes(ctx context.Context, req manifold.ListServiceTypesRequest) ([]domain.FeedServiceTypeDescriptor, error)
	PreviewTopics(ctx context.Context, req manifold.PreviewTopicsRequest) ([]domain.FeedTopic, error)
	CreateService(ctx context.Context, req manifold.CreateServiceRequest) (*domain.FeedService, error)
	ListServices(ctx context.Context, req manifold.ListServicesRequest) ([]domain.FeedService, error)
	UpdateService(ctx context.Context, req manifold.UpdateServiceRequest) (*domain.FeedService, error)
	DeleteService(ctx context.Context, req manifold.DeleteServiceRequest) error
	ListServiceTopics(ctx context.Context, req manifold.ListServiceTopicsRequest) ([]domain.FeedTopic, error)
	PreviewFeed(ctx context.Context, req manifold.PreviewFeedRequest) (*manifold.FeedPreview, error)
	CreateFeed(ctx context.Context, req manifold.CreateFeedRequest) (*domain.Feed, error)
	UpdateFeed(ctx context.Context, req manifold.UpdateFeedRequest) (*domain.Feed, error)
	DeleteFeed(ctx context.Context, req manifold.DeleteFeedRequest) error
	ListAllFeeds(ctx context.Context, req manifold.ListAllFeedsRequest) ([]domain.Feed, error)
	GetFeed(ctx context.Context, req manifold.GetFeedRequest) (*domain.FeedExpanded, error)
	FetchFeedContent(ctx context.Context, req manifold.FetchFeedContentRequest) (*domain.FeedContent, error)
}

// TokenResolver wraps request tokens into request envelopes
type TokenResolver interface {
	RequestContext(token string) domain.RequestContext
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetServerLimits() (maxBodySize, throttle int64)
}

// Params for New. Metrics is optional, /metrics is not served without it.
type Params struct {
	Config  ConfigProvider
	App     UseCases
	Tokens  TokenResolver
	Metrics prometheus.Gatherer
	Version string
	Debug   bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:  p.Config,
		app:     p.App,
		tokens:  p.Tokens,
		metrics: p.Metrics,
		version: p.Version,
		debug:   p.Debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	maxBodySize, throttle := s.config.GetServerLimits()

	s.router.Use(rest.AppInfo("manifold", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	if throttle > 0 {
		s.router.Use(rest.Throttle(throttle))
	}
	s.router.Use(rest.SizeLimit(maxBodySize))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /service-types", s.listServiceTypesHandler)
		r.HandleFunc("POST /service-types/{id}/topics", s.previewTopicsHandler)

		r.HandleFunc("GET /services", s.listServicesHandler)
		r.HandleFunc("POST /services", s.createServiceHandler)
		r.HandleFunc("PUT /services/{id}", s.updateServiceHandler)
		r.HandleFunc("DELETE /services/{id}", s.deleteServiceHandler)
		r.HandleFunc("GET /services/{id}/topics", s.listServiceTopicsHandler)

		r.HandleFunc("POST /feeds/preview", s.previewFeedHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("GET /feeds/{id}", s.getFeedHandler)
		r.HandleFunc("PUT /feeds/{id}", s.updateFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("GET /feeds/{id}/content", s.feedContentHandler)
		r.HandleFunc("POST /feeds/{id}/content", s.feedContentHandler)
	})

	if s.metrics != nil {
		s.router.Handle("GET /metrics", metrics.Handler(s.metrics))
	}
}

// requestContext wraps the bearer token of the request, requests without one stay anonymous
func (s *Server) requestContext(r *http.Request) domain.RequestContext {
	token := ""
	if h := r.Header.Get("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		token = strings.TrimSpace(h[7:])
	}
	return s.tokens.RequestContext(token)
}
