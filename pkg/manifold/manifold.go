// Package manifold implements the feed administration and content use cases. Every use case takes a
// request embedding the caller's domain.RequestContext and returns either a result or an error;
// structured failures are *domain.Error values (permission denied, invalid input, entity not found),
// anything else, e.g. an upstream connection failure, is returned wrapped but unclassified.
package manifold

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/metrics"
	"github.com/umputun/manifold/pkg/schema"
)

//go:generate moq -out mocks/permission_service.go -pkg mocks -skip-ensure -fmt goimports . PermissionService
//go:generate moq -out mocks/schema_service.go -pkg mocks -skip-ensure -fmt goimports . SchemaService

// PermissionService gates every operation, each method returns nil or a permission denied *domain.Error
type PermissionService interface {
	EnsureListServiceTypesPermissionFor(ctx context.Context, rc domain.RequestContext) error
	EnsureCreateServicePermissionFor(ctx context.Context, rc domain.RequestContext) error
	EnsureListServicesPermissionFor(ctx context.Context, rc domain.RequestContext) error
	EnsureManageServicePermissionFor(ctx context.Context, rc domain.RequestContext, serviceID string) error
	EnsureListTopicsPermissionFor(ctx context.Context, rc domain.RequestContext, serviceID string) error
	EnsureCreateFeedPermissionFor(ctx context.Context, rc domain.RequestContext, serviceID string) error
	EnsureListAllFeedsPermissionFor(ctx context.Context, rc domain.RequestContext) error
	EnsureFetchFeedContentPermissionFor(ctx context.Context, rc domain.RequestContext, feedID string) error
}

// SchemaService compiles JSON schemas supplied at runtime
type SchemaService interface {
	ValidateSchema(schemaDoc any) (schema.Validator, error)
}

// ServiceTypeRegistry resolves service type ids to loaded plugin service types
type ServiceTypeRegistry interface {
	FindAll(ctx context.Context) ([]*feeds.RegisteredServiceType, error)
	FindByID(ctx context.Context, id string) (*feeds.RegisteredServiceType, error)
}

// ServiceRepository persists feed services, lookups return nil on miss
type ServiceRepository interface {
	Create(ctx context.Context, svc domain.FeedService) (*domain.FeedService, error)
	FindAll(ctx context.Context) ([]domain.FeedService, error)
	FindByID(ctx context.Context, id string) (*domain.FeedService, error)
	Update(ctx context.Context, svc domain.FeedService) (*domain.FeedService, error)
	RemoveByID(ctx context.Context, id string) error
}

// FeedRepository persists feeds, lookups return nil on miss
type FeedRepository interface {
	Create(ctx context.Context, feed domain.Feed) (*domain.Feed, error)
	FindByID(ctx context.Context, id string) (*domain.Feed, error)
	FindAll(ctx context.Context) ([]domain.Feed, error)
	FindFeedsByIDs(ctx context.Context, ids []string) ([]domain.Feed, error)
	Update(ctx context.Context, feed domain.Feed) (*domain.Feed, error)
	RemoveByID(ctx context.Context, id string) error
}

// entity type names reported in not found errors
const (
	entityServiceType = "FeedServiceType"
	entityService     = "FeedService"
	entityTopic       = "FeedTopic"
	entityFeed        = "Feed"
)

// Params of the application
type Params struct {
	Registry    ServiceTypeRegistry
	ServiceRepo ServiceRepository
	FeedRepo    FeedRepository
	Permissions PermissionService
	Schemas     SchemaService
	Metrics     *metrics.Collector // optional
}

// App runs the use cases
type App struct {
	Params
	validate *validator.Validate
}

// New makes the application from its collaborators
func New(p Params) *App {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &App{Params: p, validate: v}
}

func (a *App) observe(op string, started time.Time, err *error) {
	a.Metrics.UseCase(op, started, *err)
}

// validateRequest checks validator tags of a request struct, failures become invalid input
// keyed by json field paths
func (a *App) validateRequest(req any) error {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	keys := make([]domain.InvalidKey, 0, len(verrs))
	for _, fe := range verrs {
		path := strings.Split(fe.Namespace(), ".")
		if len(path) > 1 {
			path = path[1:] // drop the request struct name
		}
		keys = append(keys, domain.Key(fmt.Errorf("failed %q validation", fe.Tag()), path...))
	}
	return domain.InvalidInput("invalid request", keys...)
}

// serviceType resolves a registered service type, a missing identity is not found, an identity
// without a loaded plugin propagates as feeds.ErrServiceTypeUnavailable
func (a *App) serviceType(ctx context.Context, id string) (*feeds.RegisteredServiceType, error) {
	st, err := a.Registry.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service type %s: %w", id, err)
	}
	if st == nil {
		return nil, domain.EntityNotFound(id, entityServiceType)
	}
	return st, nil
}

func (a *App) service(ctx context.Context, id string) (*domain.FeedService, error) {
	svc, err := a.ServiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service %s: %w", id, err)
	}
	if svc == nil {
		return nil, domain.EntityNotFound(id, entityService)
	}
	return svc, nil
}

func (a *App) feed(ctx context.Context, id string) (*domain.Feed, error) {
	f, err := a.FeedRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find feed %s: %w", id, err)
	}
	if f == nil {
		return nil, domain.EntityNotFound(id, entityFeed)
	}
	return f, nil
}

// connect resolves the service type of a stored service and opens a connection with its config
func (a *App) connect(ctx context.Context, svc *domain.FeedService) (*feeds.RegisteredServiceType, feeds.Connection, error) {
	st, err := a.serviceType(ctx, svc.ServiceType)
	if err != nil {
		return nil, nil, err
	}
	conn, err := st.CreateConnection(svc.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("create connection to service %s: %w", svc.ID, err)
	}
	return st, conn, nil
}

// findTopic fetches the topics of a connection and picks one by id
func findTopic(ctx context.Context, conn feeds.Connection, topicID string) (*domain.FeedTopic, error) {
	topics, err := conn.FetchAvailableTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch available topics: %w", err)
	}
	for i := range topics {
		if topics[i].ID == topicID {
			return &topics[i], nil
		}
	}
	return nil, domain.EntityNotFound(topicID, entityTopic)
}

// redacted returns a copy of the service with its config redacted by the service type
func redacted(st feeds.ServiceType, svc domain.FeedService) domain.FeedService {
	svc.Config = st.RedactServiceConfig(svc.Config)
	return svc
}

// validateServiceConfig maps an invalid config reported by the service type to invalid input
func validateServiceConfig(ctx context.Context, st feeds.ServiceType, config any) error {
	err := st.ValidateServiceConfig(ctx, config)
	if err == nil {
		return nil
	}
	var cfgErr *feeds.InvalidServiceConfigError
	if !errors.As(err, &cfgErr) {
		return fmt.Errorf("validate service config: %w", err)
	}
	keys := make([]domain.InvalidKey, 0, len(cfgErr.InvalidKeys))
	for _, k := range cfgErr.InvalidKeys {
		keys = append(keys, domain.Key(cfgErr, append([]string{"config"}, k...)...))
	}
	if len(keys) == 0 {
		keys = append(keys, domain.Key(cfgErr, "config"))
	}
	return domain.InvalidInput("invalid service config", keys...)
}
