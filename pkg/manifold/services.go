package manifold

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
)

// ListServiceTypesRequest asks for all available service types
type ListServiceTypesRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
}

// PreviewTopicsRequest asks for the topics a not yet saved service config would offer
type PreviewTopicsRequest struct {
	Context       domain.RequestContext `json:"-" validate:"-"`
	ServiceType   string                `json:"serviceType" validate:"required"`
	ServiceConfig any                   `json:"serviceConfig"`
}

// CreateServiceRequest defines a new feed service
type CreateServiceRequest struct {
	Context     domain.RequestContext `json:"-" validate:"-"`
	ServiceType string                `json:"serviceType" validate:"required"`
	Title       string                `json:"title" validate:"required,max=256"`
	Summary     string                `json:"summary" validate:"max=4096"`
	Config      any                   `json:"config"`
}

// ListServicesRequest asks for all services
type ListServicesRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
}

// UpdateServiceRequest replaces title, summary and config of a service
type UpdateServiceRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	ID      string                `json:"id" validate:"required"`
	Title   string                `json:"title" validate:"required,max=256"`
	Summary string                `json:"summary" validate:"max=4096"`
	Config  any                   `json:"config"`
}

// DeleteServiceRequest removes a service with all its feeds
type DeleteServiceRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	ID      string                `json:"id"`
}

// ListServiceTopicsRequest asks for the topics of a saved service
type ListServiceTopicsRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	Service string                `json:"service"`
}

// ListServiceTypes returns the descriptors of all service types provided by loaded plugins
func (a *App) ListServiceTypes(ctx context.Context, req ListServiceTypesRequest) (res []domain.FeedServiceTypeDescriptor, err error) {
	defer a.observe("list_service_types", time.Now(), &err)

	if err := a.Permissions.EnsureListServiceTypesPermissionFor(ctx, req.Context); err != nil {
		return nil, err
	}
	types, err := a.Registry.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find service types: %w", err)
	}
	res = make([]domain.FeedServiceTypeDescriptor, 0, len(types))
	for _, st := range types {
		res = append(res, st.Describe())
	}
	return res, nil
}

// PreviewTopics validates a service config and lists the topics a connection with it reports,
// nothing is persisted
func (a *App) PreviewTopics(ctx context.Context, req PreviewTopicsRequest) (res []domain.FeedTopic, err error) {
	defer a.observe("preview_topics", time.Now(), &err)

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	if err := a.Permissions.EnsureCreateServicePermissionFor(ctx, req.Context); err != nil {
		return nil, err
	}
	st, err := a.serviceType(ctx, req.ServiceType)
	if err != nil {
		return nil, err
	}
	if err := validateServiceConfig(ctx, st, req.ServiceConfig); err != nil {
		return nil, err
	}
	conn, err := st.CreateConnection(req.ServiceConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}
	topics, err := conn.FetchAvailableTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch available topics: %w", err)
	}
	return topics, nil
}

// CreateService validates and saves a new service, the result carries the redacted config
func (a *App) CreateService(ctx context.Context, req CreateServiceRequest) (res *domain.FeedService, err error) {
	defer a.observe("create_service", time.Now(), &err)

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	if err := a.Permissions.EnsureCreateServicePermissionFor(ctx, req.Context); err != nil {
		return nil, err
	}
	st, err := a.serviceType(ctx, req.ServiceType)
	if err != nil {
		return nil, err
	}
	if err := validateServiceConfig(ctx, st, req.Config); err != nil {
		return nil, err
	}
	saved, err := a.ServiceRepo.Create(ctx, domain.FeedService{
		ServiceType: st.ID,
		Title:       req.Title,
		Summary:     req.Summary,
		Config:      req.Config,
	})
	if err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}
	log.Printf("[INFO] created feed service %s (%s) of type %s", saved.ID, saved.Title, st.ID)
	svc := redacted(st, *saved)
	return &svc, nil
}

// ListServices returns all services with configs redacted by their own service types. Services whose
// type is not provided by a loaded plugin are listed without config.
func (a *App) ListServices(ctx context.Context, req ListServicesRequest) (res []domain.FeedService, err error) {
	defer a.observe("list_services", time.Now(), &err)

	if err := a.Permissions.EnsureListServicesPermissionFor(ctx, req.Context); err != nil {
		return nil, err
	}
	services, err := a.ServiceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	res = make([]domain.FeedService, 0, len(services))
	for _, svc := range services {
		st, err := a.Registry.FindByID(ctx, svc.ServiceType)
		if err != nil && !errors.Is(err, feeds.ErrServiceTypeUnavailable) {
			return nil, fmt.Errorf("find service type of %s: %w", svc.ID, err)
		}
		if st == nil {
			log.Printf("[WARN] service type %s of service %s is not available, config hidden", svc.ServiceType, svc.ID)
			svc.Config = nil
			res = append(res, svc)
			continue
		}
		res = append(res, redacted(st, svc))
	}
	return res, nil
}

// UpdateService replaces title, summary and config of a service after validating the new config
func (a *App) UpdateService(ctx context.Context, req UpdateServiceRequest) (res *domain.FeedService, err error) {
	defer a.observe("update_service", time.Now(), &err)

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	if err := a.Permissions.EnsureManageServicePermissionFor(ctx, req.Context, req.ID); err != nil {
		return nil, err
	}
	svc, err := a.service(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	st, err := a.serviceType(ctx, svc.ServiceType)
	if err != nil {
		return nil, err
	}
	config := req.Config
	if keeper, ok := st.ServiceType.(feeds.SecretKeeper); ok {
		config = keeper.KeepServiceConfigSecrets(req.Config, svc.Config)
	}
	if err := validateServiceConfig(ctx, st, config); err != nil {
		return nil, err
	}
	svc.Title, svc.Summary, svc.Config = req.Title, req.Summary, config
	saved, err := a.ServiceRepo.Update(ctx, *svc)
	if err != nil {
		return nil, fmt.Errorf("save service %s: %w", svc.ID, err)
	}
	if saved == nil { // removed concurrently
		return nil, domain.EntityNotFound(req.ID, entityService)
	}
	upd := redacted(st, *saved)
	return &upd, nil
}

// DeleteService removes a service, its feeds go with it
func (a *App) DeleteService(ctx context.Context, req DeleteServiceRequest) (err error) {
	defer a.observe("delete_service", time.Now(), &err)

	if err := a.Permissions.EnsureManageServicePermissionFor(ctx, req.Context, req.ID); err != nil {
		return err
	}
	if _, err := a.service(ctx, req.ID); err != nil {
		return err
	}
	if err := a.ServiceRepo.RemoveByID(ctx, req.ID); err != nil {
		return fmt.Errorf("remove service %s: %w", req.ID, err)
	}
	log.Printf("[INFO] deleted feed service %s", req.ID)
	return nil
}

// ListServiceTopics returns the topics a saved service currently offers
func (a *App) ListServiceTopics(ctx context.Context, req ListServiceTopicsRequest) (res []domain.FeedTopic, err error) {
	defer a.observe("list_service_topics", time.Now(), &err)

	if err := a.Permissions.EnsureListTopicsPermissionFor(ctx, req.Context, req.Service); err != nil {
		return nil, err
	}
	svc, err := a.service(ctx, req.Service)
	if err != nil {
		return nil, err
	}
	_, conn, err := a.connect(ctx, svc)
	if err != nil {
		return nil, err
	}
	topics, err := conn.FetchAvailableTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch topics of service %s: %w", svc.ID, err)
	}
	return topics, nil
}
