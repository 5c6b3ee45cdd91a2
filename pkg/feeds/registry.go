package feeds

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/umputun/manifold/pkg/domain"
)

// IdentityStore persists service type identities. FindOrCreateIdentity must be atomic per
// (moduleName, pluginServiceTypeID), e.g. backed by a unique constraint.
type IdentityStore interface {
	FindOrCreateIdentity(ctx context.Context, moduleName, pluginServiceTypeID string) (domain.FeedServiceTypeIdentity, error)
	ListIdentities(ctx context.Context) ([]domain.FeedServiceTypeIdentity, error)
	GetIdentity(ctx context.Context, id string) (*domain.FeedServiceTypeIdentity, error)
}

// Registry maps loaded plugin service types to their persistent identities
type Registry struct {
	store IdentityStore
	group singleflight.Group

	mu          sync.RWMutex
	byQualified map[string]*RegisteredServiceType
	byID        map[string]*RegisteredServiceType
}

// NewRegistry makes a registry over the identity store
func NewRegistry(store IdentityStore) *Registry {
	return &Registry{
		store:       store,
		byQualified: map[string]*RegisteredServiceType{},
		byID:        map[string]*RegisteredServiceType{},
	}
}

// Register wires a plugin service type to its identity, minting one on first registration.
// Repeated calls with the same qualified name return the same registered object.
func (r *Registry) Register(ctx context.Context, moduleName string, st ServiceType) (*RegisteredServiceType, error) {
	if st == nil {
		return nil, fmt.Errorf("nil service type for module %s", moduleName)
	}
	pluginID := st.Descriptor().PluginServiceTypeID
	if moduleName == "" || pluginID == "" {
		return nil, fmt.Errorf("empty module name or plugin service type id (%q, %q)", moduleName, pluginID)
	}
	qualified := domain.QualifiedServiceTypeName(moduleName, pluginID)

	if reg := r.lookupQualified(qualified); reg != nil {
		return reg, nil
	}

	res, err, _ := r.group.Do(qualified, func() (any, error) {
		if reg := r.lookupQualified(qualified); reg != nil {
			return reg, nil
		}
		ident, err := r.store.FindOrCreateIdentity(ctx, moduleName, pluginID)
		if err != nil {
			return nil, fmt.Errorf("find or create identity %s: %w", qualified, err)
		}
		reg := &RegisteredServiceType{ServiceType: st, ID: ident.ID, ModuleName: moduleName}

		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, ok := r.byQualified[qualified]; ok {
			return existing, nil
		}
		r.byQualified[qualified] = reg
		r.byID[reg.ID] = reg
		log.Printf("[INFO] registered feed service type %s as %s", qualified, reg.ID)
		return reg, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*RegisteredServiceType), nil
}

// FindAll returns every persisted service type whose plugin is loaded
func (r *Registry) FindAll(ctx context.Context) ([]*RegisteredServiceType, error) {
	idents, err := r.store.ListIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service type identities: %w", err)
	}
	res := make([]*RegisteredServiceType, 0, len(idents))
	for _, ident := range idents {
		reg := r.lookupQualified(ident.QualifiedName())
		if reg == nil {
			log.Printf("[WARN] service type %s (%s) is not provided by any loaded plugin", ident.ID, ident.QualifiedName())
			continue
		}
		res = append(res, reg)
	}
	return res, nil
}

// FindByID returns the registered service type for the id, nil if no identity exists, or
// an error matching ErrServiceTypeUnavailable if the identity's plugin is not loaded
func (r *Registry) FindByID(ctx context.Context, id string) (*RegisteredServiceType, error) {
	r.mu.RLock()
	reg, ok := r.byID[id]
	r.mu.RUnlock()
	if ok {
		return reg, nil
	}

	ident, err := r.store.GetIdentity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service type identity %s: %w", id, err)
	}
	if ident == nil {
		return nil, nil
	}
	if reg := r.lookupQualified(ident.QualifiedName()); reg != nil {
		return reg, nil
	}
	return nil, &UnavailableError{Identity: *ident}
}

// FindIdentityByID returns the persisted identity record regardless of plugin availability
func (r *Registry) FindIdentityByID(ctx context.Context, id string) (*domain.FeedServiceTypeIdentity, error) {
	ident, err := r.store.GetIdentity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service type identity %s: %w", id, err)
	}
	return ident, nil
}

func (r *Registry) lookupQualified(qualified string) *RegisteredServiceType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byQualified[qualified]
}

// LoadPlugins calls every plugin's hook once and registers the returned service types
// under the plugin's module name
func LoadPlugins(ctx context.Context, registry *Registry, plugins ...Plugin) error {
	for _, p := range plugins {
		types, err := p.LoadServiceTypes(ctx)
		if err != nil {
			return fmt.Errorf("load service types of %s: %w", p.ModuleName(), err)
		}
		for _, st := range types {
			if _, err := registry.Register(ctx, p.ModuleName(), st); err != nil {
				return fmt.Errorf("register service type of %s: %w", p.ModuleName(), err)
			}
		}
		log.Printf("[DEBUG] loaded %d service types from %s", len(types), p.ModuleName())
	}
	return nil
}
