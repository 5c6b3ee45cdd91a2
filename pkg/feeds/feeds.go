// Package feeds defines the plugin contract for external feed data sources and the registry
// assigning plugin service types their persistent identity.
package feeds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/umputun/manifold/pkg/domain"
)

//go:generate moq -out mocks/service_type.go -pkg mocks -skip-ensure -fmt goimports . ServiceType
//go:generate moq -out mocks/connection.go -pkg mocks -skip-ensure -fmt goimports . Connection

// ServiceTypeInfo describes a plugin service type
type ServiceTypeInfo struct {
	PluginServiceTypeID string
	Title               string
	Summary             string
	ConfigSchema        domain.JSONObject
}

// ServiceType is implemented by every plugin-provided kind of external data source
type ServiceType interface {
	Descriptor() ServiceTypeInfo
	// ValidateServiceConfig returns nil for a valid config or *InvalidServiceConfigError
	ValidateServiceConfig(ctx context.Context, config any) error
	// RedactServiceConfig strips secrets before a config is shown to callers
	RedactServiceConfig(config any) any
	// CreateConnection builds a connection for a validated config without doing any I/O
	CreateConnection(config any) (Connection, error)
}

// SecretKeeper is implemented by service types whose redacted configs carry masked secrets.
// KeepServiceConfigSecrets puts the stored secrets in place of masks left in a submitted config.
type SecretKeeper interface {
	KeepServiceConfigSecrets(submitted, stored any) any
}

// Connection is the runtime handle to one configured service
type Connection interface {
	FetchServiceInfo(ctx context.Context) (*domain.FeedServiceInfo, error)
	FetchAvailableTopics(ctx context.Context) ([]domain.FeedTopic, error)
	// FetchTopicContent gets content with already merged params, unknown topics fail
	FetchTopicContent(ctx context.Context, topicID string, params domain.JSONObject) (*domain.TopicContent, error)
}

// Plugin is the registration hook of a plugin module
type Plugin interface {
	ModuleName() string
	LoadServiceTypes(ctx context.Context) ([]ServiceType, error)
}

// InvalidServiceConfigError lists the invalid key paths of a service config
type InvalidServiceConfigError struct {
	InvalidKeys [][]string
	Reason      string
}

// Error implements error
func (e *InvalidServiceConfigError) Error() string {
	keys := make([]string, 0, len(e.InvalidKeys))
	for _, k := range e.InvalidKeys {
		keys = append(keys, strings.Join(k, "."))
	}
	msg := "invalid service config"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if len(keys) > 0 {
		msg += fmt.Sprintf(" [%s]", strings.Join(keys, ", "))
	}
	return msg
}

// ErrUnknownTopic is returned by connections asked for a topic they don't offer
var ErrUnknownTopic = errors.New("unknown topic")

// ErrServiceTypeUnavailable means a service type identity is persisted but no loaded plugin provides it
var ErrServiceTypeUnavailable = errors.New("service type not loaded")

// UnavailableError carries the identity whose plugin is not loaded
type UnavailableError struct {
	Identity domain.FeedServiceTypeIdentity
}

// Error implements error
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("service type %s (%s): %v", e.Identity.ID, e.Identity.QualifiedName(), ErrServiceTypeUnavailable)
}

// Is matches ErrServiceTypeUnavailable
func (e *UnavailableError) Is(target error) bool { return target == ErrServiceTypeUnavailable }

// RegisteredServiceType is a plugin service type wired to its persistent identity
type RegisteredServiceType struct {
	ServiceType
	ID         string
	ModuleName string
}

// Describe returns the client-facing descriptor
func (r *RegisteredServiceType) Describe() domain.FeedServiceTypeDescriptor {
	info := r.Descriptor()
	return domain.FeedServiceTypeDescriptor{
		ID:                  r.ID,
		PluginServiceTypeID: info.PluginServiceTypeID,
		ModuleName:          r.ModuleName,
		Title:               info.Title,
		Summary:             info.Summary,
		ConfigSchema:        info.ConfigSchema,
	}
}
