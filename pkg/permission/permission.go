// Package permission decides which principal may run which operation, backed by a casbin RBAC enforcer.
// Objects are "service_types", "services", "feeds" for global permissions and
// "services/<id>", "feeds/<id>" for per-entity ones. Actions are the permission names below.
// Subjects are namespaced, "user:<principal id>" and "role:<role name>", so an id never matches a role.
package permission

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/umputun/manifold/pkg/domain"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// permission names, used as casbin actions and reported in denials
const (
	ListServiceTypes = "list_service_types"
	CreateService    = "create_service"
	ListServices     = "list_services"
	ManageService    = "manage_service"
	ListTopics       = "list_topics"
	CreateFeed       = "create_feed"
	ListAllFeeds     = "list_all_feeds"
	FetchFeedContent = "fetch_feed_content"
)

// Anonymous is the subject used when a request carries no resolvable principal
const Anonymous = "anonymous"

// User returns the casbin subject of a principal
func User(id string) string { return "user:" + id }

// Role returns the casbin subject of a role
func Role(name string) string { return "role:" + name }

// Config defines permission service parameters
type Config struct {
	PolicyFile string // optional casbin policy csv, replaces the embedded policy
}

// Service checks permissions of request principals
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// New makes permission service with the embedded model and either the policy file or the embedded policy
func New(cfg Config) (*Service, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if cfg.PolicyFile != "" {
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyFile))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

// loadPolicy adds p and g lines of a casbin policy csv
func loadPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		switch {
		case parts[0] == "p" && len(parts) == 4:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("bad policy line %q", line)
		}
	}
	return nil
}

// Allow grants a permission to a subject made by User or Role, on one entity if id is not empty
func (s *Service) Allow(subject, permission, id string) error {
	if _, err := s.enforcer.AddPolicy(subject, objectFor(permission, id), permission); err != nil {
		return fmt.Errorf("allow %s to %s: %w", subject, permission, err)
	}
	return nil
}

// AssignRole makes the principal a member of role
func (s *Service) AssignRole(principalID, role string) error {
	if _, err := s.enforcer.AddGroupingPolicy(User(principalID), Role(role)); err != nil {
		return fmt.Errorf("assign role %s to %s: %w", role, principalID, err)
	}
	return nil
}

// EnsureListServiceTypesPermissionFor checks the principal may list service types
func (s *Service) EnsureListServiceTypesPermissionFor(ctx context.Context, rc domain.RequestContext) error {
	return s.ensure(ctx, rc, ListServiceTypes, "")
}

// EnsureCreateServicePermissionFor checks the principal may create services
func (s *Service) EnsureCreateServicePermissionFor(ctx context.Context, rc domain.RequestContext) error {
	return s.ensure(ctx, rc, CreateService, "")
}

// EnsureListServicesPermissionFor checks the principal may list services
func (s *Service) EnsureListServicesPermissionFor(ctx context.Context, rc domain.RequestContext) error {
	return s.ensure(ctx, rc, ListServices, "")
}

// EnsureManageServicePermissionFor checks the principal may update or delete the service
func (s *Service) EnsureManageServicePermissionFor(ctx context.Context, rc domain.RequestContext, serviceID string) error {
	return s.ensure(ctx, rc, ManageService, serviceID)
}

// EnsureListTopicsPermissionFor checks the principal may list topics of the service
func (s *Service) EnsureListTopicsPermissionFor(ctx context.Context, rc domain.RequestContext, serviceID string) error {
	return s.ensure(ctx, rc, ListTopics, serviceID)
}

// EnsureCreateFeedPermissionFor checks the principal may create, preview, update or delete feeds of the service
func (s *Service) EnsureCreateFeedPermissionFor(ctx context.Context, rc domain.RequestContext, serviceID string) error {
	return s.ensure(ctx, rc, CreateFeed, serviceID)
}

// EnsureListAllFeedsPermissionFor checks the principal may list all feeds
func (s *Service) EnsureListAllFeedsPermissionFor(ctx context.Context, rc domain.RequestContext) error {
	return s.ensure(ctx, rc, ListAllFeeds, "")
}

// EnsureFetchFeedContentPermissionFor checks the principal may fetch content of the feed
func (s *Service) EnsureFetchFeedContentPermissionFor(ctx context.Context, rc domain.RequestContext, feedID string) error {
	return s.ensure(ctx, rc, FetchFeedContent, feedID)
}

// ensure passes if the principal itself or any of its roles is allowed
func (s *Service) ensure(ctx context.Context, rc domain.RequestContext, permission, id string) error {
	subject, roles := principalOf(ctx, rc)
	object := objectFor(permission, id)
	subs := make([]string, 0, len(roles)+1)
	if subject != Anonymous {
		subs = append(subs, User(subject))
	}
	for _, r := range roles {
		subs = append(subs, Role(r))
	}
	for _, sub := range subs {
		ok, err := s.enforcer.Enforce(sub, object, permission)
		if err != nil {
			return fmt.Errorf("enforce %s on %s: %w", permission, object, err)
		}
		if ok {
			return nil
		}
	}
	log.Printf("[DEBUG] %s denied %s on %q", subject, permission, object)
	return domain.PermissionDenied(permission, subject, id)
}

func principalOf(ctx context.Context, rc domain.RequestContext) (subject string, roles []string) {
	if rc == nil {
		return Anonymous, nil
	}
	p, err := rc.Principal(ctx)
	if err != nil {
		log.Printf("[DEBUG] can't resolve principal, %v", err)
		return Anonymous, nil
	}
	if p.ID == "" {
		return Anonymous, p.Roles
	}
	return p.ID, p.Roles
}

func objectFor(permission, id string) string {
	var collection string
	switch permission {
	case ListServiceTypes:
		return "service_types"
	case CreateService, ListServices, ManageService, ListTopics, CreateFeed:
		collection = "services"
	default:
		collection = "feeds"
	}
	if id == "" {
		return collection
	}
	return collection + "/" + id
}
