package manifold

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	fmocks "github.com/umputun/manifold/pkg/feeds/mocks"
	"github.com/umputun/manifold/pkg/manifold/mocks"
	"github.com/umputun/manifold/pkg/metrics"
	"github.com/umputun/manifold/pkg/repository"
	"github.com/umputun/manifold/pkg/schema"
)

const testModule = "m1"

// fixture wires the app to in-memory sqlite repositories, a real registry with one mocked
// wfs service type, permissive permissions and a spying schema service
type fixture struct {
	app      *App
	repos    *repository.Repositories
	registry *feeds.Registry
	perms    *mocks.PermissionServiceMock
	schemas  *mocks.SchemaServiceMock
	st       *fmocks.ServiceTypeMock
	conn     *fmocks.ConnectionMock
	wfs      *feeds.RegisteredServiceType
	rc       domain.RequestContext
}

var (
	quakesTopic = domain.FeedTopic{
		ID:                        "quakes",
		Title:                     "Earthquakes",
		Summary:                   "recent earthquakes",
		ItemsHaveIdentity:         false,
		ItemsHaveSpatialDimension: true,
		ItemTemporalProperty:      "time",
		ItemPrimaryProperty:       "place",
		UpdateFrequencySeconds:    60,
	}
	lakesTopic = domain.FeedTopic{
		ID:                "lakes",
		Title:             "Lakes",
		ItemsHaveIdentity: true,
		ParamsSchema: domain.JSONObject{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{"type": "integer", "maximum": 100},
				"bbox":  map[string]any{"type": "array"},
			},
		},
	}
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })

	f := &fixture{
		repos:    repos,
		registry: feeds.NewRegistry(repos.ServiceType),
		rc:       domain.StaticRequestContext{Token: "t1", Who: domain.Principal{ID: "alice"}},
	}
	f.perms = &mocks.PermissionServiceMock{
		EnsureListServiceTypesPermissionForFunc: func(context.Context, domain.RequestContext) error { return nil },
		EnsureCreateServicePermissionForFunc:    func(context.Context, domain.RequestContext) error { return nil },
		EnsureListServicesPermissionForFunc:     func(context.Context, domain.RequestContext) error { return nil },
		EnsureManageServicePermissionForFunc:    func(context.Context, domain.RequestContext, string) error { return nil },
		EnsureListTopicsPermissionForFunc:       func(context.Context, domain.RequestContext, string) error { return nil },
		EnsureCreateFeedPermissionForFunc:       func(context.Context, domain.RequestContext, string) error { return nil },
		EnsureListAllFeedsPermissionForFunc:     func(context.Context, domain.RequestContext) error { return nil },
		EnsureFetchFeedContentPermissionForFunc: func(context.Context, domain.RequestContext, string) error { return nil },
	}
	f.schemas = &mocks.SchemaServiceMock{ValidateSchemaFunc: schema.NewService().ValidateSchema}

	f.conn = &fmocks.ConnectionMock{
		FetchServiceInfoFunc: func(context.Context) (*domain.FeedServiceInfo, error) {
			return &domain.FeedServiceInfo{Title: "test"}, nil
		},
		FetchAvailableTopicsFunc: func(context.Context) ([]domain.FeedTopic, error) {
			return []domain.FeedTopic{quakesTopic, lakesTopic}, nil
		},
		FetchTopicContentFunc: func(_ context.Context, topicID string, _ map[string]any) (*domain.TopicContent, error) {
			fc := geojson.NewFeatureCollection()
			fc.Append(geojson.NewFeature(orb.Point{1, 2}))
			return &domain.TopicContent{Topic: topicID, Items: fc}, nil
		},
	}
	f.st = &fmocks.ServiceTypeMock{
		DescriptorFunc: func() feeds.ServiceTypeInfo {
			return feeds.ServiceTypeInfo{PluginServiceTypeID: "wfs", Title: "WFS", ConfigSchema: domain.JSONObject{"type": "object"}}
		},
		ValidateServiceConfigFunc: func(_ context.Context, config any) error {
			m, ok := config.(map[string]any)
			if !ok || m["url"] == nil || m["url"] == "" {
				return &feeds.InvalidServiceConfigError{InvalidKeys: [][]string{{"url"}}, Reason: "url is required"}
			}
			return nil
		},
		RedactServiceConfigFunc: func(config any) any {
			m, ok := config.(map[string]any)
			if !ok {
				return config
			}
			res := map[string]any{}
			for k, v := range m {
				res[k] = v
			}
			if _, ok := res["apiKey"]; ok {
				res["apiKey"] = "***"
			}
			return res
		},
		CreateConnectionFunc: func(any) (feeds.Connection, error) { return f.conn, nil },
	}
	f.wfs, err = f.registry.Register(ctx, testModule, f.st)
	require.NoError(t, err)

	f.app = New(Params{
		Registry:    f.registry,
		ServiceRepo: repos.Service,
		FeedRepo:    repos.Feed,
		Permissions: f.perms,
		Schemas:     f.schemas,
		Metrics:     metrics.NewCollector(prometheus.NewRegistry()),
	})
	return f
}

// createService saves a wfs service straight through the repository
func (f *fixture) createService(t *testing.T, config map[string]any) *domain.FeedService {
	t.Helper()
	svc, err := f.repos.Service.Create(context.Background(), domain.FeedService{ServiceType: f.wfs.ID, Title: "WFS", Config: config})
	require.NoError(t, err)
	return svc
}

func (f *fixture) createFeed(t *testing.T, feed domain.Feed) *domain.Feed {
	t.Helper()
	saved, err := f.repos.Feed.Create(context.Background(), feed)
	require.NoError(t, err)
	return saved
}

func denied(permission string) error {
	return domain.PermissionDenied(permission, "banned", "")
}

func strPtr(s string) *string { return &s }

func requireCode(t *testing.T, code domain.Code, err error) *domain.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := domain.AsError(err)
	require.True(t, ok, "expected domain error, got %v", err)
	require.Equal(t, code, appErr.Code, appErr.Error())
	return appErr
}

func TestApp_ListServiceTypes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.app.ListServiceTypes(ctx, ListServiceTypesRequest{Context: f.rc})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, f.wfs.ID, res[0].ID)
	assert.Equal(t, "wfs", res[0].PluginServiceTypeID)
	assert.Equal(t, testModule, res[0].ModuleName)
	assert.Equal(t, "WFS", res[0].Title)

	f.perms.EnsureListServiceTypesPermissionForFunc = func(context.Context, domain.RequestContext) error {
		return denied("list_service_types")
	}
	_, err = f.app.ListServiceTypes(ctx, ListServiceTypesRequest{Context: f.rc})
	requireCode(t, domain.CodePermissionDenied, err)
	assert.Same(t, f.rc, f.perms.EnsureListServiceTypesPermissionForCalls()[0].Rc)
}

func TestApp_PreviewTopics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("valid config", func(t *testing.T) {
		res, err := f.app.PreviewTopics(ctx, PreviewTopicsRequest{Context: f.rc, ServiceType: f.wfs.ID,
			ServiceConfig: map[string]any{"url": "https://x"}})
		require.NoError(t, err)
		assert.Equal(t, []domain.FeedTopic{quakesTopic, lakesTopic}, res)

		all, err := f.repos.Service.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := f.app.PreviewTopics(ctx, PreviewTopicsRequest{Context: f.rc, ServiceType: f.wfs.ID, ServiceConfig: map[string]any{}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"config.url"}, appErr.KeyPaths())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := f.app.PreviewTopics(ctx, PreviewTopicsRequest{Context: f.rc, ServiceType: "nope", ServiceConfig: map[string]any{}})
		appErr := requireCode(t, domain.CodeEntityNotFound, err)
		assert.Equal(t, &domain.NotFound{EntityType: "FeedServiceType", EntityID: "nope"}, appErr.NotFound)
	})

	t.Run("connection failure is not classified", func(t *testing.T) {
		f.conn.FetchAvailableTopicsFunc = func(context.Context) ([]domain.FeedTopic, error) {
			return nil, errors.New("connection refused")
		}
		_, err := f.app.PreviewTopics(ctx, PreviewTopicsRequest{Context: f.rc, ServiceType: f.wfs.ID,
			ServiceConfig: map[string]any{"url": "https://x"}})
		require.Error(t, err)
		assert.Equal(t, domain.Code(""), domain.ErrorCode(err))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestApp_CreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("saved with raw config, returned redacted", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.app.CreateService(ctx, CreateServiceRequest{Context: f.rc, ServiceType: f.wfs.ID, Title: "Quakes",
			Config: map[string]any{"url": "https://x", "apiKey": "secret"}})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, f.wfs.ID, res.ServiceType)
		assert.Equal(t, map[string]any{"url": "https://x", "apiKey": "***"}, res.Config)

		stored, err := f.repos.Service.FindByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"url": "https://x", "apiKey": "secret"}, stored.Config)
	})

	t.Run("request validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.CreateService(ctx, CreateServiceRequest{Context: f.rc, ServiceType: f.wfs.ID,
			Config: map[string]any{"url": "https://x"}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"title"}, appErr.KeyPaths())
		assert.Empty(t, f.perms.EnsureCreateServicePermissionForCalls())
	})

	t.Run("permission denied", func(t *testing.T) {
		f := newFixture(t)
		f.perms.EnsureCreateServicePermissionForFunc = func(context.Context, domain.RequestContext) error {
			return denied("create_service")
		}
		_, err := f.app.CreateService(ctx, CreateServiceRequest{Context: f.rc, ServiceType: "nope", Title: "x"})
		requireCode(t, domain.CodePermissionDenied, err)
	})

	t.Run("invalid config is not saved", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.CreateService(ctx, CreateServiceRequest{Context: f.rc, ServiceType: f.wfs.ID, Title: "x",
			Config: map[string]any{"apiKey": "secret"}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, "invalid service config", appErr.Message)
		assert.Equal(t, []string{"config.url"}, appErr.KeyPaths())

		all, err := f.repos.Service.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("unclassified validation failure", func(t *testing.T) {
		f := newFixture(t)
		f.st.ValidateServiceConfigFunc = func(context.Context, any) error { return errors.New("boom") }
		_, err := f.app.CreateService(ctx, CreateServiceRequest{Context: f.rc, ServiceType: f.wfs.ID, Title: "x"})
		require.Error(t, err)
		assert.Equal(t, domain.Code(""), domain.ErrorCode(err))
	})
}

func TestApp_ListServices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x", "apiKey": "secret"})

	orphanType, err := f.repos.ServiceType.FindOrCreateIdentity(ctx, "gone", "legacy")
	require.NoError(t, err)
	_, err = f.repos.Service.Create(ctx, domain.FeedService{ServiceType: orphanType.ID, Title: "Legacy",
		Config: map[string]any{"password": "hunter2"}})
	require.NoError(t, err)

	res, err := f.app.ListServices(ctx, ListServicesRequest{Context: f.rc})
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "Legacy", res[0].Title)
	assert.Nil(t, res[0].Config, "config of a service without loaded type is hidden")

	assert.Equal(t, svc.ID, res[1].ID)
	assert.Equal(t, map[string]any{"url": "https://x", "apiKey": "***"}, res[1].Config)
	assert.Len(t, f.st.RedactServiceConfigCalls(), 1)
}

func TestApp_UpdateService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x"})

	res, err := f.app.UpdateService(ctx, UpdateServiceRequest{Context: f.rc, ID: svc.ID, Title: "Renamed",
		Config: map[string]any{"url": "https://y", "apiKey": "k"}})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", res.Title)
	assert.Equal(t, map[string]any{"url": "https://y", "apiKey": "***"}, res.Config)
	assert.Equal(t, svc.ID, f.perms.EnsureManageServicePermissionForCalls()[0].ServiceID)

	_, err = f.app.UpdateService(ctx, UpdateServiceRequest{Context: f.rc, ID: svc.ID, Title: "Bad", Config: map[string]any{}})
	requireCode(t, domain.CodeInvalidInput, err)
	stored, err := f.repos.Service.FindByID(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)

	_, err = f.app.UpdateService(ctx, UpdateServiceRequest{Context: f.rc, ID: "missing", Title: "x"})
	requireCode(t, domain.CodeEntityNotFound, err)
}

// secretKeepingType restores the stored api key for a masked one
type secretKeepingType struct {
	*fmocks.ServiceTypeMock
}

func (s secretKeepingType) KeepServiceConfigSecrets(submitted, stored any) any {
	sub, _ := submitted.(map[string]any)
	prev, _ := stored.(map[string]any)
	if sub == nil || prev == nil || sub["apiKey"] != "***" {
		return submitted
	}
	res := map[string]any{}
	for k, v := range sub {
		res[k] = v
	}
	res["apiKey"] = prev["apiKey"]
	return res
}

func TestApp_UpdateService_KeepsMaskedSecrets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	keeper, err := f.registry.Register(ctx, "test/keeper", secretKeepingType{ServiceTypeMock: f.st})
	require.NoError(t, err)
	svc, err := f.repos.Service.Create(ctx, domain.FeedService{ServiceType: keeper.ID, Title: "WFS",
		Config: map[string]any{"url": "https://x", "apiKey": "secret"}})
	require.NoError(t, err)

	listed, err := f.app.ListServices(ctx, ListServicesRequest{Context: f.rc})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	shown, ok := listed[0].Config.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "***", shown["apiKey"])

	res, err := f.app.UpdateService(ctx, UpdateServiceRequest{Context: f.rc, ID: svc.ID, Title: "Renamed", Config: shown})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"url": "https://x", "apiKey": "***"}, res.Config)

	stored, err := f.repos.Service.FindByID(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"url": "https://x", "apiKey": "secret"}, stored.Config)
	assert.Equal(t, "Renamed", stored.Title)
}

func TestApp_DeleteService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x"})
	feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})

	t.Run("permission checked before existence", func(t *testing.T) {
		f.perms.EnsureManageServicePermissionForFunc = func(context.Context, domain.RequestContext, string) error {
			return denied("manage_service")
		}
		err := f.app.DeleteService(ctx, DeleteServiceRequest{Context: f.rc, ID: "missing"})
		requireCode(t, domain.CodePermissionDenied, err)
		f.perms.EnsureManageServicePermissionForFunc = func(context.Context, domain.RequestContext, string) error { return nil }
	})

	require.NoError(t, f.app.DeleteService(ctx, DeleteServiceRequest{Context: f.rc, ID: svc.ID}))
	got, err := f.repos.Feed.FindByID(ctx, feed.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "feeds removed with their service")

	err = f.app.DeleteService(ctx, DeleteServiceRequest{Context: f.rc, ID: svc.ID})
	requireCode(t, domain.CodeEntityNotFound, err)
}

func TestApp_ListServiceTopics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x"})

	res, err := f.app.ListServiceTopics(ctx, ListServiceTopicsRequest{Context: f.rc, Service: svc.ID})
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, map[string]any{"url": "https://x"}, f.st.CreateConnectionCalls()[0].Config)

	_, err = f.app.ListServiceTopics(ctx, ListServiceTopicsRequest{Context: f.rc, Service: "missing"})
	requireCode(t, domain.CodeEntityNotFound, err)

	f.perms.EnsureListTopicsPermissionForFunc = func(context.Context, domain.RequestContext, string) error {
		return denied("list_topics")
	}
	_, err = f.app.ListServiceTopics(ctx, ListServiceTopicsRequest{Context: f.rc, Service: "missing"})
	requireCode(t, domain.CodePermissionDenied, err)
}

func TestApp_PreviewThenCreateFeed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc, err := f.app.CreateService(ctx, CreateServiceRequest{Context: f.rc, ServiceType: f.wfs.ID, Title: "WFS",
		Config: map[string]any{"url": "https://x"}})
	require.NoError(t, err)

	preview, err := f.app.PreviewFeed(ctx, PreviewFeedRequest{Context: f.rc,
		Feed: domain.FeedMinimal{Service: svc.ID, Topic: "quakes"}})
	require.NoError(t, err)
	assert.Equal(t, PreviewFeedID, preview.Feed.ID)
	assert.Equal(t, PreviewFeedID, preview.Content.Feed)
	assert.Equal(t, "quakes", preview.Content.Topic)
	require.NotNil(t, preview.Content.Items)
	assert.Len(t, preview.Content.Items.Features, 1)

	all, err := f.repos.Feed.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "preview saves nothing")

	created, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "quakes"}})
	require.NoError(t, err)
	assert.NotEqual(t, PreviewFeedID, created.ID)
	assert.NotEmpty(t, created.ID)

	all, err = f.repos.Feed.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Len(t, f.conn.FetchTopicContentCalls(), 1, "create fetches no content")
}

func TestApp_CreateFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("topic defaults", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		res, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "quakes"}})
		require.NoError(t, err)
		assert.Equal(t, quakesTopic.Title, res.Title)
		assert.Equal(t, quakesTopic.Summary, res.Summary)
		assert.Equal(t, quakesTopic.ItemsHaveIdentity, res.ItemsHaveIdentity)
		assert.Equal(t, quakesTopic.ItemsHaveSpatialDimension, res.ItemsHaveSpatialDimension)
		assert.Equal(t, quakesTopic.ItemTemporalProperty, res.ItemTemporalProperty)
		assert.Equal(t, quakesTopic.UpdateFrequencySeconds, res.UpdateFrequencySeconds)
		assert.Equal(t, svc.ID, res.Service)
		assert.Equal(t, "quakes", res.Topic)
	})

	t.Run("missing service reported before permission", func(t *testing.T) {
		f := newFixture(t)
		f.perms.EnsureCreateFeedPermissionForFunc = func(context.Context, domain.RequestContext, string) error {
			return denied("create_feed")
		}
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: "nope", Topic: "quakes"}})
		appErr := requireCode(t, domain.CodeEntityNotFound, err)
		assert.Equal(t, "FeedService", appErr.NotFound.EntityType)
		assert.Empty(t, f.perms.EnsureCreateFeedPermissionForCalls())
	})

	t.Run("permission scoped to service before topic lookup", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		f.perms.EnsureCreateFeedPermissionForFunc = func(_ context.Context, _ domain.RequestContext, id string) error {
			return domain.PermissionDenied("create_feed", "banned", id)
		}
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "nope"}})
		appErr := requireCode(t, domain.CodePermissionDenied, err)
		assert.Equal(t, svc.ID, appErr.Permission.Object)
		assert.Empty(t, f.conn.FetchAvailableTopicsCalls())
	})

	t.Run("missing topic", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "nope"}})
		appErr := requireCode(t, domain.CodeEntityNotFound, err)
		assert.Equal(t, &domain.NotFound{EntityType: "FeedTopic", EntityID: "nope"}, appErr.NotFound)
	})

	t.Run("service type of the service not loaded", func(t *testing.T) {
		f := newFixture(t)
		ident, err := f.repos.ServiceType.FindOrCreateIdentity(ctx, "gone", "legacy")
		require.NoError(t, err)
		svc, err := f.repos.Service.Create(ctx, domain.FeedService{ServiceType: ident.ID, Title: "Legacy"})
		require.NoError(t, err)
		_, err = f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "x"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, feeds.ErrServiceTypeUnavailable)
	})

	t.Run("request validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Topic: "quakes"}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"feed.service"}, appErr.KeyPaths())
	})

	t.Run("bad variable params schema", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "quakes",
			VariableParamsSchema: domain.JSONObject{"type": "no-such-type"}}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Contains(t, appErr.Message, "invalid variable parameters schema")
		assert.Equal(t, []string{"feed.variableParamsSchema"}, appErr.KeyPaths())
		require.Len(t, appErr.InvalidKeys, 1)
		assert.Error(t, appErr.InvalidKeys[0].Err)
	})

	t.Run("invalid constant params", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "lakes",
			ConstantParams: domain.JSONObject{"limit": 500}}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Contains(t, appErr.Message, "invalid parameters")
		assert.Equal(t, []string{"feed.constantParams"}, appErr.KeyPaths())

		all, err := f.repos.Feed.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("valid constant params", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		res, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "lakes",
			Title: strPtr("Big lakes"), ConstantParams: domain.JSONObject{"limit": 50}}})
		require.NoError(t, err)
		assert.Equal(t, "Big lakes", res.Title)
		assert.True(t, res.ItemsHaveIdentity)
		assert.Len(t, f.schemas.ValidateSchemaCalls(), 1)
	})

	t.Run("no params schema, no validation", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "quakes",
			ConstantParams: domain.JSONObject{"limit": "not even a number", "whatever": true}}})
		require.NoError(t, err)
		assert.Empty(t, f.schemas.ValidateSchemaCalls())
	})
}

func TestApp_PreviewFeed_Params(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid variable params", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.PreviewFeed(ctx, PreviewFeedRequest{Context: f.rc, Feed: domain.FeedMinimal{Service: svc.ID, Topic: "lakes"},
			VariableParams: domain.JSONObject{"limit": 500}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"variableParams"}, appErr.KeyPaths())
		assert.Empty(t, f.conn.FetchTopicContentCalls())
	})

	t.Run("both sides fail", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.PreviewFeed(ctx, PreviewFeedRequest{Context: f.rc,
			Feed:           domain.FeedMinimal{Service: svc.ID, Topic: "lakes", ConstantParams: domain.JSONObject{"limit": 500}},
			VariableParams: domain.JSONObject{"bbox": "not an array"}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.ElementsMatch(t, []string{"feed.constantParams", "variableParams"}, appErr.KeyPaths())
	})

	t.Run("constant params win", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.PreviewFeed(ctx, PreviewFeedRequest{Context: f.rc,
			Feed:           domain.FeedMinimal{Service: svc.ID, Topic: "lakes", ConstantParams: domain.JSONObject{"limit": 25}},
			VariableParams: domain.JSONObject{"limit": 1000, "bbox": []any{1, 2, 3, 4}}})
		require.NoError(t, err)
		calls := f.conn.FetchTopicContentCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "lakes", calls[0].TopicID)
		assert.Equal(t, 25, calls[0].Params["limit"])
		assert.Equal(t, []any{1, 2, 3, 4}, calls[0].Params["bbox"])
	})

	t.Run("variable params checked against feed variable schema", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		_, err := f.app.PreviewFeed(ctx, PreviewFeedRequest{Context: f.rc,
			Feed: domain.FeedMinimal{Service: svc.ID, Topic: "quakes", VariableParamsSchema: domain.JSONObject{
				"type": "object", "required": []any{"since"}}},
			VariableParams: domain.JSONObject{"until": "now"}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"variableParams"}, appErr.KeyPaths())
	})

	t.Run("absent variable params checked like on fetch", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		minimal := domain.FeedMinimal{Service: svc.ID, Topic: "quakes", VariableParamsSchema: domain.JSONObject{
			"type": "object", "required": []any{"since"}}}

		_, err := f.app.PreviewFeed(ctx, PreviewFeedRequest{Context: f.rc, Feed: minimal})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"variableParams"}, appErr.KeyPaths())
		assert.Empty(t, f.conn.FetchTopicContentCalls())

		created, err := f.app.CreateFeed(ctx, CreateFeedRequest{Context: f.rc, Feed: minimal})
		require.NoError(t, err)
		_, err = f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: created.ID})
		appErr = requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"variableParams"}, appErr.KeyPaths())
	})
}

func TestApp_UpdateFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("same service and topic is accepted", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q", Summary: "keep me"})

		res, err := f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: feed.ID,
			Service: strPtr(svc.ID), Topic: strPtr("quakes")}})
		require.NoError(t, err)
		assert.Equal(t, "Q", res.Title)
		assert.Equal(t, "keep me", res.Summary)
		assert.Equal(t, svc.ID, f.perms.EnsureCreateFeedPermissionForCalls()[0].ServiceID)
	})

	t.Run("merges over stored feed, not topic defaults", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q", Summary: "custom", UpdateFrequencySeconds: 5})

		res, err := f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: feed.ID, Title: strPtr("New"),
			ConstantParams: domain.JSONObject{"limit": 10}}})
		require.NoError(t, err)
		assert.Equal(t, "New", res.Title)
		assert.Equal(t, "custom", res.Summary)
		assert.Equal(t, 5, res.UpdateFrequencySeconds)
		assert.EqualValues(t, 10, res.ConstantParams["limit"])
		assert.Empty(t, f.conn.FetchAvailableTopicsCalls())
	})

	t.Run("changing topic fails citing service and topic", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})

		_, err := f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: feed.ID,
			Service: strPtr(svc.ID), Topic: strPtr("lakes"), Title: strPtr("changed")}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Contains(t, appErr.Message, "service")
		assert.Contains(t, appErr.Message, "topic")
		assert.Equal(t, []string{"feed.service", "feed.topic"}, appErr.KeyPaths())

		stored, err := f.repos.Feed.FindByID(ctx, feed.ID)
		require.NoError(t, err)
		assert.Equal(t, "Q", stored.Title)
	})

	t.Run("changing service fails", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})
		_, err := f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: feed.ID, Service: strPtr("other")}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"feed.service", "feed.topic"}, appErr.KeyPaths())
	})

	t.Run("permission checked before existence", func(t *testing.T) {
		f := newFixture(t)
		f.perms.EnsureCreateFeedPermissionForFunc = func(_ context.Context, _ domain.RequestContext, id string) error {
			return domain.PermissionDenied("create_feed", "banned", id)
		}
		_, err := f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: "missing", Title: strPtr("x")}})
		requireCode(t, domain.CodePermissionDenied, err)

		f.perms.EnsureCreateFeedPermissionForFunc = func(context.Context, domain.RequestContext, string) error { return nil }
		_, err = f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: "missing", Title: strPtr("x")}})
		requireCode(t, domain.CodeEntityNotFound, err)
	})

	t.Run("bad variable params schema", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})
		_, err := f.app.UpdateFeed(ctx, UpdateFeedRequest{Context: f.rc, Feed: domain.FeedUpdate{ID: feed.ID,
			VariableParamsSchema: domain.JSONObject{"minimum": "ten"}}})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, "invalid variable parameters schema", appErr.Message)
	})
}

func TestApp_DeleteFeed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x"})
	feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})

	require.NoError(t, f.app.DeleteFeed(ctx, DeleteFeedRequest{Context: f.rc, ID: feed.ID}))
	assert.Equal(t, svc.ID, f.perms.EnsureCreateFeedPermissionForCalls()[0].ServiceID)
	got, err := f.repos.Feed.FindByID(ctx, feed.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = f.app.DeleteFeed(ctx, DeleteFeedRequest{Context: f.rc, ID: feed.ID})
	requireCode(t, domain.CodeEntityNotFound, err)
	assert.Equal(t, "", f.perms.EnsureCreateFeedPermissionForCalls()[1].ServiceID)
}

func TestApp_ListAllFeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x"})
	f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "A"})
	f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "lakes", Title: "B"})

	res, err := f.app.ListAllFeeds(ctx, ListAllFeedsRequest{Context: f.rc})
	require.NoError(t, err)
	assert.Len(t, res, 2)

	f.perms.EnsureListAllFeedsPermissionForFunc = func(context.Context, domain.RequestContext) error {
		return denied("list_all_feeds")
	}
	_, err = f.app.ListAllFeeds(ctx, ListAllFeedsRequest{Context: f.rc})
	requireCode(t, domain.CodePermissionDenied, err)
}

func TestApp_GetFeed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x", "apiKey": "secret"})
	feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})

	res, err := f.app.GetFeed(ctx, GetFeedRequest{Context: f.rc, ID: feed.ID})
	require.NoError(t, err)
	assert.Equal(t, feed.ID, res.ID)
	assert.Equal(t, svc.ID, res.Service.ID)
	assert.Equal(t, map[string]any{"url": "https://x", "apiKey": "***"}, res.Service.Config)
	assert.Equal(t, quakesTopic, res.Topic)

	_, err = f.app.GetFeed(ctx, GetFeedRequest{Context: f.rc, ID: "missing"})
	requireCode(t, domain.CodeEntityNotFound, err)

	f.conn.FetchAvailableTopicsFunc = func(context.Context) ([]domain.FeedTopic, error) { return nil, nil }
	_, err = f.app.GetFeed(ctx, GetFeedRequest{Context: f.rc, ID: feed.ID})
	appErr := requireCode(t, domain.CodeEntityNotFound, err)
	assert.Equal(t, "FeedTopic", appErr.NotFound.EntityType)
}

func TestApp_FetchFeedContent(t *testing.T) {
	ctx := context.Background()

	t.Run("constant params win over variable params", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q", ConstantParams: domain.JSONObject{"limit": 25}})

		res, err := f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: feed.ID,
			VariableParams: domain.JSONObject{"limit": 1000, "since": "2024-01-01"}})
		require.NoError(t, err)
		assert.Equal(t, feed.ID, res.Feed)
		assert.Equal(t, "quakes", res.Topic)
		assert.Equal(t, domain.JSONObject{"limit": 1000, "since": "2024-01-01"}, res.VariableParams)
		require.NotNil(t, res.Items)

		calls := f.conn.FetchTopicContentCalls()
		require.Len(t, calls, 1)
		assert.EqualValues(t, 25, calls[0].Params["limit"])
		assert.Equal(t, "2024-01-01", calls[0].Params["since"])
		assert.Equal(t, feed.ID, f.perms.EnsureFetchFeedContentPermissionForCalls()[0].FeedID)
	})

	t.Run("permission checked on feed id before existence", func(t *testing.T) {
		f := newFixture(t)
		f.perms.EnsureFetchFeedContentPermissionForFunc = func(_ context.Context, _ domain.RequestContext, id string) error {
			return domain.PermissionDenied("fetch_feed_content", "banned", id)
		}
		_, err := f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: "missing"})
		appErr := requireCode(t, domain.CodePermissionDenied, err)
		assert.Equal(t, "missing", appErr.Permission.Object)
	})

	t.Run("missing feed", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: "missing"})
		appErr := requireCode(t, domain.CodeEntityNotFound, err)
		assert.Equal(t, "Feed", appErr.NotFound.EntityType)
	})

	t.Run("variable params schema enforced", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q",
			VariableParamsSchema: domain.JSONObject{"type": "object", "required": []any{"since"}}})

		_, err := f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: feed.ID})
		appErr := requireCode(t, domain.CodeInvalidInput, err)
		assert.Equal(t, []string{"variableParams"}, appErr.KeyPaths())

		_, err = f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: feed.ID,
			VariableParams: domain.JSONObject{"since": "yesterday"}})
		require.NoError(t, err)
	})

	t.Run("upstream failure propagates unclassified", func(t *testing.T) {
		f := newFixture(t)
		svc := f.createService(t, map[string]any{"url": "https://x"})
		feed := f.createFeed(t, domain.Feed{Service: svc.ID, Topic: "quakes", Title: "Q"})
		f.conn.FetchTopicContentFunc = func(context.Context, string, map[string]any) (*domain.TopicContent, error) {
			return nil, errors.New("upstream 502")
		}
		_, err := f.app.FetchFeedContent(ctx, FetchFeedContentRequest{Context: f.rc, Feed: feed.ID})
		require.Error(t, err)
		assert.Equal(t, domain.Code(""), domain.ErrorCode(err))
		assert.Contains(t, err.Error(), "upstream 502")
	})
}

func TestApp_RestartKeepsServiceTypeIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.createService(t, map[string]any{"url": "https://x"})

	restarted := feeds.NewRegistry(f.repos.ServiceType)
	app := New(Params{Registry: restarted, ServiceRepo: f.repos.Service, FeedRepo: f.repos.Feed,
		Permissions: f.perms, Schemas: f.schemas})

	_, err := app.ListServiceTopics(ctx, ListServiceTopicsRequest{Context: f.rc, Service: svc.ID})
	require.ErrorIs(t, err, feeds.ErrServiceTypeUnavailable, "identity known before the plugin registers again")

	reg, err := restarted.Register(ctx, testModule, f.st)
	require.NoError(t, err)
	assert.Equal(t, f.wfs.ID, reg.ID)

	_, err = app.ListServiceTopics(ctx, ListServiceTopicsRequest{Context: f.rc, Service: svc.ID})
	require.NoError(t, err)
}
