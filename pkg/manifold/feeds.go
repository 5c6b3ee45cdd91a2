package manifold

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/schema"
)

// PreviewFeedID is the id of a feed derived by PreviewFeed, such feeds are never saved
const PreviewFeedID = "preview"

// errImmutableFeedBinding is reported when an update tries to move a feed to another service or topic
var errImmutableFeedBinding = errors.New("service and topic are immutable")

// PreviewFeedRequest asks for the feed a definition would produce together with its content
type PreviewFeedRequest struct {
	Context        domain.RequestContext `json:"-" validate:"-"`
	Feed           domain.FeedMinimal    `json:"feed"`
	VariableParams domain.JSONObject     `json:"variableParams,omitempty"`
}

// FeedPreview is the derived feed and the content fetched with it
type FeedPreview struct {
	Feed    domain.Feed         `json:"feed"`
	Content *domain.FeedContent `json:"content"`
}

// CreateFeedRequest saves a feed definition
type CreateFeedRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	Feed    domain.FeedMinimal    `json:"feed"`
}

// UpdateFeedRequest merges attributes over a saved feed
type UpdateFeedRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	Feed    domain.FeedUpdate     `json:"feed"`
}

// DeleteFeedRequest removes a saved feed
type DeleteFeedRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	ID      string                `json:"id"`
}

// ListAllFeedsRequest asks for all saved feeds
type ListAllFeedsRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
}

// GetFeedRequest asks for one feed with its service and topic expanded
type GetFeedRequest struct {
	Context domain.RequestContext `json:"-" validate:"-"`
	ID      string                `json:"id"`
}

// FetchFeedContentRequest asks for the content of a saved feed
type FetchFeedContentRequest struct {
	Context        domain.RequestContext `json:"-" validate:"-"`
	Feed           string                `json:"feed"`
	VariableParams domain.JSONObject     `json:"variableParams,omitempty"`
}

// preparedFeed is the outcome of the pipeline shared by preview and create
type preparedFeed struct {
	conn           feeds.Connection
	topic          *domain.FeedTopic
	feed           domain.Feed
	variableSchema schema.Validator // nil if the definition has no variable params schema
}

// prepareFeed resolves service, service type and topic of a feed definition, checks the caller may create
// feeds of the service and validates the definition. Existence of the service and its type is checked
// before the permission.
func (a *App) prepareFeed(ctx context.Context, rc domain.RequestContext, minimal domain.FeedMinimal,
	variable domain.JSONObject) (*preparedFeed, error) {
	svc, err := a.service(ctx, minimal.Service)
	if err != nil {
		return nil, err
	}
	st, err := a.serviceType(ctx, svc.ServiceType)
	if err != nil {
		return nil, err
	}
	if err := a.Permissions.EnsureCreateFeedPermissionFor(ctx, rc, svc.ID); err != nil {
		return nil, err
	}
	conn, err := st.CreateConnection(svc.Config)
	if err != nil {
		return nil, fmt.Errorf("create connection to service %s: %w", svc.ID, err)
	}
	topic, err := findTopic(ctx, conn, minimal.Topic)
	if err != nil {
		return nil, err
	}

	res := preparedFeed{conn: conn, topic: topic, feed: NormalizeFeedMinimalAttrs(*topic, minimal)}
	if minimal.VariableParamsSchema != nil {
		if res.variableSchema, err = a.Schemas.ValidateSchema(minimal.VariableParamsSchema); err != nil {
			return nil, domain.InvalidInput("invalid variable parameters schema", domain.Key(err, "feed", "variableParamsSchema"))
		}
	}
	if err := a.validateMergedParams(topic, minimal.ConstantParams, variable); err != nil {
		return nil, err
	}
	return &res, nil
}

// PreviewFeed derives a feed from a definition and fetches its content, nothing is saved
func (a *App) PreviewFeed(ctx context.Context, req PreviewFeedRequest) (res *FeedPreview, err error) {
	defer a.observe("preview_feed", time.Now(), &err)

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	p, err := a.prepareFeed(ctx, req.Context, req.Feed, req.VariableParams)
	if err != nil {
		return nil, err
	}
	if p.variableSchema != nil { // absent variable params are checked as an empty object, same as on fetch
		if err := p.variableSchema.Validate(nonNil(req.VariableParams)); err != nil {
			return nil, domain.InvalidInput("invalid parameters", domain.Key(err, "variableParams"))
		}
	}

	p.feed.ID = PreviewFeedID
	content, err := p.conn.FetchTopicContent(ctx, p.topic.ID, MergeParams(p.feed.ConstantParams, req.VariableParams))
	if err != nil {
		return nil, fmt.Errorf("fetch content of topic %s: %w", p.topic.ID, err)
	}
	return &FeedPreview{Feed: p.feed, Content: feedContent(PreviewFeedID, p.topic.ID, req.VariableParams, content)}, nil
}

// CreateFeed validates and saves a feed definition, attributes it leaves unset default from the topic.
// No content is fetched.
func (a *App) CreateFeed(ctx context.Context, req CreateFeedRequest) (res *domain.Feed, err error) {
	defer a.observe("create_feed", time.Now(), &err)

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	p, err := a.prepareFeed(ctx, req.Context, req.Feed, nil)
	if err != nil {
		return nil, err
	}
	saved, err := a.FeedRepo.Create(ctx, p.feed)
	if err != nil {
		return nil, fmt.Errorf("save feed: %w", err)
	}
	log.Printf("[INFO] created feed %s (%s) on service %s, topic %s", saved.ID, saved.Title, saved.Service, saved.Topic)
	return saved, nil
}

// UpdateFeed merges the supplied attributes over a saved feed. Service and topic may be repeated
// but never changed.
func (a *App) UpdateFeed(ctx context.Context, req UpdateFeedRequest) (res *domain.Feed, err error) {
	defer a.observe("update_feed", time.Now(), &err)

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	upd := req.Feed
	feed, err := a.ownedFeed(ctx, req.Context, upd.ID, upd.Service)
	if err != nil {
		return nil, err
	}
	if (upd.Service != nil && *upd.Service != feed.Service) || (upd.Topic != nil && *upd.Topic != feed.Topic) {
		return nil, domain.InvalidInput(errImmutableFeedBinding.Error(),
			domain.Key(errImmutableFeedBinding, "feed", "service"),
			domain.Key(errImmutableFeedBinding, "feed", "topic"))
	}
	if upd.VariableParamsSchema != nil {
		if _, err := a.Schemas.ValidateSchema(upd.VariableParamsSchema); err != nil {
			return nil, domain.InvalidInput("invalid variable parameters schema", domain.Key(err, "feed", "variableParamsSchema"))
		}
	}

	saved, err := a.FeedRepo.Update(ctx, applyFeedUpdate(*feed, upd))
	if err != nil {
		return nil, fmt.Errorf("save feed %s: %w", feed.ID, err)
	}
	if saved == nil { // removed concurrently
		return nil, domain.EntityNotFound(upd.ID, entityFeed)
	}
	return saved, nil
}

// DeleteFeed removes a saved feed
func (a *App) DeleteFeed(ctx context.Context, req DeleteFeedRequest) (err error) {
	defer a.observe("delete_feed", time.Now(), &err)

	if _, err := a.ownedFeed(ctx, req.Context, req.ID, nil); err != nil {
		return err
	}
	if err := a.FeedRepo.RemoveByID(ctx, req.ID); err != nil {
		return fmt.Errorf("remove feed %s: %w", req.ID, err)
	}
	log.Printf("[INFO] deleted feed %s", req.ID)
	return nil
}

// ownedFeed checks the caller may manage feeds of the feed's owning service, then loads the feed.
// The permission is checked before existence is reported; for a missing feed it is scoped to the
// service named by the request, or to no service at all.
func (a *App) ownedFeed(ctx context.Context, rc domain.RequestContext, id string, service *string) (*domain.Feed, error) {
	feed, err := a.FeedRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find feed %s: %w", id, err)
	}
	serviceID := ""
	switch {
	case feed != nil:
		serviceID = feed.Service
	case service != nil:
		serviceID = *service
	}
	if err := a.Permissions.EnsureCreateFeedPermissionFor(ctx, rc, serviceID); err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, domain.EntityNotFound(id, entityFeed)
	}
	return feed, nil
}

// ListAllFeeds returns all saved feeds
func (a *App) ListAllFeeds(ctx context.Context, req ListAllFeedsRequest) (res []domain.Feed, err error) {
	defer a.observe("list_all_feeds", time.Now(), &err)

	if err := a.Permissions.EnsureListAllFeedsPermissionFor(ctx, req.Context); err != nil {
		return nil, err
	}
	res, err = a.FeedRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find feeds: %w", err)
	}
	return res, nil
}

// GetFeed returns a feed with its service, config redacted, and its topic as currently reported
// by the service
func (a *App) GetFeed(ctx context.Context, req GetFeedRequest) (res *domain.FeedExpanded, err error) {
	defer a.observe("get_feed", time.Now(), &err)

	if err := a.Permissions.EnsureListAllFeedsPermissionFor(ctx, req.Context); err != nil {
		return nil, err
	}
	feed, err := a.feed(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	svc, err := a.service(ctx, feed.Service)
	if err != nil {
		return nil, err
	}
	st, conn, err := a.connect(ctx, svc)
	if err != nil {
		return nil, err
	}
	topic, err := findTopic(ctx, conn, feed.Topic)
	if err != nil {
		return nil, err
	}
	return &domain.FeedExpanded{Feed: *feed, Service: redacted(st, *svc), Topic: *topic}, nil
}

// FetchFeedContent fetches content of a saved feed, the feed constant params win over the caller's
// variable params
func (a *App) FetchFeedContent(ctx context.Context, req FetchFeedContentRequest) (res *domain.FeedContent, err error) {
	defer a.observe("fetch_feed_content", time.Now(), &err)

	if err := a.Permissions.EnsureFetchFeedContentPermissionFor(ctx, req.Context, req.Feed); err != nil {
		return nil, err
	}
	feed, err := a.feed(ctx, req.Feed)
	if err != nil {
		return nil, err
	}
	svc, err := a.service(ctx, feed.Service)
	if err != nil {
		return nil, err
	}
	_, conn, err := a.connect(ctx, svc)
	if err != nil {
		return nil, err
	}
	if err := a.validateVariableParams(feed.VariableParamsSchema, req.VariableParams); err != nil {
		return nil, err
	}
	content, err := conn.FetchTopicContent(ctx, feed.Topic, MergeParams(feed.ConstantParams, req.VariableParams))
	if err != nil {
		return nil, fmt.Errorf("fetch content of feed %s: %w", feed.ID, err)
	}
	return feedContent(feed.ID, feed.Topic, req.VariableParams, content), nil
}

func feedContent(feedID, topicID string, variable domain.JSONObject, content *domain.TopicContent) *domain.FeedContent {
	res := &domain.FeedContent{Feed: feedID, Topic: topicID, VariableParams: variable}
	if content != nil {
		res.Items, res.PageCursor = content.Items, content.PageCursor
	}
	return res
}
