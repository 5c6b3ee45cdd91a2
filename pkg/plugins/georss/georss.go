// Package georss provides the service type for RSS and Atom feeds with GeoRSS locations.
// A service has one topic, its entries, which become GeoJSON point features.
package georss

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/plugins"
	"github.com/umputun/manifold/pkg/plugins/upstream"
)

// PluginServiceTypeID of the georss service type
const PluginServiceTypeID = "georss"

// EntriesTopic is the only topic of a georss service
const EntriesTopic = "entries"

// Config of a georss service
type Config struct {
	URL       string `json:"url" jsonschema:"title=Feed URL,description=RSS or Atom feed with GeoRSS locations,format=uri"`
	UserAgent string `json:"userAgent,omitempty" jsonschema:"title=User agent,description=Sent instead of the default user agent"`
}

// ServiceType implements feeds.ServiceType for georss feeds
type ServiceType struct {
	client       *upstream.Client
	configSchema domain.JSONObject
	configs      *plugins.ConfigValidator
	sanitizer    *bluemonday.Policy
}

// NewServiceType makes the georss service type, all its connections share the client
func NewServiceType(client *upstream.Client) *ServiceType {
	s := plugins.ReflectSchema(&Config{})
	return &ServiceType{
		client:       client,
		configSchema: s,
		configs:      plugins.NewConfigValidator(s),
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

// Descriptor describes the service type
func (s *ServiceType) Descriptor() feeds.ServiceTypeInfo {
	return feeds.ServiceTypeInfo{
		PluginServiceTypeID: PluginServiceTypeID,
		Title:               "GeoRSS feed",
		Summary:             "Entries of an RSS or Atom feed located with GeoRSS points",
		ConfigSchema:        s.configSchema,
	}
}

// ValidateServiceConfig checks the config against the config schema and requires an http(s) url
func (s *ServiceType) ValidateServiceConfig(_ context.Context, config any) error {
	_, err := s.decode(config)
	return err
}

// RedactServiceConfig returns the normalized config, georss configs carry no secrets
func (s *ServiceType) RedactServiceConfig(config any) any {
	cfg, err := s.decode(config)
	if err != nil {
		return nil
	}
	return plugins.ToObject(cfg)
}

// CreateConnection makes a connection for a valid config, nothing is requested yet
func (s *ServiceType) CreateConnection(config any) (feeds.Connection, error) {
	cfg, err := s.decode(config)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	header.Set("Cache-Control", "no-cache")
	if cfg.UserAgent != "" {
		header.Set("User-Agent", cfg.UserAgent)
	}
	return &Connection{client: s.client, url: cfg.URL, header: header, sanitizer: s.sanitizer}, nil
}

func (s *ServiceType) decode(config any) (Config, error) {
	var cfg Config
	if err := s.configs.Decode(config, &cfg); err != nil {
		return cfg, err
	}
	if _, err := plugins.CheckHTTPURL(cfg.URL, "url"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Connection to one georss feed
type Connection struct {
	client    *upstream.Client
	url       string
	header    http.Header
	sanitizer *bluemonday.Policy
}

// FetchServiceInfo returns title and description of the feed
func (c *Connection) FetchServiceInfo(ctx context.Context) (*domain.FeedServiceInfo, error) {
	feed, err := c.parse(ctx, "service_info")
	if err != nil {
		return nil, err
	}
	return &domain.FeedServiceInfo{Title: feed.Title, Summary: c.sanitizer.Sanitize(feed.Description)}, nil
}

// FetchAvailableTopics returns the entries topic, the feed itself is not requested
func (c *Connection) FetchAvailableTopics(context.Context) ([]domain.FeedTopic, error) {
	return []domain.FeedTopic{entriesTopic()}, nil
}

// FetchTopicContent returns feed entries newest first, params limit and newerThan (RFC 3339) filter them
func (c *Connection) FetchTopicContent(ctx context.Context, topicID string, params domain.JSONObject) (*domain.TopicContent, error) {
	if topicID != EntriesTopic {
		return nil, fmt.Errorf("topic %s: %w", topicID, feeds.ErrUnknownTopic)
	}
	feed, err := c.parse(ctx, "items")
	if err != nil {
		return nil, err
	}

	var newerThan time.Time
	if s, ok := plugins.StringParam(params, "newerThan"); ok {
		if newerThan, err = time.Parse(time.RFC3339, s); err != nil {
			return nil, fmt.Errorf("parse newerThan %q: %w", s, err)
		}
	}

	items := make([]*gofeed.Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		if !newerThan.IsZero() && !published(item).After(newerThan) {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool { return published(items[i]).After(published(items[j])) })
	if limit, ok := plugins.IntParam(params, "limit"); ok && limit >= 0 && limit < len(items) {
		items = items[:limit]
	}

	fc := geojson.NewFeatureCollection()
	for _, item := range items {
		fc.Append(c.feature(item))
	}
	return &domain.TopicContent{Topic: EntriesTopic, Items: fc}, nil
}

func (c *Connection) parse(ctx context.Context, call string) (*gofeed.Feed, error) {
	body, err := c.client.Get(ctx, call, c.url, c.header)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// feature converts an entry, entries without a location get a null geometry
func (c *Connection) feature(item *gofeed.Item) *geojson.Feature {
	var f *geojson.Feature
	if pt, ok := location(item.Extensions); ok {
		f = geojson.NewFeature(pt)
	} else {
		f = &geojson.Feature{Type: "Feature", Properties: geojson.Properties{}}
	}

	switch {
	case item.GUID != "":
		f.ID = item.GUID
	case item.Link != "":
		f.ID = item.Link
	default:
		f.ID = item.Title
	}
	f.Properties["title"] = item.Title
	f.Properties["link"] = item.Link
	f.Properties["summary"] = c.sanitizer.Sanitize(item.Description)
	if item.Author != nil {
		f.Properties["author"] = item.Author.Name
	}
	if ts := published(item); !ts.IsZero() {
		f.Properties["published"] = ts.UTC().Format(time.RFC3339)
	}
	return f
}

func published(item *gofeed.Item) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return *item.PublishedParsed
	case item.UpdatedParsed != nil:
		return *item.UpdatedParsed
	}
	return time.Time{}
}

// location reads georss:point ("lat lon") or W3C geo:lat and geo:long
func location(exts ext.Extensions) (orb.Point, bool) {
	if v := extValue(exts, "georss", "point"); v != "" {
		fields := strings.Fields(v)
		if len(fields) == 2 {
			return point(fields[0], fields[1])
		}
	}
	if lat, lon := extValue(exts, "geo", "lat"), extValue(exts, "geo", "long"); lat != "" && lon != "" {
		return point(lat, lon)
	}
	return orb.Point{}, false
}

func point(latStr, lonStr string) (orb.Point, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return orb.Point{}, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}

func extValue(exts ext.Extensions, prefix, name string) string {
	values := exts[prefix][name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

func entriesTopic() domain.FeedTopic {
	return domain.FeedTopic{
		ID:      EntriesTopic,
		Title:   "Entries",
		Summary: "Feed entries with their GeoRSS location",
		ParamsSchema: domain.JSONObject{
			"type": "object",
			"properties": map[string]any{
				"limit":     map[string]any{"type": "integer", "minimum": 0},
				"newerThan": map[string]any{"type": "string", "format": "date-time"},
			},
		},
		ItemsHaveIdentity:         true,
		ItemsHaveSpatialDimension: true,
		ItemTemporalProperty:      "published",
		ItemPrimaryProperty:       "title",
		ItemSecondaryProperty:     "summary",
	}
}
