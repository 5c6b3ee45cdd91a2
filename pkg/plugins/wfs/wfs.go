// Package wfs provides the service type for OGC API Features (WFS 3) services. Collections of
// a service are its topics, collection items are fetched as GeoJSON.
package wfs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/plugins"
	"github.com/umputun/manifold/pkg/plugins/upstream"
)

// PluginServiceTypeID of the wfs service type
const PluginServiceTypeID = "wfs"

const defaultAPIKeyHeader = "X-API-Key"

// Config of a wfs service
type Config struct {
	URL          string `json:"url" jsonschema:"title=Service URL,description=Landing page URL of the OGC API Features service,format=uri"`
	APIKey       string `json:"apiKey,omitempty" jsonschema:"title=API key,description=Sent with every request and never shown after saving"`
	APIKeyHeader string `json:"apiKeyHeader,omitempty" jsonschema:"title=API key header,default=X-API-Key"`
}

// ServiceType implements feeds.ServiceType for wfs services
type ServiceType struct {
	client       *upstream.Client
	configSchema domain.JSONObject
	configs      *plugins.ConfigValidator
}

// NewServiceType makes the wfs service type, all its connections share the client
func NewServiceType(client *upstream.Client) *ServiceType {
	s := plugins.ReflectSchema(&Config{})
	return &ServiceType{client: client, configSchema: s, configs: plugins.NewConfigValidator(s)}
}

// Descriptor describes the service type
func (s *ServiceType) Descriptor() feeds.ServiceTypeInfo {
	return feeds.ServiceTypeInfo{
		PluginServiceTypeID: PluginServiceTypeID,
		Title:               "OGC API Features",
		Summary:             "Collections of an OGC API Features (WFS 3) service",
		ConfigSchema:        s.configSchema,
	}
}

// ValidateServiceConfig checks the config against the config schema and requires an http(s) url
func (s *ServiceType) ValidateServiceConfig(_ context.Context, config any) error {
	_, _, err := s.decode(config)
	return err
}

// RedactServiceConfig masks the api key
func (s *ServiceType) RedactServiceConfig(config any) any {
	var cfg Config
	if err := s.configs.Decode(config, &cfg); err != nil {
		return nil
	}
	if cfg.APIKey != "" {
		cfg.APIKey = plugins.RedactedMask
	}
	return plugins.ToObject(cfg)
}

// KeepServiceConfigSecrets keeps the stored api key when the submitted config repeats its mask
func (s *ServiceType) KeepServiceConfigSecrets(submitted, stored any) any {
	var cfg, prev Config
	if err := s.configs.Decode(submitted, &cfg); err != nil || cfg.APIKey != plugins.RedactedMask {
		return submitted
	}
	if err := s.configs.Decode(stored, &prev); err != nil || prev.APIKey == "" {
		return submitted // nothing to keep, validation rejects the mask
	}
	cfg.APIKey = prev.APIKey
	return plugins.ToObject(cfg)
}

// CreateConnection makes a connection for a valid config, nothing is requested yet
func (s *ServiceType) CreateConnection(config any) (feeds.Connection, error) {
	cfg, base, err := s.decode(config)
	if err != nil {
		return nil, err
	}
	header := http.Header{"Accept": []string{"application/geo+json, application/json;q=0.9"}}
	if cfg.APIKey != "" {
		name := cfg.APIKeyHeader
		if name == "" {
			name = defaultAPIKeyHeader
		}
		header.Set(name, cfg.APIKey)
	}
	return &Connection{client: s.client, base: strings.TrimRight(base.String(), "/"), header: header}, nil
}

func (s *ServiceType) decode(config any) (Config, *url.URL, error) {
	var cfg Config
	if err := s.configs.Decode(config, &cfg); err != nil {
		return cfg, nil, err
	}
	if cfg.APIKey == plugins.RedactedMask {
		return cfg, nil, &feeds.InvalidServiceConfigError{InvalidKeys: [][]string{{"apiKey"}}, Reason: "masked api key"}
	}
	u, err := plugins.CheckHTTPURL(cfg.URL, "url")
	if err != nil {
		return cfg, nil, err
	}
	return cfg, u, nil
}

// Connection to one wfs service
type Connection struct {
	client *upstream.Client
	base   string
	header http.Header
}

type landingPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// FetchServiceInfo reads title and description of the landing page
func (c *Connection) FetchServiceInfo(ctx context.Context) (*domain.FeedServiceInfo, error) {
	var page landingPage
	if err := c.getJSON(ctx, "service_info", c.base+"/", &page); err != nil {
		return nil, err
	}
	return &domain.FeedServiceInfo{Title: page.Title, Summary: page.Description}, nil
}

// FetchAvailableTopics lists the collections of the service
func (c *Connection) FetchAvailableTopics(ctx context.Context) ([]domain.FeedTopic, error) {
	var resp struct {
		Collections []collection `json:"collections"`
	}
	if err := c.getJSON(ctx, "topics", c.base+"/collections", &resp); err != nil {
		return nil, err
	}
	res := make([]domain.FeedTopic, 0, len(resp.Collections))
	for _, col := range resp.Collections {
		if col.ID == "" {
			continue
		}
		title := col.Title
		if title == "" {
			title = col.ID
		}
		res = append(res, domain.FeedTopic{
			ID:                        col.ID,
			Title:                     title,
			Summary:                   col.Description,
			ParamsSchema:              itemsParamsSchema(),
			ItemsHaveIdentity:         true,
			ItemsHaveSpatialDimension: true,
		})
	}
	return res, nil
}

// FetchTopicContent gets items of a collection, params limit, bbox and datetime go to the query
func (c *Connection) FetchTopicContent(ctx context.Context, topicID string, params domain.JSONObject) (*domain.TopicContent, error) {
	topics, err := c.FetchAvailableTopics(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, t := range topics {
		if t.ID == topicID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("collection %s: %w", topicID, feeds.ErrUnknownTopic)
	}

	body, err := c.client.Get(ctx, "items", c.base+"/collections/"+url.PathEscape(topicID)+"/items"+itemsQuery(params), c.header)
	if err != nil {
		return nil, fmt.Errorf("get items of %s: %w", topicID, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode items of %s: %w", topicID, err)
	}
	res := &domain.TopicContent{Topic: topicID, Items: fc}
	if next := nextLink(fc); next != "" {
		res.PageCursor = domain.JSONObject{"next": next}
	}
	return res, nil
}

func (c *Connection) getJSON(ctx context.Context, call, u string, target any) error {
	body, err := c.client.Get(ctx, call, u, c.header)
	if err != nil {
		return fmt.Errorf("get %s: %w", call, err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode %s: %w", call, err)
	}
	return nil
}

func itemsParamsSchema() domain.JSONObject {
	return domain.JSONObject{
		"type": "object",
		"properties": map[string]any{
			"limit": map[string]any{"type": "integer", "minimum": 1, "maximum": 10000},
			"bbox": map[string]any{
				"type": "array", "items": map[string]any{"type": "number"}, "minItems": 4, "maxItems": 6,
			},
			"datetime": map[string]any{"type": "string"},
		},
	}
}

func itemsQuery(params domain.JSONObject) string {
	q := url.Values{}
	if limit, ok := plugins.IntParam(params, "limit"); ok {
		q.Set("limit", strconv.Itoa(limit))
	}
	if bbox, ok := params["bbox"].([]any); ok {
		parts := make([]string, 0, len(bbox))
		for _, v := range bbox {
			parts = append(parts, fmt.Sprint(v))
		}
		q.Set("bbox", strings.Join(parts, ","))
	}
	if dt, ok := plugins.StringParam(params, "datetime"); ok {
		q.Set("datetime", dt)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// nextLink finds the href of the "next" link among the foreign members of a collection
func nextLink(fc *geojson.FeatureCollection) string {
	raw, ok := fc.ExtraMembers["links"]
	if !ok {
		return ""
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return ""
	}
	var links []link
	if err := json.Unmarshal(data, &links); err != nil {
		return ""
	}
	for _, l := range links {
		if l.Rel == "next" {
			return l.Href
		}
	}
	return ""
}
