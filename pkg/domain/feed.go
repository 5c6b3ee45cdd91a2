package domain

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

// JSONObject is a dynamic JSON object; params and schemas are runtime data validated against JSON schemas
type JSONObject = map[string]any

// FeedServiceTypeIdentity is the persisted identity of a plugin service type
type FeedServiceTypeIdentity struct {
	ID                  string
	ModuleName          string
	PluginServiceTypeID string
	CreatedAt           time.Time
}

// QualifiedName returns moduleName/pluginServiceTypeID, the key identities are resolved by
func (i FeedServiceTypeIdentity) QualifiedName() string {
	return QualifiedServiceTypeName(i.ModuleName, i.PluginServiceTypeID)
}

// QualifiedServiceTypeName builds the registry key of a plugin service type
func QualifiedServiceTypeName(moduleName, pluginServiceTypeID string) string {
	return moduleName + "/" + pluginServiceTypeID
}

// FeedServiceTypeDescriptor is the client-facing view of a registered service type
type FeedServiceTypeDescriptor struct {
	ID                  string     `json:"id"`
	PluginServiceTypeID string     `json:"pluginServiceTypeId"`
	ModuleName          string     `json:"moduleName"`
	Title               string     `json:"title"`
	Summary             string     `json:"summary,omitempty"`
	ConfigSchema        JSONObject `json:"configSchema,omitempty"`
}

// FeedService is a configured instance of a service type
type FeedService struct {
	ID          string    `json:"id"`
	ServiceType string    `json:"serviceType"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	Config      any       `json:"config"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FeedServiceInfo is optional descriptive metadata a connection reports about its service
type FeedServiceInfo struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

// FeedTopic is a queryable data category reported by a connection, ids are unique within a service
type FeedTopic struct {
	ID                        string     `json:"id"`
	Title                     string     `json:"title"`
	Summary                   string     `json:"summary,omitempty"`
	ParamsSchema              JSONObject `json:"paramsSchema,omitempty"`
	ItemsHaveIdentity         bool       `json:"itemsHaveIdentity"`
	ItemsHaveSpatialDimension bool       `json:"itemsHaveSpatialDimension"`
	ItemTemporalProperty      string     `json:"itemTemporalProperty,omitempty"`
	ItemPrimaryProperty       string     `json:"itemPrimaryProperty,omitempty"`
	ItemSecondaryProperty     string     `json:"itemSecondaryProperty,omitempty"`
	UpdateFrequencySeconds    int        `json:"updateFrequencySeconds,omitempty"`
	MapStyle                  JSONObject `json:"mapStyle,omitempty"`
}

// Feed is a saved query against one service topic
type Feed struct {
	ID                        string     `json:"id"`
	Service                   string     `json:"service"`
	Topic                     string     `json:"topic"`
	Title                     string     `json:"title"`
	Summary                   string     `json:"summary,omitempty"`
	ConstantParams            JSONObject `json:"constantParams,omitempty"`
	VariableParamsSchema      JSONObject `json:"variableParamsSchema,omitempty"`
	ItemsHaveIdentity         bool       `json:"itemsHaveIdentity"`
	ItemsHaveSpatialDimension bool       `json:"itemsHaveSpatialDimension"`
	ItemTemporalProperty      string     `json:"itemTemporalProperty,omitempty"`
	ItemPrimaryProperty       string     `json:"itemPrimaryProperty,omitempty"`
	ItemSecondaryProperty     string     `json:"itemSecondaryProperty,omitempty"`
	UpdateFrequencySeconds    int        `json:"updateFrequencySeconds,omitempty"`
	MapStyle                  JSONObject `json:"mapStyle,omitempty"`
	CreatedAt                 time.Time  `json:"createdAt"`
	UpdatedAt                 time.Time  `json:"updatedAt"`
}

// FeedMinimal is a feed definition as submitted by a caller, unset attributes default from the topic.
// Service and Topic are required.
type FeedMinimal struct {
	Service                   string     `json:"service" validate:"required"`
	Topic                     string     `json:"topic" validate:"required"`
	Title                     *string    `json:"title,omitempty"`
	Summary                   *string    `json:"summary,omitempty"`
	ConstantParams            JSONObject `json:"constantParams,omitempty"`
	VariableParamsSchema      JSONObject `json:"variableParamsSchema,omitempty"`
	ItemsHaveIdentity         *bool      `json:"itemsHaveIdentity,omitempty"`
	ItemsHaveSpatialDimension *bool      `json:"itemsHaveSpatialDimension,omitempty"`
	ItemTemporalProperty      *string    `json:"itemTemporalProperty,omitempty"`
	ItemPrimaryProperty       *string    `json:"itemPrimaryProperty,omitempty"`
	ItemSecondaryProperty     *string    `json:"itemSecondaryProperty,omitempty"`
	UpdateFrequencySeconds    *int       `json:"updateFrequencySeconds,omitempty"`
	MapStyle                  JSONObject `json:"mapStyle,omitempty"`
}

// FeedUpdate carries a partial update of a saved feed. Service and Topic may only repeat the stored values.
type FeedUpdate struct {
	ID                        string     `json:"id" validate:"required"`
	Service                   *string    `json:"service,omitempty"`
	Topic                     *string    `json:"topic,omitempty"`
	Title                     *string    `json:"title,omitempty"`
	Summary                   *string    `json:"summary,omitempty"`
	ConstantParams            JSONObject `json:"constantParams,omitempty"`
	VariableParamsSchema      JSONObject `json:"variableParamsSchema,omitempty"`
	ItemsHaveIdentity         *bool      `json:"itemsHaveIdentity,omitempty"`
	ItemsHaveSpatialDimension *bool      `json:"itemsHaveSpatialDimension,omitempty"`
	ItemTemporalProperty      *string    `json:"itemTemporalProperty,omitempty"`
	ItemPrimaryProperty       *string    `json:"itemPrimaryProperty,omitempty"`
	ItemSecondaryProperty     *string    `json:"itemSecondaryProperty,omitempty"`
	UpdateFrequencySeconds    *int       `json:"updateFrequencySeconds,omitempty"`
	MapStyle                  JSONObject `json:"mapStyle,omitempty"`
}

// FeedExpanded is a feed with its service and topic references resolved inline
type FeedExpanded struct {
	Feed
	Service FeedService `json:"service"`
	Topic   FeedTopic   `json:"topic"`
}

// TopicContent is the normalized content a connection returns for one topic
type TopicContent struct {
	Topic      string                     `json:"topic"`
	Items      *geojson.FeatureCollection `json:"items"`
	PageCursor JSONObject                 `json:"pageCursor,omitempty"`
}

// FeedContent is the content of a saved feed for one set of variable params, never persisted
type FeedContent struct {
	Feed           string                     `json:"feed"`
	Topic          string                     `json:"topic"`
	VariableParams JSONObject                 `json:"variableParams,omitempty"`
	Items          *geojson.FeatureCollection `json:"items"`
	PageCursor     JSONObject                 `json:"pageCursor,omitempty"`
}
