package manifold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/schema"
)

// NormalizeFeedMinimalAttrs builds feed attributes from a submitted definition, every attribute
// the definition leaves unset is taken from the topic
func NormalizeFeedMinimalAttrs(topic domain.FeedTopic, minimal domain.FeedMinimal) domain.Feed {
	res := domain.Feed{
		Service:                   minimal.Service,
		Topic:                     topic.ID,
		Title:                     valueOr(minimal.Title, topic.Title),
		Summary:                   valueOr(minimal.Summary, topic.Summary),
		ConstantParams:            minimal.ConstantParams,
		VariableParamsSchema:      minimal.VariableParamsSchema,
		ItemsHaveIdentity:         valueOr(minimal.ItemsHaveIdentity, topic.ItemsHaveIdentity),
		ItemsHaveSpatialDimension: valueOr(minimal.ItemsHaveSpatialDimension, topic.ItemsHaveSpatialDimension),
		ItemTemporalProperty:      valueOr(minimal.ItemTemporalProperty, topic.ItemTemporalProperty),
		ItemPrimaryProperty:       valueOr(minimal.ItemPrimaryProperty, topic.ItemPrimaryProperty),
		ItemSecondaryProperty:     valueOr(minimal.ItemSecondaryProperty, topic.ItemSecondaryProperty),
		UpdateFrequencySeconds:    valueOr(minimal.UpdateFrequencySeconds, topic.UpdateFrequencySeconds),
		MapStyle:                  minimal.MapStyle,
	}
	if res.MapStyle == nil {
		res.MapStyle = topic.MapStyle
	}
	return res
}

// applyFeedUpdate merges the supplied attributes of an update over a stored feed.
// Service and topic are never changed here.
func applyFeedUpdate(feed domain.Feed, upd domain.FeedUpdate) domain.Feed {
	feed.Title = valueOr(upd.Title, feed.Title)
	feed.Summary = valueOr(upd.Summary, feed.Summary)
	feed.ItemsHaveIdentity = valueOr(upd.ItemsHaveIdentity, feed.ItemsHaveIdentity)
	feed.ItemsHaveSpatialDimension = valueOr(upd.ItemsHaveSpatialDimension, feed.ItemsHaveSpatialDimension)
	feed.ItemTemporalProperty = valueOr(upd.ItemTemporalProperty, feed.ItemTemporalProperty)
	feed.ItemPrimaryProperty = valueOr(upd.ItemPrimaryProperty, feed.ItemPrimaryProperty)
	feed.ItemSecondaryProperty = valueOr(upd.ItemSecondaryProperty, feed.ItemSecondaryProperty)
	feed.UpdateFrequencySeconds = valueOr(upd.UpdateFrequencySeconds, feed.UpdateFrequencySeconds)
	if upd.ConstantParams != nil {
		feed.ConstantParams = upd.ConstantParams
	}
	if upd.VariableParamsSchema != nil {
		feed.VariableParamsSchema = upd.VariableParamsSchema
	}
	if upd.MapStyle != nil {
		feed.MapStyle = upd.MapStyle
	}
	return feed
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// MergeParams overlays constant params on variable params, constant values win on key collision.
// Neither argument is modified.
func MergeParams(constant, variable domain.JSONObject) domain.JSONObject {
	res := make(domain.JSONObject, len(constant)+len(variable))
	for k, v := range variable {
		res[k] = v
	}
	for k, v := range constant {
		res[k] = v
	}
	return res
}

// validateMergedParams validates merged params against the topic params schema. Nothing is compiled
// when the topic has no params schema. Failures are reported against the side that supplied the
// failing key: ["feed", "constantParams"] and/or ["variableParams"].
func (a *App) validateMergedParams(topic *domain.FeedTopic, constant, variable domain.JSONObject) error {
	if topic.ParamsSchema == nil {
		return nil
	}
	v, err := a.Schemas.ValidateSchema(topic.ParamsSchema)
	if err != nil {
		return fmt.Errorf("compile params schema of topic %s: %w", topic.ID, err)
	}
	verr := v.Validate(MergeParams(constant, variable))
	if verr == nil {
		return nil
	}
	return domain.InvalidInput("invalid parameters", paramsKeys(verr, constant, variable)...)
}

// validateVariableParams checks caller params against a feed variable params schema, nil schema passes
func (a *App) validateVariableParams(variableSchema, variable domain.JSONObject) error {
	if variableSchema == nil {
		return nil
	}
	v, err := a.Schemas.ValidateSchema(variableSchema)
	if err != nil {
		return domain.InvalidInput("invalid variable parameters schema", domain.Key(err, "feed", "variableParamsSchema"))
	}
	if err := v.Validate(nonNil(variable)); err != nil {
		return domain.InvalidInput("invalid parameters", domain.Key(err, "variableParams"))
	}
	return nil
}

// paramsKeys attributes failing locations of merged params to constant or variable params
func paramsKeys(verr error, constant, variable domain.JSONObject) []domain.InvalidKey {
	constantKey := domain.Key(verr, "feed", "constantParams")
	variableKey := domain.Key(verr, "variableParams")
	fallback := constantKey
	if len(constant) == 0 && len(variable) > 0 {
		fallback = variableKey
	}

	var locations [][]string
	var serr *schema.ValidationError
	if errors.As(verr, &serr) {
		locations = serr.Locations
	}

	var res []domain.InvalidKey
	seen := map[string]bool{}
	add := func(k domain.InvalidKey) {
		id := strings.Join(k.KeyPath, ".")
		if !seen[id] {
			seen[id] = true
			res = append(res, k)
		}
	}
	for _, loc := range locations {
		if len(loc) == 0 {
			add(fallback)
			continue
		}
		_, inConstant := constant[loc[0]]
		_, inVariable := variable[loc[0]]
		switch {
		case inConstant:
			add(constantKey)
		case inVariable:
			add(variableKey)
		default:
			add(fallback)
		}
	}
	if len(res) == 0 {
		add(fallback)
	}
	return res
}

func nonNil(obj domain.JSONObject) domain.JSONObject {
	if obj == nil {
		return domain.JSONObject{}
	}
	return obj
}
