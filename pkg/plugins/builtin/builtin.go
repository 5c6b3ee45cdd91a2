// Package builtin bundles the service types shipped with manifold into one plugin module
package builtin

import (
	"context"

	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/metrics"
	"github.com/umputun/manifold/pkg/plugins"
	"github.com/umputun/manifold/pkg/plugins/georss"
	"github.com/umputun/manifold/pkg/plugins/upstream"
	"github.com/umputun/manifold/pkg/plugins/wfs"
)

// Plugin provides the wfs and georss service types
type Plugin struct {
	Upstream upstream.Config
	Metrics  *metrics.Collector
	Options  []upstream.Option // applied after metrics, mostly for tests
}

// ModuleName returns the module of the built-in service types
func (p *Plugin) ModuleName() string { return plugins.ModuleName }

// LoadServiceTypes makes the service types, each with its own upstream client so metrics
// and breakers are labeled per service type
func (p *Plugin) LoadServiceTypes(context.Context) ([]feeds.ServiceType, error) {
	return []feeds.ServiceType{
		wfs.NewServiceType(p.client(wfs.PluginServiceTypeID)),
		georss.NewServiceType(p.client(georss.PluginServiceTypeID)),
	}, nil
}

func (p *Plugin) client(serviceType string) *upstream.Client {
	opts := append([]upstream.Option{upstream.WithMetrics(p.Metrics, serviceType)}, p.Options...)
	return upstream.New(p.Upstream, opts...)
}
