package domain

import "context"

// Principal is the authenticated subject of a request
type Principal struct {
	ID    string
	Roles []string
}

// RequestContext is the authenticated-request envelope every use case receives.
// The token is opaque to the core, the principal is resolved lazily.
type RequestContext interface {
	RequestToken() string
	Principal(ctx context.Context) (Principal, error)
}

// StaticRequestContext is a RequestContext with an already known principal
type StaticRequestContext struct {
	Token string
	Who   Principal
}

// RequestToken returns the request token
func (s StaticRequestContext) RequestToken() string { return s.Token }

// Principal returns the fixed principal
func (s StaticRequestContext) Principal(context.Context) (Principal, error) { return s.Who, nil }
