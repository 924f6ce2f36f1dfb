package gateway

import (
	"net/http"

	"github.com/samber/lo"
)

const (
	defaultUser = "aippt-web-agent"
)

// Gateway is the entrypoint for talking to the completion service and the
// static asset host.
//
// Its state is fixed at construction and never modified afterwards, so a
// single Gateway can be shared by any number of goroutines.
type Gateway struct {
	endpoints *Endpoints

	outline Credential
	slides  Credential

	httpClient *http.Client
	user       string
}

// New creates a Gateway with the given options.
//
// Anything not configured falls back to the process-wide endpoint
// configuration, tokens read from OUTLINE_ACCESS_TOKEN and PPT_ACCESS_TOKEN,
// and a plain *http.Client without a timeout (streams are open-ended).
//
// Example usage:
//
//	gw := gateway.New(
//		gateway.WithMode(gateway.ModeDevelopment),
//		gateway.WithOutlineCredential(gateway.StaticToken("app-xxx")),
//	)
func New(opts ...option) *Gateway {
	gw := Gateway{}

	for _, opt := range opts {
		opt(&gw)
	}

	if gw.endpoints == nil {
		gw.endpoints = lo.ToPtr(ProcessEndpoints())
	}

	gw.outline = lo.CoalesceOrEmpty[Credential](gw.outline, EnvToken(DefaultOutlineTokenEnv))
	gw.slides = lo.CoalesceOrEmpty[Credential](gw.slides, EnvToken(DefaultSlidesTokenEnv))
	gw.httpClient = lo.CoalesceOrEmpty(gw.httpClient, &http.Client{})
	gw.user = lo.CoalesceOrEmpty(gw.user, defaultUser)

	return &gw
}

func (gw *Gateway) Endpoints() Endpoints {
	return *gw.endpoints
}

func (gw *Gateway) HttpClient() *http.Client {
	return gw.httpClient
}

func (gw *Gateway) User() string {
	return gw.user
}
