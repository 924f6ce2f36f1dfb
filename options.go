package gateway

import "net/http"

type option func(*Gateway)

// WithEndpoints sets the endpoint configuration explicitly instead of using
// the one resolved from the environment.
func WithEndpoints(endpoints Endpoints) option {
	return func(gw *Gateway) {
		gw.endpoints = &endpoints
	}
}

// WithMode uses the default endpoint configuration for the given build mode.
func WithMode(mode Mode) option {
	return WithEndpoints(EndpointsFor(mode))
}

// WithOutlineCredential sets the credential used by RequestOutline.
func WithOutlineCredential(credential Credential) option {
	return func(gw *Gateway) {
		gw.outline = credential
	}
}

// WithSlidesCredential sets the credential used by RequestSlides.
func WithSlidesCredential(credential Credential) option {
	return func(gw *Gateway) {
		gw.slides = credential
	}
}

func WithHttpClient(client *http.Client) option {
	return func(gw *Gateway) {
		gw.httpClient = client
	}
}

// WithUser overrides the end-user identifier sent with completion requests.
func WithUser(user string) option {
	return func(gw *Gateway) {
		gw.user = user
	}
}
