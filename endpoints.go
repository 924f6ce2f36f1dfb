package gateway

import (
	"os"
	"sync"

	"github.com/samber/lo"
)

type Mode int

const (
	ModeProduction Mode = iota
	ModeDevelopment
)

const (
	DevelopmentBaseUrl = "/api"
	ProductionBaseUrl  = "https://aiapp.tenwhale.com"
	DefaultAssetUrl    = "https://asset.tenwhale.com"
	DefaultMockUrl     = "./mocks"
	DefaultOrigin      = "http://localhost:5173"

	envMode   = "AIPPT_MODE"
	envOrigin = "AIPPT_ORIGIN"
)

// ParseMode interprets a raw build-mode flag. Only the exact value
// "development" selects development mode.
func ParseMode(raw string) Mode {
	return lo.Ternary(raw == "development", ModeDevelopment, ModeProduction)
}

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	default:
		return "production"
	}
}

// Endpoints is the set of base URLs outbound requests are built from.
//
// BaseUrl and MockUrl may be relative (as they are in development mode), in
// which case they are resolved against Origin when a request is built.
type Endpoints struct {
	BaseUrl  string
	AssetUrl string
	MockUrl  string
	Origin   string
}

// EndpointsFor returns the endpoint configuration for a build mode.
func EndpointsFor(mode Mode) Endpoints {
	return Endpoints{
		BaseUrl:  lo.Ternary(mode == ModeDevelopment, DevelopmentBaseUrl, ProductionBaseUrl),
		AssetUrl: DefaultAssetUrl,
		MockUrl:  DefaultMockUrl,
		Origin:   DefaultOrigin,
	}
}

// EndpointsFromEnv reads the build mode from AIPPT_MODE, and an optional
// origin override from AIPPT_ORIGIN.
func EndpointsFromEnv() Endpoints {
	endpoints := EndpointsFor(ParseMode(os.Getenv(envMode)))
	endpoints.Origin = lo.CoalesceOrEmpty(os.Getenv(envOrigin), endpoints.Origin)

	return endpoints
}

// ProcessEndpoints returns the process-wide endpoint configuration. The
// environment is read on the first call only, later calls return the same
// value.
var ProcessEndpoints = sync.OnceValue(EndpointsFromEnv)
