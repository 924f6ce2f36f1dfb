package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointsAreImmutable(t *testing.T) {
	endpoints := EndpointsFor(ModeDevelopment)

	gw := New(WithEndpoints(endpoints))

	endpoints.BaseUrl = "https://elsewhere.example.com"

	assert.Equal(t, "/api", gw.Endpoints().BaseUrl)

	returned := gw.Endpoints()
	returned.AssetUrl = "https://elsewhere.example.com"

	assert.Equal(t, DefaultAssetUrl, gw.Endpoints().AssetUrl)
}

func TestLastEndpointOptionWins(t *testing.T) {
	gw := New(WithMode(ModeDevelopment), WithMode(ModeProduction))

	assert.Equal(t, ProductionBaseUrl, gw.Endpoints().BaseUrl)
}
