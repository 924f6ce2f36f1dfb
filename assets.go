package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/tenwhale/aippt-gateway/internal"
	"github.com/tidwall/gjson"
)

// Resource is a JSON document fetched from the mock or asset hosts.
//
// The body is kept as received. It is only parsed when Decode or Get are
// called, so a malformed document is not an error until then.
type Resource struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the resource into v.
func (r *Resource) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "could not decode resource")
	}

	return nil
}

// Get looks up a value in the resource using a gjson path.
func (r *Resource) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// FetchMockResource retrieves `{name}.json` from the mock directory served
// next to the application.
func (gw *Gateway) FetchMockResource(ctx context.Context, name string) (*Resource, error) {
	url, err := internal.ResolveUrl(gw.endpoints.Origin, gw.endpoints.MockUrl, name+".json")
	if err != nil {
		return nil, err
	}

	return gw.fetch(ctx, url)
}

// FetchAsset retrieves `data/{name}.json` from the asset host.
func (gw *Gateway) FetchAsset(ctx context.Context, name string) (*Resource, error) {
	url, err := internal.ResolveUrl(gw.endpoints.Origin, gw.endpoints.AssetUrl, "data", name+".json")
	if err != nil {
		return nil, err
	}

	return gw.fetch(ctx, url)
}

func (gw *Gateway) fetch(ctx context.Context, url string) (*Resource, error) {
	resp, err := gw.do(ctx, getDescriptor(url))
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp) {
		return nil, newStatusError(url, resp)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Resource{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
