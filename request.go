package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/fatih/structs"
)

const (
	completionPath = "v1/completion-messages"

	responseModeStreaming = "streaming"
)

// Inputs represent the variables of a completion application, sent as the
// `inputs` object of a completion request.
type Inputs interface {
	// credential selects which of the gateway's credentials authorizes
	// requests carrying these inputs.
	credential(gw *Gateway) Credential
}

// OutlineInputs are the inputs of the outline generation application.
type OutlineInputs struct {
	Query string `structs:"query"`
}

func (OutlineInputs) credential(gw *Gateway) Credential {
	return gw.outline
}

// SlidesInputs are the inputs of the slides generation application.
type SlidesInputs struct {
	Content string `structs:"content"`
}

func (SlidesInputs) credential(gw *Gateway) Credential {
	return gw.slides
}

// CompletionRequest is the JSON body sent to the completion endpoint.
type CompletionRequest struct {
	Inputs       map[string]any `json:"inputs"`
	ResponseMode string         `json:"response_mode"`
	User         string         `json:"user"`
}

func newCompletionRequest(inputs Inputs, user string) CompletionRequest {
	return CompletionRequest{
		Inputs:       structs.Map(inputs),
		ResponseMode: responseModeStreaming,
		User:         user,
	}
}

// descriptor is everything needed to issue one outbound call. It is built
// right before dispatch and never reused.
type descriptor struct {
	method string
	url    string
	header http.Header
	body   any
}

func getDescriptor(url string) descriptor {
	return descriptor{
		method: http.MethodGet,
		url:    url,
		header: http.Header{},
	}
}

func completionDescriptor(url string, credential Credential, body CompletionRequest) descriptor {
	header := http.Header{}
	header.Set("content-type", "application/json")
	header.Set("authorization", "Bearer "+credential.Token())

	return descriptor{
		method: http.MethodPost,
		url:    url,
		header: header,
		body:   body,
	}
}

func (d descriptor) build(ctx context.Context) (*http.Request, error) {
	var body io.Reader

	if d.body != nil {
		buf, err := json.Marshal(d.body)
		if err != nil {
			return nil, errors.Wrap(err, "could not encode request body")
		}

		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, d.method, d.url, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}

	req.Header = d.header

	return req, nil
}

// do sends the request described by d. Errors from the HTTP client are
// returned as they are.
func (gw *Gateway) do(ctx context.Context, d descriptor) (*http.Response, error) {
	req, err := d.build(ctx)
	if err != nil {
		return nil, err
	}

	return gw.httpClient.Do(req)
}
