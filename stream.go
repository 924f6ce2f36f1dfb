package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/tenwhale/aippt-gateway/internal"
)

// StreamingResponse is the answer of the completion service, with its body
// left unread.
//
// It implements io.ReadCloser over the body. The caller is responsible for
// consuming and closing it.
type StreamingResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

func (r *StreamingResponse) Read(p []byte) (int, error) {
	return r.Body.Read(p)
}

func (r *StreamingResponse) Close() error {
	return r.Body.Close()
}

// RequestOutline asks the outline application to generate an outline for
// content.
//
// The language and model arguments are accepted for API compatibility and
// are not sent to the service. A non-2xx answer is returned as a
// *StatusError holding at most the first 4 KiB of the response body, the
// response itself being closed.
func (gw *Gateway) RequestOutline(ctx context.Context, content, language, model string) (*StreamingResponse, error) {
	return gw.Complete(ctx, OutlineInputs{Query: content})
}

// RequestSlides asks the slides application to generate slide contents out
// of an outline.
//
// Arguments and error behavior are the same as RequestOutline.
func (gw *Gateway) RequestSlides(ctx context.Context, content, language, model string) (*StreamingResponse, error) {
	return gw.Complete(ctx, SlidesInputs{Content: content})
}

// Complete sends a streaming completion request carrying inputs, authorized
// by the credential matching the kind of inputs.
func (gw *Gateway) Complete(ctx context.Context, inputs Inputs) (*StreamingResponse, error) {
	url, err := internal.ResolveUrl(gw.endpoints.Origin, gw.endpoints.BaseUrl, completionPath)
	if err != nil {
		return nil, err
	}

	d := completionDescriptor(url, inputs.credential(gw), newCompletionRequest(inputs, gw.user))

	resp, err := gw.do(ctx, d)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp) {
		return nil, newStatusError(url, resp)
	}

	return &StreamingResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}
