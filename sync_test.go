package gateway

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/h2non/gock"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestAllCompletions(t *testing.T) {
	defer gock.Off()

	const n = 10

	for i := range n {
		gock.New("https://aiapp.tenwhale.com").
			Post("/v1/completion-messages").
			MatchHeader("authorization", "^Bearer outline-token$").
			AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
				body, _ := io.ReadAll(req.Body)
				req.Body = io.NopCloser(bytes.NewReader(body))

				return gjson.GetBytes(body, "inputs.query").String() == fmt.Sprintf("outline %d", i), nil
			}).
			Reply(http.StatusOK).
			BodyString(fmt.Sprintf("outline stream %d", i))

		gock.New("https://aiapp.tenwhale.com").
			Post("/v1/completion-messages").
			MatchHeader("authorization", "^Bearer slides-token$").
			AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
				body, _ := io.ReadAll(req.Body)
				req.Body = io.NopCloser(bytes.NewReader(body))

				return gjson.GetBytes(body, "inputs.content").String() == fmt.Sprintf("slides %d", i), nil
			}).
			Reply(http.StatusOK).
			BodyString(fmt.Sprintf("slides stream %d", i))
	}

	calls := make([]Call[*StreamingResponse], 0, 2*n)

	for i := range n {
		calls = append(calls, Outline(fmt.Sprintf("outline %d", i), "", ""), Slides(fmt.Sprintf("slides %d", i), "", ""))
	}

	responses := All(t.Context(), testGateway(), calls...)

	assert.Len(t, responses, 2*n)
	assert.False(t, gock.HasUnmatchedRequest())
	assert.True(t, gock.IsDone())

	bodies := lo.Map(responses, func(resp AsyncResponse[*StreamingResponse], _ int) string {
		if !assert.Nil(t, resp.Error) {
			return ""
		}

		defer resp.Response.Close()

		body, _ := io.ReadAll(resp.Response)

		return string(body)
	})

	for i := range n {
		assert.Equal(t, fmt.Sprintf("outline stream %d", i), bodies[2*i])
		assert.Equal(t, fmt.Sprintf("slides stream %d", i), bodies[2*i+1])
	}
}

func TestAllIndependentFailures(t *testing.T) {
	defer gock.Off()

	e := errors.New("network unreachable")

	gock.New("https://asset.tenwhale.com").
		Get("/data/first.json").
		Reply(http.StatusOK).
		BodyString(`{"id":1}`)

	gock.New("https://asset.tenwhale.com").
		Get("/data/second.json").
		ReplyError(e)

	gock.New("https://asset.tenwhale.com").
		Get("/data/third.json").
		Reply(http.StatusOK).
		BodyString(`{"id":3}`)

	responses := All(t.Context(), testGateway(),
		Asset("first"),
		Asset("second"),
		Asset("third"))

	assert.Len(t, responses, 3)
	assert.EqualValues(t, 1, responses[0].Response.Get("id").Int())
	assert.Nil(t, responses[1].Response)
	assert.ErrorIs(t, responses[1].Error, e)
	assert.EqualValues(t, 3, responses[2].Response.Get("id").Int())
}

func TestAllMockResources(t *testing.T) {
	defer gock.Off()

	gock.New("http://localhost:5173").
		Get("/mocks/outline.json").
		Reply(http.StatusOK).
		BodyString(`"# Title"`)

	responses := All(t.Context(), New(WithMode(ModeDevelopment)), MockResource("outline"))

	assert.Len(t, responses, 1)
	assert.Nil(t, responses[0].Error)
	assert.Equal(t, "# Title", responses[0].Response.Get("@this").String())
}
