package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoctl/repoctl/infrastructure/github"
	testdoubles "github.com/repoctl/repoctl/test"
)

func TestGetFileContents(t *testing.T) {
	t.Parallel()

	t.Run("should pass content and encoding through verbatim", func(t *testing.T) {
		t.Parallel()

		// given: base64 content must NOT be decoded by the client
		encoded := base64.StdEncoding.EncodeToString([]byte("hello world\n"))
		spy := &testdoubles.SpyTransport{
			Responses: map[string]testdoubles.CannedResponse{
				"GET /repos/o/r/contents/docs/README.md?ref=main": {
					Status: 200,
					Body:   `{"encoding":"base64","content":"` + encoded + `","sha":"B1"}`,
				},
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		file, err := client.GetFileContents(github.GetFileContentsParams{
			Token: "t",
			Repo:  "o/r",
			Path:  "docs/README.md",
			Ref:   "main",
		}).Do(context.Background())

		// then
		assert.NoError(t, err)
		assert.Equal(t, "base64", file.Encoding)
		assert.Equal(t, encoded, file.Content)
		assert.Equal(t, "B1", file.SHA)
	})

	t.Run("should omit the ref query when no ref is given", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Fallback: &testdoubles.CannedResponse{
				Status: 200,
				Body:   `{"encoding":"none","content":"raw","sha":"B1"}`,
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		_, err := client.GetFileContents(github.GetFileContentsParams{
			Token: "t",
			Repo:  "o/r",
			Path:  "README.md",
		}).Do(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, spy.Requests, 1)
		assert.Equal(t, "/repos/o/r/contents/README.md", spy.Requests[0].Path)
	})

	t.Run("should query-escape the ref", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Fallback: &testdoubles.CannedResponse{
				Status: 200,
				Body:   `{"encoding":"none","content":"raw","sha":"B1"}`,
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		_, err := client.GetFileContents(github.GetFileContentsParams{
			Token: "t",
			Repo:  "o/r",
			Path:  "README.md",
			Ref:   "release branch",
		}).Do(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(
			t,
			"/repos/o/r/contents/README.md?ref=release+branch",
			spy.Requests[0].Path,
		)
	})
}

func TestUpdateFileContents(t *testing.T) {
	t.Parallel()

	t.Run("should base64-encode the raw content exactly", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "new content with ünïcode\nand two lines\n"
		spy := &testdoubles.SpyTransport{
			Responses: map[string]testdoubles.CannedResponse{
				"PUT /repos/o/r/contents/docs/README.md": {
					Status: 200,
					Body:   `{"content":{"sha":"B2"}}`,
				},
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		updated, err := client.UpdateFileContents(github.UpdateFileContentsParams{
			Token:   "t",
			Repo:    "o/r",
			Path:    "docs/README.md",
			Message: "Update readme",
			Content: raw,
			SHA:     "B1",
			Branch:  "feature-x",
		}).Do(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "B2", updated.Content.SHA)
		require.Len(t, spy.Requests, 1)
		assert.Equal(t, http.MethodPut, spy.Requests[0].Method)

		var sent struct {
			Message string `json:"message"`
			Content string `json:"content"`
			SHA     string `json:"sha"`
			Branch  string `json:"branch"`
		}
		require.NoError(t, json.Unmarshal(spy.Requests[0].Body, &sent))
		assert.Equal(t, "Update readme", sent.Message)
		assert.Equal(t, "B1", sent.SHA)
		assert.Equal(t, "feature-x", sent.Branch)

		// round trip through the codec as oracle
		decoded, decodeErr := base64.StdEncoding.DecodeString(sent.Content)
		require.NoError(t, decodeErr)
		assert.Equal(t, raw, string(decoded))
	})

	t.Run("should fail on a conflicting blob sha", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Fallback: &testdoubles.CannedResponse{
				Status: 409,
				Body:   `{"message":"sha does not match"}`,
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		_, err := client.UpdateFileContents(github.UpdateFileContentsParams{
			Token: "t", Repo: "o/r", Path: "README.md",
			Message: "m", Content: "c", SHA: "stale", Branch: "main",
		}).Do(context.Background())

		// then
		require.Error(t, err)
		var statusErr *github.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 409, statusErr.StatusCode)
	})
}
