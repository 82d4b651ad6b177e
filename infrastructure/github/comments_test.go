package github_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoctl/repoctl/infrastructure/github"
	testdoubles "github.com/repoctl/repoctl/test"
)

func TestListComments(t *testing.T) {
	t.Parallel()

	t.Run("should decode comments with parsed timestamps", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Responses: map[string]testdoubles.CannedResponse{
				"GET /repos/o/r/issues/42/comments": {
					Status: 200,
					Body: `[{
						"body":"Looks good",
						"user":{"login":"octocat","avatar_url":"https://example.com/a.png"},
						"created_at":"2024-03-01T10:30:00Z",
						"updated_at":"2024-03-01T11:00:00Z"
					}]`,
				},
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		comments, err := client.ListComments(github.ListCommentsParams{
			Token:  "t",
			Repo:   "o/r",
			Number: 42,
		}).Do(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Looks good", comments[0].Body)
		assert.Equal(t, "octocat", comments[0].User.Login)
		assert.Equal(t, "https://example.com/a.png", comments[0].User.AvatarURL)
		assert.Equal(
			t,
			time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			comments[0].CreatedAt,
		)
		assert.Equal(
			t,
			time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
			comments[0].UpdatedAt,
		)
	})

	t.Run("should fail to decode a malformed timestamp", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Fallback: &testdoubles.CannedResponse{
				Status: 200,
				Body: `[{
					"body":"b",
					"user":{"login":"u","avatar_url":"a"},
					"created_at":"yesterday morning",
					"updated_at":"2024-03-01T11:00:00Z"
				}]`,
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		_, err := client.ListComments(github.ListCommentsParams{
			Token:  "t",
			Repo:   "o/r",
			Number: 42,
		}).Do(context.Background())

		// then
		require.Error(t, err)
		var decodeErr *github.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "comment list", decodeErr.Resource)
	})

	t.Run("should use the issue number as a decimal path segment", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Fallback: &testdoubles.CannedResponse{Status: 200, Body: `[]`},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		_, err := client.ListComments(github.ListCommentsParams{
			Token:  "t",
			Repo:   "o/r",
			Number: 10001,
		}).Do(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "/repos/o/r/issues/10001/comments", spy.Requests[0].Path)
	})
}

func TestCreateComment(t *testing.T) {
	t.Parallel()

	t.Run("should post only the body and decode the stored comment", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Responses: map[string]testdoubles.CannedResponse{
				"POST /repos/o/r/issues/42/comments": {
					Status: 201,
					Body: `{
						"body":"Deployed to staging",
						"user":{"login":"repoctl-bot","avatar_url":"https://example.com/b.png"},
						"created_at":"2024-03-02T09:00:00Z",
						"updated_at":"2024-03-02T09:00:00Z"
					}`,
				},
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		comment, err := client.CreateComment(github.CreateCommentParams{
			Token:  "t",
			Repo:   "o/r",
			Number: 42,
			Body:   "Deployed to staging",
		}).Do(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "Deployed to staging", comment.Body)
		assert.Equal(t, "repoctl-bot", comment.User.Login)
		require.Len(t, spy.Requests, 1)
		assert.JSONEq(t, `{"body":"Deployed to staging"}`, string(spy.Requests[0].Body))
	})

	t.Run("should fail to decode a malformed updated_at", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyTransport{
			Fallback: &testdoubles.CannedResponse{
				Status: 201,
				Body: `{
					"body":"b",
					"user":{"login":"u","avatar_url":"a"},
					"created_at":"2024-03-02T09:00:00Z",
					"updated_at":"03/02/2024"
				}`,
			},
		}
		client := github.NewClient(github.WithHTTPClient(spy.Client()))

		// when
		_, err := client.CreateComment(github.CreateCommentParams{
			Token:  "t",
			Repo:   "o/r",
			Number: 42,
			Body:   "b",
		}).Do(context.Background())

		// then
		require.Error(t, err)
		var decodeErr *github.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "comment", decodeErr.Resource)
	})
}
