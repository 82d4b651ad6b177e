package github

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Comment is an issue comment; the same shape comes back from both the
// list and create endpoints. Timestamps are parsed from the wire format;
// a malformed value is a decode error, never a zero default.
type Comment struct {
	Body string `json:"body"`
	User struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListCommentsParams identifies an issue whose comments to list.
type ListCommentsParams struct {
	Token  string
	Repo   string
	Number int
}

// ListComments lists the comments of an issue or pull request.
func (c *Client) ListComments(params ListCommentsParams) *Call[[]Comment] {
	return &Call[[]Comment]{
		client: c,
		method: http.MethodGet,
		path: fmt.Sprintf(
			"/repos/%s/issues/%s/comments",
			escapePath(params.Repo), strconv.Itoa(params.Number),
		),
		token:  params.Token,
		decode: decodeJSON[[]Comment]("comment list"),
	}
}

// CreateCommentParams describes a comment to post on an issue.
type CreateCommentParams struct {
	Token  string
	Repo   string
	Number int
	Body   string
}

type createCommentRequest struct {
	Body string `json:"body"`
}

// CreateComment posts a comment and returns it as stored.
func (c *Client) CreateComment(params CreateCommentParams) *Call[Comment] {
	return &Call[Comment]{
		client: c,
		method: http.MethodPost,
		path: fmt.Sprintf(
			"/repos/%s/issues/%s/comments",
			escapePath(params.Repo), strconv.Itoa(params.Number),
		),
		token:  params.Token,
		body:   createCommentRequest{Body: params.Body},
		decode: decodeJSON[Comment]("comment"),
	}
}
