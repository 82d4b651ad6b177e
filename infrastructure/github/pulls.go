package github

import (
	"fmt"
	"net/http"
	"strconv"
)

// PullRequestSummary is the per-item shape of the pull request list.
type PullRequestSummary struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// PullRequestDetail is the projection returned by a single-PR fetch. It is
// deliberately narrower than the summary: only the head ref is consumed.
type PullRequestDetail struct {
	Head struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"head"`
}

// ListPullRequestsParams identifies a repository whose PRs to list.
type ListPullRequestsParams struct {
	Token string
	Repo  string
}

// ListPullRequests lists the open pull requests of a repository.
func (c *Client) ListPullRequests(params ListPullRequestsParams) *Call[[]PullRequestSummary] {
	return &Call[[]PullRequestSummary]{
		client: c,
		method: http.MethodGet,
		path:   fmt.Sprintf("/repos/%s/pulls", escapePath(params.Repo)),
		token:  params.Token,
		decode: decodeJSON[[]PullRequestSummary]("pull request list"),
	}
}

// GetPullRequestParams identifies a single pull request.
type GetPullRequestParams struct {
	Token  string
	Repo   string
	Number int
}

// GetPullRequest reads the head ref of a pull request.
func (c *Client) GetPullRequest(params GetPullRequestParams) *Call[PullRequestDetail] {
	return &Call[PullRequestDetail]{
		client: c,
		method: http.MethodGet,
		path: fmt.Sprintf(
			"/repos/%s/pulls/%s",
			escapePath(params.Repo), strconv.Itoa(params.Number),
		),
		token:  params.Token,
		decode: decodeJSON[PullRequestDetail]("pull request"),
	}
}

// CreatePullRequestParams describes a pull request to open.
type CreatePullRequestParams struct {
	Token       string
	Repo        string
	Title       string
	Head        string // source branch
	Base        string // target branch
	Description string
}

type createPullRequest struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body"`
}

// CreatePullRequest opens a pull request. The response body is discarded.
func (c *Client) CreatePullRequest(params CreatePullRequestParams) *Call[Unit] {
	return &Call[Unit]{
		client: c,
		method: http.MethodPost,
		path:   fmt.Sprintf("/repos/%s/pulls", escapePath(params.Repo)),
		token:  params.Token,
		body: createPullRequest{
			Title: params.Title,
			Head:  params.Head,
			Base:  params.Base,
			Body:  params.Description,
		},
		decode: discardBody,
	}
}
