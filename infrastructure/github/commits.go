package github

import (
	"fmt"
	"net/http"
)

// Commit is a commit object with the sha of its tree.
type Commit struct {
	SHA  string `json:"sha"`
	Tree struct {
		SHA string `json:"sha"`
	} `json:"tree"`
}

// CreatedCommit holds the sha of a freshly created commit.
type CreatedCommit struct {
	SHA string `json:"sha"`
}

// GetCommitParams identifies a commit to read.
type GetCommitParams struct {
	Token string
	Repo  string
	SHA   string
}

// GetCommit reads a commit object.
func (c *Client) GetCommit(params GetCommitParams) *Call[Commit] {
	return &Call[Commit]{
		client: c,
		method: http.MethodGet,
		path: fmt.Sprintf(
			"/repos/%s/git/commits/%s",
			escapePath(params.Repo), escapePath(params.SHA),
		),
		token:  params.Token,
		decode: decodeJSON[Commit]("commit"),
	}
}

// CreateCommitParams describes a commit to create from an existing tree.
type CreateCommitParams struct {
	Token   string
	Repo    string
	Message string
	Tree    string   // sha of the tree the commit records
	Parents []string // shas of the parent commits
}

type createCommitRequest struct {
	Message string   `json:"message"`
	Tree    string   `json:"tree"`
	Parents []string `json:"parents"`
}

// CreateCommit creates a commit object.
func (c *Client) CreateCommit(params CreateCommitParams) *Call[CreatedCommit] {
	return &Call[CreatedCommit]{
		client: c,
		method: http.MethodPost,
		path:   fmt.Sprintf("/repos/%s/git/commits", escapePath(params.Repo)),
		token:  params.Token,
		body: createCommitRequest{
			Message: params.Message,
			Tree:    params.Tree,
			Parents: params.Parents,
		},
		decode: decodeJSON[CreatedCommit]("commit"),
	}
}
