package github

import (
	"fmt"
	"net/http"
)

// BranchRef is the branch head returned by the git refs API.
type BranchRef struct {
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

// GetBranchParams identifies a branch head to read.
type GetBranchParams struct {
	Token  string
	Repo   string // "owner/name"
	Branch string
}

// GetBranch reads the ref of a branch head.
func (c *Client) GetBranch(params GetBranchParams) *Call[BranchRef] {
	return &Call[BranchRef]{
		client: c,
		method: http.MethodGet,
		path: fmt.Sprintf(
			"/repos/%s/git/refs/heads/%s",
			escapePath(params.Repo), escapePath(params.Branch),
		),
		token:  params.Token,
		decode: decodeJSON[BranchRef]("branch ref"),
	}
}

// CreateBranchParams describes a new branch pointing at an existing commit.
type CreateBranchParams struct {
	Token  string
	Repo   string
	Branch string
	SHA    string // commit the new branch points at
}

type createRefRequest struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// CreateBranch creates a branch ref. The response body is discarded.
func (c *Client) CreateBranch(params CreateBranchParams) *Call[Unit] {
	return &Call[Unit]{
		client: c,
		method: http.MethodPost,
		path:   fmt.Sprintf("/repos/%s/git/refs", escapePath(params.Repo)),
		token:  params.Token,
		body: createRefRequest{
			Ref: "refs/heads/" + params.Branch,
			SHA: params.SHA,
		},
		decode: discardBody,
	}
}
