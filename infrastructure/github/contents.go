package github

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
)

// FileContent is a file as stored, with its transport encoding tag. The
// content is returned exactly as the API sent it; this client never
// decodes it, since the API may answer with encodings other than base64
// (e.g. none for large files). Inspect Encoding before use.
type FileContent struct {
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
	SHA      string `json:"sha"`
}

// UpdatedContent holds the blob sha of a file after an update.
type UpdatedContent struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// GetFileContentsParams identifies a file to read.
type GetFileContentsParams struct {
	Token string
	Repo  string
	Path  string
	Ref   string // branch, tag, or commit sha; empty means the default branch
}

// GetFileContents reads a file from a repository.
func (c *Client) GetFileContents(params GetFileContentsParams) *Call[FileContent] {
	path := fmt.Sprintf(
		"/repos/%s/contents/%s",
		escapePath(params.Repo), escapePath(params.Path),
	)
	if params.Ref != "" {
		path += "?ref=" + url.QueryEscape(params.Ref)
	}
	return &Call[FileContent]{
		client: c,
		method: http.MethodGet,
		path:   path,
		token:  params.Token,
		decode: decodeJSON[FileContent]("file contents"),
	}
}

// UpdateFileContentsParams describes a file update on a branch. Content is
// the raw new content; it is base64-encoded before transmission.
type UpdateFileContentsParams struct {
	Token   string
	Repo    string
	Path    string
	Message string
	Content string // raw, pre-encoding
	SHA     string // blob sha of the version being replaced
	Branch  string
}

type updateContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch"`
}

// UpdateFileContents replaces a file's content on a branch and returns the
// new blob sha.
func (c *Client) UpdateFileContents(params UpdateFileContentsParams) *Call[UpdatedContent] {
	return &Call[UpdatedContent]{
		client: c,
		method: http.MethodPut,
		path: fmt.Sprintf(
			"/repos/%s/contents/%s",
			escapePath(params.Repo), escapePath(params.Path),
		),
		token: params.Token,
		body: updateContentsRequest{
			Message: params.Message,
			Content: base64.StdEncoding.EncodeToString([]byte(params.Content)),
			SHA:     params.SHA,
			Branch:  params.Branch,
		},
		decode: decodeJSON[UpdatedContent]("updated contents"),
	}
}
