// Package testdoubles provides test doubles (spies, stubs) for the HTTP
// boundary and the repository service interface. These are hand-crafted
// implementations, no mock frameworks.
package testdoubles

import (
	"io"
	"net/http"
	"strings"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// RecordedRequest captures one request seen by the spy transport.
type RecordedRequest struct {
	Method        string
	Path          string // URL path including the raw query, when present
	Authorization string
	ContentType   string
	Body          []byte
}

// CannedResponse is the response the spy returns for a matched request.
type CannedResponse struct {
	Status int
	Body   string
}

// SpyTransport implements http.RoundTripper as a configurable spy. Keyed
// responses match on "METHOD /path"; unmatched requests get the Fallback
// response, or 404 when none is configured. Every request is recorded for
// later inspection.
type SpyTransport struct {
	Responses map[string]CannedResponse
	Fallback  *CannedResponse

	// spy: requests received, in order
	Requests []RecordedRequest
}

var _ http.RoundTripper = (*SpyTransport)(nil)

func (t *SpyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	path := req.URL.EscapedPath()
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	t.Requests = append(t.Requests, RecordedRequest{
		Method:        req.Method,
		Path:          path,
		Authorization: req.Header.Get("Authorization"),
		ContentType:   req.Header.Get("Content-Type"),
		Body:          body,
	})

	response, ok := t.Responses[req.Method+" "+path]
	if !ok {
		if t.Fallback != nil {
			response = *t.Fallback
		} else {
			response = CannedResponse{
				Status: http.StatusNotFound,
				Body:   `{"message":"Not Found"}`,
			}
		}
	}

	return &http.Response{
		StatusCode: response.Status,
		Body:       io.NopCloser(strings.NewReader(response.Body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// Client wraps the spy in an http.Client ready for injection.
func (t *SpyTransport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// ---------------------------------------------------------------------------
// SpyRepository
// ---------------------------------------------------------------------------

// SpyRepository implements domain.RepositoryService as a configurable spy.
// Configure the response fields for the operations your test exercises,
// then inspect the call-tracking fields to verify behavior. Every method
// returns a resolved call, so no network traffic ever happens.
type SpyRepository struct {
	// --- GetBranch ---
	BranchRef    github.BranchRef
	GetBranchErr error
	// spy: params received
	GetBranchCalls []github.GetBranchParams

	// --- CreateBranch ---
	CreateBranchErr   error
	CreateBranchCalls []github.CreateBranchParams

	// --- GetCommit ---
	Commit         github.Commit
	GetCommitErr   error
	GetCommitCalls []github.GetCommitParams

	// --- CreateCommit ---
	CreatedCommit     github.CreatedCommit
	CreateCommitErr   error
	CreateCommitCalls []github.CreateCommitParams

	// --- ListPullRequests ---
	PullRequests          []github.PullRequestSummary
	ListPullRequestsErr   error
	ListPullRequestsCalls []github.ListPullRequestsParams

	// --- GetPullRequest ---
	PullRequestDetail   github.PullRequestDetail
	GetPullRequestErr   error
	GetPullRequestCalls []github.GetPullRequestParams

	// --- CreatePullRequest ---
	CreatePullRequestErr   error
	CreatePullRequestCalls []github.CreatePullRequestParams

	// --- GetFileContents ---
	FileContent          github.FileContent
	GetFileContentsErr   error
	GetFileContentsCalls []github.GetFileContentsParams

	// --- UpdateFileContents ---
	UpdatedContent          github.UpdatedContent
	UpdateFileContentsErr   error
	UpdateFileContentsCalls []github.UpdateFileContentsParams

	// --- ListComments ---
	Comments          []github.Comment
	ListCommentsErr   error
	ListCommentsCalls []github.ListCommentsParams

	// --- CreateComment ---
	CreatedComment     github.Comment
	CreateCommentErr   error
	CreateCommentCalls []github.CreateCommentParams

	// --- ListTags ---
	Tags          []github.Tag
	ListTagsErr   error
	ListTagsCalls []github.ListTagsParams
}

var _ domain.RepositoryService = (*SpyRepository)(nil)

func (r *SpyRepository) GetBranch(params github.GetBranchParams) *github.Call[github.BranchRef] {
	r.GetBranchCalls = append(r.GetBranchCalls, params)
	return github.ResolvedCall(r.BranchRef, r.GetBranchErr)
}

func (r *SpyRepository) CreateBranch(params github.CreateBranchParams) *github.Call[github.Unit] {
	r.CreateBranchCalls = append(r.CreateBranchCalls, params)
	return github.ResolvedCall(github.Unit{}, r.CreateBranchErr)
}

func (r *SpyRepository) GetCommit(params github.GetCommitParams) *github.Call[github.Commit] {
	r.GetCommitCalls = append(r.GetCommitCalls, params)
	return github.ResolvedCall(r.Commit, r.GetCommitErr)
}

func (r *SpyRepository) CreateCommit(params github.CreateCommitParams) *github.Call[github.CreatedCommit] {
	r.CreateCommitCalls = append(r.CreateCommitCalls, params)
	return github.ResolvedCall(r.CreatedCommit, r.CreateCommitErr)
}

func (r *SpyRepository) ListPullRequests(
	params github.ListPullRequestsParams,
) *github.Call[[]github.PullRequestSummary] {
	r.ListPullRequestsCalls = append(r.ListPullRequestsCalls, params)
	return github.ResolvedCall(r.PullRequests, r.ListPullRequestsErr)
}

func (r *SpyRepository) GetPullRequest(
	params github.GetPullRequestParams,
) *github.Call[github.PullRequestDetail] {
	r.GetPullRequestCalls = append(r.GetPullRequestCalls, params)
	return github.ResolvedCall(r.PullRequestDetail, r.GetPullRequestErr)
}

func (r *SpyRepository) CreatePullRequest(
	params github.CreatePullRequestParams,
) *github.Call[github.Unit] {
	r.CreatePullRequestCalls = append(r.CreatePullRequestCalls, params)
	return github.ResolvedCall(github.Unit{}, r.CreatePullRequestErr)
}

func (r *SpyRepository) GetFileContents(
	params github.GetFileContentsParams,
) *github.Call[github.FileContent] {
	r.GetFileContentsCalls = append(r.GetFileContentsCalls, params)
	return github.ResolvedCall(r.FileContent, r.GetFileContentsErr)
}

func (r *SpyRepository) UpdateFileContents(
	params github.UpdateFileContentsParams,
) *github.Call[github.UpdatedContent] {
	r.UpdateFileContentsCalls = append(r.UpdateFileContentsCalls, params)
	return github.ResolvedCall(r.UpdatedContent, r.UpdateFileContentsErr)
}

func (r *SpyRepository) ListComments(params github.ListCommentsParams) *github.Call[[]github.Comment] {
	r.ListCommentsCalls = append(r.ListCommentsCalls, params)
	return github.ResolvedCall(r.Comments, r.ListCommentsErr)
}

func (r *SpyRepository) CreateComment(params github.CreateCommentParams) *github.Call[github.Comment] {
	r.CreateCommentCalls = append(r.CreateCommentCalls, params)
	return github.ResolvedCall(r.CreatedComment, r.CreateCommentErr)
}

func (r *SpyRepository) ListTags(params github.ListTagsParams) *github.Call[[]github.Tag] {
	r.ListTagsCalls = append(r.ListTagsCalls, params)
	return github.ResolvedCall(r.Tags, r.ListTagsErr)
}
