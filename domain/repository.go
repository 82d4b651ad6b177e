package domain

import "github.com/repoctl/repoctl/infrastructure/github"

// RepositoryService abstracts the typed GitHub operations the flows are
// built from. Every method returns a deferred call; implementations decide
// what running it does. The github client is the production implementation.
type RepositoryService interface {
	GetBranch(params github.GetBranchParams) *github.Call[github.BranchRef]
	CreateBranch(params github.CreateBranchParams) *github.Call[github.Unit]

	GetCommit(params github.GetCommitParams) *github.Call[github.Commit]
	CreateCommit(params github.CreateCommitParams) *github.Call[github.CreatedCommit]

	ListPullRequests(params github.ListPullRequestsParams) *github.Call[[]github.PullRequestSummary]
	GetPullRequest(params github.GetPullRequestParams) *github.Call[github.PullRequestDetail]
	CreatePullRequest(params github.CreatePullRequestParams) *github.Call[github.Unit]

	GetFileContents(params github.GetFileContentsParams) *github.Call[github.FileContent]
	UpdateFileContents(params github.UpdateFileContentsParams) *github.Call[github.UpdatedContent]

	ListComments(params github.ListCommentsParams) *github.Call[[]github.Comment]
	CreateComment(params github.CreateCommentParams) *github.Call[github.Comment]

	ListTags(params github.ListTagsParams) *github.Call[[]github.Tag]
}

var _ RepositoryService = (*github.Client)(nil)
