// Package application orchestrates multi-step repository flows on top of
// the typed GitHub client.
package application

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// ChangeService turns a file-change proposal into a branch, a commit on
// that branch, and a pull request.
type ChangeService struct {
	client domain.RepositoryService
}

// NewChangeService creates a new service using the given repository service.
func NewChangeService(client domain.RepositoryService) *ChangeService {
	return &ChangeService{client: client}
}

// ProposeFileChange runs the full flow: resolve the base branch head, cut a
// work branch, update the file on it, and open a pull request. Every step
// is a single API call; a failing step aborts the flow.
func (s *ChangeService) ProposeFileChange(
	ctx context.Context,
	token string,
	proposal domain.ChangeProposal,
) (*domain.ProposalResult, error) {
	baseRef, err := s.client.GetBranch(github.GetBranchParams{
		Token:  token,
		Repo:   proposal.Repo,
		Branch: proposal.BaseBranch,
	}).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get base branch ref: %w", err)
	}
	logger.Debugf("Base branch %q is at %s", proposal.BaseBranch, baseRef.Object.SHA)

	if _, err = s.client.CreateBranch(github.CreateBranchParams{
		Token:  token,
		Repo:   proposal.Repo,
		Branch: proposal.WorkBranch,
		SHA:    baseRef.Object.SHA,
	}).Do(ctx); err != nil {
		return nil, fmt.Errorf("failed to create branch %q: %w", proposal.WorkBranch, err)
	}

	// The update endpoint needs the blob sha of the version being replaced.
	file, err := s.client.GetFileContents(github.GetFileContentsParams{
		Token: token,
		Repo:  proposal.Repo,
		Path:  proposal.Path,
		Ref:   proposal.BaseBranch,
	}).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %q: %w", proposal.Path, err)
	}

	updated, err := s.client.UpdateFileContents(github.UpdateFileContentsParams{
		Token:   token,
		Repo:    proposal.Repo,
		Path:    proposal.Path,
		Message: proposal.CommitMessage,
		Content: proposal.Content,
		SHA:     file.SHA,
		Branch:  proposal.WorkBranch,
	}).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update file %q: %w", proposal.Path, err)
	}

	if _, err = s.client.CreatePullRequest(github.CreatePullRequestParams{
		Token:       token,
		Repo:        proposal.Repo,
		Title:       proposal.Title,
		Head:        proposal.WorkBranch,
		Base:        proposal.BaseBranch,
		Description: proposal.Description,
	}).Do(ctx); err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}
	logger.Infof("Opened pull request %q on %s", proposal.Title, proposal.Repo)

	result := &domain.ProposalResult{
		BaseSHA: baseRef.Object.SHA,
		BlobSHA: updated.Content.SHA,
	}

	// The create endpoint does not return the PR number, so resolve it from
	// the open PR list by title.
	number, err := s.findPullRequestByTitle(ctx, token, proposal.Repo, proposal.Title)
	if err != nil {
		logger.Warnf("Failed to resolve the opened pull request: %v", err)
		return result, nil
	}
	result.PullRequestNumber = number

	if proposal.Comment != "" && number > 0 {
		if _, err = s.client.CreateComment(github.CreateCommentParams{
			Token:  token,
			Repo:   proposal.Repo,
			Number: number,
			Body:   proposal.Comment,
		}).Do(ctx); err != nil {
			return result, fmt.Errorf("failed to comment on pull request #%d: %w", number, err)
		}
	}

	return result, nil
}

// PullRequestExists checks whether an open pull request with the given
// title already exists.
func (s *ChangeService) PullRequestExists(
	ctx context.Context,
	token, repo, title string,
) (bool, error) {
	number, err := s.findPullRequestByTitle(ctx, token, repo, title)
	if err != nil {
		return false, err
	}
	return number > 0, nil
}

func (s *ChangeService) findPullRequestByTitle(
	ctx context.Context,
	token, repo, title string,
) (int, error) {
	pulls, err := s.client.ListPullRequests(github.ListPullRequestsParams{
		Token: token,
		Repo:  repo,
	}).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pull requests: %w", err)
	}

	for _, pull := range pulls {
		if pull.Title == title {
			return pull.Number, nil
		}
	}
	return 0, nil
}
