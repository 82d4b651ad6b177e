// Package domain holds the models shared between the application flows and
// the CLI layer.
package domain

// ChangeProposal describes a single-file change to be offered as a pull
// request: a work branch cut from the base branch, one file update
// committed to it, and a PR opened against the base.
type ChangeProposal struct {
	Repo          string // "owner/name"
	BaseBranch    string
	WorkBranch    string
	Path          string
	Content       string // raw new file content
	CommitMessage string
	Title         string
	Description   string
	Comment       string // optional comment posted on the opened PR
}

// ProposalResult reports what a proposal produced.
type ProposalResult struct {
	BaseSHA           string // commit the work branch was cut from
	BlobSHA           string // blob sha of the updated file
	PullRequestNumber int    // 0 when the opened PR could not be resolved
}
