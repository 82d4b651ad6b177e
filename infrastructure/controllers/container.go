package controllers

import (
	"go.uber.org/dig"

	"github.com/repoctl/repoctl/domain"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewClientFactory,
		NewBranchController,
		NewCommitController,
		NewPullController,
		NewContentController,
		NewCommentController,
		NewTagsController,
		NewProposeController,
		NewControllers,
	}

	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for command registration.
func NewControllers(
	branchController *BranchController,
	commitController *CommitController,
	pullController *PullController,
	contentController *ContentController,
	commentController *CommentController,
	tagsController *TagsController,
	proposeController *ProposeController,
) *[]domain.Controller {
	return &[]domain.Controller{
		branchController,
		commitController,
		pullController,
		contentController,
		commentController,
		tagsController,
		proposeController,
	}
}
