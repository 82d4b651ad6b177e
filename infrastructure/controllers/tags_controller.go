package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// TagsController handles the "tags" subcommand.
type TagsController struct {
	newClient ClientFactory
}

// NewTagsController creates a new TagsController.
func NewTagsController(newClient ClientFactory) *TagsController {
	return &TagsController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the tags controller.
func (it *TagsController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "tags",
		Short: "List repository tags",
		Long: `List the tags of the repository, newest version first.

  repoctl tags`,
	}
}

// Execute lists the tags.
func (it *TagsController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("failed to resolve settings: %v", err)
		return
	}

	ctx := context.Background()
	client := it.newClient(settings.BaseURL)

	tags, listErr := client.ListTags(github.ListTagsParams{
		Token: settings.Token,
		Repo:  settings.Repo,
	}).Do(ctx)
	if listErr != nil {
		logger.Errorf("failed to list tags: %v", listErr)
		return
	}

	github.SortTagsDescending(tags)
	for _, tag := range tags {
		fmt.Println(tag.Name)
	}
}

// AddFlags adds the tags-specific flags to the given Cobra command.
func (it *TagsController) AddFlags(_ *cobra.Command) {}
