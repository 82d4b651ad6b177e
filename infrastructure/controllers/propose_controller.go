package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/application"
	"github.com/repoctl/repoctl/domain"
)

// ProposeController handles the "propose" subcommand: the full
// branch-update-PR flow in one shot.
type ProposeController struct {
	newClient ClientFactory
}

// NewProposeController creates a new ProposeController.
func NewProposeController(newClient ClientFactory) *ProposeController {
	return &ProposeController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the propose controller.
func (it *ProposeController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "propose <path>",
		Short: "Propose a file change as a pull request",
		Long: `Cut a work branch from the base branch, commit a new version of
a single file to it, and open a pull request.

  repoctl propose docs/README.md --file new.md --branch update-readme \
    --message "Update readme" --title "Update readme"`,
	}
}

// Execute runs the proposal flow.
func (it *ProposeController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		logger.Error("usage: propose <path>")
		return
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("failed to resolve settings: %v", err)
		return
	}

	workBranch, _ := cmd.Flags().GetString("branch")
	filePath, _ := cmd.Flags().GetString("file")
	message, _ := cmd.Flags().GetString("message")
	title, _ := cmd.Flags().GetString("title")
	body, _ := cmd.Flags().GetString("body")
	comment, _ := cmd.Flags().GetString("comment")
	baseBranch, _ := cmd.Flags().GetString("base")
	if baseBranch == "" {
		baseBranch = settings.DefaultBranch
	}
	if workBranch == "" || filePath == "" || message == "" || title == "" {
		logger.Error("propose requires --branch, --file, --message and --title")
		return
	}

	raw, readErr := os.ReadFile(filePath)
	if readErr != nil {
		logger.Errorf("failed to read %q: %v", filePath, readErr)
		return
	}

	ctx := context.Background()
	service := application.NewChangeService(it.newClient(settings.BaseURL))

	exists, existsErr := service.PullRequestExists(ctx, settings.Token, settings.Repo, title)
	if existsErr != nil {
		logger.Errorf("failed to check existing pull requests: %v", existsErr)
		return
	}
	if exists {
		logger.Warnf("An open pull request titled %q already exists, skipping", title)
		return
	}

	result, proposeErr := service.ProposeFileChange(ctx, settings.Token, domain.ChangeProposal{
		Repo:          settings.Repo,
		BaseBranch:    baseBranch,
		WorkBranch:    workBranch,
		Path:          args[0],
		Content:       string(raw),
		CommitMessage: message,
		Title:         title,
		Description:   body,
		Comment:       comment,
	})
	if proposeErr != nil {
		logger.Errorf("proposal failed: %v", proposeErr)
		return
	}

	if result.PullRequestNumber > 0 {
		fmt.Printf("#%d blob %s\n", result.PullRequestNumber, result.BlobSHA)
	} else {
		fmt.Printf("blob %s\n", result.BlobSHA)
	}
}

// AddFlags adds the propose-specific flags to the given Cobra command.
func (it *ProposeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("branch", "", "Name of the work branch to create")
	cmd.Flags().String("base", "", "Base branch (default: configured default branch)")
	cmd.Flags().String("file", "", "Local file with the new content")
	cmd.Flags().String("message", "", "Commit message")
	cmd.Flags().String("title", "", "Pull request title")
	cmd.Flags().String("body", "", "Pull request description")
	cmd.Flags().String("comment", "", "Comment to post on the opened pull request")
}
