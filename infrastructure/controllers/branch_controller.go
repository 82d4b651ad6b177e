package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// BranchController handles the "branch" subcommand.
type BranchController struct {
	newClient ClientFactory
}

// NewBranchController creates a new BranchController.
func NewBranchController(newClient ClientFactory) *BranchController {
	return &BranchController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the branch controller.
func (it *BranchController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "branch <get|create> <name>",
		Short: "Read or create branch refs",
		Long: `Read the head sha of a branch, or create a new branch
pointing at an existing commit.

  repoctl branch get main
  repoctl branch create feature-x --sha <commit-sha>`,
	}
}

// Execute runs the branch action.
func (it *BranchController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		logger.Error("usage: branch <get|create> <name>")
		return
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("failed to resolve settings: %v", err)
		return
	}

	ctx := context.Background()
	client := it.newClient(settings.BaseURL)

	switch args[0] {
	case "get":
		ref, getErr := client.GetBranch(github.GetBranchParams{
			Token:  settings.Token,
			Repo:   settings.Repo,
			Branch: args[1],
		}).Do(ctx)
		if getErr != nil {
			logger.Errorf("failed to get branch: %v", getErr)
			return
		}
		fmt.Println(ref.Object.SHA)

	case "create":
		sha, _ := cmd.Flags().GetString("sha")
		if sha == "" {
			logger.Error("branch create requires --sha")
			return
		}
		if _, createErr := client.CreateBranch(github.CreateBranchParams{
			Token:  settings.Token,
			Repo:   settings.Repo,
			Branch: args[1],
			SHA:    sha,
		}).Do(ctx); createErr != nil {
			logger.Errorf("failed to create branch: %v", createErr)
			return
		}
		logger.Infof("Created branch %q at %s", args[1], sha)

	default:
		logger.Errorf("unknown branch action %q", args[0])
	}
}

// AddFlags adds the branch-specific flags to the given Cobra command.
func (it *BranchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("sha", "", "Commit sha the new branch points at")
}
