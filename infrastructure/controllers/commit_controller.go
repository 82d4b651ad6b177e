package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// CommitController handles the "commit" subcommand.
type CommitController struct {
	newClient ClientFactory
}

// NewCommitController creates a new CommitController.
func NewCommitController(newClient ClientFactory) *CommitController {
	return &CommitController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the commit controller.
func (it *CommitController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "commit <get|create> [sha]",
		Short: "Read or create commit objects",
		Long: `Read a commit and its tree sha, or create a commit from an
existing tree.

  repoctl commit get <sha>
  repoctl commit create --message "msg" --tree <tree-sha> --parent <sha>`,
	}
}

// Execute runs the commit action.
func (it *CommitController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		logger.Error("usage: commit <get|create> [sha]")
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
		if len(args) < 2 {
			logger.Error("commit get requires a sha")
			return
		}
		commit, getErr := client.GetCommit(github.GetCommitParams{
			Token: settings.Token,
			Repo:  settings.Repo,
			SHA:   args[1],
		}).Do(ctx)
		if getErr != nil {
			logger.Errorf("failed to get commit: %v", getErr)
			return
		}
		fmt.Printf("commit %s tree %s\n", commit.SHA, commit.Tree.SHA)

	case "create":
		message, _ := cmd.Flags().GetString("message")
		tree, _ := cmd.Flags().GetString("tree")
		parents, _ := cmd.Flags().GetStringArray("parent")
		if message == "" || tree == "" {
			logger.Error("commit create requires --message and --tree")
			return
		}
		created, createErr := client.CreateCommit(github.CreateCommitParams{
			Token:   settings.Token,
			Repo:    settings.Repo,
			Message: message,
			Tree:    tree,
			Parents: parents,
		}).Do(ctx)
		if createErr != nil {
			logger.Errorf("failed to create commit: %v", createErr)
			return
		}
		fmt.Println(created.SHA)

	default:
		logger.Errorf("unknown commit action %q", args[0])
	}
}

// AddFlags adds the commit-specific flags to the given Cobra command.
func (it *CommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("message", "", "Commit message")
	cmd.Flags().String("tree", "", "Sha of the tree the commit records")
	cmd.Flags().StringArray("parent", nil, "Parent commit sha (repeatable)")
}
