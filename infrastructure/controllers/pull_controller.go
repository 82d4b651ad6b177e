package controllers

import (
	"context"
	"fmt"
	"strconv"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// PullController handles the "pr" subcommand.
type PullController struct {
	newClient ClientFactory
}

// NewPullController creates a new PullController.
func NewPullController(newClient ClientFactory) *PullController {
	return &PullController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the pull controller.
func (it *PullController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "pr <list|get|create> [number]",
		Short: "List, read, or open pull requests",
		Long: `List open pull requests, read the head of one, or open a new one.

  repoctl pr list
  repoctl pr get 42
  repoctl pr create --title "Title" --head feature-x --base main --body "..."`,
	}
}

// Execute runs the pull request action.
func (it *PullController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		logger.Error("usage: pr <list|get|create> [number]")
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
	case "list":
		pulls, listErr := client.ListPullRequests(github.ListPullRequestsParams{
			Token: settings.Token,
			Repo:  settings.Repo,
		}).Do(ctx)
		if listErr != nil {
			logger.Errorf("failed to list pull requests: %v", listErr)
			return
		}
		for _, pull := range pulls {
			fmt.Printf("#%d %s\n", pull.Number, pull.Title)
		}

	case "get":
		if len(args) < 2 {
			logger.Error("pr get requires a number")
			return
		}
		number, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			logger.Errorf("invalid pull request number %q", args[1])
			return
		}
		pull, getErr := client.GetPullRequest(github.GetPullRequestParams{
			Token:  settings.Token,
			Repo:   settings.Repo,
			Number: number,
		}).Do(ctx)
		if getErr != nil {
			logger.Errorf("failed to get pull request: %v", getErr)
			return
		}
		fmt.Printf("head %s at %s\n", pull.Head.Ref, pull.Head.SHA)

	case "create":
		title, _ := cmd.Flags().GetString("title")
		head, _ := cmd.Flags().GetString("head")
		base, _ := cmd.Flags().GetString("base")
		body, _ := cmd.Flags().GetString("body")
		if title == "" || head == "" {
			logger.Error("pr create requires --title and --head")
			return
		}
		if base == "" {
			base = settings.DefaultBranch
		}
		if _, createErr := client.CreatePullRequest(github.CreatePullRequestParams{
			Token:       settings.Token,
			Repo:        settings.Repo,
			Title:       title,
			Head:        head,
			Base:        base,
			Description: body,
		}).Do(ctx); createErr != nil {
			logger.Errorf("failed to create pull request: %v", createErr)
			return
		}
		logger.Infof("Opened pull request %q (%s -> %s)", title, head, base)

	default:
		logger.Errorf("unknown pr action %q", args[0])
	}
}

// AddFlags adds the pr-specific flags to the given Cobra command.
func (it *PullController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Pull request title")
	cmd.Flags().String("head", "", "Source branch")
	cmd.Flags().String("base", "", "Target branch (default: configured default branch)")
	cmd.Flags().String("body", "", "Pull request description")
}
