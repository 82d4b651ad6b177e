package controllers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// CommentController handles the "comment" subcommand.
type CommentController struct {
	newClient ClientFactory
}

// NewCommentController creates a new CommentController.
func NewCommentController(newClient ClientFactory) *CommentController {
	return &CommentController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the comment controller.
func (it *CommentController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "comment <list|create> <number> [body...]",
		Short: "List or post issue comments",
		Long: `List the comments of an issue or pull request, or post a new one.

  repoctl comment list 42
  repoctl comment create 42 "Looks good to me"`,
	}
}

// Execute runs the comment action.
func (it *CommentController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		logger.Error("usage: comment <list|create> <number> [body...]")
		return
	}

	number, convErr := strconv.Atoi(args[1])
	if convErr != nil {
		logger.Errorf("invalid issue number %q", args[1])
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
		comments, listErr := client.ListComments(github.ListCommentsParams{
			Token:  settings.Token,
			Repo:   settings.Repo,
			Number: number,
		}).Do(ctx)
		if listErr != nil {
			logger.Errorf("failed to list comments: %v", listErr)
			return
		}
		for _, comment := range comments {
			fmt.Printf(
				"%s (%s): %s\n",
				comment.User.Login,
				comment.CreatedAt.Format("2006-01-02 15:04"),
				comment.Body,
			)
		}

	case "create":
		if len(args) < 3 {
			logger.Error("comment create requires a body")
			return
		}
		comment, createErr := client.CreateComment(github.CreateCommentParams{
			Token:  settings.Token,
			Repo:   settings.Repo,
			Number: number,
			Body:   strings.Join(args[2:], " "),
		}).Do(ctx)
		if createErr != nil {
			logger.Errorf("failed to create comment: %v", createErr)
			return
		}
		logger.Infof("Commented on #%d as %s", number, comment.User.Login)

	default:
		logger.Errorf("unknown comment action %q", args[0])
	}
}

// AddFlags adds the comment-specific flags to the given Cobra command.
func (it *CommentController) AddFlags(_ *cobra.Command) {}
