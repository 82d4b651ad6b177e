package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// ContentController handles the "content" subcommand.
type ContentController struct {
	newClient ClientFactory
}

// NewContentController creates a new ContentController.
func NewContentController(newClient ClientFactory) *ContentController {
	return &ContentController{newClient: newClient}
}

// GetBind returns the Cobra command metadata for the content controller.
func (it *ContentController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "content <get|put> <path>",
		Short: "Read or update file contents",
		Long: `Read a file (content printed as delivered, with its encoding
tag — no decoding is applied), or replace its content on a branch.

  repoctl content get docs/README.md --ref main
  repoctl content put docs/README.md --file new.md --message "msg" --branch feature-x`,
	}
}

// Execute runs the content action.
func (it *ContentController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		logger.Error("usage: content <get|put> <path>")
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
		ref, _ := cmd.Flags().GetString("ref")
		file, getErr := client.GetFileContents(github.GetFileContentsParams{
			Token: settings.Token,
			Repo:  settings.Repo,
			Path:  args[1],
			Ref:   ref,
		}).Do(ctx)
		if getErr != nil {
			logger.Errorf("failed to get file: %v", getErr)
			return
		}
		fmt.Printf("encoding %s sha %s\n%s\n", file.Encoding, file.SHA, file.Content)

	case "put":
		message, _ := cmd.Flags().GetString("message")
		branch, _ := cmd.Flags().GetString("branch")
		sha, _ := cmd.Flags().GetString("sha")
		filePath, _ := cmd.Flags().GetString("file")
		if message == "" || branch == "" || filePath == "" {
			logger.Error("content put requires --message, --branch and --file")
			return
		}

		raw, readErr := os.ReadFile(filePath)
		if readErr != nil {
			logger.Errorf("failed to read %q: %v", filePath, readErr)
			return
		}

		// When no blob sha is given, resolve it from the target branch.
		if sha == "" {
			existing, lookupErr := client.GetFileContents(github.GetFileContentsParams{
				Token: settings.Token,
				Repo:  settings.Repo,
				Path:  args[1],
				Ref:   branch,
			}).Do(ctx)
			if lookupErr != nil {
				logger.Errorf("failed to resolve current blob sha: %v", lookupErr)
				return
			}
			sha = existing.SHA
		}

		updated, putErr := client.UpdateFileContents(github.UpdateFileContentsParams{
			Token:   settings.Token,
			Repo:    settings.Repo,
			Path:    args[1],
			Message: message,
			Content: string(raw),
			SHA:     sha,
			Branch:  branch,
		}).Do(ctx)
		if putErr != nil {
			logger.Errorf("failed to update file: %v", putErr)
			return
		}
		fmt.Println(updated.Content.SHA)

	default:
		logger.Errorf("unknown content action %q", args[0])
	}
}

// AddFlags adds the content-specific flags to the given Cobra command.
func (it *ContentController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("ref", "", "Branch, tag, or commit sha to read from")
	cmd.Flags().String("file", "", "Local file with the new content")
	cmd.Flags().String("message", "", "Commit message for the update")
	cmd.Flags().String("branch", "", "Branch to commit the update to")
	cmd.Flags().String("sha", "", "Blob sha of the version being replaced (default: resolved from the branch)")
}
