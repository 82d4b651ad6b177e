package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/domain"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repoctl",
		Short: "Typed GitHub repository operations from the command line",
		Long: `A thin, typed client for a subset of the GitHub REST API:
branch refs, commits, pull requests, file contents, and issue comments.

Each subcommand performs exactly one API call, except "propose", which
chains the calls needed to offer a file change as a pull request.`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("token", "",
		"API token (overrides the config file)")
	cmd.PersistentFlags().StringP("repo", "r", "",
		"Repository in owner/name form (overrides the config file)")
	cmd.PersistentFlags().String("base-url", "",
		"API base URL, e.g. for GitHub Enterprise (overrides the config file)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, all *[]domain.Controller) {
	for _, controller := range *all {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				if verbose, _ := command.Flags().GetBool("verbose"); verbose {
					logger.SetLevel(logger.DebugLevel)
				}
				ctrl.Execute(command, arguments)
			},
		}

		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectControllers())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'repoctl': %s", err)
	}
}
