// Package controllers binds the CLI subcommands to the typed GitHub client.
package controllers

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repoctl/repoctl/config"
)

// runtimeSettings is the per-invocation state resolved from flags and the
// optional config file. Flags win over the file.
type runtimeSettings struct {
	Token         string
	Repo          string
	BaseURL       string
	DefaultBranch string
}

// resolveSettings loads the config file (when present) and applies flag
// overrides. The token is the only hard requirement.
func resolveSettings(cmd *cobra.Command) (*runtimeSettings, error) {
	settings := &runtimeSettings{DefaultBranch: "main"}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := config.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		settings.Token = cfg.Token
		settings.Repo = cfg.Repository
		settings.BaseURL = cfg.APIBaseURL
		if cfg.DefaultBranch != "" {
			settings.DefaultBranch = cfg.DefaultBranch
		}
	}

	if token, _ := cmd.Flags().GetString("token"); token != "" {
		settings.Token = token
	}
	if repo, _ := cmd.Flags().GetString("repo"); repo != "" {
		settings.Repo = repo
	}
	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		settings.BaseURL = baseURL
	}

	if settings.Token == "" {
		return nil, errors.New("no token configured (use --token or a config file)")
	}
	if settings.Repo == "" {
		return nil, errors.New("no repository configured (use --repo or a config file)")
	}

	return settings, nil
}
