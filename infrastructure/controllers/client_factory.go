package controllers

import (
	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/github"
)

// ClientFactory builds repository services bound to a base URL that is
// only known once flags and config are resolved.
type ClientFactory func(baseURL string) domain.RepositoryService

// NewClientFactory creates the default factory.
func NewClientFactory() ClientFactory {
	return func(baseURL string) domain.RepositoryService {
		if baseURL == "" {
			return github.NewClient()
		}
		return github.NewClient(github.WithBaseURL(baseURL))
	}
}
