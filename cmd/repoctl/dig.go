package main

import (
	"go.uber.org/dig"

	"github.com/repoctl/repoctl/domain"
	"github.com/repoctl/repoctl/infrastructure/controllers"
)

func injectControllers() *[]domain.Controller {
	container := dig.New()

	if err := controllers.RegisterProviders(container); err != nil {
		panic(err)
	}

	var all *[]domain.Controller
	if err := container.Invoke(func(c *[]domain.Controller) {
		all = c
	}); err != nil {
		panic(err)
	}

	return all
}
