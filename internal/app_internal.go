package internal

import (
	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs once the container is resolved.
type AppInternal struct {
	controllers        []entities.Controller
	generateController *controllers.GenerateController
}

// NewAppInternal creates the application context.
func NewAppInternal(
	controllerList *[]entities.Controller,
	generateController *controllers.GenerateController,
) *AppInternal {
	return &AppInternal{
		controllers:        *controllerList,
		generateController: generateController,
	}
}

// GetControllers returns every controller that is mounted as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetDefaultController returns the controller that runs on the bare root command.
func (it *AppInternal) GetDefaultController() entities.Controller {
	return it.generateController
}
