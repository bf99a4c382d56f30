package repositories

import (
	domainRepos "github.com/rios0rios0/reqgen/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/reqgen/internal/infrastructure/repositories/filesystem"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.ManifestRepository {
		return fsRepo.NewManifestRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.DocumentRepository {
		return fsRepo.NewDocumentRepository()
	}); err != nil {
		return err
	}

	return nil
}
