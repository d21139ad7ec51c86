package cmd

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/reqdiff/application"
	"github.com/rios0rios0/reqdiff/config"
	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/infrastructure/source"
	githubSource "github.com/rios0rios0/reqdiff/infrastructure/source/github"
	localSource "github.com/rios0rios0/reqdiff/infrastructure/source/local"
	rawSource "github.com/rios0rios0/reqdiff/infrastructure/source/raw"
)

// buildCompareService assembles the compare service through a DIG container:
// source registry -> content source -> variant table -> service.
func buildCompareService() (*application.CompareService, error) {
	container := dig.New()

	constructors := []interface{}{
		newSourceRegistry,
		newContentSource,
		newVariantTable,
		application.NewCompareService,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, err
		}
	}

	var svc *application.CompareService
	if err := container.Invoke(func(s *application.CompareService) {
		svc = s
	}); err != nil {
		return nil, err
	}
	return svc, nil
}

// newSourceRegistry registers all content source factories.
func newSourceRegistry() *source.Registry {
	reg := source.NewRegistry()
	reg.Register("github", githubSource.New)
	reg.Register("raw", rawSource.New)
	reg.Register("local", localSource.New)
	return reg
}

// newContentSource builds the source selected on the command line.
func newContentSource(registry *source.Registry) (domain.ContentSource, error) {
	token := authToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	return registry.Get(sourceName, source.Options{
		Repo:  repoRef,
		Path:  localPath,
		Token: token,
	})
}

// newVariantTable loads the variant table from --config, an auto-detected
// config file, or the built-in defaults, in that order.
func newVariantTable() (*config.VariantTable, error) {
	path := configPath
	if path == "" {
		if found, err := config.FindConfigFile(); err == nil {
			path = found
		}
	}
	if path == "" {
		return config.DefaultVariants(), nil
	}

	logger.Infof("Using variant config file: %s", path)
	return config.Load(path)
}
