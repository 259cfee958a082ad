package router

import (
	"github.com/realtyhub/export-api/internal/container"
	repo "github.com/realtyhub/export-api/internal/domain/repository"
	pginfra "github.com/realtyhub/export-api/internal/infrastructure/postgres"
	handlers "github.com/realtyhub/export-api/internal/interface/http"
	"github.com/realtyhub/export-api/internal/router/modules"
)

type ExportModuleDeps struct {
	Repo    repo.ExportRepository
	Handler *handlers.ExportHandler
}

type ImportModuleDeps struct {
	Repo    repo.ImportRepository
	Handler *handlers.ImportHandler
}

func buildExportDeps() ExportModuleDeps {
	r := pginfra.NewExportRepository(container.GetDB())
	h := handlers.NewExportHandler(r, container.GetLogger())
	return ExportModuleDeps{Repo: r, Handler: h}
}

func buildImportDeps() ImportModuleDeps {
	r := pginfra.NewImportRepository(container.GetDB(), container.GetLogger())
	h := handlers.NewImportHandler(r, container.GetLogger())
	return ImportModuleDeps{Repo: r, Handler: h}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	exportDeps := buildExportDeps()
	importDeps := buildImportDeps()
	r.Add(modules.NewExportModule(exportDeps.Handler))
	r.Add(modules.NewImportModule(importDeps.Handler))
}
