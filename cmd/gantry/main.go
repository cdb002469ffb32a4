package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linyuchen/gantry/internal/cli"
	"github.com/linyuchen/gantry/internal/repository"
	"github.com/linyuchen/gantry/internal/service"
	"github.com/linyuchen/gantry/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gantry/gantry.db
	dbPath := os.Getenv("GANTRY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gantry", "gantry.db")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	projectRepo := repository.NewProjectRepo(st)
	procurementRepo := repository.NewProcurementRepo(st)
	operationRepo := repository.NewOperationRepo(st)
	qualityRepo := repository.NewQualityRepo(st)
	groupStateRepo := repository.NewGroupStateRepo(st)

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo, procurementRepo, operationRepo, qualityRepo),
		Procurement: service.NewProcurementService(procurementRepo, projectRepo),
		Operations:  service.NewOperationService(operationRepo, groupStateRepo),
		Quality:     service.NewQualityService(qualityRepo),
	}

	return cli.NewRootCmd(app).Execute()
}
