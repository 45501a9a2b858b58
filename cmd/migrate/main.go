package main

import (
	"os"

	"recruit/internal/infra/persistence/migration"
)

func main() {
	if err := NewRootCmd(openMigrator).Execute(); err != nil {
		os.Exit(1)
	}
}

func openMigrator(databaseURL string) (schemaMigrator, error) {
	m, err := migration.NewMigrator(databaseURL)
	if err != nil {
		return nil, err
	}

	return m, nil
}
