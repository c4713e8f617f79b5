package main

import (
	"github.com/ericogr/vecna-cards/internal/config"
	"github.com/ericogr/vecna-cards/internal/logging"
	"github.com/ericogr/vecna-cards/internal/storage"
)

func loadEnvOrExit() config.Env {
	env, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	return env
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid vecna configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a vecna_config.yaml with card_list and enemy_list arrays and optional summon_list, encounter.ap_per_turn and server.address",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
